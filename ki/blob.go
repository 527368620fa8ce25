package ki

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"
)

// Blob is a binary literal carried inline as base64:
// ".blob(SGVsbG8=)". Whitespace inside the payload, including line
// breaks in wrapped literals, is ignored on input.
type Blob []byte

const blobPrefix = ".blob("

// ParseBlob parses a blob literal.
func ParseBlob(s string) (Blob, error) {
	if !strings.HasPrefix(s, blobPrefix) || !strings.HasSuffix(s, ")") {
		return nil, &ScanError{Msg: fmt.Sprintf("malformed blob literal %q: want .blob(BASE64)", s), Pos: NoPosition}
	}
	payload := s[len(blobPrefix) : len(s)-1]
	payload = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n':
			return -1
		}
		return r
	}, payload)

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, &ScanError{Msg: "invalid base64 in blob literal", Pos: NoPosition, Err: err}
	}
	return Blob(data), nil
}

// String returns the canonical blob literal form.
func (b Blob) String() string {
	return blobPrefix + base64.StdEncoding.EncodeToString(b) + ")"
}

// Equal reports byte-wise equality.
func (b Blob) Equal(o Blob) bool {
	return bytes.Equal(b, o)
}
