package ki

import (
	"fmt"
	"strings"
	"unicode"
)

// NSID is a namespaced identifier literal "[namespace:]name". Both
// parts follow the identifier rules: a letter or '_' first, then
// letters, digits, '_' or '-'.
type NSID struct {
	Namespace string
	Name      string
}

// ParseNSID parses a namespaced identifier. A malformed part is a
// ScanError (no source location).
func ParseNSID(s string) (NSID, error) {
	var n NSID
	name := s
	if i := strings.IndexByte(s, ':'); i >= 0 {
		n.Namespace = s[:i]
		name = s[i+1:]
		if !isIdentifier(n.Namespace) {
			return NSID{}, &ScanError{Msg: fmt.Sprintf("invalid namespace %q", n.Namespace), Pos: NoPosition}
		}
	}
	if !isIdentifier(name) {
		return NSID{}, &ScanError{Msg: fmt.Sprintf("invalid identifier %q", name), Pos: NoPosition}
	}
	n.Name = name
	return n, nil
}

// String returns "namespace:name", or just the name when the namespace
// is empty.
func (n NSID) String() string {
	if n.Namespace == "" {
		return n.Name
	}
	return n.Namespace + ":" + n.Name
}

// isIdentifier reports whether s is a valid identifier.
func isIdentifier(s string) bool {
	for i, r := range s {
		if i == 0 {
			if !unicode.IsLetter(r) && r != '_' {
				return false
			}
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' {
			return false
		}
	}
	return s != ""
}
