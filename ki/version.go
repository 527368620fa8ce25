package ki

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a three-component version literal with an optional
// qualifier: "major.minor.micro[-qualifier[-number]]", e.g. "5.2.7",
// "2.0.0-beta-3".
type Version struct {
	Major           int
	Minor           int
	Micro           int
	Qualifier       string
	QualifierNumber int
}

// ParseVersion parses a version literal. Missing minor/micro components
// default to zero; a qualifier number must be positive; a malformed
// component is a NumericFormatError.
func ParseVersion(s string) (Version, error) {
	if s == "" {
		return Version{}, &NumericFormatError{Msg: "empty version literal"}
	}

	var v Version
	core := s
	if i := strings.IndexByte(s, '-'); i >= 0 {
		core = s[:i]
		rest := s[i+1:]
		if j := strings.IndexByte(rest, '-'); j >= 0 {
			v.Qualifier = rest[:j]
			n, err := strconv.Atoi(rest[j+1:])
			if err != nil || n < 1 {
				return Version{}, &NumericFormatError{Msg: fmt.Sprintf("invalid qualifier number in version %q", s), Err: err}
			}
			v.QualifierNumber = n
		} else {
			v.Qualifier = rest
		}
		if v.Qualifier == "" {
			return Version{}, &NumericFormatError{Msg: fmt.Sprintf("empty qualifier in version %q", s)}
		}
	}

	parts := strings.Split(core, ".")
	if len(parts) > 3 {
		return Version{}, &NumericFormatError{Msg: fmt.Sprintf("too many components in version %q", s)}
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Version{}, &NumericFormatError{Msg: fmt.Sprintf("invalid component %q in version %q", p, s), Err: err}
		}
		nums[i] = n
	}
	v.Major, v.Minor, v.Micro = nums[0], nums[1], nums[2]
	return v, nil
}

// String returns the canonical form, always with three numeric
// components.
func (v Version) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d.%d.%d", v.Major, v.Minor, v.Micro)
	if v.Qualifier != "" {
		sb.WriteByte('-')
		sb.WriteString(v.Qualifier)
		if v.QualifierNumber != 0 {
			fmt.Fprintf(&sb, "-%d", v.QualifierNumber)
		}
	}
	return sb.String()
}

// Compare orders versions. Numeric components compare first; a version
// without a qualifier sorts after one with a qualifier at the same
// numeric level (2.0.0 > 2.0.0-beta); qualifiers compare
// lexicographically, then by qualifier number.
func (v Version) Compare(o Version) int {
	if c := cmpInt(v.Major, o.Major); c != 0 {
		return c
	}
	if c := cmpInt(v.Minor, o.Minor); c != 0 {
		return c
	}
	if c := cmpInt(v.Micro, o.Micro); c != 0 {
		return c
	}
	switch {
	case v.Qualifier == "" && o.Qualifier == "":
		return 0
	case v.Qualifier == "":
		return 1
	case o.Qualifier == "":
		return -1
	}
	if c := strings.Compare(v.Qualifier, o.Qualifier); c != 0 {
		return c
	}
	return cmpInt(v.QualifierNumber, o.QualifierNumber)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
