package ki

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// Range is an interval literal over an ordered element type. Either end
// may be exclusive ("a<..b", "a..<b") or open/unbounded ("_..b",
// "a.._").
type Range[T cmp.Ordered] struct {
	Min          T
	Max          T
	MinOpen      bool
	MaxOpen      bool
	MinExclusive bool
	MaxExclusive bool
}

// Contains reports whether v lies within the range.
func (r Range[T]) Contains(v T) bool {
	if !r.MinOpen {
		if r.MinExclusive {
			if v <= r.Min {
				return false
			}
		} else if v < r.Min {
			return false
		}
	}
	if !r.MaxOpen {
		if r.MaxExclusive {
			if v >= r.Max {
				return false
			}
		} else if v > r.Max {
			return false
		}
	}
	return true
}

// String returns the canonical range literal.
func (r Range[T]) String() string {
	var sb strings.Builder
	if r.MinOpen {
		sb.WriteByte('_')
	} else {
		fmt.Fprint(&sb, r.Min)
		if r.MinExclusive {
			sb.WriteByte('<')
		}
	}
	sb.WriteString("..")
	if r.MaxOpen {
		sb.WriteByte('_')
	} else {
		if r.MaxExclusive {
			sb.WriteByte('<')
		}
		fmt.Fprint(&sb, r.Max)
	}
	return sb.String()
}

// ParseIntRange parses an integer range literal such as "1..5" or
// "0<.._".
func ParseIntRange(s string) (Range[int64], error) {
	return parseRange(s, func(p string) (int64, error) {
		return strconv.ParseInt(p, 10, 64)
	})
}

// ParseFloatRange parses a floating-point range literal such as
// "1.5..<2.5".
func ParseFloatRange(s string) (Range[float64], error) {
	return parseRange(s, func(p string) (float64, error) {
		return strconv.ParseFloat(p, 64)
	})
}

func parseRange[T cmp.Ordered](s string, parse func(string) (T, error)) (Range[T], error) {
	idx := strings.Index(s, "..")
	if idx < 0 {
		return Range[T]{}, &ScanError{Msg: fmt.Sprintf("malformed range %q: missing '..'", s), Pos: NoPosition}
	}
	left := strings.TrimSpace(s[:idx])
	right := strings.TrimSpace(s[idx+2:])

	var r Range[T]
	if strings.HasSuffix(left, "<") {
		r.MinExclusive = true
		left = strings.TrimSpace(left[:len(left)-1])
	}
	if strings.HasPrefix(right, "<") {
		r.MaxExclusive = true
		right = strings.TrimSpace(right[1:])
	}

	var err error
	if left == "_" {
		r.MinOpen = true
	} else if r.Min, err = parse(left); err != nil {
		return Range[T]{}, &NumericFormatError{Msg: fmt.Sprintf("invalid range endpoint %q", left), Err: err}
	}
	if right == "_" {
		r.MaxOpen = true
	} else if r.Max, err = parse(right); err != nil {
		return Range[T]{}, &NumericFormatError{Msg: fmt.Sprintf("invalid range endpoint %q", right), Err: err}
	}

	if r.MinOpen && r.MaxOpen {
		return Range[T]{}, &ScanError{Msg: fmt.Sprintf("range %q is open at both ends", s), Pos: NoPosition}
	}
	if !r.MinOpen && !r.MaxOpen && r.Min > r.Max {
		return Range[T]{}, &ScanError{Msg: fmt.Sprintf("range %q is empty: min exceeds max", s), Pos: NoPosition}
	}
	return r, nil
}
