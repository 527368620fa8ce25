package ki

import (
	"io"
	"strings"
)

// NUL is the sentinel rune returned by consuming and peeking operations
// once the input is exhausted.
const NUL rune = 0

// Scanner tokenizes raw text into literal components. It owns a fully
// buffered text, an absolute rune position and derived line/column
// counters (0-based). A Scanner is created once per parse and never
// reset; only consume and skip calls mutate it.
type Scanner struct {
	buf  []rune
	pos  int
	line int
	col  int
	last rune // previously consumed rune, NUL before the first consume
	cur  rune // rune at the current position, NUL when exhausted
}

// NewScanner creates a scanner over text.
func NewScanner(text string) *Scanner {
	s := &Scanner{buf: []rune(text)}
	if len(s.buf) > 0 {
		s.cur = s.buf[0]
	}
	return s
}

// NewScannerFromReader drains r to completion and scans the result.
// There is no streaming: the source is fully buffered before any
// scanning begins.
func NewScannerFromReader(r io.Reader) (*Scanner, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewScanner(string(text)), nil
}

// Pos returns the current source position.
func (s *Scanner) Pos() Position {
	return Position{Line: s.line, Column: s.col, Offset: s.pos}
}

// LastChar returns the previously consumed rune, or NUL if nothing has
// been consumed yet.
func (s *Scanner) LastChar() rune { return s.last }

// Remaining returns the number of unconsumed runes.
func (s *Scanner) Remaining() int { return len(s.buf) - s.pos }

// NextChar consumes and returns the rune at the current position, or NUL
// if the input is exhausted. Consuming '\n' increments the line counter
// and resets the column to 0.
func (s *Scanner) NextChar() rune {
	if s.pos >= len(s.buf) {
		return NUL
	}
	ch := s.buf[s.pos]
	s.pos++
	s.last = ch
	if ch == '\n' {
		s.line++
		s.col = 0
	} else {
		s.col++
	}
	if s.pos < len(s.buf) {
		s.cur = s.buf[s.pos]
	} else {
		s.cur = NUL
	}
	return ch
}

// PeekChar returns the rune at the current position without consuming
// it, or NUL if the input is exhausted.
func (s *Scanner) PeekChar() rune {
	return s.cur
}

// PeekChars returns up to n runes starting at the current position
// without consuming them. n is clamped to the remaining length.
func (s *Scanner) PeekChars(n int) string {
	if n > s.Remaining() {
		n = s.Remaining()
	}
	if n <= 0 {
		return ""
	}
	return string(s.buf[s.pos : s.pos+n])
}

// SkipChar consumes one rune without returning it. It is a no-op at
// end of input.
func (s *Scanner) SkipChar() {
	s.NextChar()
}

// SkipChars consumes up to n runes, stopping silently at end of input.
func (s *Scanner) SkipChars(n int) {
	for i := 0; i < n && s.pos < len(s.buf); i++ {
		s.NextChar()
	}
}

// Find returns the absolute offset of the next occurrence of r at or
// after the current position. The position does not move.
func (s *Scanner) Find(r rune) (int, bool) {
	for i := s.pos; i < len(s.buf); i++ {
		if s.buf[i] == r {
			return i, true
		}
	}
	return -1, false
}

// FindAny returns the absolute offset of the next occurrence of any rune
// in set at or after the current position. The position does not move.
func (s *Scanner) FindAny(set string) (int, bool) {
	for i := s.pos; i < len(s.buf); i++ {
		if strings.ContainsRune(set, s.buf[i]) {
			return i, true
		}
	}
	return -1, false
}

// Until consumes and returns the text strictly before the next
// occurrence of r, leaving the position just before r; r itself is not
// consumed. If r does not occur the position is unmoved and ok is
// false — not found is distinct from an empty match.
func (s *Scanner) Until(r rune) (string, bool) {
	i, ok := s.Find(r)
	if !ok {
		return "", false
	}
	text := string(s.buf[s.pos:i])
	s.SkipChars(i - s.pos)
	return text, true
}

// UntilAny is Until for a set of target runes.
func (s *Scanner) UntilAny(set string) (string, bool) {
	i, ok := s.FindAny(set)
	if !ok {
		return "", false
	}
	text := string(s.buf[s.pos:i])
	s.SkipChars(i - s.pos)
	return text, true
}

// NextWhiteSpace consumes a run of whitespace and returns it. Space, tab
// and carriage return are always consumed; CR is dropped and never part
// of the returned text. When newlineIsWS is true '\n' is consumed and
// included, otherwise '\n' terminates the run without being consumed.
func (s *Scanner) NextWhiteSpace(newlineIsWS bool) string {
	var sb strings.Builder
	for {
		switch ch := s.PeekChar(); {
		case ch == ' ' || ch == '\t':
			sb.WriteRune(ch)
			s.SkipChar()
		case ch == '\r':
			s.SkipChar()
		case ch == '\n' && newlineIsWS:
			sb.WriteRune(ch)
			s.SkipChar()
		default:
			return sb.String()
		}
	}
}

// NextMatch applies m at the current position. On success the matched
// text is consumed and returned; on no match the position is unmoved.
func (s *Scanner) NextMatch(m Matcher) (string, bool) {
	end := m.Match(s.buf, s.pos)
	if end < 0 {
		return "", false
	}
	text := string(s.buf[s.pos:end])
	s.SkipChars(end - s.pos)
	return text, true
}
