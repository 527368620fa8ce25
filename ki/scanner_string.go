package ki

import (
	"fmt"
	"strings"
)

// NextString parses a string literal at the current position. A leading
// '@' marks the literal as raw (no escape resolution) and is consumed
// but not emitted. `"""` opens a block string, `"` a simple string; any
// other lead rune is a malformed-literal ScanError. Every malformed or
// unterminated literal is fatal to this call: there is no retry, partial
// recovery, or backtracking between raw/non-raw or block/simple branches
// once chosen.
func (s *Scanner) NextString() (string, error) {
	raw := false
	if s.PeekChar() == '@' {
		raw = true
		s.SkipChar()
	}
	if s.PeekChars(3) == `"""` {
		return s.nextBlockString(raw)
	}
	if s.PeekChar() != '"' {
		return "", &ScanError{
			Msg: fmt.Sprintf("malformed string literal: expected '\"', got %q", s.PeekChar()),
			Pos: s.Pos(),
		}
	}
	return s.nextSimpleString(raw)
}

// nextSimpleString parses a `"`-delimited string. Non-raw literals run a
// NORMAL/ESCAPED two-state machine; raw literals copy every rune,
// including backslashes, verbatim until the next '"'.
func (s *Scanner) nextSimpleString(raw bool) (string, error) {
	s.SkipChar() // opening "

	var sb strings.Builder
	escaped := false
	for {
		ch := s.NextChar()
		if ch == NUL {
			return "", &ScanError{Msg: "unterminated string literal", Pos: s.Pos()}
		}

		if raw {
			if ch == '"' {
				return sb.String(), nil
			}
			sb.WriteRune(ch)
			continue
		}

		if escaped {
			r, ok := unescapeRune(ch)
			if !ok {
				return "", &ScanError{
					Msg: fmt.Sprintf("invalid escape \\%c in string literal", ch),
					Pos: s.Pos(),
				}
			}
			sb.WriteRune(r)
			escaped = false
			continue
		}

		switch ch {
		case '\\':
			escaped = true
		case '"':
			return sb.String(), nil
		default:
			sb.WriteRune(ch)
		}
	}
}

// nextBlockString parses a `"""`-delimited block string: everything up
// to the next literal `"""` is captured, dedented against the closing
// line, and (unless raw) escape-resolved over the final joined text, so
// escapes may span originally separate lines.
func (s *Scanner) nextBlockString(raw bool) (string, error) {
	start := s.Pos()
	s.SkipChars(3) // opening """

	end := -1
	for i := s.pos; i+3 <= len(s.buf); i++ {
		if s.buf[i] == '"' && s.buf[i+1] == '"' && s.buf[i+2] == '"' {
			end = i
			break
		}
	}
	if end < 0 {
		return "", &ScanError{Msg: "unterminated block string", Pos: start}
	}

	body := string(s.buf[s.pos:end])
	s.SkipChars(end + 3 - s.pos) // body plus closing """

	text := dedent(body)
	if raw {
		return text, nil
	}
	resolved, err := resolveEscapes(text, start)
	if err != nil {
		return "", err
	}
	return resolved, nil
}

// dedent strips the common indent of a block-string body. The body is
// split on '\n'; a leading empty line is dropped; the LAST line is the
// indent template. A blank template (including empty) is removed and
// stripped as an exact prefix from each remaining line that starts with
// it; a non-blank last line is not an indent marker and stays in the
// content unmodified. Lines that do not start with the template pass
// through unchanged rather than erroring, which gives heredoc
// ergonomics: the closing-quote line's leading whitespace defines the
// indent to remove. Dedent is idempotent.
func dedent(body string) string {
	lines := strings.Split(body, "\n")
	if len(lines) > 1 && lines[0] == "" {
		lines = lines[1:]
	}
	if len(lines) == 1 {
		return lines[0]
	}

	template := lines[len(lines)-1]
	if strings.TrimSpace(template) == "" {
		lines = lines[:len(lines)-1]
		for i, ln := range lines {
			lines[i] = strings.TrimPrefix(ln, template)
		}
	}
	return strings.Join(lines, "\n")
}

// ============================================================
// Escape Resolution
// ============================================================

// unescapeRune maps an escape designator to its rune.
func unescapeRune(ch rune) (rune, bool) {
	switch ch {
	case 't':
		return '\t', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case '\\':
		return '\\', true
	case '"':
		return '"', true
	default:
		return 0, false
	}
}

// resolveEscapes resolves backslash escapes over text. pos locates the
// enclosing literal for error reporting.
func resolveEscapes(text string, pos Position) (string, error) {
	if !strings.ContainsRune(text, '\\') {
		return text, nil
	}

	var sb strings.Builder
	escaped := false
	for _, ch := range text {
		if !escaped {
			if ch == '\\' {
				escaped = true
			} else {
				sb.WriteRune(ch)
			}
			continue
		}
		r, ok := unescapeRune(ch)
		if !ok {
			return "", &ScanError{
				Msg: fmt.Sprintf("invalid escape \\%c in block string", ch),
				Pos: pos,
			}
		}
		sb.WriteRune(r)
		escaped = false
	}
	if escaped {
		return "", &ScanError{Msg: "dangling escape at end of block string", Pos: pos}
	}
	return sb.String(), nil
}

// ResolveEscapes resolves the supported backslash escapes (\t \n \r \\
// \") in text. It is the inverse of Escape.
func ResolveEscapes(text string) (string, error) {
	return resolveEscapes(text, NoPosition)
}

// Escape replaces every escapable rune in text with its backslash
// escape sequence, such that ResolveEscapes(Escape(s)) == s.
func Escape(text string) string {
	var sb strings.Builder
	for _, ch := range text {
		switch ch {
		case '\t':
			sb.WriteString(`\t`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		default:
			sb.WriteRune(ch)
		}
	}
	return sb.String()
}
