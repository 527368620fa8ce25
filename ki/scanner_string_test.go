package ki

import (
	"errors"
	"testing"
)

func TestNextString_Simple(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", `"hello"`, "hello"},
		{"empty", `""`, ""},
		{"escaped quote", `"say \"hi\""`, `say "hi"`},
		{"tab and newline", `"a\tb\nc"`, "a\tb\nc"},
		{"carriage return", `"a\rb"`, "a\rb"},
		{"escaped backslash", `"a\\b"`, `a\b`},
		{"unicode content", `"5µm and 2m²"`, "5µm and 2m²"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScanner(tt.input)
			got, err := s.NextString()
			if err != nil {
				t.Fatalf("NextString: %v", err)
			}
			if got != tt.want {
				t.Errorf("NextString = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNextString_Raw(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"backslashes verbatim", `@"a\tb"`, `a\tb`},
		{"trailing backslash", `@"c:\dir\"`, `c:\dir\`},
		{"would-be invalid escape", `@"\q"`, `\q`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScanner(tt.input)
			got, err := s.NextString()
			if err != nil {
				t.Fatalf("NextString: %v", err)
			}
			if got != tt.want {
				t.Errorf("NextString = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNextString_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unterminated", `"abc`},
		{"unterminated after escape", `"abc\`},
		{"invalid escape", `"a\qb"`},
		{"not a string", `hello`},
		{"lone at", `@`},
		{"unterminated raw", `@"abc`},
		{"unterminated block", `"""abc`},
		{"empty input", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScanner(tt.input)
			_, err := s.NextString()
			if err == nil {
				t.Fatal("expected error")
			}
			var se *ScanError
			if !errors.As(err, &se) {
				t.Fatalf("error type = %T, want *ScanError", err)
			}
		})
	}
}

func TestNextString_UnterminatedPosition(t *testing.T) {
	s := NewScanner("\"abc")
	_, err := s.NextString()
	var se *ScanError
	if !errors.As(err, &se) {
		t.Fatalf("error = %v, want *ScanError", err)
	}
	if se.Pos.Line != 0 {
		t.Errorf("Line = %d, want 0", se.Pos.Line)
	}
	if se.Pos.Offset != 4 {
		t.Errorf("Offset = %d, want 4", se.Pos.Offset)
	}
}

func TestNextString_Block(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"indent template stripped",
			"\"\"\"\n  line1\n  line2\n  \"\"\"",
			"line1\nline2",
		},
		{
			"single line",
			`"""hello"""`,
			"hello",
		},
		{
			"closing quote at column zero",
			"\"\"\"\n  a\n  b\n\"\"\"",
			"  a\n  b",
		},
		{
			"non-matching lines pass through",
			"\"\"\"\n  a\nb\n  \"\"\"",
			"a\nb",
		},
		{
			"non-blank last line kept",
			"\"\"\"\nline1\nline2\"\"\"",
			"line1\nline2",
		},
		{
			"escapes resolved after dedent",
			"\"\"\"\n  a\\tb\n  \"\"\"",
			"a\tb",
		},
		{
			"empty block",
			`""""""`,
			"",
		},
		{
			"embedded quotes",
			`"""say "hi" there"""`,
			`say "hi" there`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScanner(tt.input)
			got, err := s.NextString()
			if err != nil {
				t.Fatalf("NextString: %v", err)
			}
			if got != tt.want {
				t.Errorf("NextString = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNextString_RawBlock(t *testing.T) {
	s := NewScanner("@\"\"\"\n  a\\tb\n  \"\"\"")
	got, err := s.NextString()
	if err != nil {
		t.Fatalf("NextString: %v", err)
	}
	if got != `a\tb` {
		t.Errorf("NextString = %q, want %q", got, `a\tb`)
	}
}

func TestNextString_ConsumesLiteral(t *testing.T) {
	// The scanner stands just past the closing quote afterwards.
	s := NewScanner(`"ab" rest`)
	if _, err := s.NextString(); err != nil {
		t.Fatal(err)
	}
	if got := s.PeekChar(); got != ' ' {
		t.Errorf("PeekChar after literal = %q, want ' '", got)
	}
}

func TestDedent_Idempotent(t *testing.T) {
	bodies := []string{
		"\n  line1\n  line2\n  ",
		"\n\ta\n\tb\n\t",
		"\n  a\nb\n  ",
		"hello",
		"\nline1\nline2",
		"",
	}

	for _, body := range bodies {
		once := dedent(body)
		twice := dedent(once)
		if twice != once {
			t.Errorf("dedent not idempotent for %q: first %q, second %q", body, once, twice)
		}
	}
}

func TestEscapeRoundTrip(t *testing.T) {
	inputs := []string{
		"plain",
		"tab\there",
		"line\nbreak",
		"cr\rhere",
		`back\slash`,
		`quo"te`,
		"\t\n\r\\\"",
		"",
	}

	for _, in := range inputs {
		escaped := Escape(in)
		resolved, err := ResolveEscapes(escaped)
		if err != nil {
			t.Fatalf("ResolveEscapes(%q): %v", escaped, err)
		}
		if resolved != in {
			t.Errorf("round trip of %q: escaped %q, resolved %q", in, escaped, resolved)
		}
	}
}

func TestResolveEscapes_Invalid(t *testing.T) {
	if _, err := ResolveEscapes(`a\qb`); err == nil {
		t.Fatal("expected error for invalid escape")
	}
	if _, err := ResolveEscapes(`dangling\`); err == nil {
		t.Fatal("expected error for dangling escape")
	}
}
