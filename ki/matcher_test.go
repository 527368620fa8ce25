package ki

import (
	"testing"
)

func TestLiteralMatcher(t *testing.T) {
	tests := []struct {
		name    string
		literal string
		input   string
		start   int
		want    int
	}{
		{"match at zero", "abc", "abcdef", 0, 3},
		{"match mid input", "cde", "abcdef", 2, 5},
		{"no match", "xyz", "abcdef", 0, -1},
		{"partial is no match", "abcdefg", "abcdef", 0, -1},
		{"empty literal matches empty", "", "abc", 1, 1},
		{"multibyte literal", "°C", "25°C", 2, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LiteralMatcher(tt.literal).Match([]rune(tt.input), tt.start)
			if got != tt.want {
				t.Errorf("Match = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCharsetMatcher(t *testing.T) {
	digits := CharsetMatcher("0123456789")

	tests := []struct {
		name  string
		input string
		start int
		want  int
	}{
		{"maximal run", "123abc", 0, 3},
		{"run to end", "99", 0, 2},
		{"zero chars is no match", "abc", 0, -1},
		{"start past digits", "12a34", 2, -1},
		{"resume inside", "12a34", 3, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := digits.Match([]rune(tt.input), tt.start)
			if got != tt.want {
				t.Errorf("Match = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRegexMatcher(t *testing.T) {
	m := MustRegexMatcher(`[a-z]+[0-9]*`)

	tests := []struct {
		name  string
		input string
		start int
		want  int
	}{
		{"anchored match", "abc123 rest", 0, 6},
		{"match at offset", "   xy9", 3, 6},
		{"not anchored at start", "123abc", 0, -1},
		{"empty input", "", 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Match([]rune(tt.input), tt.start)
			if got != tt.want {
				t.Errorf("Match = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRegexMatcher_RuneOffsets(t *testing.T) {
	// End offsets are rune counts, not byte counts.
	m := MustRegexMatcher(`°C`)
	got := m.Match([]rune("°Cx"), 0)
	if got != 2 {
		t.Errorf("Match = %d, want 2", got)
	}
}

func TestNewRegexMatcher_BadPattern(t *testing.T) {
	if _, err := NewRegexMatcher("("); err == nil {
		t.Fatal("expected error for unbalanced pattern")
	}
}

func TestFirstOfMatcher_FirstMatchWins(t *testing.T) {
	// Declaration order decides, not match length: the shorter literal
	// declared first wins over the longer one.
	m := FirstOfMatcher{
		LiteralMatcher("ab"),
		LiteralMatcher("abc"),
	}
	got := m.Match([]rune("abcd"), 0)
	if got != 2 {
		t.Errorf("Match = %d, want 2 (first sub-matcher, not longest)", got)
	}
}

func TestFirstOfMatcher_FallsThrough(t *testing.T) {
	m := FirstOfMatcher{
		LiteralMatcher("xy"),
		CharsetMatcher("0123456789"),
		LiteralMatcher("ab"),
	}

	tests := []struct {
		input string
		want  int
	}{
		{"xyz", 2},
		{"42ab", 2},
		{"abxy", 2},
		{"--", -1},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := m.Match([]rune(tt.input), 0); got != tt.want {
				t.Errorf("Match = %d, want %d", got, tt.want)
			}
		})
	}
}
