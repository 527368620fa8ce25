package ki

import (
	"testing"
)

func TestParseIntRange(t *testing.T) {
	tests := []struct {
		input string
		want  Range[int64]
	}{
		{"1..5", Range[int64]{Min: 1, Max: 5}},
		{"-3..3", Range[int64]{Min: -3, Max: 3}},
		{"0<..10", Range[int64]{Min: 0, Max: 10, MinExclusive: true}},
		{"0..<10", Range[int64]{Min: 0, Max: 10, MaxExclusive: true}},
		{"0<..<10", Range[int64]{Min: 0, Max: 10, MinExclusive: true, MaxExclusive: true}},
		{"_..10", Range[int64]{Max: 10, MinOpen: true}},
		{"0.._", Range[int64]{Min: 0, MaxOpen: true}},
		{"0<.._", Range[int64]{Min: 0, MinExclusive: true, MaxOpen: true}},
		{"5..5", Range[int64]{Min: 5, Max: 5}},
		{"1 .. 5", Range[int64]{Min: 1, Max: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r, err := ParseIntRange(tt.input)
			if err != nil {
				t.Fatalf("ParseIntRange: %v", err)
			}
			if r != tt.want {
				t.Errorf("ParseIntRange = %+v, want %+v", r, tt.want)
			}
		})
	}
}

func TestParseFloatRange(t *testing.T) {
	r, err := ParseFloatRange("1.5..<2.5")
	if err != nil {
		t.Fatalf("ParseFloatRange: %v", err)
	}
	want := Range[float64]{Min: 1.5, Max: 2.5, MaxExclusive: true}
	if r != want {
		t.Errorf("ParseFloatRange = %+v, want %+v", r, want)
	}
}

func TestParseRange_Errors(t *testing.T) {
	inputs := []string{
		"",
		"1",
		"1...5",
		"a..b",
		"5..1",
		"_.._",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseIntRange(in); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestRange_Contains(t *testing.T) {
	tests := []struct {
		rng   string
		value int64
		want  bool
	}{
		{"1..5", 1, true},
		{"1..5", 5, true},
		{"1..5", 3, true},
		{"1..5", 0, false},
		{"1..5", 6, false},
		{"1<..5", 1, false},
		{"1<..5", 2, true},
		{"1..<5", 5, false},
		{"1..<5", 4, true},
		{"_..5", -1000, true},
		{"_..5", 6, false},
		{"5.._", 1000000, true},
		{"5.._", 4, false},
	}

	for _, tt := range tests {
		r, err := ParseIntRange(tt.rng)
		if err != nil {
			t.Fatalf("ParseIntRange(%q): %v", tt.rng, err)
		}
		if got := r.Contains(tt.value); got != tt.want {
			t.Errorf("%s Contains(%d) = %v, want %v", tt.rng, tt.value, got, tt.want)
		}
	}
}

func TestRange_String(t *testing.T) {
	// Canonical literals survive a parse/format round trip.
	inputs := []string{
		"1..5",
		"0<..10",
		"0..<10",
		"0<..<10",
		"_..10",
		"0.._",
	}

	for _, in := range inputs {
		r, err := ParseIntRange(in)
		if err != nil {
			t.Fatalf("ParseIntRange(%q): %v", in, err)
		}
		if got := r.String(); got != in {
			t.Errorf("String = %q, want %q", got, in)
		}
	}
}
