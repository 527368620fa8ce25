package ki

import (
	"errors"
	"testing"
)

func TestParseBlob(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", ".blob(SGVsbG8=)", "Hello"},
		{"empty", ".blob()", ""},
		{"binary", ".blob(AAEC/w==)", "\x00\x01\x02\xff"},
		{"wrapped payload", ".blob(SGVs\n  bG8=)", "Hello"},
		{"spaces in payload", ".blob(SGVs bG8=)", "Hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := ParseBlob(tt.input)
			if err != nil {
				t.Fatalf("ParseBlob: %v", err)
			}
			if string(b) != tt.want {
				t.Errorf("ParseBlob = %q, want %q", b, tt.want)
			}
		})
	}
}

func TestParseBlob_Errors(t *testing.T) {
	inputs := []string{
		"",
		"SGVsbG8=",
		".blob(SGVsbG8=",
		"blob(SGVsbG8=)",
		".blob(!!!)",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := ParseBlob(in)
			if err == nil {
				t.Fatal("expected error")
			}
			var se *ScanError
			if !errors.As(err, &se) {
				t.Errorf("error type = %T, want *ScanError", err)
			}
		})
	}
}

func TestBlob_RoundTrip(t *testing.T) {
	payloads := []string{"", "x", "Hello, world", "\x00\xff\x10"}

	for _, p := range payloads {
		b := Blob(p)
		back, err := ParseBlob(b.String())
		if err != nil {
			t.Fatalf("re-parse %q: %v", b.String(), err)
		}
		if !b.Equal(back) {
			t.Errorf("round trip of %q failed: got %q", p, back)
		}
	}
}
