package ki

import "fmt"

// Position represents a source location. Line and Column are 0-based.
type Position struct {
	Line   int
	Column int
	Offset int
}

// String returns position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// NoPosition marks an error without a known source location.
var NoPosition = Position{Line: -1, Column: -1, Offset: -1}

// ScanError reports a malformed or unterminated literal. It is fatal to
// the token parse that raised it.
type ScanError struct {
	Msg string
	Pos Position
	Err error
}

func (e *ScanError) Error() string {
	if e.Pos.Line < 0 {
		return "ki: " + e.Msg
	}
	return fmt.Sprintf("ki: %s at %s", e.Msg, e.Pos)
}

func (e *ScanError) Unwrap() error { return e.Err }

// NumericFormatError reports a bad numeral or representation suffix.
type NumericFormatError struct {
	Msg string
	Err error
}

func (e *NumericFormatError) Error() string { return "ki: " + e.Msg }

func (e *NumericFormatError) Unwrap() error { return e.Err }

// NoSuchUnitError reports a unit symbol absent from the registry.
type NoSuchUnitError struct {
	Symbol string
}

func (e *NoSuchUnitError) Error() string {
	return fmt.Sprintf("ki: no such unit %q", e.Symbol)
}

// IncompatibleDimensionError reports arithmetic, comparison or conversion
// across different dimensions. A and B name the offending units.
type IncompatibleDimensionError struct {
	A string
	B string
}

func (e *IncompatibleDimensionError) Error() string {
	return fmt.Sprintf("ki: incompatible units %s and %s", e.A, e.B)
}
