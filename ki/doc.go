// Package ki implements the foundational literal types of the Ki Data
// format: strings, versions, units and quantities, geographic points,
// ranges and namespaced identifiers.
//
// The package is built around two subsystems:
//
//   - A character-stream Scanner that tokenizes raw text into literal
//     components. It tracks absolute position plus line/column, skips
//     whitespace, and parses the four string-literal forms (quoted,
//     raw-quoted, triple-quoted block, raw triple-quoted block) with
//     indentation-stripping and backslash-escape resolution.
//
//   - A unit-of-measure engine: a dimension-tagged unit registry plus a
//     Quantity value performing dimension-safe conversion and arithmetic
//     across five numeric representations (32/64-bit integer, 32/64-bit
//     float, arbitrary-precision decimal).
//
// # String Literals
//
//	"quoted"        escapes \t \n \r \\ \"
//	@"raw"          no escapes, only " terminates
//	"""block"""     multi-line, dedented against the closing line
//	@"""raw"""      multi-line, no escapes
//
// # Quantities
//
//	5cm             decimal 5, centimetres
//	8.2kg           decimal 8.2, kilograms
//	23mm:L          int64 23, millimetres
//	1_500m:f        float32 1500, metres
//
// Conversion and arithmetic are dimension-checked:
//
//	reg := ki.NewUnitRegistry()
//	q, _ := reg.ParseQuantity("5cm")
//	mm, _ := reg.Lookup("mm")
//	r, _ := q.ConvertTo(mm) // 50mm
//
// # Error Model
//
// Every parse failure surfaces synchronously as a structured error
// (ScanError, NumericFormatError, NoSuchUnitError or
// IncompatibleDimensionError). There is no internal retry, partial
// result or silent default.
//
// All operations are synchronous and single-threaded. The UnitRegistry
// is populated once at startup and is safe for concurrent reads;
// registration after startup requires external synchronization.
package ki
