package ki

import (
	"github.com/cockroachdb/apd/v3"
)

// Dimension is the closed category of physical quantity controlling
// unit convertibility.
type Dimension uint8

const (
	Length Dimension = iota
	Mass
	Time
	Temperature
	SubstanceAmount
	Current
	Luminosity
	Area
	Volume
	Speed
	Density
	Dimensionless
	Currency
)

// String returns the dimension name.
func (d Dimension) String() string {
	switch d {
	case Length:
		return "Length"
	case Mass:
		return "Mass"
	case Time:
		return "Time"
	case Temperature:
		return "Temperature"
	case SubstanceAmount:
		return "SubstanceAmount"
	case Current:
		return "Current"
	case Luminosity:
		return "Luminosity"
	case Area:
		return "Area"
	case Volume:
		return "Volume"
	case Speed:
		return "Speed"
	case Density:
		return "Density"
	case Dimensionless:
		return "Dimensionless"
	case Currency:
		return "Currency"
	default:
		return "unknown"
	}
}

// Unit is a dimension-tagged unit of measure. Factor is the scale
// against the dimension's base unit; Offset is nonzero only for
// Temperature. Units are immutable and registered once; many Quantities
// share one Unit instance.
type Unit struct {
	Symbol        string
	DisplaySymbol string
	Dim           Dimension
	Factor        *apd.Decimal
	Offset        *apd.Decimal
}

// NewUnit creates a unit with the given factor (a decimal literal) and
// zero offset. It panics on a malformed factor; unit tables are built
// from constants at startup.
func NewUnit(symbol string, dim Dimension, factor string) *Unit {
	return NewOffsetUnit(symbol, dim, factor, "0")
}

// NewOffsetUnit creates a unit with an offset against the base unit,
// needed only for Temperature.
func NewOffsetUnit(symbol string, dim Dimension, factor, offset string) *Unit {
	return &Unit{
		Symbol:        symbol,
		DisplaySymbol: symbol,
		Dim:           dim,
		Factor:        mustDecimal(factor),
		Offset:        mustDecimal(offset),
	}
}

// String returns the canonical symbol.
func (u *Unit) String() string { return u.Symbol }

// IsBase reports whether this is the dimension's base unit
// (factor 1, offset 0).
func (u *Unit) IsBase() bool {
	return u.Factor.Cmp(decOne) == 0 && u.Offset.IsZero()
}

// FactorTo returns the multiplier converting values in u to values in
// target, computed as u.Factor / target.Factor at 34-significant-digit
// precision. The dimensions must match.
func (u *Unit) FactorTo(target *Unit) (*apd.Decimal, error) {
	if u.Dim != target.Dim {
		return nil, &IncompatibleDimensionError{A: u.Symbol, B: target.Symbol}
	}
	f := new(apd.Decimal)
	if _, err := decCtx.Quo(f, u.Factor, target.Factor); err != nil {
		return nil, err
	}
	return f, nil
}

// ConvertValue converts v from u to target using the general
// offset-aware form (v + u.Offset − target.Offset) × FactorTo(u,
// target). Outside Temperature both offsets are zero and this reduces
// to pure scaling.
func (u *Unit) ConvertValue(v *apd.Decimal, target *Unit) (*apd.Decimal, error) {
	factor, err := u.FactorTo(target)
	if err != nil {
		return nil, err
	}
	r := new(apd.Decimal)
	if _, err := decCtx.Add(r, v, u.Offset); err != nil {
		return nil, err
	}
	if _, err := decCtx.Sub(r, r, target.Offset); err != nil {
		return nil, err
	}
	if _, err := decCtx.Mul(r, r, factor); err != nil {
		return nil, err
	}
	return r, nil
}

// Compare orders units of the same dimension by ascending factor.
// Cross-dimension comparison is fatal.
func (u *Unit) Compare(other *Unit) (int, error) {
	if u.Dim != other.Dim {
		return 0, &IncompatibleDimensionError{A: u.Symbol, B: other.Symbol}
	}
	return u.Factor.Cmp(other.Factor), nil
}

// ============================================================
// Unit Registry
// ============================================================

// unitAliases normalizes accepted-on-input-only symbols to canonical
// ones: legacy symbols and ASCII digit exponents. Canonical symbols are
// never aliased back on output.
var unitAliases = map[string]string{
	"LT": "ℓ",
	"L":  "ℓ",
	"dL": "dℓ",
	"cL": "cℓ",
	"mL": "mℓ",
	"dC": "°C",
	"um": "µm",
	"us": "µs",

	"mm2": "mm²",
	"cm2": "cm²",
	"m2":  "m²",
	"km2": "km²",
	"mm3": "mm³",
	"cm3": "cm³",
	"m3":  "m³",
	"km3": "km³",
}

// normalizeSymbol resolves known aliases to the canonical symbol.
func normalizeSymbol(symbol string) string {
	if canonical, ok := unitAliases[symbol]; ok {
		return canonical
	}
	return symbol
}

// UnitRegistry is a process-lifetime symbol → Unit table keyed by
// canonical symbol. It is populated once at startup and thereafter
// read-mostly; concurrent reads are safe, but registration after
// startup must be externally synchronized.
type UnitRegistry struct {
	units map[string]*Unit
}

// NewUnitRegistry creates a registry populated with the standard unit
// table.
func NewUnitRegistry() *UnitRegistry {
	r := &UnitRegistry{units: make(map[string]*Unit)}
	for _, u := range standardUnits() {
		r.Register(u)
	}
	return r
}

// NewEmptyUnitRegistry creates a registry with no units.
func NewEmptyUnitRegistry() *UnitRegistry {
	return &UnitRegistry{units: make(map[string]*Unit)}
}

// Register inserts a unit keyed by its canonical symbol. Registration
// is idempotent: the last writer wins, duplicates are not an error.
func (r *UnitRegistry) Register(u *Unit) {
	if r.units == nil {
		r.units = make(map[string]*Unit)
	}
	r.units[u.Symbol] = u
}

// Lookup resolves a symbol, normalizing known aliases first. An unknown
// symbol is not an error; ok is false.
func (r *UnitRegistry) Lookup(symbol string) (*Unit, bool) {
	u, ok := r.units[normalizeSymbol(symbol)]
	return u, ok
}

// Len returns the number of registered units.
func (r *UnitRegistry) Len() int { return len(r.units) }

// standardUnits returns the built-in unit table. Base units (factor 1,
// offset 0) per dimension: m, kg, s, K, mol, A, cd, m², ℓ, km/h, kg/m³.
func standardUnits() []*Unit {
	return []*Unit{
		NewUnit("nm", Length, "0.000000001"),
		NewUnit("µm", Length, "0.000001"),
		NewUnit("mm", Length, "0.001"),
		NewUnit("cm", Length, "0.01"),
		NewUnit("dm", Length, "0.1"),
		NewUnit("m", Length, "1"),
		NewUnit("km", Length, "1000"),

		NewUnit("mg", Mass, "0.000001"),
		NewUnit("g", Mass, "0.001"),
		NewUnit("kg", Mass, "1"),
		NewUnit("t", Mass, "1000"),

		NewUnit("ns", Time, "0.000000001"),
		NewUnit("µs", Time, "0.000001"),
		NewUnit("ms", Time, "0.001"),
		NewUnit("s", Time, "1"),
		NewUnit("min", Time, "60"),
		NewUnit("h", Time, "3600"),

		NewUnit("K", Temperature, "1"),
		NewOffsetUnit("°C", Temperature, "1", "273.15"),

		NewUnit("mmol", SubstanceAmount, "0.001"),
		NewUnit("mol", SubstanceAmount, "1"),

		NewUnit("mA", Current, "0.001"),
		NewUnit("A", Current, "1"),

		NewUnit("cd", Luminosity, "1"),

		NewUnit("mm²", Area, "0.000001"),
		NewUnit("cm²", Area, "0.0001"),
		NewUnit("m²", Area, "1"),
		NewUnit("ha", Area, "10000"),
		NewUnit("km²", Area, "1000000"),

		NewUnit("mℓ", Volume, "0.001"),
		NewUnit("cℓ", Volume, "0.01"),
		NewUnit("dℓ", Volume, "0.1"),
		NewUnit("ℓ", Volume, "1"),
		NewUnit("mm³", Volume, "0.000001"),
		NewUnit("cm³", Volume, "0.001"),
		NewUnit("m³", Volume, "1000"),
		NewUnit("km³", Volume, "1000000000000"),

		NewUnit("km/h", Speed, "1"),
		NewUnit("mph", Speed, "1.609344"),
		NewUnit("m/s", Speed, "3.6"),

		NewUnit("kg/m³", Density, "1"),
		NewUnit("g/cm³", Density, "1000"),
	}
}

// Shared decimal constants.
var decOne = mustDecimal("1")

// mustDecimal parses a decimal constant, panicking on a bad literal.
func mustDecimal(s string) *apd.Decimal {
	d, _, err := new(apd.Decimal).SetString(s)
	if err != nil {
		panic("ki: bad decimal literal " + s)
	}
	return d
}
