package ki

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Quantity pairs a numeric value with a unit as a single literal token.
// Quantities are immutable; operators return new instances.
type Quantity struct {
	Value Number
	Unit  *Unit
}

// NewQuantity constructs a quantity from a value and unit,
// unconditionally.
func NewQuantity(v Number, u *Unit) Quantity {
	return Quantity{Value: v, Unit: u}
}

// numeralMatcher recognizes the numeral part of a quantity literal:
// sign, digits, decimal point and '_' group separators. The first rune
// outside this set starts the unit symbol.
var numeralMatcher = CharsetMatcher("+-0123456789._")

// ParseQuantity parses a quantity literal
// "<numeral><unitSymbol>[:<suffix>]". The suffix :L/:d/:f/:i selects
// int64/float64/float32/int32; without a suffix the numeral parses as
// decimal. Underscores in the numeral are stripped before parsing.
func (r *UnitRegistry) ParseQuantity(s string) (Quantity, error) {
	body, kind := s, KindDec
	if i := strings.IndexByte(s, ':'); i >= 0 {
		body = s[:i]
		suffix := s[i+1:]
		// A bare colon is not the same as no suffix at all.
		k, ok := KindForSuffix(suffix)
		if suffix == "" || !ok {
			return Quantity{}, &NumericFormatError{Msg: fmt.Sprintf("invalid representation suffix %q in quantity literal %q", suffix, s)}
		}
		kind = k
	}

	sc := NewScanner(body)
	numeral, ok := sc.NextMatch(numeralMatcher)
	if !ok {
		return Quantity{}, &NumericFormatError{Msg: fmt.Sprintf("missing numeral in quantity literal %q", s)}
	}
	symbol := body[len(numeral):]
	if symbol == "" {
		return Quantity{}, &NoSuchUnitError{Symbol: symbol}
	}
	unit, found := r.Lookup(symbol)
	if !found {
		return Quantity{}, &NoSuchUnitError{Symbol: symbol}
	}

	value, err := ParseNumber(numeral, kind)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Value: value, Unit: unit}, nil
}

// ConvertTo converts the quantity to target, which must share the
// unit's dimension. Integer representations are preserved when the
// conversion multiplier is a whole number and otherwise promote to
// decimal; float representations multiply natively with no precision
// guard; decimals multiply as decimals. Offset units (Temperature) take
// the general offset-aware path and yield decimal.
func (q Quantity) ConvertTo(target *Unit) (Quantity, error) {
	if q.Unit.Dim != target.Dim {
		return Quantity{}, &IncompatibleDimensionError{A: q.Unit.Symbol, B: target.Symbol}
	}

	if !q.Unit.Offset.IsZero() || !target.Offset.IsZero() {
		v, err := q.Unit.ConvertValue(q.Value.decimal(), target)
		if err != nil {
			return Quantity{}, err
		}
		return Quantity{Value: Decimal(v), Unit: target}, nil
	}

	factor, err := q.Unit.FactorTo(target)
	if err != nil {
		return Quantity{}, err
	}

	switch q.Value.kind {
	case KindI32, KindI64:
		if isWholeDecimal(factor) {
			if m, err := factor.Int64(); err == nil {
				r := q.Value.i * m
				if q.Value.kind == KindI32 {
					return Quantity{Value: Int32(int32(r)), Unit: target}, nil
				}
				return Quantity{Value: Int64(r), Unit: target}, nil
			}
		}
		v := new(apd.Decimal)
		if _, err := decCtx.Mul(v, q.Value.decimal(), factor); err != nil {
			return Quantity{}, err
		}
		return Quantity{Value: Decimal(v), Unit: target}, nil

	case KindF32:
		f, _ := factor.Float64()
		return Quantity{Value: Float32(float32(q.Value.f) * float32(f)), Unit: target}, nil

	case KindF64:
		f, _ := factor.Float64()
		return Quantity{Value: Float64(q.Value.f * f), Unit: target}, nil

	default:
		v := new(apd.Decimal)
		if _, err := decCtx.Mul(v, q.Value.d, factor); err != nil {
			return Quantity{}, err
		}
		return Quantity{Value: Decimal(v), Unit: target}, nil
	}
}

// combine adds or subtracts two quantities of the same dimension. Both
// operands normalize to whichever unit has the smaller factor before
// combining: 2cm + 3mm = 23mm, never 2.3cm.
func (q Quantity) combine(o Quantity, op byte) (Quantity, error) {
	cmp, err := q.Unit.Compare(o.Unit)
	if err != nil {
		return Quantity{}, err
	}
	target := q.Unit
	if cmp > 0 {
		target = o.Unit
	}

	a, err := q.ConvertTo(target)
	if err != nil {
		return Quantity{}, err
	}
	b, err := o.ConvertTo(target)
	if err != nil {
		return Quantity{}, err
	}
	v, err := a.Value.binop(b.Value, op)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Value: v, Unit: target}, nil
}

// Add returns q + o in the finer-grained of the two units.
func (q Quantity) Add(o Quantity) (Quantity, error) { return q.combine(o, opAdd) }

// Sub returns q - o in the finer-grained of the two units.
func (q Quantity) Sub(o Quantity) (Quantity, error) { return q.combine(o, opSub) }

// scalar applies op between the value and a plain number, keeping the
// unit. Representation follows the promotion lattice.
func (q Quantity) scalar(n Number, op byte) (Quantity, error) {
	v, err := q.Value.binop(n, op)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Value: v, Unit: q.Unit}, nil
}

// AddScalar returns q + n.
func (q Quantity) AddScalar(n Number) (Quantity, error) { return q.scalar(n, opAdd) }

// SubScalar returns q - n.
func (q Quantity) SubScalar(n Number) (Quantity, error) { return q.scalar(n, opSub) }

// MulScalar returns q × n.
func (q Quantity) MulScalar(n Number) (Quantity, error) { return q.scalar(n, opMul) }

// DivScalar returns q ÷ n.
func (q Quantity) DivScalar(n Number) (Quantity, error) { return q.scalar(n, opDiv) }

// ModScalar returns q mod n.
func (q Quantity) ModScalar(n Number) (Quantity, error) { return q.scalar(n, opMod) }

// Equal reports strict literal equality: same unit, same representation
// kind and same canonical string form. 1m is not Equal to 100cm; use
// Equivalent for magnitude equality.
func (q Quantity) Equal(o Quantity) bool {
	return q.Unit.Symbol == o.Unit.Symbol &&
		q.Unit.Dim == o.Unit.Dim &&
		q.Value.kind == o.Value.kind &&
		q.String() == o.String()
}

// Equivalent normalizes both quantities to the dimension's base unit
// and compares magnitudes. Cross-dimension comparison is fatal.
func (q Quantity) Equivalent(o Quantity) (bool, error) {
	if q.Unit.Dim != o.Unit.Dim {
		return false, &IncompatibleDimensionError{A: q.Unit.Symbol, B: o.Unit.Symbol}
	}
	a, err := q.baseValue()
	if err != nil {
		return false, err
	}
	b, err := o.baseValue()
	if err != nil {
		return false, err
	}
	return a.Cmp(b) == 0, nil
}

// baseValue returns the magnitude in the dimension's base unit:
// (v + offset) × factor.
func (q Quantity) baseValue() (*apd.Decimal, error) {
	r := new(apd.Decimal)
	if _, err := decCtx.Add(r, q.Value.decimal(), q.Unit.Offset); err != nil {
		return nil, err
	}
	if _, err := decCtx.Mul(r, r, q.Unit.Factor); err != nil {
		return nil, err
	}
	return r, nil
}

// Cmp orders two quantities of the same dimension. The coarser-unit
// operand converts down to the finer unit, then values compare in the
// wider operand's numeric domain.
func (q Quantity) Cmp(o Quantity) (int, error) {
	cmp, err := q.Unit.Compare(o.Unit)
	if err != nil {
		return 0, err
	}
	target := q.Unit
	if cmp > 0 {
		target = o.Unit
	}
	a, err := q.ConvertTo(target)
	if err != nil {
		return 0, err
	}
	b, err := o.ConvertTo(target)
	if err != nil {
		return 0, err
	}
	return a.Value.Cmp(b.Value), nil
}

// String returns the canonical literal form
// <numeral><unitSymbol>[:suffix]. The suffix appears only for the
// int64, float64 and float32 representations; decimal numerals format
// with trailing zeros stripped.
func (q Quantity) String() string {
	return q.Value.String() + q.Unit.DisplaySymbol + q.Value.kind.Suffix()
}

// isWholeDecimal reports whether d has no fractional part.
func isWholeDecimal(d *apd.Decimal) bool {
	var integ, frac apd.Decimal
	d.Modf(&integ, &frac)
	return frac.IsZero()
}
