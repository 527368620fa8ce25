package ki

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// decCtx is the shared decimal arithmetic context: 34 significant
// digits, the IEEE decimal128 precision.
var decCtx = apd.BaseContext.WithPrecision(34)

// Kind identifies one of the five closed numeric representations a
// literal value can carry.
type Kind uint8

const (
	KindI32 Kind = iota
	KindI64
	KindF32
	KindF64
	KindDec
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindI32:
		return "int32"
	case KindI64:
		return "int64"
	case KindF32:
		return "float32"
	case KindF64:
		return "float64"
	case KindDec:
		return "decimal"
	default:
		return "unknown"
	}
}

// Suffix returns the literal suffix emitted for this kind. Only int64,
// float64 and float32 carry a suffix; int32 and decimal format bare.
func (k Kind) Suffix() string {
	switch k {
	case KindI64:
		return ":L"
	case KindF64:
		return ":d"
	case KindF32:
		return ":f"
	default:
		return ""
	}
}

// KindForSuffix maps a literal representation suffix to its kind. The
// empty suffix selects decimal, the default representation for
// un-suffixed numerals.
func KindForSuffix(suffix string) (Kind, bool) {
	switch suffix {
	case "":
		return KindDec, true
	case "L":
		return KindI64, true
	case "d":
		return KindF64, true
	case "f":
		return KindF32, true
	case "i":
		return KindI32, true
	default:
		return 0, false
	}
}

// promotion is the closed kind × kind → result kind table. The rank
// order is decimal > float64 > float32 > int64 > int32; the wider
// operand's domain wins.
var promotion = [5][5]Kind{
	KindI32: {KindI32: KindI32, KindI64: KindI64, KindF32: KindF32, KindF64: KindF64, KindDec: KindDec},
	KindI64: {KindI32: KindI64, KindI64: KindI64, KindF32: KindF32, KindF64: KindF64, KindDec: KindDec},
	KindF32: {KindI32: KindF32, KindI64: KindF32, KindF32: KindF32, KindF64: KindF64, KindDec: KindDec},
	KindF64: {KindI32: KindF64, KindI64: KindF64, KindF32: KindF64, KindF64: KindF64, KindDec: KindDec},
	KindDec: {KindI32: KindDec, KindI64: KindDec, KindF32: KindDec, KindF64: KindDec, KindDec: KindDec},
}

// Promote returns the result kind for combining a and b.
func Promote(a, b Kind) Kind {
	return promotion[a][b]
}

// Number is a tagged union over the five numeric representations.
// Numbers are immutable; operations return new instances.
type Number struct {
	kind Kind
	i    int64
	f    float64
	d    *apd.Decimal
}

// Int32 creates an int32 number.
func Int32(v int32) Number { return Number{kind: KindI32, i: int64(v)} }

// Int64 creates an int64 number.
func Int64(v int64) Number { return Number{kind: KindI64, i: v} }

// Float32 creates a float32 number.
func Float32(v float32) Number { return Number{kind: KindF32, f: float64(v)} }

// Float64 creates a float64 number.
func Float64(v float64) Number { return Number{kind: KindF64, f: v} }

// Decimal creates a decimal number. The decimal is not copied; callers
// must not mutate it afterwards.
func Decimal(d *apd.Decimal) Number { return Number{kind: KindDec, d: d} }

// ParseNumber parses a numeral in the given representation. Underscore
// group separators are stripped before parsing.
func ParseNumber(numeral string, kind Kind) (Number, error) {
	numeral = strings.ReplaceAll(numeral, "_", "")
	if numeral == "" {
		return Number{}, &NumericFormatError{Msg: "empty numeral"}
	}
	switch kind {
	case KindI32:
		v, err := strconv.ParseInt(numeral, 10, 32)
		if err != nil {
			return Number{}, &NumericFormatError{Msg: fmt.Sprintf("invalid int32 numeral %q", numeral), Err: err}
		}
		return Int32(int32(v)), nil
	case KindI64:
		v, err := strconv.ParseInt(numeral, 10, 64)
		if err != nil {
			return Number{}, &NumericFormatError{Msg: fmt.Sprintf("invalid int64 numeral %q", numeral), Err: err}
		}
		return Int64(v), nil
	case KindF32:
		v, err := strconv.ParseFloat(numeral, 32)
		if err != nil {
			return Number{}, &NumericFormatError{Msg: fmt.Sprintf("invalid float32 numeral %q", numeral), Err: err}
		}
		return Float32(float32(v)), nil
	case KindF64:
		v, err := strconv.ParseFloat(numeral, 64)
		if err != nil {
			return Number{}, &NumericFormatError{Msg: fmt.Sprintf("invalid float64 numeral %q", numeral), Err: err}
		}
		return Float64(v), nil
	case KindDec:
		d, _, err := new(apd.Decimal).SetString(numeral)
		if err != nil {
			return Number{}, &NumericFormatError{Msg: fmt.Sprintf("invalid decimal numeral %q", numeral), Err: err}
		}
		return Decimal(d), nil
	default:
		return Number{}, &NumericFormatError{Msg: fmt.Sprintf("unknown numeric kind %d", kind)}
	}
}

// Kind returns the representation tag.
func (n Number) Kind() Kind { return n.kind }

// IsZero reports whether the value is numerically zero.
func (n Number) IsZero() bool {
	switch n.kind {
	case KindI32, KindI64:
		return n.i == 0
	case KindF32, KindF64:
		return n.f == 0
	default:
		return n.d.IsZero()
	}
}

// float returns the value as float64, regardless of representation.
func (n Number) float() float64 {
	switch n.kind {
	case KindI32, KindI64:
		return float64(n.i)
	case KindF32, KindF64:
		return n.f
	default:
		f, _ := n.d.Float64()
		return f
	}
}

// decimal returns the value as a fresh decimal, regardless of
// representation.
func (n Number) decimal() *apd.Decimal {
	switch n.kind {
	case KindI32, KindI64:
		return new(apd.Decimal).SetInt64(n.i)
	case KindF32, KindF64:
		d, _ := new(apd.Decimal).SetFloat64(n.f)
		return d
	default:
		return new(apd.Decimal).Set(n.d)
	}
}

// ToDecimal returns the value promoted to the decimal representation.
func (n Number) ToDecimal() Number {
	if n.kind == KindDec {
		return n
	}
	return Decimal(n.decimal())
}

// binary operator selectors for binop.
const (
	opAdd = '+'
	opSub = '-'
	opMul = '*'
	opDiv = '/'
	opMod = '%'
)

// binop combines n and o under the promotion lattice: same kind stays,
// any decimal operand promotes the result to decimal, integers mixed
// with floats take the float's kind.
func (n Number) binop(o Number, op byte) (Number, error) {
	switch k := Promote(n.kind, o.kind); k {
	case KindI32, KindI64:
		a, b := n.i, o.i
		var r int64
		switch op {
		case opAdd:
			r = a + b
		case opSub:
			r = a - b
		case opMul:
			r = a * b
		case opDiv, opMod:
			if b == 0 {
				return Number{}, &NumericFormatError{Msg: "division by zero"}
			}
			if op == opDiv {
				r = a / b
			} else {
				r = a % b
			}
		}
		if k == KindI32 {
			return Int32(int32(r)), nil
		}
		return Int64(r), nil

	case KindF32:
		a, b := float32(n.float()), float32(o.float())
		var r float32
		switch op {
		case opAdd:
			r = a + b
		case opSub:
			r = a - b
		case opMul:
			r = a * b
		case opDiv:
			r = a / b
		case opMod:
			r = float32(math.Mod(float64(a), float64(b)))
		}
		return Float32(r), nil

	case KindF64:
		a, b := n.float(), o.float()
		var r float64
		switch op {
		case opAdd:
			r = a + b
		case opSub:
			r = a - b
		case opMul:
			r = a * b
		case opDiv:
			r = a / b
		case opMod:
			r = math.Mod(a, b)
		}
		return Float64(r), nil

	default:
		a, b := n.decimal(), o.decimal()
		r := new(apd.Decimal)
		var err error
		switch op {
		case opAdd:
			_, err = decCtx.Add(r, a, b)
		case opSub:
			_, err = decCtx.Sub(r, a, b)
		case opMul:
			_, err = decCtx.Mul(r, a, b)
		case opDiv:
			_, err = decCtx.Quo(r, a, b)
		case opMod:
			_, err = decCtx.Rem(r, a, b)
		}
		if err != nil {
			return Number{}, &NumericFormatError{Msg: "decimal arithmetic failed", Err: err}
		}
		return Decimal(r), nil
	}
}

// Add returns n + o.
func (n Number) Add(o Number) (Number, error) { return n.binop(o, opAdd) }

// Sub returns n - o.
func (n Number) Sub(o Number) (Number, error) { return n.binop(o, opSub) }

// Mul returns n × o.
func (n Number) Mul(o Number) (Number, error) { return n.binop(o, opMul) }

// Div returns n ÷ o.
func (n Number) Div(o Number) (Number, error) { return n.binop(o, opDiv) }

// Mod returns n mod o.
func (n Number) Mod(o Number) (Number, error) { return n.binop(o, opMod) }

// Cmp compares n and o in the wider operand's domain. Returns -1, 0
// or 1.
func (n Number) Cmp(o Number) int {
	switch Promote(n.kind, o.kind) {
	case KindI32, KindI64:
		switch {
		case n.i < o.i:
			return -1
		case n.i > o.i:
			return 1
		default:
			return 0
		}
	case KindF32:
		a, b := float32(n.float()), float32(o.float())
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	case KindF64:
		a, b := n.float(), o.float()
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	default:
		return n.decimal().Cmp(o.decimal())
	}
}

// String returns the canonical numeral: integers in base 10, floats in
// shortest round-trip non-exponent form, decimals with trailing zeros
// stripped.
func (n Number) String() string {
	switch n.kind {
	case KindI32, KindI64:
		return strconv.FormatInt(n.i, 10)
	case KindF32:
		return strconv.FormatFloat(n.f, 'f', -1, 32)
	case KindF64:
		return strconv.FormatFloat(n.f, 'f', -1, 64)
	default:
		var r apd.Decimal
		r.Reduce(n.d)
		return r.Text('f')
	}
}
