package bitnum

import (
	"fmt"
	"io"
	"math/big"
	"math/bits"
	"strings"
)

// Uint is an unsigned integer held as a sequence of binary digits, most
// significant first. The zero value is ready to use and represents 0.
//
// Methods that perform an operation (And, Add, Mul, ...) replace the
// receiver's digits with the result and return the receiver. The package
// functions of the same name return a new Uint and leave their operands
// alone.
type Uint struct {
	digits []bool
}

// UintFromInt creates a Uint holding i. A negative i is outside the unsigned
// domain and is rejected with an error wrapping ErrInvalidArgument.
func UintFromInt(i int) (*Uint, error) {
	if i < 0 {
		return nil, fmt.Errorf("%w: uint from negative int %d", ErrInvalidArgument, i)
	}
	return UintFrom64(uint64(i)), nil
}

// UintFrom64 creates a Uint holding v in the fewest digits that can hold it.
// Zero is a single 0 digit.
func UintFrom64(v uint64) *Uint {
	if v == 0 {
		return &Uint{digits: []bool{false}}
	}
	d := make([]bool, bits.Len64(v))
	for i := len(d) - 1; i >= 0; i-- {
		d[i] = v%2 == 1
		v >>= 1
	}
	return &Uint{digits: d}
}

func UintFrom32(v uint32) *Uint { return UintFrom64(uint64(v)) }
func UintFrom16(v uint16) *Uint { return UintFrom64(uint64(v)) }
func UintFrom8(v uint8) *Uint   { return UintFrom64(uint64(v)) }

// UintFromBigInt creates a Uint from a big.Int. Negative values are rejected
// with an error wrapping ErrInvalidArgument.
func UintFromBigInt(v *big.Int) (*Uint, error) {
	if v.Sign() < 0 {
		return nil, fmt.Errorf("%w: uint from negative big.Int %s", ErrInvalidArgument, v)
	}
	n := v.BitLen()
	if n == 0 {
		return new(Uint), nil
	}
	d := make([]bool, n)
	for i := range d {
		d[i] = v.Bit(n-1-i) == 1
	}
	return &Uint{digits: d}, nil
}

// UintFromString parses the format produced by String: an optional "0b" or
// "0B" prefix followed by one or more binary digits. Leading zeros are kept,
// so the result has exactly as many digits as were written.
func UintFromString(s string) (*Uint, error) {
	ds := s
	if strings.HasPrefix(ds, "0b") || strings.HasPrefix(ds, "0B") {
		ds = ds[2:]
	}
	if ds == "" {
		return nil, fmt.Errorf("%w: uint string %q has no digits", ErrInvalidArgument, s)
	}
	d := make([]bool, len(ds))
	for i := 0; i < len(ds); i++ {
		switch ds[i] {
		case '0':
		case '1':
			d[i] = true
		default:
			return nil, fmt.Errorf("%w: uint string %q invalid", ErrInvalidArgument, s)
		}
	}
	return &Uint{digits: d}, nil
}

// UintFromDigits creates a Uint from a copy of d, most-significant digit
// first. An empty d yields 0.
func UintFromDigits(d []bool) *Uint {
	if len(d) == 0 {
		return new(Uint)
	}
	out := make([]bool, len(d))
	copy(out, d)
	return &Uint{digits: out}
}

// bits returns the receiver's digits, substituting a single 0 digit for the
// zero value. Callers must not write to the result.
func (u *Uint) bits() []bool {
	if len(u.digits) == 0 {
		return []bool{false}
	}
	return u.digits
}

// Clone returns a deep copy of u. The two values never share storage.
func (u *Uint) Clone() *Uint {
	return UintFromDigits(u.bits())
}

// Set copies v into u and returns u.
func (u *Uint) Set(v *Uint) *Uint {
	u.digits = UintFromDigits(v.bits()).digits
	return u
}

// Width returns the number of digits u currently holds. It is never less
// than 1.
func (u *Uint) Width() int { return len(u.bits()) }

// BitLen returns the number of digits needed to hold u's value without any
// leading zeros. The BitLen of 0 is 0, matching big.Int.
func (u *Uint) BitLen() int {
	d := u.bits()
	return len(d) - leadingZeros(d)
}

func (u *Uint) IsZero() bool { return u.BitLen() == 0 }

// Bit returns the value of the i'th digit counting from the least-significant
// end, starting at 0. Digits beyond the width of u are 0. Bit panics if i is
// negative.
func (u *Uint) Bit(i int) uint {
	if i < 0 {
		panic("bitnum: negative bit index")
	}
	d := u.bits()
	if i >= len(d) || !d[len(d)-1-i] {
		return 0
	}
	return 1
}

// Digits returns a copy of u's digits, most-significant first.
func (u *Uint) Digits() []bool {
	return UintFromDigits(u.bits()).digits
}

// Normalize trims u to its minimal width and returns u.
func (u *Uint) Normalize() *Uint {
	u.digits = TrimLeadingZeros(u.bits())
	return u
}

// AsUint64 folds u's digits into a uint64. Values wider than 64 digits keep
// only their low 64 digits; see IsUint64 if you want to check before you
// convert.
func (u *Uint) AsUint64() uint64 {
	return fold(u.bits())
}

// IsUint64 reports whether u can be represented as a uint64 without wrapping.
func (u *Uint) IsUint64() bool {
	return u.BitLen() <= 64
}

// AsInt converts u to an int using Go's conversion rules, so values that do
// not fit wrap around (and may come out negative).
func (u *Uint) AsInt() int {
	return int(u.AsUint64())
}

func (u *Uint) IntoBigInt(b *big.Int) {
	d := u.bits()
	b.SetInt64(0)
	for i, v := range d {
		if v {
			b.SetBit(b, len(d)-1-i, 1)
		}
	}
}

func (u *Uint) AsBigInt() *big.Int {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// String returns "0b" followed by exactly Width() digits.
func (u *Uint) String() string {
	d := u.bits()
	var sb strings.Builder
	sb.Grow(len(d) + 2)
	sb.WriteString("0b")
	writeDigits(&sb, d)
	return sb.String()
}

func writeDigits(w io.ByteWriter, d []bool) {
	for _, v := range d {
		if v {
			_ = w.WriteByte('1')
		} else {
			_ = w.WriteByte('0')
		}
	}
}

// Format implements fmt.Formatter. %s and %v print the same thing as String,
// %b prints the digits at the current width ('#' adds the "0b" prefix), and
// %d, %x, %X and %o format the value as big.Int would. Any other verb prints
// fmt's usual %!verb(...) error text.
func (u *Uint) Format(s fmt.State, c rune) {
	switch c {
	case 's', 'v':
		_, _ = io.WriteString(s, u.String())
	case 'b':
		var sb strings.Builder
		if s.Flag('#') {
			sb.WriteString("0b")
		}
		writeDigits(&sb, u.bits())
		_, _ = io.WriteString(s, sb.String())
	case 'd', 'x', 'X', 'o':
		u.AsBigInt().Format(s, c)
	default:
		_, _ = fmt.Fprintf(s, "%%!%c(bitnum.Uint=%s)", c, u.String())
	}
}

// Cmp compares the values of u and v regardless of width and returns:
//
//	-1 if u <  v
//	 0 if u == v
//	+1 if u >  v
func (u *Uint) Cmp(v *Uint) int {
	a, b := u.bits(), v.bits()
	w := maxWidth(a, b)
	a, b = alignTo(a, w), alignTo(b, w)
	for i := range a {
		if a[i] != b[i] {
			if a[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// Equal reports whether u and v hold the same value. Leading zeros are
// ignored; compare Width() as well if the representation matters.
func (u *Uint) Equal(v *Uint) bool { return u.Cmp(v) == 0 }

func (u *Uint) GreaterThan(v *Uint) bool      { return u.Cmp(v) > 0 }
func (u *Uint) GreaterOrEqualTo(v *Uint) bool { return u.Cmp(v) >= 0 }
func (u *Uint) LessThan(v *Uint) bool         { return u.Cmp(v) < 0 }
func (u *Uint) LessOrEqualTo(v *Uint) bool    { return u.Cmp(v) <= 0 }

// And sets u to u & v and returns u. The result is trimmed of leading zeros.
func (u *Uint) And(v *Uint) *Uint {
	u.digits = TrimLeadingZeros(combine(u.bits(), v.bits(), andDigit))
	return u
}

// Or sets u to u | v and returns u. The result is as wide as the wider
// operand.
func (u *Uint) Or(v *Uint) *Uint {
	u.digits = combine(u.bits(), v.bits(), orDigit)
	return u
}

// Xor sets u to u ^ v and returns u. The result is as wide as the wider
// operand, even when that leaves leading zeros.
func (u *Uint) Xor(v *Uint) *Uint {
	u.digits = combine(u.bits(), v.bits(), xorDigit)
	return u
}

// Add sets u to u + v and returns u. The result is as wide as the wider
// operand, plus one digit if the sum carried out of it. Add never overflows.
func (u *Uint) Add(v *Uint) *Uint {
	u.digits = addDigits(u.bits(), v.bits())
	return u
}

// Negate replaces u with its two's-complement within u's current width and
// returns u. The width is not changed, so the same value negated at two
// different widths gives two different results:
//
//	0b101   -> 0b011
//	0b00101 -> 0b11011
func (u *Uint) Negate() *Uint {
	u.digits = negateDigits(u.bits())
	return u
}

// Sub sets u to u - v and returns u. If v is larger than u, the true result
// is negative and cannot be represented; u is set to 0 instead. This is lossy:
// use Cmp first, or Difference, if the distinction matters.
func (u *Uint) Sub(v *Uint) *Uint {
	u.digits = subDigits(u.bits(), v.bits())
	return u
}

// Mul sets u to u * v and returns u. The result is trimmed of leading zeros.
func (u *Uint) Mul(v *Uint) *Uint {
	u.digits = mulDigits(u.bits(), v.bits())
	return u
}

// Lsh shifts u left by n digits and returns u. The width grows by n.
func (u *Uint) Lsh(n uint) *Uint {
	u.digits = shiftLeft(u.bits(), n)
	return u
}

func And(a, b *Uint) *Uint { return a.Clone().And(b) }
func Or(a, b *Uint) *Uint  { return a.Clone().Or(b) }
func Xor(a, b *Uint) *Uint { return a.Clone().Xor(b) }
func Add(a, b *Uint) *Uint { return a.Clone().Add(b) }
func Sub(a, b *Uint) *Uint { return a.Clone().Sub(b) }
func Mul(a, b *Uint) *Uint { return a.Clone().Mul(b) }

func Negate(a *Uint) *Uint      { return a.Clone().Negate() }
func Lsh(a *Uint, n uint) *Uint { return a.Clone().Lsh(n) }
