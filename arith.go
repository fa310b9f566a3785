package bitnum

// This file contains the digit-level routines shared by every operation on
// Uint. Digit slices are always most-significant first. None of these
// functions write to their inputs; each returns a freshly allocated slice, so
// callers may pass the same slice as both operands.

// TrimLeadingZeros returns the digits of d starting at the first 1. If every
// digit is 0 (or d is empty), a single 0 digit is returned. The result never
// shares storage with d.
//
// TrimLeadingZeros is idempotent.
func TrimLeadingZeros(d []bool) []bool {
	if len(d) == 0 {
		return []bool{false}
	}
	lead := 0
	for lead < len(d)-1 && !d[lead] {
		lead++
	}
	out := make([]bool, len(d)-lead)
	copy(out, d[lead:])
	return out
}

// alignTo right-aligns d in a buffer of exactly width digits. A shorter d is
// zero-extended on its most-significant side; a longer d loses its high
// digits.
func alignTo(d []bool, width int) []bool {
	out := make([]bool, width)
	if len(d) >= width {
		copy(out, d[len(d)-width:])
	} else {
		copy(out[width-len(d):], d)
	}
	return out
}

func maxWidth(a, b []bool) int {
	if len(a) > len(b) {
		return len(a)
	}
	return len(b)
}

// combine zero-extends a and b to the wider of the two and applies fn to each
// pair of digits.
func combine(a, b []bool, fn func(x, y bool) bool) []bool {
	w := maxWidth(a, b)
	x, y := alignTo(a, w), alignTo(b, w)
	for i := range x {
		x[i] = fn(x[i], y[i])
	}
	return x
}

func andDigit(x, y bool) bool { return x && y }
func orDigit(x, y bool) bool  { return x || y }
func xorDigit(x, y bool) bool { return x != y }

// ripple runs a ripple-carry chain over two digit slices of equal width, from
// the least- to the most-significant digit. The sum has the same width as the
// operands; the final carry is returned separately.
func ripple(a, b []bool, carry bool) (sum []bool, carryOut bool) {
	sum = make([]bool, len(a))
	for i := len(a) - 1; i >= 0; i-- {
		x, y := a[i], b[i]
		sum[i] = x != y != carry
		carry = (x && y) || (x && carry) || (y && carry)
	}
	return sum, carry
}

// addDigits returns a+b at the wider operand's width, growing by one leading
// digit only when the carry-out is set.
func addDigits(a, b []bool) []bool {
	w := maxWidth(a, b)
	sum, carry := ripple(alignTo(a, w), alignTo(b, w), false)
	if !carry {
		return sum
	}
	out := make([]bool, w+1)
	out[0] = true
	copy(out[1:], sum)
	return out
}

func flip(d []bool) []bool {
	out := make([]bool, len(d))
	for i, v := range d {
		out[i] = !v
	}
	return out
}

// negateDigits returns the two's-complement of d within d's own width: every
// digit is flipped and one is added. The carry-out of the increment is
// dropped, so the result has exactly len(d) digits and the negation of zero
// is zero.
func negateDigits(d []bool) []bool {
	one := alignTo([]bool{true}, len(d))
	sum, _ := ripple(flip(d), one, false)
	return sum
}

// subDigits computes a-b by adding the two's-complement of b to a at the
// wider operand's width. Flipping b and feeding 1 into the carry chain is
// the same as adding the negation, but also covers b == 0, whose negation
// would otherwise need one more digit than the operands have.
//
// A carry-out of 0 means b > a. The result saturates to zero in that case.
func subDigits(a, b []bool) []bool {
	w := maxWidth(a, b)
	diff, carry := ripple(alignTo(a, w), flip(alignTo(b, w)), true)
	if !carry {
		return []bool{false}
	}
	return TrimLeadingZeros(diff)
}

// shiftLeft appends n zero digits to the least-significant end of d.
func shiftLeft(d []bool, n uint) []bool {
	out := make([]bool, len(d)+int(n))
	copy(out, d)
	return out
}

// mulDigits is long multiplication by shift-and-add. The product of a w1-digit
// and a w2-digit value always fits in w1+w2 digits, so the running product is
// accumulated in a buffer of that width and the carry-out can never be set.
func mulDigits(a, b []bool) []bool {
	w := len(a) + len(b)
	product := make([]bool, w)
	for i := 0; i < len(b); i++ {
		if !b[len(b)-1-i] {
			continue
		}
		product, _ = ripple(product, alignTo(shiftLeft(a, uint(i)), w), false)
	}
	return TrimLeadingZeros(product)
}

// leadingZeros counts the zero digits before the first 1. For an all-zero
// slice, this is len(d).
func leadingZeros(d []bool) int {
	for i, v := range d {
		if v {
			return i
		}
	}
	return len(d)
}

// fold reconstructs a native integer from d, most-significant digit first.
// Digits beyond the 64th from the right are shifted out, so wider values wrap.
func fold(d []bool) (v uint64) {
	for _, b := range d {
		v <<= 1
		if b {
			v |= 1
		}
	}
	return v
}
