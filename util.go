package bitnum

type RandSource interface {
	Uint64() uint64
}

// RandUint returns a Uint of exactly width digits drawn from source. The
// result is not trimmed, so it may have leading zeros. A width below 1 is
// treated as 1.
func RandUint(source RandSource, width int) *Uint {
	if width < 1 {
		width = 1
	}
	d := make([]bool, width)
	var word uint64
	for i := range d {
		if i%64 == 0 {
			word = source.Uint64()
		}
		d[i] = word&1 == 1
		word >>= 1
	}
	return &Uint{digits: d}
}

// Difference subtracts the smaller of a and b from the larger. Unlike Sub, it
// never saturates.
func Difference(a, b *Uint) *Uint {
	if a.Cmp(b) >= 0 {
		return Sub(a, b)
	}
	return Sub(b, a)
}

// Larger returns a copy of the larger of a and b. If they are equal, the copy
// is of a.
func Larger(a, b *Uint) *Uint {
	if a.Cmp(b) >= 0 {
		return a.Clone()
	}
	return b.Clone()
}

// Smaller returns a copy of the smaller of a and b. If they are equal, the
// copy is of a.
func Smaller(a, b *Uint) *Uint {
	if a.Cmp(b) <= 0 {
		return a.Clone()
	}
	return b.Clone()
}
