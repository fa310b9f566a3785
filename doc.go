/*
Package bitnum provides Uint, an unsigned integer of unbounded width stored as
an explicit sequence of binary digits, most-significant digit first.

Unlike the fixed-width types in math/bits or a U128, a Uint has no word size.
Its width is the number of digits it currently holds, and operations grow or
shrink it according to simple rules:

	And       widest operand, then trimmed of leading zeros
	Or, Xor   widest operand
	Add       widest operand, plus one digit if the sum carries out
	Negate    the operand's own width (two's-complement within that width)
	Sub       trimmed; saturates to 0 when the subtrahend is larger
	Mul       trimmed
	Lsh       grows by the shift count

Operands of differing width are always right-aligned and the shorter one is
zero-extended.

Every operation comes in two forms. Methods mutate and return the receiver:

	u := bitnum.UintFrom64(5)
	u.Add(bitnum.UintFrom64(3))
	fmt.Println(u)
	// Output: 0b1000

Package functions of the same name leave their operands untouched and return
a new value:

	p := bitnum.Mul(bitnum.UintFrom64(6), bitnum.UintFrom64(7))
	fmt.Println(p.AsUint64())
	// Output: 42

Uint can be created from a variety of sources:

	UintFromInt(i int) (*Uint, error)
	UintFrom64(v uint64) *Uint
	UintFrom32(v uint32) *Uint
	UintFrom16(v uint16) *Uint
	UintFrom8(v uint8) *Uint
	UintFromBigInt(v *big.Int) (*Uint, error)
	UintFromString(s string) (*Uint, error)
	UintFromDigits(d []bool) *Uint

Conversions back to native integers (AsUint64, AsInt) wrap when the value is
wider than the native type. AsBigInt is always exact.

A Uint is not safe for concurrent mutation. Clone a value before handing it to
another goroutine.
*/
package bitnum
