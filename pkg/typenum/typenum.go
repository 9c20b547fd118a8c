// Package typenum encodes unsigned integers as types.
//
// A numeral is built from bits, most significant first, on top of UTerm:
//
//	UInt[UInt[UInt[UTerm, B1], B0], B1] // 5
//
// Numerals are zero sized and only exist to carry a length through a type
// parameter. Leading zero bits are not canonical; use the generated U0..U4096
// aliases where possible.
package typenum

// Bit is a single binary digit, B0 or B1.
type Bit interface {
	Bit() uint
}

// B0 is the zero bit.
type B0 struct{}

func (B0) Bit() uint { return 0 }

// B1 is the one bit.
type B1 struct{}

func (B1) Bit() uint { return 1 }

// Unsigned is a type level unsigned integer.
type Unsigned interface {
	Uint() uint
}

// UTerm terminates a numeral. On its own it is zero.
type UTerm struct{}

func (UTerm) Uint() uint { return 0 }

// UInt appends the bit B to the numeral U, so its value is 2*U + B.
type UInt[U Unsigned, B Bit] struct{}

func (UInt[U, B]) Uint() uint {
	var u U
	var b B
	return u.Uint()<<1 | b.Bit()
}

// ToInt decodes N.
func ToInt[N Unsigned]() int {
	var n N
	return int(n.Uint())
}
