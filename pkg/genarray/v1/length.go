package genarray

// Digit is a single decimal digit, D0 to D9.
type Digit interface {
	Digit() int
}

type (
	D0 struct{}
	D1 struct{}
	D2 struct{}
	D3 struct{}
	D4 struct{}
	D5 struct{}
	D6 struct{}
	D7 struct{}
	D8 struct{}
	D9 struct{}
)

func (D0) Digit() int { return 0 }
func (D1) Digit() int { return 1 }
func (D2) Digit() int { return 2 }
func (D3) Digit() int { return 3 }
func (D4) Digit() int { return 4 }
func (D5) Digit() int { return 5 }
func (D6) Digit() int { return 6 }
func (D7) Digit() int { return 7 }
func (D8) Digit() int { return 8 }
func (D9) Digit() int { return 9 }

// Length is a type level array length.
type Length interface {
	Len() int
}

// Z is the empty numeral, zero.
type Z struct{}

func (Z) Len() int { return 0 }

// Dec appends the decimal digit D to H, so its value is 10*H + D.
type Dec[H Length, D Digit] struct{}

func (Dec[H, D]) Len() int {
	var h H
	var d D
	return h.Len()*10 + d.Digit()
}

// LenOf decodes N.
func LenOf[N Length]() int {
	var n N
	return n.Len()
}
