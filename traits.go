package asslice

import "github.com/rawbytedev/asslice/internal/common"

// AsSlice is something that can be seen as an immutable slice of T.
//
// The returned slice aliases the container's storage and always has the
// container's full length. Callers must not write through it.
type AsSlice[T any] interface {
	AsSlice() []T
}

// AsMutSlice is something that can be seen as a mutable slice of T.
// Writes through the returned slice are visible in the container.
type AsMutSlice[T any] interface {
	AsSlice[T]
	AsMutSlice() []T
}

// Defaulter builds a default valued instance of its own type. It is
// called on the zero value, so implementations must not read the receiver.
//
// Container shapes implement Defaulter to offer the default capacity
// capability: a right sized instance whose every element holds the
// element type's default value. Element types implement it, with a value
// or pointer receiver, to override the zero value as their default.
type Defaulter[C any] interface {
	Default() C
}

// Default returns a default valued instance of C. PC is inferred, so
// shapes whose Default has a pointer receiver qualify too:
//
//	g := asslice.Default[asslice.GenericArray[byte, typenum.U64]]()
func Default[C any, PC interface {
	*C
	Defaulter[C]
}]() C {
	var zero C
	return PC(&zero).Default()
}

// DefaultOf returns the default value of T: T's Default method when T
// or *T implements Defaulter[T], the zero value otherwise.
func DefaultOf[T any]() T {
	v, _ := defaultOf[T]()
	return v
}

func defaultOf[T any]() (T, bool) {
	var zero T
	if d, ok := any(zero).(Defaulter[T]); ok {
		return d.Default(), true
	}
	if d, ok := any(&zero).(Defaulter[T]); ok {
		return d.Default(), true
	}
	return zero, false
}

// FillDefault writes DefaultOf[T] into every slot of s.
func FillDefault[T any](s []T) {
	if len(s) == 0 {
		return
	}
	d, ok := defaultOf[T]()
	if !ok {
		clear(s)
		return
	}
	common.Fill(s, d)
}
