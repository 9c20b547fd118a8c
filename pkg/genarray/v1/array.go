// Package genarray is version 1 of the generic length array family.
//
// Lengths are decimal numerals rather than the binary typenum numerals of
// version 0:
//
//	Dec[Dec[Z, D4], D2] // 42
//
// The generated aliases N0..N4096 cover the common lengths.
package genarray

import (
	"errors"
	"fmt"

	"github.com/rawbytedev/asslice/internal/common"
)

// ErrLength is returned when From gets the wrong number of elements.
var ErrLength = errors.New("genarray/v1: length mismatch")

// Array holds exactly N elements of T. The zero value holds N zero
// elements. An Array must not be copied; go vet reports copies. Use
// Clone for an independent array.
type Array[T any, N Length] struct {
	noCopy common.NoCopy
	elems  []T
}

// New allocates an array of N zero elements.
func New[T any, N Length]() *Array[T, N] {
	return &Array[T, N]{elems: make([]T, LenOf[N]())}
}

// From copies elems into a new array. len(elems) must equal N.
func From[T any, N Length](elems []T) (*Array[T, N], error) {
	n := LenOf[N]()
	if len(elems) != n {
		return nil, fmt.Errorf("%w: got %d elements for length %d", ErrLength, len(elems), n)
	}
	a := New[T, N]()
	copy(a.elems, elems)
	return a, nil
}

func (a *Array[T, N]) Len() int { return LenOf[N]() }

// Elems returns the backing elements. Writes are visible in a.
func (a *Array[T, N]) Elems() []T {
	if a.elems == nil {
		a.elems = make([]T, LenOf[N]())
	}
	return a.elems
}

// Clone returns a new array holding a copy of a's elements.
func (a *Array[T, N]) Clone() *Array[T, N] {
	c := New[T, N]()
	copy(c.elems, a.Elems())
	return c
}
