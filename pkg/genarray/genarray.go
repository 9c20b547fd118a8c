// Package genarray provides arrays whose length is a typenum numeral.
package genarray

import (
	"errors"
	"fmt"

	"github.com/rawbytedev/asslice/internal/common"
	"github.com/rawbytedev/asslice/pkg/typenum"
)

// ErrLength is returned when a slice does not hold exactly N elements.
var ErrLength = errors.New("genarray: length mismatch")

// GenericArray holds exactly N elements of T.
//
// The zero value is ready to use and holds N zero elements; its storage
// is allocated on first access. A GenericArray must not be copied: copies
// would share storage. go vet reports copies; use Clone for an
// independent array.
type GenericArray[T any, N typenum.Unsigned] struct {
	noCopy common.NoCopy
	data   []T
}

// New returns an array of N zero elements.
func New[T any, N typenum.Unsigned]() GenericArray[T, N] {
	return GenericArray[T, N]{data: make([]T, typenum.ToInt[N]())}
}

// FromSlice copies s into a new array. len(s) must equal N.
func FromSlice[T any, N typenum.Unsigned](s []T) (GenericArray[T, N], error) {
	n := typenum.ToInt[N]()
	if len(s) != n {
		return GenericArray[T, N]{}, fmt.Errorf("%w: have %d, want %d", ErrLength, len(s), n)
	}
	data := make([]T, n)
	copy(data, s)
	return GenericArray[T, N]{data: data}, nil
}

func (g *GenericArray[T, N]) Len() int {
	return typenum.ToInt[N]()
}

// Slice returns the elements. The slice aliases g.
func (g *GenericArray[T, N]) Slice() []T {
	return g.init()
}

// SliceMut returns the elements for writing. The slice aliases g.
func (g *GenericArray[T, N]) SliceMut() []T {
	return g.init()
}

// Clone returns an array with its own copy of g's elements.
func (g *GenericArray[T, N]) Clone() GenericArray[T, N] {
	data := make([]T, typenum.ToInt[N]())
	copy(data, g.init())
	return GenericArray[T, N]{data: data}
}

func (g *GenericArray[T, N]) init() []T {
	if g.data == nil {
		g.data = make([]T, typenum.ToInt[N]())
	}
	return g.data
}
