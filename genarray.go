package asslice

import (
	"github.com/rawbytedev/asslice/internal/common"
	"github.com/rawbytedev/asslice/pkg/genarray"
	genarrayv1 "github.com/rawbytedev/asslice/pkg/genarray/v1"
	"github.com/rawbytedev/asslice/pkg/typenum"
)

// GenericArray adapts a genarray.GenericArray (binary typenum lengths).
//
// It refers to its array rather than holding the elements, so it must
// not be copied; go vet reports copies. Clone makes an independent
// array. The zero value owns a fresh array of N zero elements, allocated
// on first use.
type GenericArray[T any, N typenum.Unsigned] struct {
	noCopy common.NoCopy
	arr    *genarray.GenericArray[T, N]
}

// GenericRef wraps g. Views alias g's storage.
func GenericRef[T any, N typenum.Unsigned](g *genarray.GenericArray[T, N]) GenericArray[T, N] {
	return GenericArray[T, N]{arr: g}
}

// AsSlice returns the elements of the wrapped array.
func (g *GenericArray[T, N]) AsSlice() []T { return g.array().Slice() }

// AsMutSlice returns the elements of the wrapped array for writing.
func (g *GenericArray[T, N]) AsMutSlice() []T { return g.array().SliceMut() }

func (g *GenericArray[T, N]) Len() int { return typenum.ToInt[N]() }

// Inner returns the wrapped array.
func (g *GenericArray[T, N]) Inner() *genarray.GenericArray[T, N] { return g.array() }

// Clone returns an adapter over a copy of g's elements.
func (g *GenericArray[T, N]) Clone() GenericArray[T, N] {
	arr := g.array().Clone()
	return GenericArray[T, N]{arr: &arr}
}

func (g *GenericArray[T, N]) Default() GenericArray[T, N] {
	arr := genarray.New[T, N]()
	FillDefault(arr.SliceMut())
	return GenericArray[T, N]{arr: &arr}
}

func (g *GenericArray[T, N]) array() *genarray.GenericArray[T, N] {
	if g.arr == nil {
		g.arr = new(genarray.GenericArray[T, N])
	}
	return g.arr
}

// GenericArrayV1 adapts a genarray/v1 Array (decimal lengths). It behaves
// exactly like GenericArray, including the ban on copies.
type GenericArrayV1[T any, N genarrayv1.Length] struct {
	noCopy common.NoCopy
	arr    *genarrayv1.Array[T, N]
}

// GenericRefV1 wraps a. Views alias a's storage.
func GenericRefV1[T any, N genarrayv1.Length](a *genarrayv1.Array[T, N]) GenericArrayV1[T, N] {
	return GenericArrayV1[T, N]{arr: a}
}

// AsSlice returns the elements of the wrapped array.
func (g *GenericArrayV1[T, N]) AsSlice() []T { return g.array().Elems() }

// AsMutSlice returns the elements of the wrapped array for writing.
func (g *GenericArrayV1[T, N]) AsMutSlice() []T { return g.array().Elems() }

func (g *GenericArrayV1[T, N]) Len() int { return genarrayv1.LenOf[N]() }

// Inner returns the wrapped array.
func (g *GenericArrayV1[T, N]) Inner() *genarrayv1.Array[T, N] { return g.array() }

// Clone returns an adapter over a copy of g's elements.
func (g *GenericArrayV1[T, N]) Clone() GenericArrayV1[T, N] {
	return GenericArrayV1[T, N]{arr: g.array().Clone()}
}

func (g *GenericArrayV1[T, N]) Default() GenericArrayV1[T, N] {
	arr := genarrayv1.New[T, N]()
	FillDefault(arr.Elems())
	return GenericArrayV1[T, N]{arr: arr}
}

func (g *GenericArrayV1[T, N]) array() *genarrayv1.Array[T, N] {
	if g.arr == nil {
		g.arr = new(genarrayv1.Array[T, N])
	}
	return g.arr
}

var _ AsMutSlice[byte] = (*GenericArray[byte, typenum.U16])(nil)
var _ Defaulter[GenericArray[byte, typenum.U16]] = (*GenericArray[byte, typenum.U16])(nil)
var _ AsMutSlice[byte] = (*GenericArrayV1[byte, genarrayv1.N16])(nil)
var _ Defaulter[GenericArrayV1[byte, genarrayv1.N16]] = (*GenericArrayV1[byte, genarrayv1.N16])(nil)
