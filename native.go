package asslice

import (
	"unsafe"

	"github.com/rawbytedev/asslice/internal/common"
)

// View returns the immutable slice view of the array behind a.
//
// T must be given explicitly, A is inferred:
//
//	var buf [64]byte
//	s := asslice.View[byte](&buf)
func View[T any, A FixedArray[T]](a *A) []T {
	return common.SliceAt[T](unsafe.Pointer(a), len(*a))
}

// MutView returns the mutable slice view of the array behind a.
func MutView[T any, A FixedArray[T]](a *A) []T {
	return common.SliceAt[T](unsafe.Pointer(a), len(*a))
}

// LenOf returns the length of the array shape A.
func LenOf[T any, A FixedArray[T]]() int {
	return common.ArrayLen[A]()
}

// DefaultArray returns an A whose every element is DefaultOf[T].
func DefaultArray[T any, A FixedArray[T]]() A {
	var a A
	FillDefault(MutView[T](&a))
	return a
}

// ArrayRef borrows a caller owned array.
type ArrayRef[T any, A FixedArray[T]] struct {
	arr *A
}

// RefOf wraps a so it satisfies AsMutSlice[T]. a must not be nil.
func RefOf[T any, A FixedArray[T]](a *A) ArrayRef[T, A] {
	return ArrayRef[T, A]{arr: a}
}

// AsSlice returns the immutable view of the borrowed array.
func (r ArrayRef[T, A]) AsSlice() []T { return View[T](r.arr) }

// AsMutSlice returns the mutable view of the borrowed array.
func (r ArrayRef[T, A]) AsMutSlice() []T { return MutView[T](r.arr) }

func (r ArrayRef[T, A]) Len() int { return len(*r.arr) }

// Array owns an array of shape A. The zero value holds zero elements;
// Default fills them with DefaultOf[T]. Copies of an Array are
// independent, like copies of A.
type Array[T any, A FixedArray[T]] struct {
	arr A
}

// ArrayOf copies a into a new Array.
func ArrayOf[T any, A FixedArray[T]](a A) Array[T, A] {
	return Array[T, A]{arr: a}
}

// AsSlice returns the immutable view of the owned array.
func (a *Array[T, A]) AsSlice() []T { return View[T](&a.arr) }

// AsMutSlice returns the mutable view of the owned array.
func (a *Array[T, A]) AsMutSlice() []T { return MutView[T](&a.arr) }

// Inner returns the owned array.
func (a *Array[T, A]) Inner() *A { return &a.arr }

func (Array[T, A]) Len() int { return LenOf[T, A]() }

func (Array[T, A]) Default() Array[T, A] {
	return Array[T, A]{arr: DefaultArray[T, A]()}
}

var _ AsMutSlice[byte] = ArrayRef[byte, [4]byte]{}
var _ AsMutSlice[byte] = (*Array[byte, [4]byte])(nil)
var _ Defaulter[Array[int, [8]int]] = Array[int, [8]int]{}
