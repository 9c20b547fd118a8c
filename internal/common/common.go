package common

import (
	"reflect"
	"unsafe"
)

// SliceAt aliases n consecutive values of type T starting at p without
// copying. The caller guarantees p addresses at least n values of T and
// that the memory outlives the returned slice.
func SliceAt[T any](p unsafe.Pointer, n int) []T {
	if n == 0 {
		return []T{}
	}
	return unsafe.Slice((*T)(p), n)
}

// ArrayLen returns the length of the array type A.
// It panics if A is not an array type.
func ArrayLen[A any]() int {
	return reflect.TypeOf((*A)(nil)).Elem().Len()
}

// Fill writes v into every slot of s.
func Fill[T any](s []T, v T) {
	for i := range s {
		s[i] = v
	}
}

// NoCopy may be embedded in structs that must not be copied after first
// use. go vet's copylocks check reports copies of any struct holding one.
type NoCopy struct{}

// Lock is a no-op used by go vet's copylocks check.
func (*NoCopy) Lock() {}

// Unlock is a no-op used by go vet's copylocks check.
func (*NoCopy) Unlock() {}
