// Package asslice provides the AsSlice and AsMutSlice capabilities: a way
// to view fixed capacity containers as plain Go slices without knowing
// their concrete type.
//
// The main use case is generic code that accepts fixed size buffers. A
// ring buffer, a DMA descriptor table or a frame pool can be written once
// against AsMutSlice[byte] and then be handed a [128]byte, a [1024]byte or
// a genarray.GenericArray[byte, typenum.U1024] alike.
//
// Native arrays are supported through the FixedArray constraint, which
// lists every length in catalogue.yaml. Go generics cannot abstract over
// the length of an array, so the list is generated:
//
//go:generate go run ./cmd/asslicegen --config catalogue.yaml --root .
package asslice
