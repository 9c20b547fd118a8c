package asslice

// Slice adapts a plain slice. Its view is the slice itself.
type Slice[T any] []T

// AsSlice returns s itself.
func (s Slice[T]) AsSlice() []T { return s }

// AsMutSlice returns s itself.
func (s Slice[T]) AsMutSlice() []T { return s }

func (s Slice[T]) Len() int { return len(s) }

var _ AsMutSlice[byte] = Slice[byte](nil)
