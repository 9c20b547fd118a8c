// Package ring is a fixed capacity FIFO queue over any backing store that
// can be viewed as a mutable slice.
package ring

import (
	"errors"

	"github.com/rawbytedev/asslice"
)

var (
	ErrFull  = errors.New("ring: buffer full")
	ErrEmpty = errors.New("ring: buffer empty")
)

// Ring never grows: its capacity is the length of the backing view.
type Ring[T any] struct {
	buf  []T
	head int
	n    int
}

// New uses buf's mutable view as storage. buf must not be resized or
// viewed elsewhere while the ring is in use.
func New[T any](buf asslice.AsMutSlice[T]) *Ring[T] {
	return &Ring[T]{buf: buf.AsMutSlice()}
}

// NewDefault builds a default valued C as storage:
//
//	r := ring.NewDefault[byte, asslice.Array[byte, [256]byte]]()
func NewDefault[T any, C any, PC interface {
	*C
	asslice.AsMutSlice[T]
	asslice.Defaulter[C]
}]() *Ring[T] {
	c := new(C)
	*c = PC(c).Default()
	return New[T](PC(c))
}

func (r *Ring[T]) Len() int { return r.n }
func (r *Ring[T]) Cap() int { return len(r.buf) }

// Push appends v at the tail.
func (r *Ring[T]) Push(v T) error {
	if r.n == len(r.buf) {
		return ErrFull
	}
	r.buf[(r.head+r.n)%len(r.buf)] = v
	r.n++
	return nil
}

// Pop removes and returns the head.
func (r *Ring[T]) Pop() (T, error) {
	var zero T
	if r.n == 0 {
		return zero, ErrEmpty
	}
	v := r.buf[r.head]
	r.buf[r.head] = zero
	r.head = (r.head + 1) % len(r.buf)
	r.n--
	return v, nil
}

// Peek returns the head without removing it.
func (r *Ring[T]) Peek() (T, error) {
	if r.n == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return r.buf[r.head], nil
}

// Reset drops every element.
func (r *Ring[T]) Reset() {
	clear(r.buf)
	r.head, r.n = 0, 0
}
