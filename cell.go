package asslice

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/rawbytedev/asslice/internal/common"
)

// Borrow conflicts reported by TryBorrow and TryBorrowMut.
var (
	ErrBorrowed        = errors.New("asslice: already borrowed")
	ErrMutablyBorrowed = errors.New("asslice: already mutably borrowed")
)

// BorrowState describes the live tracked borrows of a Cell.
type BorrowState int32

const (
	Unborrowed BorrowState = 0
	Exclusive  BorrowState = -1
)

// Shared is the state of a Cell with n live shared borrows.
func Shared(n int) BorrowState { return BorrowState(n) }

// Readers returns the number of live shared borrows.
func (s BorrowState) Readers() int {
	if s < 0 {
		return 0
	}
	return int(s)
}

func (s BorrowState) String() string {
	switch {
	case s == Unborrowed:
		return "unborrowed"
	case s == Exclusive:
		return "exclusive"
	}
	return fmt.Sprintf("shared(%d)", int(s))
}

// Cell enforces the single owner discipline for views of a container:
// any number of shared views, or one mutable view, never both.
//
// TryBorrow and TryBorrowMut report a conflict as an error. Borrow and
// BorrowMut treat a conflict as a programming error: built with the
// asslice_debug tag they panic, otherwise they hand out an untracked view.
type Cell[T any] struct {
	c     AsMutSlice[T]
	state atomic.Int32 // a BorrowState
}

// NewCell returns a Cell guarding c.
func NewCell[T any](c AsMutSlice[T]) *Cell[T] {
	return &Cell[T]{c: c}
}

// Ref is a shared borrow. Release it when done. A Ref must not be
// copied.
type Ref[T any] struct {
	noCopy common.NoCopy
	cell   *Cell[T]
	view   []T
}

// Slice returns the borrowed view, or nil after Release.
func (r *Ref[T]) Slice() []T { return r.view }

// Release ends the borrow. Calling it more than once is a no-op.
func (r *Ref[T]) Release() {
	if r.cell != nil {
		r.cell.releaseShared()
		r.cell = nil
	}
	r.view = nil
}

// RefMut is an exclusive borrow. Release it when done. A RefMut must not
// be copied.
type RefMut[T any] struct {
	noCopy common.NoCopy
	cell   *Cell[T]
	view   []T
}

// Slice returns the borrowed view, or nil after Release.
func (r *RefMut[T]) Slice() []T { return r.view }

// Release ends the borrow. Calling it more than once is a no-op.
func (r *RefMut[T]) Release() {
	if r.cell != nil {
		r.cell.state.CompareAndSwap(int32(Exclusive), int32(Unborrowed))
		r.cell = nil
	}
	r.view = nil
}

// releaseShared drops one shared borrow. It never leaves the shared range,
// so a stray release cannot fake an exclusive borrow.
func (c *Cell[T]) releaseShared() {
	for {
		s := c.state.Load()
		if s <= 0 {
			return
		}
		if c.state.CompareAndSwap(s, s-1) {
			return
		}
	}
}

// TryBorrow takes a shared borrow, or fails with ErrMutablyBorrowed.
func (c *Cell[T]) TryBorrow() (*Ref[T], error) {
	for {
		s := c.state.Load()
		if s == int32(Exclusive) {
			return nil, ErrMutablyBorrowed
		}
		if c.state.CompareAndSwap(s, s+1) {
			return &Ref[T]{cell: c, view: c.c.AsSlice()}, nil
		}
	}
}

// TryBorrowMut takes the exclusive borrow, or fails with ErrBorrowed or
// ErrMutablyBorrowed.
func (c *Cell[T]) TryBorrowMut() (*RefMut[T], error) {
	for {
		switch s := c.state.Load(); {
		case s == int32(Exclusive):
			return nil, ErrMutablyBorrowed
		case s > 0:
			return nil, ErrBorrowed
		}
		if c.state.CompareAndSwap(int32(Unborrowed), int32(Exclusive)) {
			return &RefMut[T]{cell: c, view: c.c.AsMutSlice()}, nil
		}
	}
}

// Borrow takes a shared borrow. A conflict panics in debug builds.
func (c *Cell[T]) Borrow() *Ref[T] {
	r, err := c.TryBorrow()
	if err != nil {
		borrowConflict(err)
		return &Ref[T]{view: c.c.AsSlice()}
	}
	return r
}

// BorrowMut takes the exclusive borrow. A conflict panics in debug
// builds.
func (c *Cell[T]) BorrowMut() *RefMut[T] {
	r, err := c.TryBorrowMut()
	if err != nil {
		borrowConflict(err)
		return &RefMut[T]{view: c.c.AsMutSlice()}
	}
	return r
}

// With runs fn with a shared view that is released when fn returns.
func (c *Cell[T]) With(fn func(s []T)) {
	r := c.Borrow()
	defer r.Release()
	fn(r.Slice())
}

// WithMut runs fn with a mutable view that is released when fn returns.
func (c *Cell[T]) WithMut(fn func(s []T)) {
	r := c.BorrowMut()
	defer r.Release()
	fn(r.Slice())
}

// State reports the live tracked borrows.
func (c *Cell[T]) State() BorrowState {
	return BorrowState(c.state.Load())
}

// Unwrap returns the container once no borrow is live.
func (c *Cell[T]) Unwrap() (AsMutSlice[T], error) {
	switch s := c.State(); {
	case s == Exclusive:
		return nil, ErrMutablyBorrowed
	case s != Unborrowed:
		return nil, ErrBorrowed
	}
	return c.c, nil
}

func borrowConflict(err error) {
	if debugAssertions {
		panic(err)
	}
}
