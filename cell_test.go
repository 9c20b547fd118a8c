package asslice

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCell() (*[4]int, *Cell[int]) {
	a := &[4]int{1, 2, 3, 4}
	return a, NewCell[int](RefOf[int](a))
}

func TestCellSharedBorrows(t *testing.T) {
	_, c := newTestCell()
	r1, err := c.TryBorrow()
	require.NoError(t, err)
	r2, err := c.TryBorrow()
	require.NoError(t, err)
	assert.Equal(t, r1.Slice(), r2.Slice())

	assert.Equal(t, Shared(2), c.State())
	assert.Equal(t, 2, c.State().Readers())

	_, err = c.TryBorrowMut()
	require.ErrorIs(t, err, ErrBorrowed)

	r1.Release()
	r2.Release()
	r2.Release()
	assert.Equal(t, Unborrowed, c.State())
	assert.Nil(t, r1.Slice())
}

func TestCellExclusiveBorrow(t *testing.T) {
	a, c := newTestCell()
	m, err := c.TryBorrowMut()
	require.NoError(t, err)
	m.Slice()[0] = 100
	assert.Equal(t, 100, a[0])

	_, err = c.TryBorrow()
	require.ErrorIs(t, err, ErrMutablyBorrowed)
	_, err = c.TryBorrowMut()
	require.ErrorIs(t, err, ErrMutablyBorrowed)
	assert.Equal(t, Exclusive, c.State())
	assert.Zero(t, c.State().Readers())

	m.Release()
	r, err := c.TryBorrow()
	require.NoError(t, err)
	assert.Equal(t, []int{100, 2, 3, 4}, r.Slice())
	r.Release()
}

func TestCellScoped(t *testing.T) {
	_, c := newTestCell()
	c.WithMut(func(s []int) {
		s[3] = 40
		_, err := c.TryBorrow()
		assert.ErrorIs(t, err, ErrMutablyBorrowed)
	})
	c.With(func(s []int) {
		assert.Equal(t, []int{1, 2, 3, 40}, s)
	})
	assert.Equal(t, Unborrowed, c.State())
}

func TestCellUnwrap(t *testing.T) {
	_, c := newTestCell()
	r := c.Borrow()
	_, err := c.Unwrap()
	require.ErrorIs(t, err, ErrBorrowed)
	r.Release()

	m := c.BorrowMut()
	_, err = c.Unwrap()
	require.ErrorIs(t, err, ErrMutablyBorrowed)
	m.Release()

	inner, err := c.Unwrap()
	require.NoError(t, err)
	assert.Len(t, inner.AsSlice(), 4)
}

func TestBorrowStateString(t *testing.T) {
	assert.Equal(t, "unborrowed", Unborrowed.String())
	assert.Equal(t, "exclusive", Exclusive.String())
	assert.Equal(t, "shared(3)", Shared(3).String())
}

func TestCellStrayReleaseStaysShared(t *testing.T) {
	_, c := newTestCell()
	c.releaseShared()
	c.releaseShared()
	assert.Equal(t, Unborrowed, c.State())

	r := c.Borrow()
	c.releaseShared()
	c.releaseShared()
	r.Release()
	assert.Equal(t, Unborrowed, c.State())

	m := c.BorrowMut()
	c.releaseShared()
	assert.Equal(t, Exclusive, c.State())
	m.Release()
	assert.Equal(t, Unborrowed, c.State())
}

func TestCellConcurrentBorrows(t *testing.T) {
	_, c := newTestCell()
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				if r, err := c.TryBorrow(); err == nil {
					r.Release()
				}
			}
		}()
	}
	for j := 0; j < 1000; j++ {
		m, err := c.TryBorrowMut()
		if err != nil {
			require.ErrorIs(t, err, ErrBorrowed)
			continue
		}
		require.Equal(t, Exclusive, c.State())
		m.Release()
	}
	wg.Wait()
	assert.Equal(t, Unborrowed, c.State())
	m, err := c.TryBorrowMut()
	require.NoError(t, err)
	m.Release()
}
