//go:build !asslice_debug

package asslice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellConflictUntrackedInRelease(t *testing.T) {
	_, c := newTestCell()
	m := c.BorrowMut()
	r := c.Borrow()
	assert.Len(t, r.Slice(), 4)
	r.Release()

	assert.Equal(t, Exclusive, c.State())
	m.Release()
	assert.Equal(t, Unborrowed, c.State())
}
