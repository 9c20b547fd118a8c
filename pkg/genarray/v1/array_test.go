package genarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLenOf(t *testing.T) {
	assert.Equal(t, 0, LenOf[Z]())
	assert.Equal(t, 0, LenOf[N0]())
	assert.Equal(t, 1, LenOf[N1]())
	assert.Equal(t, 42, LenOf[Dec[Dec[Z, D4], D2]]())
	assert.Equal(t, 16, LenOf[N16]())
	assert.Equal(t, 33, LenOf[N33]())
	assert.Equal(t, 1024, LenOf[N1024]())
	assert.Equal(t, 4096, LenOf[N4096]())
}

func TestNewAndElems(t *testing.T) {
	a := New[float64, N16]()
	assert.Equal(t, 16, a.Len())
	require.Len(t, a.Elems(), 16)

	a.Elems()[15] = 1.5
	assert.Equal(t, 1.5, a.Elems()[15])
}

func TestZeroArray(t *testing.T) {
	var a Array[int, N33]
	assert.Len(t, a.Elems(), 33)

	var empty Array[int, N0]
	assert.NotNil(t, empty.Elems())
	assert.Empty(t, empty.Elems())
}

func TestFrom(t *testing.T) {
	a, err := From[rune, N3]([]rune("abc"))
	require.NoError(t, err)
	assert.Equal(t, []rune("abc"), a.Elems())

	_, err = From[rune, N2]([]rune("abc"))
	require.ErrorIs(t, err, ErrLength)
}

func TestClone(t *testing.T) {
	a, err := From[int, N4]([]int{1, 2, 3, 4})
	require.NoError(t, err)
	c := a.Clone()
	c.Elems()[0] = 7
	assert.Equal(t, 1, a.Elems()[0])
	assert.Equal(t, []int{7, 2, 3, 4}, c.Elems())
}
