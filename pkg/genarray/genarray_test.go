package genarray

import (
	"testing"

	"github.com/rawbytedev/asslice/pkg/typenum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	g := New[int, typenum.U16]()
	assert.Equal(t, 16, g.Len())
	assert.Equal(t, make([]int, 16), g.Slice())
}

func TestZeroValue(t *testing.T) {
	var g GenericArray[string, typenum.U3]
	s := g.SliceMut()
	require.Len(t, s, 3)
	s[0] = "a"
	assert.Equal(t, []string{"a", "", ""}, g.Slice())

	var empty GenericArray[string, typenum.U0]
	assert.NotNil(t, empty.Slice())
	assert.Empty(t, empty.Slice())
}

func TestFromSlice(t *testing.T) {
	src := []byte{1, 2, 3, 4}
	g, err := FromSlice[byte, typenum.U4](src)
	require.NoError(t, err)
	assert.Equal(t, src, g.Slice())

	src[0] = 9
	assert.Equal(t, byte(1), g.Slice()[0])

	_, err = FromSlice[byte, typenum.U5](src)
	require.ErrorIs(t, err, ErrLength)
	assert.Contains(t, err.Error(), "have 4, want 5")
}

func TestClone(t *testing.T) {
	g, err := FromSlice[int, typenum.U4]([]int{1, 2, 3, 4})
	require.NoError(t, err)
	c := g.Clone()
	c.SliceMut()[0] = 7
	assert.Equal(t, 1, g.Slice()[0])
	assert.Equal(t, []int{7, 2, 3, 4}, c.Slice())

	var zero GenericArray[int, typenum.U2]
	zc := zero.Clone()
	zc.SliceMut()[1] = 5
	assert.Equal(t, []int{0, 0}, zero.Slice())
}
