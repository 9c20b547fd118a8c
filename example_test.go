package asslice_test

import (
	"fmt"

	"github.com/rawbytedev/asslice"
	"github.com/rawbytedev/asslice/pkg/genarray"
	"github.com/rawbytedev/asslice/pkg/typenum"
)

// checksum accepts any buffer shape.
func checksum(buf asslice.AsSlice[byte]) byte {
	var x byte
	for _, b := range buf.AsSlice() {
		x ^= b
	}
	return x
}

func Example() {
	a := [5]int{1, 2, 3, 4, 5}
	asslice.MutView[int](&a)[2] = 99
	fmt.Println(asslice.View[int](&a))
	// Output: [1 2 99 4 5]
}

func ExampleGenericRef() {
	g := genarray.New[byte, typenum.U4]()
	copy(g.SliceMut(), []byte{1, 2, 4, 8})

	native := [4]byte{1, 2, 4, 8}
	ref := asslice.GenericRef(&g)
	fmt.Println(checksum(&ref), checksum(asslice.RefOf[byte](&native)))
	// Output: 15 15
}

func ExampleCell() {
	buf := [3]string{"a", "b", "c"}
	c := asslice.NewCell[string](asslice.RefOf[string](&buf))
	c.WithMut(func(s []string) { s[0] = "z" })
	c.With(func(s []string) { fmt.Println(s) })
	// Output: [z b c]
}
