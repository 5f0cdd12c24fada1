package humancode_test

import (
	"fmt"

	"github.com/DaGenix/libhumancode"
)

func ExampleEncodeChunk() {
	data := []byte{153, 45, 218, 14, 206, 250, 84, 8, 62, 103, 131, 200, 89, 121, 73, 236}
	chunk, err := humancode.EncodeChunk(data, 5, 128)
	if err != nil {
		panic(err)
	}
	fmt.Println(chunk.Pretty())
	// Output: urs7-wdsq-9jky-oxu8-oxrf-16kj-7o16-qb5
}

func ExampleDecodeChunk() {
	out, err := humancode.DecodeChunk("urs7-2dsq-9j2y-oxu2-oxrf-16kj-7o26-qb2", 5, 128)
	if err != nil {
		panic(err)
	}
	fmt.Println(out.HadErrors())
	fmt.Println(out.Data())
	// Output:
	// true
	// [153 45 218 14 206 250 84 8 62 103 131 200 89 121 73 236]
}
