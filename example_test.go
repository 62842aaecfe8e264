package hufftree_test

import (
	"fmt"

	"github.com/chronos-tachyon/hufftree"
)

func Example() {
	stream, err := hufftree.Encode([]byte("abracadabra"))
	if err != nil {
		panic(err)
	}
	out, err := hufftree.Decode(stream)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(out))
	// Output: abracadabra
}

func ExampleEncoder_Code() {
	tree, err := hufftree.BuildTree(hufftree.CountFrequencies([]byte("aab")))
	if err != nil {
		panic(err)
	}
	e, err := hufftree.NewEncoder(tree)
	if err != nil {
		panic(err)
	}
	fmt.Println(e.Code('a'), e.Code('b'))
	// Output: "1" "0"
}
