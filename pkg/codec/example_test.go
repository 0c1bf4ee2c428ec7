package codec_test

import (
	"fmt"

	"github.com/matzehuels/metriclines/pkg/codec"
	"github.com/matzehuels/metriclines/pkg/graph"
)

func ExampleDecode() {
	g, err := codec.Decode("DUW")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println(g)
	// Output:
	// n=5 [0-2 0-3 1-3 1-4 2-4]
}

func ExampleEncode() {
	g := graph.Path(4)
	fmt.Println(codec.Encode(g, codec.Compact))
	fmt.Println(codec.Encode(g, codec.Incremental))
	// Output:
	// Ch
	// :Cdv
}
