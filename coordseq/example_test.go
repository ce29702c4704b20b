package coordseq_test

import (
	"fmt"

	"github.com/katalvlaran/planar/coord"
	"github.com/katalvlaran/planar/coordseq"
)

// ExamplePackedFactory demonstrates building a packed sequence and the
// silent clamping of an out-of-range layout request.
func ExamplePackedFactory() {
	f := coordseq.PackedFactory{}

	// Dimension 9 with 5 measures is coerced to 4 with 1 measure.
	s := f.New(2, 9, 5)
	fmt.Println(s.Len(), s.Dimension(), s.Measures())
	// Output:
	// 2 4 1
}

// ExampleNewPackedSequenceOf demonstrates a zero-copy view over a
// caller-owned flat buffer.
func ExampleNewPackedSequenceOf() {
	data := []float64{100, 200, 200, 200, 200, 100}
	s := coordseq.NewPackedSequenceOf(data, 2, 0)

	c, _ := s.At(1)
	fmt.Println(s.Len(), c)
	// Output:
	// 3 (200, 200)
}

// ExampleReverse demonstrates in-place reversal through the
// storage-blind Sequence contract.
func ExampleReverse() {
	s := coordseq.NewArraySequenceOf([]coord.Coordinate{
		coord.NewXY(1, 1),
		coord.NewXY(2, 2),
		coord.NewXY(3, 3),
	})
	if err := coordseq.Reverse(s); err != nil {
		fmt.Println("error:", err)

		return
	}

	first, _ := s.At(0)
	fmt.Println(first)
	// Output:
	// (3, 3)
}
