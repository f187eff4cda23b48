package model_test

import (
	"fmt"

	"github.com/katalvlaran/tilewave/model"
	"github.com/katalvlaran/tilewave/wave"
)

// ExampleBuild learns from a 2×2 checkerboard. Wrapped 2×2 windows give two
// distinct patterns, each seen twice, and each only fits beside the other.
func ExampleBuild() {
	m, err := model.Build([]int{0, 1, 1, 0}, 2, 2, model.Options{N: 2, Periodic: true})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("states:", m.StateCount(), "total weight:", m.SumWeights())
	for s := 0; s < m.StateCount(); s++ {
		fmt.Println(s, m.Pattern(s), "right of it:", m.Compatible(s, wave.Right))
	}
	// Output:
	// states: 2 total weight: 4
	// 0 [0 1 1 0] right of it: [1]
	// 1 [1 0 0 1] right of it: [0]
}
