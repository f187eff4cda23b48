package generator_test

import (
	"fmt"

	"github.com/katalvlaran/tilewave/generator"
	"github.com/katalvlaran/tilewave/model"
)

// ExampleGenerator_Generate learns a two-state checkerboard and grows a 4×4
// output from it. The first observation fixes the phase; propagation forces
// every other cell, so each later step only confirms a singleton domain.
func ExampleGenerator_Generate() {
	m, err := model.Build([]int{0, 1, 1, 0}, 2, 2, model.Options{N: 2, Periodic: true})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	g, err := generator.New(m, 4, 4, generator.WithSeed(2024))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res := g.Generate()
	tiles := g.TileIDs()
	alternating := true
	for y := 0; y < 4; y++ {
		for x := 0; x+1 < 4; x++ {
			if tiles[y*4+x] == tiles[y*4+x+1] {
				alternating = false
			}
		}
	}
	st := g.Stats()
	fmt.Println("result:", res)
	fmt.Println("alternating:", alternating)
	fmt.Println("observations:", st.Observations, "bans:", st.Bans)
	// Output:
	// result: collapsed
	// alternating: true
	// observations: 16 bans: 15
}

// ExampleDeriveSeed shows the retry loop: a contradicted attempt is
// discarded and the generator reset with a seed derived from the parent.
func ExampleDeriveSeed() {
	m, err := model.Build([]int{0, 1, 1, 0}, 2, 2, model.Options{N: 2, Periodic: true})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	const parent = 11
	g, err := generator.New(m, 8, 8, generator.WithSeed(parent))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	var attempt uint64
	for g.Generate() == generator.Contradicted && attempt < 5 {
		attempt++
		if err := g.Reset(generator.DeriveSeed(parent, attempt)); err != nil {
			fmt.Println("error:", err)
			return
		}
	}
	fmt.Println(g.Result(), "after", attempt+1, "attempt(s)")
	// Output:
	// collapsed after 1 attempt(s)
}
