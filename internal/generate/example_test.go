package generate_test

import (
	"fmt"

	"cavegen/internal/gamemap"
	"cavegen/internal/generate"
)

// ExampleConnect walls in every floor pocket that cannot be reached from
// the start cell. The center (2,1) is rock, so the start is found one step
// down the diagonal.
func ExampleConnect() {
	g := gamemap.MustParse(
		"..#..",
		"..#..",
		"..#..",
	)
	start, err := generate.Connect(g)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("start:", start.X, start.Y)
	fmt.Println(g)

	// Output:
	// start: 3 2
	// ###..
	// ###..
	// ###..
}

// ExampleSimulate runs one automaton step over a checkerboard.
func ExampleSimulate() {
	g := gamemap.MustParse(
		"#.#.",
		".#.#",
		"#.#.",
		".#.#",
	)
	fmt.Println(generate.Simulate(g, 3, 5))

	// Output:
	// ####
	// ##.#
	// #.##
	// ####
}
