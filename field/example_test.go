package field_test

import (
	"fmt"

	"github.com/jtsiomb/gph-math/field"
	"github.com/jtsiomb/gph-math/noise"
)

func ExampleRenderer_Render() {
	r := field.NewRenderer(
		field.WithSize(4, 4),
		field.WithScale(4),
		field.WithMode(field.ModeNoise),
	)
	// Every sample lands on an integer lattice point, where gradient noise
	// is zero.
	data, err := r.Render(field.NewPerlin(noise.NewTable(noise.WithSeed(1))))
	if err != nil {
		fmt.Println(err)
		return
	}
	zeros := 0
	for _, v := range data {
		if v == 0 {
			zeros++
		}
	}
	fmt.Println(len(data), zeros)
	// Output: 16 16
}
