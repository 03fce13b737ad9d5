package levels_test

import (
	"fmt"

	"github.com/katalvlaran/lvledge/levels"
	"github.com/katalvlaran/lvledge/signal"
)

// ExampleCompute derives the levels of a small two-state signal with an
// explicit 0..10 histogram range and ten unit-wide bins.
func ExampleCompute() {
	sig, _ := signal.NewUniform([]float64{0, 0, 0, 5, 10, 10, 10, 5, 0, 0}, 0, 1)

	opts := levels.DefaultOptions()
	opts.NBins = 10
	opts.Bounds = &levels.Bounds{Lower: 0, Upper: 10}

	lv, _, err := levels.Compute(sig, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("lowest=%.2f low=%.2f intermediate=%.2f high=%.2f highest=%.2f\n",
		lv.Lowest, lv.Low, lv.Intermediate, lv.High, lv.Highest)
	// Output:
	// lowest=0.50 low=1.40 intermediate=5.00 high=8.60 highest=9.50
}
