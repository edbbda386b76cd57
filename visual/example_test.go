// SPDX-License-Identifier: MIT

package visual_test

import (
	"fmt"

	"github.com/katalvlaran/shotqa/frame"
	"github.com/katalvlaran/shotqa/visual"
)

// ExampleDetector_Detect reports a patch that brightens while the rest of the
// frame holds still.
func ExampleDetector_Detect() {
	before := make([][]int, 8)
	after := make([][]int, 8)
	for y := range before {
		before[y] = make([]int, 8)
		after[y] = make([]int, 8)
		for x := range before[y] {
			before[y][x] = 50
			after[y][x] = 50
			if x >= 6 && y >= 6 {
				after[y][x] = 250
			}
		}
	}
	a, _ := frame.FromGray(before)
	b, _ := frame.FromGray(after)

	d, _ := visual.New()
	anomalies, _ := d.Detect([]*frame.Frame{a, b})
	for _, an := range anomalies {
		fmt.Printf("%s %s residual=%.0f\n", an.Type, an.Severity, an.MetricValue)
	}
	// Output:
	// physics_violation critical residual=200
}
