// SPDX-License-Identifier: MIT

package quality_test

import (
	"fmt"

	"github.com/katalvlaran/shotqa/quality"
)

// ExampleAggregator_Score shows the neutral fallback for a shot without frames:
// only the supplied audio and continuity scores contribute.
func ExampleAggregator_Score() {
	a, _ := quality.New()
	q, _ := a.Score(quality.Bundle{AudioScore: 80, ContinuityScore: 100})
	fmt.Printf("overall=%.1f sharpness=%.1f motion=%.1f\n", q.Overall, q.Sharpness, q.Motion)
	// Output:
	// overall=40.0 sharpness=0.0 motion=0.0
}
