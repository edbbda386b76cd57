// SPDX-License-Identifier: MIT

package continuity

import "math"

// AngleDelta returns the smallest angular difference between a and b in
// degrees, accounting for wraparound: AngleDelta(350, 10) == 20.
// The result lies in [0,180] for finite inputs.
func AngleDelta(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	return math.Min(d, 360-d)
}
