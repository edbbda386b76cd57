// SPDX-License-Identifier: MIT

package frame

import "errors"

// Sentinel errors for frame construction. Public constructors return them
// wrapped in *core.InvalidInputError so errors.Is(err, core.ErrInvalidInput)
// holds as well.
var (
	ErrBadShape      = errors.New("frame: width and height must be >= 0")
	ErrBadChannels   = errors.New("frame: channels must be 1 or 3")
	ErrShortBuffer   = errors.New("frame: pixel buffer length does not match shape")
	ErrRaggedRows    = errors.New("frame: rows must have equal length")
	ErrPixelRange    = errors.New("frame: intensity outside [0,255]")
	ErrNilFrame      = errors.New("frame: nil frame")
	ErrNilPlane      = errors.New("frame: nil plane")
	ErrShapeMismatch = errors.New("frame: frames differ in shape")
)

// ErrOutOfRange is returned by the indexers for coordinates outside the grid.
var ErrOutOfRange = errors.New("frame: coordinate out of range")
