package ports

import (
	"image"
)

// FrameSink consumes converted frames in presentation order.
// Implementations may block in AddFrame to apply backpressure and may
// run their own internal pipeline; the caller never retains img after
// a successful AddFrame.
type FrameSink interface {
	// AddFrame hands over one frame. index increases by exactly one per
	// call, starting at 0. timestampSeconds values are non-decreasing.
	AddFrame(index uint64, img *image.RGBA, timestampSeconds float64) error
}
