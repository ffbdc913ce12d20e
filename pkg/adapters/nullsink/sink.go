// Package nullsink provides a frame sink that discards everything.
// It is used for dry runs and for benchmarking the decode path.
package nullsink

import (
	"image"

	"github.com/user/y4mgif/pkg/ports"
)

// Sink counts frames and discards their pixels.
type Sink struct {
	frames uint64
}

// New creates a new Sink.
func New() *Sink {
	return &Sink{}
}

// AddFrame discards the frame.
func (s *Sink) AddFrame(index uint64, img *image.RGBA, timestampSeconds float64) error {
	s.frames++
	return nil
}

// Frames returns the number of frames received so far.
func (s *Sink) Frames() uint64 {
	return s.frames
}

// Ensure Sink implements ports.FrameSink
var _ ports.FrameSink = (*Sink)(nil)
