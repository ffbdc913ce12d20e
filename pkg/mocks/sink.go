package mocks

import (
	"image"

	"github.com/user/y4mgif/pkg/ports"
)

// FrameSink is a mock implementation of ports.FrameSink.
type FrameSink struct {
	AddFrameFunc func(index uint64, img *image.RGBA, timestampSeconds float64) error

	// Recorded calls for verification
	Calls []AddFrameCall
}

// AddFrameCall records a call to AddFrame.
type AddFrameCall struct {
	Index     uint64
	Image     *image.RGBA
	Timestamp float64
}

func (m *FrameSink) AddFrame(index uint64, img *image.RGBA, timestampSeconds float64) error {
	m.Calls = append(m.Calls, AddFrameCall{Index: index, Image: img, Timestamp: timestampSeconds})
	if m.AddFrameFunc != nil {
		return m.AddFrameFunc(index, img, timestampSeconds)
	}
	return nil
}

var _ ports.FrameSink = (*FrameSink)(nil)
