// Package mocks provides hand-written test doubles for the ports.
package mocks

import (
	"github.com/user/y4mgif/pkg/ports"
)

// ContainerDecoder is a mock implementation of ports.ContainerDecoder.
// It serves the configured metadata and plays back Frames in order,
// then returns Final (ports.ErrEndOfStream when nil).
type ContainerDecoder struct {
	W        int
	H        int
	Rate     ports.Rational
	Cs       ports.Colorspace
	Bps      int
	Params   []byte
	Overhead int

	Frames []*ports.RawFrame
	Final  error

	ReadFrameFunc func(call int) (*ports.RawFrame, error)

	// Recorded calls for verification
	ReadFrameCalls int
}

func (m *ContainerDecoder) Width() int                   { return m.W }
func (m *ContainerDecoder) Height() int                  { return m.H }
func (m *ContainerDecoder) FrameRate() ports.Rational    { return m.Rate }
func (m *ContainerDecoder) Colorspace() ports.Colorspace { return m.Cs }
func (m *ContainerDecoder) RawParams() []byte            { return m.Params }

func (m *ContainerDecoder) BytesPerSample() int {
	if m.Bps == 0 {
		return 1
	}
	return m.Bps
}

func (m *ContainerDecoder) FrameOverhead() int {
	if m.Overhead == 0 {
		return 6
	}
	return m.Overhead
}

func (m *ContainerDecoder) ReadFrame() (*ports.RawFrame, error) {
	call := m.ReadFrameCalls
	m.ReadFrameCalls++
	if m.ReadFrameFunc != nil {
		return m.ReadFrameFunc(call)
	}
	if call < len(m.Frames) {
		return m.Frames[call], nil
	}
	if m.Final != nil {
		return nil, m.Final
	}
	return nil, ports.ErrEndOfStream
}

var _ ports.ContainerDecoder = (*ContainerDecoder)(nil)
