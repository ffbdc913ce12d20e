// Package overlay wraps a frame sink and stamps each frame's
// presentation timestamp onto its pixels before forwarding.
package overlay

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"

	"github.com/user/y4mgif/pkg/ports"
)

const (
	padX    = 6
	padY    = 4
	boxH    = 18
	textOff = 5
)

// Sink draws a timestamp label in the bottom-left corner of every
// frame, then passes it to the next sink. It draws in place; the
// frame is owned by the pipeline until the next sink accepts it.
type Sink struct {
	next ports.FrameSink
}

// New wraps next with timestamp stamping.
func New(next ports.FrameSink) *Sink {
	return &Sink{next: next}
}

// AddFrame stamps and forwards one frame.
func (s *Sink) AddFrame(index uint64, img *image.RGBA, timestampSeconds float64) error {
	s.stamp(img, timestampSeconds)
	return s.next.AddFrame(index, img, timestampSeconds)
}

func (s *Sink) stamp(img *image.RGBA, timestampSeconds float64) {
	label := fmt.Sprintf("%7.2fs", timestampSeconds)
	h := img.Bounds().Dy()
	if h < boxH+padY {
		return
	}

	dc := gg.NewContextForRGBA(img)
	w, _ := dc.MeasureString(label)
	dc.SetRGBA(0, 0, 0, 0.6)
	dc.DrawRectangle(padX, float64(h-boxH-padY), w+2*padX, boxH)
	dc.Fill()
	dc.SetRGB(1, 1, 1)
	dc.DrawString(label, 2*padX, float64(h-padY-textOff))
}

var _ ports.FrameSink = (*Sink)(nil)
