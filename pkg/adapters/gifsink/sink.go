// Package gifsink collects RGBA frames and encodes them into an
// animated GIF, with optional resizing of each frame on the way in.
package gifsink

import (
	"bytes"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"

	xdraw "golang.org/x/image/draw"

	"github.com/user/y4mgif/pkg/ports"
)

// Options configures the GIF output.
type Options struct {
	// Width and Height set the output size. Zero keeps the source
	// dimension; when only one is set the other follows the source
	// aspect ratio.
	Width  int
	Height int

	// LoopCount is the GIF loop count: 0 loops forever, -1 plays once.
	LoopCount int
}

// Sink buffers frames until End encodes them. It applies no
// backpressure; the GIF container needs every frame before the
// inter-frame delays can be finalized.
type Sink struct {
	opts   Options
	frames []*image.RGBA
	stamps []float64
}

// New creates a Sink.
func New(opts Options) *Sink {
	return &Sink{opts: opts}
}

// AddFrame appends one frame. Frames must arrive with consecutive
// indices starting at 0 and non-decreasing timestamps.
func (s *Sink) AddFrame(index uint64, img *image.RGBA, timestampSeconds float64) error {
	if index != uint64(len(s.frames)) {
		return fmt.Errorf("frame index %d out of order, want %d", index, len(s.frames))
	}
	if n := len(s.stamps); n > 0 && timestampSeconds < s.stamps[n-1] {
		return fmt.Errorf("frame %d timestamp %f going backwards", index, timestampSeconds)
	}
	s.frames = append(s.frames, s.resize(img))
	s.stamps = append(s.stamps, timestampSeconds)
	return nil
}

// End quantizes the buffered frames and returns the encoded GIF.
func (s *Sink) End() ([]byte, error) {
	if len(s.frames) == 0 {
		return nil, fmt.Errorf("no frames to encode")
	}

	out := &gif.GIF{LoopCount: s.opts.LoopCount}
	for i, frame := range s.frames {
		pm := image.NewPaletted(frame.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(pm, frame.Bounds(), frame, image.Point{})
		out.Image = append(out.Image, pm)
		out.Delay = append(out.Delay, s.delay(i))
	}

	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, out); err != nil {
		return nil, fmt.Errorf("encode gif: %w", err)
	}
	return buf.Bytes(), nil
}

// delay returns the centisecond delay of frame i. The last frame
// inherits the previous gap; a single-frame GIF gets a nominal 100ms.
func (s *Sink) delay(i int) int {
	var seconds float64
	switch {
	case i+1 < len(s.stamps):
		seconds = s.stamps[i+1] - s.stamps[i]
	case i > 0:
		seconds = s.stamps[i] - s.stamps[i-1]
	default:
		seconds = 0.1
	}
	cs := int(seconds*100 + 0.5)
	if cs < 1 {
		cs = 1
	}
	return cs
}

// resize scales img to the configured output size, preserving aspect
// ratio when only one dimension is given.
func (s *Sink) resize(img *image.RGBA) *image.RGBA {
	if s.opts.Width == 0 && s.opts.Height == 0 {
		return img
	}
	sw := img.Bounds().Dx()
	sh := img.Bounds().Dy()
	w, h := s.opts.Width, s.opts.Height
	if w == 0 {
		w = sw * h / sh
	}
	if h == 0 {
		h = sh * w / sw
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if w == sw && h == sh {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}

var _ ports.FrameSink = (*Sink)(nil)
