package source

import (
	"github.com/user/y4mgif/pkg/ports"
)

// retimer converts a sequence of source frames at one frame rate into
// a kept/dropped decision per frame at another. It keeps a source
// frame only once accumulated source time has caught up with the next
// desired output instant, which drops frames when the source rate
// exceeds the target rate.
type retimer struct {
	frameTime       float64
	wantedFrameTime float64
	speed           float64

	presentationTimestamp float64
	wantedPts             float64
}

func newRetimer(src ports.Rational, fps Fps) *retimer {
	wantedFPS := float64(DefaultFPS)
	if fps.FPS > 0 {
		wantedFPS = float64(fps.FPS)
	}
	speed := fps.Speed
	if speed <= 0 {
		speed = 1.0
	}
	return &retimer{
		frameTime:       1.0 / (float64(src.Num) / float64(src.Den)),
		wantedFrameTime: 1.0 / wantedFPS,
		speed:           speed,
	}
}

// next advances past one source frame. When keep is true the frame
// should be converted and emitted at pts (already scaled by speed);
// when false its pixel data should be discarded without conversion.
func (r *retimer) next() (pts float64, keep bool) {
	pts = r.presentationTimestamp / r.speed
	r.presentationTimestamp += r.frameTime
	if r.presentationTimestamp < r.wantedPts {
		return 0, false
	}
	r.wantedPts += r.wantedFrameTime
	return pts, true
}
