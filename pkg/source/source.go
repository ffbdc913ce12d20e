// Package source implements the Y4M frame source. It pulls raw planar
// frames from a container decoder, retimes them from the source frame
// rate to the requested output rate, converts each retained frame to
// packed RGBA and forwards it to a frame sink with its presentation
// timestamp.
package source

import (
	"io"

	"github.com/user/y4mgif/pkg/ports"
)

// DefaultFPS is the output frame rate used when the caller requests none.
const DefaultFPS = 20

// Fps describes the requested output timing.
type Fps struct {
	// FPS is the desired output frame rate. Zero means DefaultFPS.
	FPS int
	// Speed divides output timestamps; 2.0 plays twice as fast.
	// Zero is treated as 1.0.
	Speed float64
}

// Input is the source handle: either a file path or an already-open
// byte stream such as stdin. It is consumed exactly once.
type Input struct {
	path   string
	reader io.Reader
}

// FromPath returns an Input reading from the file at path. The total
// byte length is probed so the frame estimate becomes available.
func FromPath(path string) Input {
	return Input{path: path}
}

// FromStream returns an Input reading from r. The byte length is
// unknown, so TotalFrames reports no estimate.
func FromStream(r io.Reader) Input {
	return Input{reader: r}
}

// Source is a stream of frames deliverable to a sink.
type Source interface {
	// TotalFrames estimates the number of decodable frames, for
	// progress display. ok is false when no estimate is available.
	TotalFrames() (n uint64, ok bool)

	// Collect decodes the whole stream, delivering retained frames to
	// sink in order. It returns nil at clean end of stream; any other
	// condition aborts the operation.
	Collect(sink ports.FrameSink) error
}

// Deps are the collaborators a Y4MSource is built from.
type Deps struct {
	// FS opens path inputs and probes their byte length.
	FS ports.FileSystem
	// Converter performs the per-family YUV to RGBA conversion.
	Converter ports.YUVConverter
	// NewDecoder constructs a container decoder over a byte stream.
	NewDecoder func(r io.Reader) (ports.ContainerDecoder, error)
}
