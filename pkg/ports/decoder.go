package ports

import (
	"errors"
	"fmt"
)

// Rational represents a frame rate as an exact numerator/denominator pair.
type Rational struct {
	Num int
	Den int
}

// Colorspace identifies the chroma layout and bit depth declared by a
// Y4M stream header. The container models bit depth as distinct tags,
// so 10- and 12-bit variants are separate values.
type Colorspace int

const (
	CsMono Colorspace = iota
	CsMono12
	Cs420
	Cs420P10
	Cs420P12
	Cs420JPEG
	Cs420PALDV
	Cs420MPEG2
	Cs422
	Cs422P10
	Cs422P12
	Cs444
	Cs444P10
	Cs444P12
	// CsOther marks a syntactically valid C token that names a mode
	// this decoder does not recognize.
	CsOther
)

// String returns the Y4M header token for the colorspace.
func (c Colorspace) String() string {
	switch c {
	case CsMono:
		return "mono"
	case CsMono12:
		return "mono12"
	case Cs420:
		return "420"
	case Cs420P10:
		return "420p10"
	case Cs420P12:
		return "420p12"
	case Cs420JPEG:
		return "420jpeg"
	case Cs420PALDV:
		return "420paldv"
	case Cs420MPEG2:
		return "420mpeg2"
	case Cs422:
		return "422"
	case Cs422P10:
		return "422p10"
	case Cs422P12:
		return "422p12"
	case Cs444:
		return "444"
	case Cs444P10:
		return "444p10"
	case Cs444P12:
		return "444p12"
	default:
		return "other"
	}
}

// RawFrame holds the planar pixel data of a single decoded frame.
// Chroma planes are nil for monochrome streams.
type RawFrame struct {
	Y  []byte
	Cb []byte
	Cr []byte
}

// ErrEndOfStream is returned by ReadFrame when the stream ends cleanly
// after the last complete frame. Any other error is fatal.
var ErrEndOfStream = errors.New("end of stream")

// DecodeErrorKind classifies container decoder failures.
type DecodeErrorKind int

const (
	// DecodeTruncated means the stream ended inside the header or a frame.
	DecodeTruncated DecodeErrorKind = iota
	// DecodeBadMetadata means a header field could not be interpreted.
	DecodeBadMetadata
	// DecodeUnknownColorspace means the C token named no known mode.
	DecodeUnknownColorspace
	// DecodeOutOfMemory means the declared dimensions would require an
	// unreasonable allocation.
	DecodeOutOfMemory
	// DecodeParse means the input is not a Y4M stream at all.
	DecodeParse
	// DecodeIO means the underlying reader failed.
	DecodeIO
)

// DecodeError is a container decoder failure with a stable category.
type DecodeError struct {
	Kind   DecodeErrorKind
	Detail string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Detail, e.Err)
	}
	return e.Detail
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ContainerDecoder abstracts a frame-sequential raw video container.
// Implementations own the underlying byte source; ReadFrame pulls one
// frame at a time and blocks until it is available.
type ContainerDecoder interface {
	// Width returns the frame width in pixels.
	Width() int

	// Height returns the frame height in pixels.
	Height() int

	// FrameRate returns the declared frame rate.
	FrameRate() Rational

	// Colorspace returns the declared colorspace tag.
	Colorspace() Colorspace

	// BytesPerSample returns the storage size of one sample (1 for
	// 8-bit modes, 2 for deeper modes).
	BytesPerSample() int

	// RawParams returns the raw header bytes, for diagnostics and for
	// parameters the decoder does not interpret itself.
	RawParams() []byte

	// FrameOverhead returns the per-frame container overhead in bytes
	// (the frame marker line).
	FrameOverhead() int

	// ReadFrame reads and returns the next frame. It returns
	// ErrEndOfStream at clean end of input and a *DecodeError otherwise.
	ReadFrame() (*RawFrame, error)
}
