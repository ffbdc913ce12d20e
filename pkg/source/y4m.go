package source

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"math"

	"github.com/user/y4mgif/pkg/ports"
)

// Y4MSource adapts a Y4M container decoder into a Source.
type Y4MSource struct {
	fps      Fps
	matrix   *ports.Matrix
	conv     ports.YUVConverter
	dec      ports.ContainerDecoder
	closer   io.Closer
	fileSize int64
	hasSize  bool
}

// New opens the input and initializes the container decoder. matrix
// overrides the resolution-based default when non-nil. Decoder
// initialization failures are mapped to stable category messages.
func New(in Input, fps Fps, matrix *ports.Matrix, deps Deps) (*Y4MSource, error) {
	s := &Y4MSource{
		fps:    fps,
		matrix: matrix,
		conv:   deps.Converter,
	}

	var r io.Reader
	if in.reader != nil {
		r = in.reader
	} else {
		f, err := deps.FS.Open(in.path)
		if err != nil {
			return nil, err
		}
		if n, ok := deps.FS.ByteLength(in.path); ok {
			s.fileSize = n
			s.hasSize = true
		}
		s.closer = f
		r = bufio.NewReader(f)
	}

	dec, err := deps.NewDecoder(r)
	if err != nil {
		if s.closer != nil {
			s.closer.Close()
		}
		return nil, describeDecodeError(err)
	}
	s.dec = dec
	return s, nil
}

// Close releases the underlying file, if the input was a path.
func (s *Y4MSource) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// TotalFrames estimates the decodable frame count from the file size,
// the frame geometry and a per-colorspace byte weight. It is a
// heuristic for progress display: retiming can drop frames, and the
// weight for unrecognized tags is a conservative guess. It never reads
// frame data. ok is false when the input byte length is unknown.
func (s *Y4MSource) TotalFrames() (uint64, bool) {
	if !s.hasSize {
		return 0, false
	}
	return EstimateFrames(s.fileSize, s.dec)
}

// EstimateFrames estimates how many frames a stream of fileSize bytes
// holds, from the frame geometry and a per-colorspace byte weight.
func EstimateFrames(fileSize int64, dec ports.ContainerDecoder) (uint64, bool) {
	w := int64(dec.Width())
	h := int64(dec.Height())
	d := int64(dec.BytesPerSample())
	weight := int64(estimatorWeight(dec.Colorspace()))
	perFrame := w*h*d*weight/4 + int64(dec.FrameOverhead())
	if perFrame <= 0 {
		return 0, false
	}
	remain := fileSize - int64(len(dec.RawParams()))
	if remain < 0 {
		remain = 0
	}
	return uint64(remain / perFrame), true
}

// Collect runs the retiming decode loop until end of stream. Frames
// already handed to the sink stay emitted when a later frame fails;
// there is no partial-success result beyond that.
func (s *Y4MSource) Collect(sink ports.FrameSink) error {
	dec := s.dec
	width := dec.Width()
	height := dec.Height()
	rawParams := string(dec.RawParams())

	samp, err := resolveSampling(dec.Colorspace(), rawParams)
	if err != nil {
		return err
	}
	if width < 1 || width > math.MaxUint16 || height < 1 || height > math.MaxUint16 {
		return errors.New("video too large")
	}

	matrix := ResolveMatrix(s.matrix, width, height)
	rng := ResolveRange(dec.RawParams())
	rt := newRetimer(dec.FrameRate(), s.fps)

	dstStride := width * 4
	var idx uint64
	for {
		frame, err := dec.ReadFrame()
		if errors.Is(err, ports.ErrEndOfStream) {
			return nil
		}
		if err != nil {
			return describeDecodeError(err)
		}

		pts, keep := rt.next()
		if !keep {
			continue // skip a frame
		}

		if len(frame.Y) == 0 {
			return badFrame(rawParams)
		}
		rgba := make([]byte, width*height*4)
		if err := s.convert(samp, frame, rgba, dstStride, width, height, rng, matrix); err != nil {
			return fmt.Errorf("bad y4m frame (using %s): %w", rawParams, err)
		}

		img := &image.RGBA{
			Pix:    rgba,
			Stride: dstStride,
			Rect:   image.Rect(0, 0, width, height),
		}
		if len(img.Pix)/4 != width*height {
			return badFrame(rawParams)
		}

		if err := sink.AddFrame(idx, img, pts); err != nil {
			return err
		}
		idx++
	}
}

// convert dispatches one frame to the converter method matching the
// subsampling family, with the family's stride formulas.
func (s *Y4MSource) convert(samp sampling, frame *ports.RawFrame, dst []byte, dstStride, width, height int, rng ports.Range, matrix ports.Matrix) error {
	switch samp {
	case sampMono:
		return s.conv.Gray(ports.GrayImage{
			Y:       frame.Y,
			YStride: width,
			Width:   width,
			Height:  height,
		}, dst, dstStride, rng, matrix)
	case samp1x1:
		return s.conv.I444(ports.PlanarImage{
			Y:        frame.Y,
			YStride:  width,
			Cb:       frame.Cb,
			CbStride: width,
			Cr:       frame.Cr,
			CrStride: width,
			Width:    width,
			Height:   height,
		}, dst, dstStride, rng, matrix)
	case samp2x1:
		uvStride := (width + 1) / 2
		return s.conv.I422(ports.PlanarImage{
			Y:        frame.Y,
			YStride:  width,
			Cb:       frame.Cb,
			CbStride: uvStride,
			Cr:       frame.Cr,
			CrStride: uvStride,
			Width:    width,
			Height:   height,
		}, dst, dstStride, rng, matrix)
	default:
		uvStride := (width + 1) / 2
		return s.conv.I420(ports.PlanarImage{
			Y:        frame.Y,
			YStride:  width,
			Cb:       frame.Cb,
			CbStride: uvStride,
			Cr:       frame.Cr,
			CrStride: uvStride,
			Width:    width,
			Height:   height,
		}, dst, dstStride, rng, matrix)
	}
}

func badFrame(rawParams string) error {
	return fmt.Errorf("bad y4m frame (using %s)", rawParams)
}

// describeDecodeError maps a decoder failure onto the fixed category
// messages, independent of the specific malformed bytes.
func describeDecodeError(err error) error {
	var de *ports.DecodeError
	if !errors.As(err, &de) {
		return err
	}
	switch de.Kind {
	case ports.DecodeTruncated:
		return errors.New("the y4m file is truncated or invalid")
	case ports.DecodeBadMetadata:
		return errors.New("the y4m file contains invalid metadata")
	case ports.DecodeUnknownColorspace:
		return errors.New("y4m uses an unusual color format that is not supported")
	case ports.DecodeOutOfMemory:
		return errors.New("out of memory, or the y4m file has bogus dimensions")
	case ports.DecodeParse:
		if de.Err != nil {
			return fmt.Errorf("y4m contains invalid data: %w", de.Err)
		}
		return errors.New("the input is not a y4m file")
	case ports.DecodeIO:
		if de.Err != nil {
			return fmt.Errorf("i/o error when reading a y4m file: %w", de.Err)
		}
		return fmt.Errorf("i/o error when reading a y4m file: %s", de.Detail)
	default:
		return de
	}
}

var _ Source = (*Y4MSource)(nil)
