// Package y4mdecoder reads the YUV4MPEG2 container: a text header line
// followed by FRAME-delimited raw planar frames.
package y4mdecoder

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/user/y4mgif/pkg/ports"
)

const (
	magic = "YUV4MPEG2"

	// maxLineBytes bounds the header and frame marker lines.
	maxLineBytes = 2048

	// maxFrameBytes trips the allocation guard for bogus dimensions.
	maxFrameBytes = 1 << 30

	// frameOverhead is the byte cost of a bare "FRAME\n" marker.
	frameOverhead = 6
)

// Decoder reads frames from a YUV4MPEG2 stream. It owns the reader for
// its whole lifetime and is not safe for concurrent use.
type Decoder struct {
	r *bufio.Reader

	width          int
	height         int
	rate           ports.Rational
	colorspace     ports.Colorspace
	bytesPerSample int
	rawParams      []byte

	ySize int
	cSize int
}

// New parses the stream header and returns a decoder positioned at the
// first frame.
func New(r io.Reader) (*Decoder, error) {
	d := &Decoder{
		r:          bufio.NewReader(r),
		colorspace: ports.Cs420,
	}
	if err := d.parseHeader(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Decoder) Width() int                  { return d.width }
func (d *Decoder) Height() int                 { return d.height }
func (d *Decoder) FrameRate() ports.Rational   { return d.rate }
func (d *Decoder) Colorspace() ports.Colorspace { return d.colorspace }
func (d *Decoder) BytesPerSample() int         { return d.bytesPerSample }
func (d *Decoder) RawParams() []byte           { return d.rawParams }
func (d *Decoder) FrameOverhead() int          { return frameOverhead }

// ReadFrame reads the next frame marker and plane data. It returns
// ports.ErrEndOfStream at a clean frame boundary.
func (d *Decoder) ReadFrame() (*ports.RawFrame, error) {
	line, err := d.readLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			if len(line) == 0 {
				return nil, ports.ErrEndOfStream
			}
			return nil, &ports.DecodeError{Kind: ports.DecodeTruncated, Detail: "truncated frame marker"}
		}
		return nil, err
	}
	if !bytes.HasPrefix(line, []byte("FRAME")) {
		return nil, &ports.DecodeError{Kind: ports.DecodeParse, Detail: "missing FRAME marker"}
	}

	frame := &ports.RawFrame{Y: make([]byte, d.ySize)}
	if err := d.readPlane(frame.Y); err != nil {
		return nil, err
	}
	if d.cSize > 0 {
		frame.Cb = make([]byte, d.cSize)
		frame.Cr = make([]byte, d.cSize)
		if err := d.readPlane(frame.Cb); err != nil {
			return nil, err
		}
		if err := d.readPlane(frame.Cr); err != nil {
			return nil, err
		}
	}
	return frame, nil
}

func (d *Decoder) readPlane(p []byte) error {
	if _, err := io.ReadFull(d.r, p); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return &ports.DecodeError{Kind: ports.DecodeTruncated, Detail: "truncated frame data"}
		}
		return &ports.DecodeError{Kind: ports.DecodeIO, Detail: "read frame data", Err: err}
	}
	return nil
}

// readLine reads up to and including the next newline, returning the
// line without it. An io.EOF is passed through with whatever bytes
// were read so the caller can tell clean EOF from truncation.
func (d *Decoder) readLine() ([]byte, error) {
	var line []byte
	for {
		b, err := d.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return line, io.EOF
			}
			return line, &ports.DecodeError{Kind: ports.DecodeIO, Detail: "read stream", Err: err}
		}
		if b == '\n' {
			return line, nil
		}
		line = append(line, b)
		if len(line) > maxLineBytes {
			return line, &ports.DecodeError{Kind: ports.DecodeParse, Detail: "header line too long"}
		}
	}
}

func (d *Decoder) parseHeader() error {
	line, err := d.readLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &ports.DecodeError{Kind: ports.DecodeTruncated, Detail: "unexpected end of stream in header"}
		}
		return err
	}
	header := string(line)
	if !strings.HasPrefix(header, magic) {
		return &ports.DecodeError{Kind: ports.DecodeParse, Detail: "missing YUV4MPEG2 signature"}
	}

	// Raw params keep the whole header line plus its newline, so the
	// header's exact byte length can be subtracted from the file size.
	d.rawParams = append(line, '\n')

	d.bytesPerSample = 1
	sawRate := false
	for _, tok := range strings.Fields(header[len(magic):]) {
		key, val := tok[0], tok[1:]
		switch key {
		case 'W':
			n, err := strconv.Atoi(val)
			if err != nil || n < 0 {
				return &ports.DecodeError{Kind: ports.DecodeBadMetadata, Detail: "bad width " + val}
			}
			d.width = n
		case 'H':
			n, err := strconv.Atoi(val)
			if err != nil || n < 0 {
				return &ports.DecodeError{Kind: ports.DecodeBadMetadata, Detail: "bad height " + val}
			}
			d.height = n
		case 'F':
			num, den, ok := strings.Cut(val, ":")
			if !ok {
				return &ports.DecodeError{Kind: ports.DecodeBadMetadata, Detail: "bad frame rate " + val}
			}
			n, err1 := strconv.Atoi(num)
			m, err2 := strconv.Atoi(den)
			if err1 != nil || err2 != nil || n <= 0 || m <= 0 {
				return &ports.DecodeError{Kind: ports.DecodeBadMetadata, Detail: "bad frame rate " + val}
			}
			d.rate = ports.Rational{Num: n, Den: m}
			sawRate = true
		case 'C':
			cs, bps, ok := parseColorspace(val)
			if !ok {
				return &ports.DecodeError{Kind: ports.DecodeUnknownColorspace, Detail: "unknown colorspace C" + val}
			}
			d.colorspace = cs
			d.bytesPerSample = bps
		case 'I', 'A', 'X':
			// Interlacing, aspect ratio and extensions are carried in
			// rawParams but not interpreted here.
		default:
			return &ports.DecodeError{Kind: ports.DecodeBadMetadata, Detail: "unknown header field " + tok}
		}
	}
	if !sawRate {
		return &ports.DecodeError{Kind: ports.DecodeBadMetadata, Detail: "missing frame rate"}
	}

	d.ySize, d.cSize = planeSizes(d.colorspace, d.width, d.height, d.bytesPerSample)
	if total := int64(d.ySize) + 2*int64(d.cSize); total > maxFrameBytes {
		return &ports.DecodeError{Kind: ports.DecodeOutOfMemory, Detail: "frame size exceeds allocation guard"}
	}
	return nil
}

// parseColorspace maps a C token to the colorspace tag and its storage
// bytes per sample. Modes the container defines but this tool cannot
// convert (4:1:1 and 4:1:0) come back as CsOther so the caller can
// report them with the raw header text.
func parseColorspace(val string) (ports.Colorspace, int, bool) {
	switch val {
	case "mono":
		return ports.CsMono, 1, true
	case "mono12":
		return ports.CsMono12, 2, true
	case "420":
		return ports.Cs420, 1, true
	case "420p10":
		return ports.Cs420P10, 2, true
	case "420p12":
		return ports.Cs420P12, 2, true
	case "420jpeg":
		return ports.Cs420JPEG, 1, true
	case "420paldv":
		return ports.Cs420PALDV, 1, true
	case "420mpeg2":
		return ports.Cs420MPEG2, 1, true
	case "422":
		return ports.Cs422, 1, true
	case "422p10":
		return ports.Cs422P10, 2, true
	case "422p12":
		return ports.Cs422P12, 2, true
	case "444":
		return ports.Cs444, 1, true
	case "444p10":
		return ports.Cs444P10, 2, true
	case "444p12":
		return ports.Cs444P12, 2, true
	case "411", "410":
		return ports.CsOther, 1, true
	default:
		return 0, 0, false
	}
}

// planeSizes returns the byte sizes of the luma plane and of each
// chroma plane. Odd dimensions round the subsampled axes up.
func planeSizes(cs ports.Colorspace, width, height, bps int) (ySize, cSize int) {
	ySize = width * height * bps
	switch cs {
	case ports.CsMono, ports.CsMono12:
		cSize = 0
	case ports.Cs420, ports.Cs420P10, ports.Cs420P12,
		ports.Cs420JPEG, ports.Cs420PALDV, ports.Cs420MPEG2:
		cSize = ((width + 1) / 2) * ((height + 1) / 2) * bps
	case ports.Cs422, ports.Cs422P10, ports.Cs422P12:
		cSize = ((width + 1) / 2) * height * bps
	case ports.Cs444, ports.Cs444P10, ports.Cs444P12:
		cSize = width * height * bps
	default:
		// 4:1:1 style modes: chroma at quarter horizontal resolution.
		cSize = ((width + 3) / 4) * height * bps
	}
	return ySize, cSize
}

var _ ports.ContainerDecoder = (*Decoder)(nil)
