package y4mdecoder

import (
	"errors"
	"strings"
	"testing"

	"github.com/user/y4mgif/pkg/ports"
)

// clip builds a stream with the given header and n frames of body bytes.
func clip(header string, frameBody int, n int) string {
	var b strings.Builder
	b.WriteString(header)
	for i := 0; i < n; i++ {
		b.WriteString("FRAME\n")
		b.Write(make([]byte, frameBody))
	}
	return b.String()
}

func TestNew_ParsesHeader(t *testing.T) {
	header := "YUV4MPEG2 W4 H2 F30000:1001 Ip A1:1 C422 XCOLORRANGE=FULL\n"
	d, err := New(strings.NewReader(header))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if d.Width() != 4 || d.Height() != 2 {
		t.Errorf("expected 4x2, got %dx%d", d.Width(), d.Height())
	}
	if r := d.FrameRate(); r.Num != 30000 || r.Den != 1001 {
		t.Errorf("expected 30000:1001, got %d:%d", r.Num, r.Den)
	}
	if d.Colorspace() != ports.Cs422 {
		t.Errorf("expected 422, got %v", d.Colorspace())
	}
	if d.BytesPerSample() != 1 {
		t.Errorf("expected 1 byte per sample, got %d", d.BytesPerSample())
	}
	// The raw header is kept verbatim, newline included, so its byte
	// length can be subtracted from the file size.
	if string(d.RawParams()) != header {
		t.Errorf("expected raw params %q, got %q", header, d.RawParams())
	}
	if d.FrameOverhead() != 6 {
		t.Errorf("expected per-frame overhead 6, got %d", d.FrameOverhead())
	}
}

func TestNew_DefaultColorspaceIs420(t *testing.T) {
	d, err := New(strings.NewReader("YUV4MPEG2 W4 H4 F25:1\n"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if d.Colorspace() != ports.Cs420 {
		t.Errorf("expected implicit 420, got %v", d.Colorspace())
	}
}

func TestNew_TwoBytesPerSampleModes(t *testing.T) {
	d, err := New(strings.NewReader("YUV4MPEG2 W4 H4 F25:1 C420p10\n"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if d.Colorspace() != ports.Cs420P10 {
		t.Errorf("expected 420p10, got %v", d.Colorspace())
	}
	if d.BytesPerSample() != 2 {
		t.Errorf("expected 2 bytes per sample, got %d", d.BytesPerSample())
	}
}

func TestNew_HeaderErrors(t *testing.T) {
	tests := []struct {
		name   string
		stream string
		kind   ports.DecodeErrorKind
	}{
		{name: "missing magic", stream: "RIFF....\n", kind: ports.DecodeParse},
		{name: "empty stream", stream: "", kind: ports.DecodeTruncated},
		{name: "header without newline", stream: "YUV4MPEG2 W4 H4 F25:1", kind: ports.DecodeTruncated},
		{name: "negative width", stream: "YUV4MPEG2 W-4 H4 F25:1\n", kind: ports.DecodeBadMetadata},
		{name: "non-numeric height", stream: "YUV4MPEG2 W4 Hx F25:1\n", kind: ports.DecodeBadMetadata},
		{name: "missing frame rate", stream: "YUV4MPEG2 W4 H4\n", kind: ports.DecodeBadMetadata},
		{name: "rate without colon", stream: "YUV4MPEG2 W4 H4 F25\n", kind: ports.DecodeBadMetadata},
		{name: "zero rate numerator", stream: "YUV4MPEG2 W4 H4 F0:1\n", kind: ports.DecodeBadMetadata},
		{name: "unknown colorspace", stream: "YUV4MPEG2 W4 H4 F25:1 C999\n", kind: ports.DecodeUnknownColorspace},
		{name: "unknown header field", stream: "YUV4MPEG2 W4 H4 F25:1 Q7\n", kind: ports.DecodeBadMetadata},
		{name: "bogus dimensions", stream: "YUV4MPEG2 W100000 H100000 F25:1 C444\n", kind: ports.DecodeOutOfMemory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(strings.NewReader(tt.stream))
			var de *ports.DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("expected a decode error, got %v", err)
			}
			if de.Kind != tt.kind {
				t.Errorf("expected kind %v, got %v (%s)", tt.kind, de.Kind, de.Detail)
			}
		})
	}
}

func TestReadFrame_PlaneSizes(t *testing.T) {
	// Odd dimensions exercise the subsampled-axis rounding.
	tests := []struct {
		name   string
		header string
		ySize  int
		cSize  int
	}{
		{name: "mono", header: "YUV4MPEG2 W5 H3 F25:1 Cmono\n", ySize: 15, cSize: 0},
		{name: "420 rounds both axes", header: "YUV4MPEG2 W5 H3 F25:1 C420\n", ySize: 15, cSize: 6},
		{name: "422 rounds width", header: "YUV4MPEG2 W5 H3 F25:1 C422\n", ySize: 15, cSize: 9},
		{name: "444 full chroma", header: "YUV4MPEG2 W5 H3 F25:1 C444\n", ySize: 15, cSize: 15},
		{name: "411 quarter width", header: "YUV4MPEG2 W5 H3 F25:1 C411\n", ySize: 15, cSize: 6},
		{name: "420p10 doubles bytes", header: "YUV4MPEG2 W5 H3 F25:1 C420p10\n", ySize: 30, cSize: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := New(strings.NewReader(clip(tt.header, tt.ySize+2*tt.cSize, 1)))
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			frame, err := d.ReadFrame()
			if err != nil {
				t.Fatalf("ReadFrame failed: %v", err)
			}
			if len(frame.Y) != tt.ySize {
				t.Errorf("expected %d luma bytes, got %d", tt.ySize, len(frame.Y))
			}
			if len(frame.Cb) != tt.cSize || len(frame.Cr) != tt.cSize {
				t.Errorf("expected %d chroma bytes, got %d/%d", tt.cSize, len(frame.Cb), len(frame.Cr))
			}
		})
	}
}

func TestReadFrame_DeliversPlaneData(t *testing.T) {
	var b strings.Builder
	b.WriteString("YUV4MPEG2 W2 H2 F25:1 C420\n")
	b.WriteString("FRAME\n")
	b.Write([]byte{1, 2, 3, 4}) // Y
	b.Write([]byte{5})          // Cb
	b.Write([]byte{6})          // Cr

	d, err := New(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	frame, err := d.ReadFrame()
	if err != nil {
		t.Fatalf("ReadFrame failed: %v", err)
	}
	if frame.Y[0] != 1 || frame.Y[3] != 4 {
		t.Errorf("unexpected luma bytes %v", frame.Y)
	}
	if frame.Cb[0] != 5 || frame.Cr[0] != 6 {
		t.Errorf("unexpected chroma bytes %v / %v", frame.Cb, frame.Cr)
	}

	// Each frame gets fresh plane buffers; the caller may hold the
	// previous frame across reads.
	if _, err := d.ReadFrame(); !errors.Is(err, ports.ErrEndOfStream) {
		t.Fatalf("expected end of stream, got %v", err)
	}
	if frame.Y[0] != 1 {
		t.Error("previous frame mutated by a later read")
	}
}

func TestReadFrame_CleanEOF(t *testing.T) {
	d, err := New(strings.NewReader(clip("YUV4MPEG2 W2 H2 F25:1 Cmono\n", 4, 2)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, err := d.ReadFrame(); err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
	}
	if _, err := d.ReadFrame(); !errors.Is(err, ports.ErrEndOfStream) {
		t.Fatalf("expected end of stream at a frame boundary, got %v", err)
	}
	// Repeated reads keep returning the sentinel.
	if _, err := d.ReadFrame(); !errors.Is(err, ports.ErrEndOfStream) {
		t.Fatalf("expected a stable end-of-stream sentinel, got %v", err)
	}
}

func TestReadFrame_TruncationKinds(t *testing.T) {
	header := "YUV4MPEG2 W2 H2 F25:1 Cmono\n"
	tests := []struct {
		name   string
		stream string
		kind   ports.DecodeErrorKind
	}{
		{name: "cut mid-marker", stream: header + "FRA", kind: ports.DecodeTruncated},
		{name: "cut mid-plane", stream: header + "FRAME\n\x00\x00", kind: ports.DecodeTruncated},
		{name: "garbage instead of marker", stream: header + "JUNK\n\x00\x00\x00\x00", kind: ports.DecodeParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := New(strings.NewReader(tt.stream))
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			_, err = d.ReadFrame()
			var de *ports.DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("expected a decode error, got %v", err)
			}
			if de.Kind != tt.kind {
				t.Errorf("expected kind %v, got %v (%s)", tt.kind, de.Kind, de.Detail)
			}
		})
	}
}

func TestReadFrame_MarkerMayCarryParameters(t *testing.T) {
	// The FRAME line may repeat parameters; they are ignored.
	stream := "YUV4MPEG2 W2 H2 F25:1 Cmono\nFRAME Xsome=thing\n\x00\x00\x00\x00"
	d, err := New(strings.NewReader(stream))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := d.ReadFrame(); err != nil {
		t.Fatalf("ReadFrame failed: %v", err)
	}
}
