package ports

// Range selects between full-scale and studio-swing sample values.
type Range int

const (
	// RangeLimited is the studio range (16-235 luma, 16-240 chroma).
	RangeLimited Range = iota
	// RangeFull uses the entire 0-255 range.
	RangeFull
)

// String returns the range name.
func (r Range) String() string {
	if r == RangeFull {
		return "full"
	}
	return "limited"
}

// Matrix selects the YUV to RGB conversion coefficients.
type Matrix int

const (
	// MatrixBT601 is the standard-definition matrix.
	MatrixBT601 Matrix = iota
	// MatrixBT709 is the high-definition matrix.
	MatrixBT709
)

// String returns the matrix name.
func (m Matrix) String() string {
	if m == MatrixBT709 {
		return "bt709"
	}
	return "bt601"
}

// GrayImage is a planar view of a single-plane frame.
type GrayImage struct {
	Y       []byte
	YStride int
	Width   int
	Height  int
}

// PlanarImage is a planar view of a three-plane frame. Chroma strides
// depend on the subsampling: full width for 4:4:4, ceil(width/2) for
// 4:2:2 and 4:2:0.
type PlanarImage struct {
	Y        []byte
	YStride  int
	Cb       []byte
	CbStride int
	Cr       []byte
	CrStride int
	Width    int
	Height   int
}

// YUVConverter converts 8-bit planar frames to interleaved RGBA. Each
// method writes Width*Height pixels into dst at dstStride bytes per
// row, with alpha forced to 255.
type YUVConverter interface {
	// Gray converts a single-plane frame.
	Gray(img GrayImage, dst []byte, dstStride int, rng Range, matrix Matrix) error

	// I444 converts a frame with chroma at full resolution.
	I444(img PlanarImage, dst []byte, dstStride int, rng Range, matrix Matrix) error

	// I422 converts a frame with chroma at half horizontal resolution.
	I422(img PlanarImage, dst []byte, dstStride int, rng Range, matrix Matrix) error

	// I420 converts a frame with chroma at half resolution on both axes.
	I420(img PlanarImage, dst []byte, dstStride int, rng Range, matrix Matrix) error
}
