// Package yuvconv converts 8-bit planar YUV frames to interleaved RGBA
// with fixed-point arithmetic, for the BT.601 and BT.709 matrices in
// both limited and full range.
package yuvconv

import (
	"fmt"

	"github.com/user/y4mgif/pkg/ports"
)

// precision is the fixed-point fraction width of the coefficients.
const precision = 13

// coeffs holds the expanded conversion coefficients for one
// range/matrix combination, scaled by 1<<precision.
type coeffs struct {
	yMul int32
	yOff int32
	rCr  int32
	gCb  int32
	gCr  int32
	bCb  int32
}

func scaled(v float64) int32 {
	return int32(v*(1<<precision) + 0.5)
}

func coefficientsFor(rng ports.Range, matrix ports.Matrix) coeffs {
	kr, kb := 0.299, 0.114
	if matrix == ports.MatrixBT709 {
		kr, kb = 0.2126, 0.0722
	}
	kg := 1.0 - kr - kb

	// Range scaling: limited range maps 16-235 luma and 16-240 chroma
	// onto the full 8-bit output swing.
	yScale, cScale := 1.0, 1.0
	var yOff int32
	if rng == ports.RangeLimited {
		yScale = 255.0 / 219.0
		cScale = 255.0 / 224.0
		yOff = 16
	}

	return coeffs{
		yMul: scaled(yScale),
		yOff: yOff,
		rCr:  scaled(2 * (1 - kr) * cScale),
		gCb:  scaled(2 * kb * (1 - kb) / kg * cScale),
		gCr:  scaled(2 * kr * (1 - kr) / kg * cScale),
		bCb:  scaled(2 * (1 - kb) * cScale),
	}
}

// Converter implements ports.YUVConverter.
type Converter struct{}

// New creates a Converter.
func New() *Converter {
	return &Converter{}
}

// Gray converts a single-plane frame, replicating luma into R, G and B.
func (c *Converter) Gray(img ports.GrayImage, dst []byte, dstStride int, rng ports.Range, matrix ports.Matrix) error {
	if err := checkPlane("y", img.Y, img.YStride, img.Width, img.Height); err != nil {
		return err
	}
	if err := checkDst(dst, dstStride, img.Width, img.Height); err != nil {
		return err
	}
	co := coefficientsFor(rng, matrix)
	for row := 0; row < img.Height; row++ {
		yRow := img.Y[row*img.YStride:]
		out := dst[row*dstStride:]
		for col := 0; col < img.Width; col++ {
			y := int32(yRow[col]) - co.yOff
			v := clamp((co.yMul*y + 1<<(precision-1)) >> precision)
			o := col * 4
			out[o+0] = v
			out[o+1] = v
			out[o+2] = v
			out[o+3] = 255
		}
	}
	return nil
}

// I444 converts a frame with chroma at full resolution.
func (c *Converter) I444(img ports.PlanarImage, dst []byte, dstStride int, rng ports.Range, matrix ports.Matrix) error {
	return c.planar(img, dst, dstStride, rng, matrix, 0, 0)
}

// I422 converts a frame with chroma at half horizontal resolution.
func (c *Converter) I422(img ports.PlanarImage, dst []byte, dstStride int, rng ports.Range, matrix ports.Matrix) error {
	return c.planar(img, dst, dstStride, rng, matrix, 1, 0)
}

// I420 converts a frame with chroma at half resolution on both axes.
func (c *Converter) I420(img ports.PlanarImage, dst []byte, dstStride int, rng ports.Range, matrix ports.Matrix) error {
	return c.planar(img, dst, dstStride, rng, matrix, 1, 1)
}

// planar converts a three-plane frame. sx and sy are the log2 chroma
// subsampling factors per axis.
func (c *Converter) planar(img ports.PlanarImage, dst []byte, dstStride int, rng ports.Range, matrix ports.Matrix, sx, sy uint) error {
	cw := ((img.Width - 1) >> sx) + 1
	ch := ((img.Height - 1) >> sy) + 1
	if err := checkPlane("y", img.Y, img.YStride, img.Width, img.Height); err != nil {
		return err
	}
	if err := checkPlane("cb", img.Cb, img.CbStride, cw, ch); err != nil {
		return err
	}
	if err := checkPlane("cr", img.Cr, img.CrStride, cw, ch); err != nil {
		return err
	}
	if err := checkDst(dst, dstStride, img.Width, img.Height); err != nil {
		return err
	}

	co := coefficientsFor(rng, matrix)
	const half = 1 << (precision - 1)
	for row := 0; row < img.Height; row++ {
		yRow := img.Y[row*img.YStride:]
		cbRow := img.Cb[(row>>sy)*img.CbStride:]
		crRow := img.Cr[(row>>sy)*img.CrStride:]
		out := dst[row*dstStride:]
		for col := 0; col < img.Width; col++ {
			y := co.yMul * (int32(yRow[col]) - co.yOff)
			cb := int32(cbRow[col>>sx]) - 128
			cr := int32(crRow[col>>sx]) - 128
			o := col * 4
			out[o+0] = clamp((y + co.rCr*cr + half) >> precision)
			out[o+1] = clamp((y - co.gCb*cb - co.gCr*cr + half) >> precision)
			out[o+2] = clamp((y + co.bCb*cb + half) >> precision)
			out[o+3] = 255
		}
	}
	return nil
}

func clamp(v int32) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}

func checkPlane(name string, p []byte, stride, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("empty image (%dx%d)", width, height)
	}
	if stride < width {
		return fmt.Errorf("%s stride %d shorter than row width %d", name, stride, width)
	}
	need := (height-1)*stride + width
	if len(p) < need {
		return fmt.Errorf("%s plane too short: %d < %d", name, len(p), need)
	}
	return nil
}

func checkDst(dst []byte, stride, width, height int) error {
	if stride < width*4 {
		return fmt.Errorf("destination stride %d shorter than row bytes %d", stride, width*4)
	}
	need := (height-1)*stride + width*4
	if len(dst) < need {
		return fmt.Errorf("destination buffer too short: %d < %d", len(dst), need)
	}
	return nil
}

var _ ports.YUVConverter = (*Converter)(nil)
