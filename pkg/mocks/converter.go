package mocks

import (
	"github.com/user/y4mgif/pkg/ports"
)

// YUVConverter is a mock implementation of ports.YUVConverter. It
// fills the destination with Fill and records which family was used.
type YUVConverter struct {
	Fill byte
	Err  error

	// Recorded calls for verification
	GrayCalls []ConvertCall
	I444Calls []ConvertCall
	I422Calls []ConvertCall
	I420Calls []ConvertCall
}

// ConvertCall records the parameters of one conversion.
type ConvertCall struct {
	Width    int
	Height   int
	YStride  int
	CbStride int
	CrStride int
	Range    ports.Range
	Matrix   ports.Matrix
}

func (m *YUVConverter) fill(dst []byte) {
	for i := range dst {
		dst[i] = m.Fill
	}
}

func (m *YUVConverter) Gray(img ports.GrayImage, dst []byte, dstStride int, rng ports.Range, matrix ports.Matrix) error {
	m.GrayCalls = append(m.GrayCalls, ConvertCall{
		Width: img.Width, Height: img.Height, YStride: img.YStride,
		Range: rng, Matrix: matrix,
	})
	if m.Err != nil {
		return m.Err
	}
	m.fill(dst)
	return nil
}

func (m *YUVConverter) planar(calls *[]ConvertCall, img ports.PlanarImage, dst []byte, rng ports.Range, matrix ports.Matrix) error {
	*calls = append(*calls, ConvertCall{
		Width: img.Width, Height: img.Height, YStride: img.YStride,
		CbStride: img.CbStride, CrStride: img.CrStride,
		Range: rng, Matrix: matrix,
	})
	if m.Err != nil {
		return m.Err
	}
	m.fill(dst)
	return nil
}

func (m *YUVConverter) I444(img ports.PlanarImage, dst []byte, dstStride int, rng ports.Range, matrix ports.Matrix) error {
	return m.planar(&m.I444Calls, img, dst, rng, matrix)
}

func (m *YUVConverter) I422(img ports.PlanarImage, dst []byte, dstStride int, rng ports.Range, matrix ports.Matrix) error {
	return m.planar(&m.I422Calls, img, dst, rng, matrix)
}

func (m *YUVConverter) I420(img ports.PlanarImage, dst []byte, dstStride int, rng ports.Range, matrix ports.Matrix) error {
	return m.planar(&m.I420Calls, img, dst, rng, matrix)
}

var _ ports.YUVConverter = (*YUVConverter)(nil)
