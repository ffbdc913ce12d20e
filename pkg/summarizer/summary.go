// Package summarizer describes a Y4M stream for the info command:
// container metadata, resolved color parameters and the frame estimate.
package summarizer

import (
	"time"

	"github.com/google/uuid"

	"github.com/user/y4mgif/pkg/ports"
)

// Summary contains everything the info command reports about a stream.
type Summary struct {
	// RunID identifies one inspection run in logs and JSON output.
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`

	Input string `json:"input"`

	Stream StreamInfo `json:"stream"`
	Color  ColorInfo  `json:"color"`

	// EstimatedFrames is nil when the input byte length is unknown.
	EstimatedFrames *uint64 `json:"estimated_frames,omitempty"`

	// EstimatedDurationSeconds is nil when EstimatedFrames is.
	EstimatedDurationSeconds *float64 `json:"estimated_duration_seconds,omitempty"`
}

// StreamInfo contains the container metadata.
type StreamInfo struct {
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	FrameRateNum   int    `json:"frame_rate_num"`
	FrameRateDen   int    `json:"frame_rate_den"`
	Colorspace     string `json:"colorspace"`
	BytesPerSample int    `json:"bytes_per_sample"`
	RawParams      string `json:"raw_params"`
}

// ColorInfo contains the resolved conversion parameters.
type ColorInfo struct {
	Matrix string `json:"matrix"`
	Range  string `json:"range"`
}

// New builds a Summary from container metadata and resolved color
// parameters. estimate carries the frame estimate when hasEstimate.
func New(input string, dec ports.ContainerDecoder, matrix ports.Matrix, rng ports.Range, estimate uint64, hasEstimate bool) *Summary {
	s := &Summary{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now(),
		Input:       input,
		Stream: StreamInfo{
			Width:          dec.Width(),
			Height:         dec.Height(),
			FrameRateNum:   dec.FrameRate().Num,
			FrameRateDen:   dec.FrameRate().Den,
			Colorspace:     dec.Colorspace().String(),
			BytesPerSample: dec.BytesPerSample(),
			RawParams:      string(dec.RawParams()),
		},
		Color: ColorInfo{
			Matrix: matrix.String(),
			Range:  rng.String(),
		},
	}
	if hasEstimate {
		n := estimate
		s.EstimatedFrames = &n
		if rate := s.Stream.FrameRateNum; rate > 0 {
			d := float64(n) * float64(s.Stream.FrameRateDen) / float64(rate)
			s.EstimatedDurationSeconds = &d
		}
	}
	return s
}
