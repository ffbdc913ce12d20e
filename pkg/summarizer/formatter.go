package summarizer

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
)

// Formatter defines the interface for formatting a Summary.
type Formatter interface {
	// Format converts a Summary to a formatted string.
	Format(summary *Summary) (string, error)
}

// FormatFunc is a function adapter for the Formatter interface.
type FormatFunc func(summary *Summary) (string, error)

// Format implements the Formatter interface.
func (f FormatFunc) Format(summary *Summary) (string, error) {
	return f(summary)
}

// NewTextFormatter formats a summary as aligned key/value text.
func NewTextFormatter() Formatter {
	return FormatFunc(func(s *Summary) (string, error) {
		var b strings.Builder
		write := func(key, format string, args ...interface{}) {
			fmt.Fprintf(&b, "%-12s %s\n", key+":", fmt.Sprintf(format, args...))
		}
		write("Input", "%s", s.Input)
		write("Size", "%dx%d", s.Stream.Width, s.Stream.Height)
		write("Frame rate", "%d:%d", s.Stream.FrameRateNum, s.Stream.FrameRateDen)
		write("Colorspace", "%s (%d byte/sample)", s.Stream.Colorspace, s.Stream.BytesPerSample)
		write("Matrix", "%s", s.Color.Matrix)
		write("Range", "%s", s.Color.Range)
		if s.EstimatedFrames != nil {
			write("Frames", "~%d (estimated)", *s.EstimatedFrames)
		} else {
			write("Frames", "unknown (stream input)")
		}
		if s.EstimatedDurationSeconds != nil {
			write("Duration", "~%.2fs (estimated)", *s.EstimatedDurationSeconds)
		}
		return b.String(), nil
	})
}

// NewJSONFormatter formats a summary as indented JSON.
func NewJSONFormatter() Formatter {
	return FormatFunc(func(s *Summary) (string, error) {
		data, err := sonic.MarshalIndent(s, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshal summary: %w", err)
		}
		return string(data) + "\n", nil
	})
}
