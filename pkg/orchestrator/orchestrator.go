// Package orchestrator wires the Y4M source to the GIF sink chain and
// runs a complete conversion or inspection.
package orchestrator

import (
	"fmt"
	"image"
	"io"

	"github.com/ideamans/go-l10n"

	"github.com/user/y4mgif/pkg/adapters/gifsink"
	"github.com/user/y4mgif/pkg/adapters/overlay"
	"github.com/user/y4mgif/pkg/adapters/y4mdecoder"
	"github.com/user/y4mgif/pkg/adapters/yuvconv"
	"github.com/user/y4mgif/pkg/ports"
	"github.com/user/y4mgif/pkg/source"
	"github.com/user/y4mgif/pkg/summarizer"
)

// Config contains all configuration for one run.
type Config struct {
	// InputPath is the Y4M file to read. Empty means standard input.
	InputPath string
	// OutputPath is where the encoded GIF is written.
	OutputPath string

	// FPS is the output frame rate. Zero means the source default.
	FPS int
	// Speed divides output timestamps. Zero means 1.0.
	Speed float64
	// Matrix forces a conversion matrix: "bt601", "bt709" or "" for
	// the resolution-based default.
	Matrix string

	// Width and Height resize the output; zero keeps the source size.
	Width  int
	Height int
	// LoopCount is the GIF loop count: 0 loops forever, -1 plays once.
	LoopCount int
	// Stamp burns each frame's timestamp into its pixels.
	Stamp bool
}

// RunResult reports what a conversion produced.
type RunResult struct {
	Frames   uint64
	FileSize int64
}

// Orchestrator runs conversions.
type Orchestrator struct {
	fs     ports.FileSystem
	logger ports.Logger
	stdin  io.Reader
}

// New creates an Orchestrator. stdin is the stream used when the input
// path is empty.
func New(fs ports.FileSystem, logger ports.Logger, stdin io.Reader) *Orchestrator {
	return &Orchestrator{
		fs:     fs,
		logger: logger,
		stdin:  stdin,
	}
}

// countingSink forwards frames and counts them, so the final frame
// count can be reported even though the GIF sink owns the buffer.
type countingSink struct {
	next   ports.FrameSink
	frames uint64
}

func (c *countingSink) AddFrame(index uint64, img *image.RGBA, timestampSeconds float64) error {
	if err := c.next.AddFrame(index, img, timestampSeconds); err != nil {
		return err
	}
	c.frames++
	return nil
}

// Run converts the configured input into a GIF at the output path.
func (o *Orchestrator) Run(config Config) (RunResult, error) {
	src, err := o.open(config)
	if err != nil {
		o.logger.Error(l10n.F("Failed to open input: %s", err))
		return RunResult{}, fmt.Errorf("open input: %w", err)
	}
	defer src.Close()

	if n, ok := src.TotalFrames(); ok {
		o.logger.Info(l10n.F("Estimated %d frames", n))
	} else {
		o.logger.Info(l10n.T("Frame count unknown (stream input)"))
	}

	gs := gifsink.New(gifsink.Options{
		Width:     config.Width,
		Height:    config.Height,
		LoopCount: config.LoopCount,
	})
	var sink ports.FrameSink = gs
	if config.Stamp {
		sink = overlay.New(gs)
	}
	counter := &countingSink{next: sink}

	if err := src.Collect(counter); err != nil {
		return RunResult{}, err
	}
	o.logger.Info(l10n.F("Collected %d frames", counter.frames))

	o.logger.Info(l10n.F("Encoding %d frames to GIF", counter.frames))
	data, err := gs.End()
	if err != nil {
		o.logger.Error(l10n.F("Failed to encode GIF: %s", err))
		return RunResult{}, fmt.Errorf("encode gif: %w", err)
	}
	o.logger.Info(l10n.F("GIF encoded: %d bytes", len(data)))

	if err := o.fs.WriteFile(config.OutputPath, data); err != nil {
		o.logger.Error(l10n.F("Failed to write output: %s", err))
		return RunResult{}, fmt.Errorf("write output: %w", err)
	}
	o.logger.Info(l10n.F("Output saved to %s", config.OutputPath))

	return RunResult{
		Frames:   counter.frames,
		FileSize: int64(len(data)),
	}, nil
}

// Inspect reads only the stream header and returns a summary of the
// container metadata, resolved color parameters and frame estimate.
func (o *Orchestrator) Inspect(config Config) (*summarizer.Summary, error) {
	var (
		r        io.Reader
		fileSize int64
		hasSize  bool
		name     = config.InputPath
	)
	if config.InputPath == "" {
		r = o.stdin
		name = "<stdin>"
	} else {
		f, err := o.fs.Open(config.InputPath)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		fileSize, hasSize = o.fs.ByteLength(config.InputPath)
		r = f
	}

	dec, err := y4mdecoder.New(r)
	if err != nil {
		return nil, err
	}

	matrix := source.ResolveMatrix(matrixOverride(config.Matrix), dec.Width(), dec.Height())
	rng := source.ResolveRange(dec.RawParams())

	var estimate uint64
	hasEstimate := false
	if hasSize {
		estimate, hasEstimate = source.EstimateFrames(fileSize, dec)
	}
	return summarizer.New(name, dec, matrix, rng, estimate, hasEstimate), nil
}

func (o *Orchestrator) open(config Config) (*source.Y4MSource, error) {
	in := source.FromStream(o.stdin)
	if config.InputPath != "" {
		in = source.FromPath(config.InputPath)
		o.logger.Info(l10n.F("Reading %s...", config.InputPath))
	} else {
		o.logger.Info(l10n.T("Reading standard input..."))
	}

	return source.New(in, source.Fps{FPS: config.FPS, Speed: config.Speed}, matrixOverride(config.Matrix), source.Deps{
		FS:        o.fs,
		Converter: yuvconv.New(),
		NewDecoder: func(r io.Reader) (ports.ContainerDecoder, error) {
			return y4mdecoder.New(r)
		},
	})
}

func matrixOverride(name string) *ports.Matrix {
	var m ports.Matrix
	switch name {
	case "bt601":
		m = ports.MatrixBT601
	case "bt709":
		m = ports.MatrixBT709
	default:
		return nil
	}
	return &m
}
