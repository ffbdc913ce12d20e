// Package main provides the CLI entry point for y4mgif.
package main

import (
	"fmt"
	"os"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/y4mgif/pkg/adapters/logger"
	"github.com/user/y4mgif/pkg/adapters/osfilesystem"
	"github.com/user/y4mgif/pkg/config"
	"github.com/user/y4mgif/pkg/orchestrator"
	"github.com/user/y4mgif/pkg/ports"
	"github.com/user/y4mgif/pkg/summarizer"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:    "y4mgif",
		Usage:   l10n.T("Convert raw Y4M video into animated GIF"),
		Version: version,
		Commands: []*cli.Command{
			convertCommand(),
			infoCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func convertCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     l10n.T("Convert a Y4M file (or - for stdin) to an animated GIF"),
		ArgsUsage: "INPUT",
		Flags: append(commonFlags(),
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Required: true, Usage: l10n.T("Output GIF file path")},
			&cli.IntFlag{Name: "fps", Usage: l10n.T("Output frame rate (default: 20)")},
			&cli.Float64Flag{Name: "speed", Usage: l10n.T("Playback speed multiplier (2.0 plays twice as fast)")},
			&cli.IntFlag{Name: "width", Aliases: []string{"W"}, Usage: l10n.T("Output width (0 keeps source)")},
			&cli.IntFlag{Name: "height", Aliases: []string{"H"}, Usage: l10n.T("Output height (0 keeps source)")},
			&cli.IntFlag{Name: "loop", Usage: l10n.T("GIF loop count (0 loops forever, -1 plays once)")},
			&cli.BoolFlag{Name: "stamp", Usage: l10n.T("Burn the presentation timestamp into each frame")},
		),
		Action: runConvert,
	}
}

func infoCommand() *cli.Command {
	return &cli.Command{
		Name:      "info",
		Usage:     l10n.T("Print stream metadata and an estimated frame count"),
		ArgsUsage: "INPUT",
		Flags: append(commonFlags(),
			&cli.BoolFlag{Name: "json", Usage: l10n.T("Print the summary as JSON")},
		),
		Action: runInfo,
	}
}

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: l10n.T("YAML configuration file")},
		&cli.StringFlag{Name: "matrix", Usage: l10n.T("Force color matrix: bt601 or bt709")},
		&cli.StringFlag{Name: "log-level", Aliases: []string{"l"}, Value: "info", Usage: l10n.T("Log level (debug, info, warn, error)")},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"Q"}, Usage: l10n.T("Suppress all log output")},
	}
}

func runConvert(c *cli.Context) error {
	cfg, err := buildConfig(c)
	if err != nil {
		return err
	}
	cfg.OutputPath = c.String("output")

	orch := orchestrator.New(osfilesystem.New(), buildLogger(cfg), os.Stdin)
	_, err = orch.Run(orchestratorConfig(cfg))
	return err
}

func runInfo(c *cli.Context) error {
	cfg, err := buildConfig(c)
	if err != nil {
		return err
	}

	orch := orchestrator.New(osfilesystem.New(), logger.NewNoop(), os.Stdin)
	summary, err := orch.Inspect(orchestratorConfig(cfg))
	if err != nil {
		return err
	}

	formatter := summarizer.NewTextFormatter()
	if c.Bool("json") {
		formatter = summarizer.NewJSONFormatter()
	}
	text, err := formatter.Format(summary)
	if err != nil {
		return err
	}
	fmt.Print(text)
	return nil
}

// buildConfig merges a config file, defaults and CLI flags, flags last.
func buildConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if c.NArg() > 0 {
		cfg.InputPath = c.Args().First()
	}
	if cfg.InputPath == "-" {
		cfg.InputPath = ""
	}
	if c.IsSet("fps") {
		cfg.FPS = c.Int("fps")
	}
	if c.IsSet("speed") {
		cfg.Speed = c.Float64("speed")
	}
	if c.IsSet("matrix") {
		cfg.Matrix = c.String("matrix")
	}
	if c.IsSet("width") {
		cfg.Width = c.Int("width")
	}
	if c.IsSet("height") {
		cfg.Height = c.Int("height")
	}
	if c.IsSet("loop") {
		cfg.LoopCount = c.Int("loop")
	}
	if c.IsSet("stamp") {
		cfg.Stamp = c.Bool("stamp")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("quiet") {
		cfg.Quiet = c.Bool("quiet")
	}
	return cfg, cfg.Validate()
}

func buildLogger(cfg config.Config) ports.Logger {
	if cfg.Quiet {
		return logger.NewNoop()
	}
	return logger.NewConsole(ports.ParseLogLevel(cfg.LogLevel))
}

func orchestratorConfig(cfg config.Config) orchestrator.Config {
	return orchestrator.Config{
		InputPath:  cfg.InputPath,
		OutputPath: cfg.OutputPath,
		FPS:        cfg.FPS,
		Speed:      cfg.Speed,
		Matrix:     cfg.Matrix,
		Width:      cfg.Width,
		Height:     cfg.Height,
		LoopCount:  cfg.LoopCount,
		Stamp:      cfg.Stamp,
	}
}
