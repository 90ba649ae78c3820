// Plot entrypoint.
//
// Renders a raw binary dump of float32 samples (as written by cmd/accuracy)
// as a line chart image:
//
//	plot <input_path> <output_path>
//
// The input is a headerless little-endian float32 file; the output encoding
// is picked from the output path's extension (.png or .svg). The pipeline is
// a single pass, load -> build -> save, and any failure halts it with a
// diagnostic on stderr and a non-zero exit.
package main

import (
	"fmt"
	"os"

	"github.com/nathan-baggs/calculating-sine/src/plot"
	"github.com/nathan-baggs/calculating-sine/src/trace"
)

// config is the validated command line: two required positional paths.
type config struct {
	inputPath  string
	outputPath string
}

func parseArgs(args []string) (config, error) {
	if len(args) != 2 {
		return config{}, fmt.Errorf("expected 2 arguments, got %d", len(args))
	}
	cfg := config{inputPath: args[0], outputPath: args[1]}
	if cfg.inputPath == "" || cfg.outputPath == "" {
		return config{}, fmt.Errorf("input and output paths must be non-empty")
	}
	return cfg, nil
}

func run(cfg config) error {
	samples, err := trace.Load(cfg.inputPath)
	if err != nil {
		return err
	}
	trace.Debugf("loaded %d samples from %s", len(samples), cfg.inputPath)

	ch, err := plot.Build(samples, plot.DefaultOptions())
	if err != nil {
		return err
	}
	if err := plot.Save(ch, cfg.outputPath); err != nil {
		return err
	}
	trace.Debugf("wrote %s", cfg.outputPath)
	return nil
}

func main() {
	cfg, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\nusage: plot <input_path> <output_path>\n", err)
		os.Exit(1)
	}
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
