// accuracy sweeps every sine approximation over [0, 2π] and writes one raw
// float32 dump per calculator (<name>_accuracy), the files the plot tool
// renders. Performance comparisons live in the approx package benchmarks.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/nathan-baggs/calculating-sine/src/approx"
	"github.com/nathan-baggs/calculating-sine/src/trace"
)

func main() {
	outDir := flag.String("out", ".", "Directory to write accuracy dumps into")
	interval := flag.Float64("interval", 1e-5, "Theta step size for the sweep")
	logLevel := flag.String("log-level", "info", "Log level (debug|info|warn|error)")
	flag.Parse()

	trace.SetLogLevel(*logLevel)
	if err := writeAll(*outDir, float32(*interval)); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// writeAll runs the sweep for every calculator and persists the results
// under outDir.
func writeAll(outDir string, interval float32) error {
	if math.IsNaN(float64(interval)) || interval <= 0 {
		return fmt.Errorf("interval must be positive, got %g", interval)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}
	for _, c := range approx.Calculators {
		start := time.Now()
		samples := approx.AccuracySweep(c.Fn, interval)
		path := filepath.Join(outDir, c.Name+"_accuracy")
		if err := trace.WriteFile(path, samples); err != nil {
			return err
		}
		trace.Infof("%s written (%d samples)", path, len(samples))
		trace.TimeTrack(start, c.Name+" sweep")
	}
	return nil
}
