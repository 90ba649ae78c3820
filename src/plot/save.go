package plot

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
)

// ErrUnsupportedFormat reports an output extension with no known encoder.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// encoders maps a lowercase output extension to its go-chart renderer.
var encoders = map[string]chart.RendererProvider{
	".png": chart.PNG,
	".svg": chart.SVG,
}

// Save serializes ch to path, picking the encoder from the path's extension.
// An existing file at path is overwritten. The chart is rendered into memory
// first so a render failure leaves no file behind.
func Save(ch chart.Chart, path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	rp, ok := encoders[ext]
	if !ok {
		return fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	var buf bytes.Buffer
	if err := ch.Render(rp, &buf); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
