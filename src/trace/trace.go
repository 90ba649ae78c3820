// Package trace loads and writes raw binary sample dumps: headerless files
// whose bytes are a contiguous sequence of little-endian IEEE-754 32-bit
// floats. The accuracy tools write these dumps and the plot tool reads them;
// producer and consumer agree on the layout by convention, there is no
// header, magic number, or byte-order negotiation.
package trace

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"

	mmap "github.com/edsrzf/mmap-go"
)

// SampleSize is the width of one sample on disk, in bytes.
const SampleSize = 4

var (
	// ErrEmptyFile reports an input file with no samples at all.
	ErrEmptyFile = errors.New("empty trace file")
	// ErrPartialSample reports a file whose byte length is not a multiple
	// of SampleSize (a truncated trailing sample).
	ErrPartialSample = errors.New("file size is not a multiple of sample size")
)

// Load reads the file at path and returns its decoded samples. The file is
// memory-mapped rather than copied into a read buffer; the mapping and the
// file handle are released before Load returns, on error paths included.
func Load(path string) ([]float32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open trace: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat trace: %w", err)
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyFile)
	}
	if info.Size()%SampleSize != 0 {
		return nil, fmt.Errorf("%s (%d bytes): %w", path, info.Size(), ErrPartialSample)
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("map trace: %w", err)
	}
	defer data.Unmap()

	return Decode(data)
}

// Decode reinterprets raw bytes as little-endian float32 samples.
func Decode(b []byte) ([]float32, error) {
	if len(b)%SampleSize != 0 {
		return nil, fmt.Errorf("%d bytes: %w", len(b), ErrPartialSample)
	}
	samples := make([]float32, len(b)/SampleSize)
	for i := range samples {
		bits := binary.LittleEndian.Uint32(b[i*SampleSize:])
		samples[i] = math.Float32frombits(bits)
	}
	return samples, nil
}

// Encode is the inverse of Decode.
func Encode(samples []float32) []byte {
	b := make([]byte, len(samples)*SampleSize)
	for i, s := range samples {
		binary.LittleEndian.PutUint32(b[i*SampleSize:], math.Float32bits(s))
	}
	return b
}

// WriteFile writes samples to path as a raw dump, replacing any existing file.
func WriteFile(path string, samples []float32) error {
	if err := os.WriteFile(path, Encode(samples), 0o644); err != nil {
		return fmt.Errorf("write trace %s: %w", path, err)
	}
	return nil
}
