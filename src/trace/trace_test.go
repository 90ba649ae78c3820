package trace

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// writeBytes drops raw bytes into a temp file and returns its path.
func writeBytes(t *testing.T, b []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "samples.bin")
	if err := os.WriteFile(path, b, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoad_DecodesLittleEndian(t *testing.T) {
	// 1.0 and -2.5 as little-endian IEEE-754 bytes
	b := []byte{0x00, 0x00, 0x80, 0x3f, 0x00, 0x00, 0x20, 0xc0}
	samples, err := Load(writeBytes(t, b))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(samples) != 2 {
		t.Fatalf("expected 2 samples got %d", len(samples))
	}
	if samples[0] != 1.0 || samples[1] != -2.5 {
		t.Fatalf("unexpected samples: %v", samples)
	}
}

func TestLoad_LengthIsByteLengthOverFour(t *testing.T) {
	vals := make([]float32, 257)
	for i := range vals {
		vals[i] = float32(i) * 0.5
	}
	path := writeBytes(t, Encode(vals))
	samples, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(samples) != len(vals) {
		t.Fatalf("expected %d samples got %d", len(vals), len(samples))
	}
	for i, v := range vals {
		if samples[i] != v {
			t.Fatalf("sample %d: got %v want %v", i, samples[i], v)
		}
	}
}

func TestLoad_PartialTrailingSample(t *testing.T) {
	samples, err := Load(writeBytes(t, []byte{1, 2, 3, 4, 5}))
	if !errors.Is(err, ErrPartialSample) {
		t.Fatalf("expected ErrPartialSample got %v", err)
	}
	if samples != nil {
		t.Fatalf("expected no buffer on error, got %d samples", len(samples))
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	if _, err := Load(writeBytes(t, nil)); !errors.Is(err, ErrEmptyFile) {
		t.Fatalf("expected ErrEmptyFile got %v", err)
	}
}

func TestLoad_PermissionDenied(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits do not block reads on windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("running as root; permission bits are not enforced")
	}
	path := writeBytes(t, Encode([]float32{1, 2}))
	if err := os.Chmod(path, 0o000); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	if _, err := Load(path); !errors.Is(err, os.ErrPermission) {
		t.Fatalf("expected permission error got %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.bin"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error got %v", err)
	}
}

func TestDecode_RejectsUnalignedLength(t *testing.T) {
	if _, err := Decode(make([]byte, 7)); !errors.Is(err, ErrPartialSample) {
		t.Fatalf("expected ErrPartialSample got %v", err)
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	in := []float32{0, 1.0, -2.5, float32(math.Pi), math.MaxFloat32}
	out, err := Decode(Encode(in))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("length mismatch: got %d want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("sample %d: got %v want %v", i, out[i], in[i])
		}
	}
}

func TestWriteFile_OverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples.bin")
	if err := WriteFile(path, []float32{1, 2, 3}); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := WriteFile(path, []float32{9}); err != nil {
		t.Fatalf("second write: %v", err)
	}
	samples, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(samples) != 1 || samples[0] != 9 {
		t.Fatalf("expected overwritten content [9], got %v", samples)
	}
}
