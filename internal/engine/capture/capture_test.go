package capture

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSavePixelsFlipsRows(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, "shot")

	// Bottom-up buffer: row 0 is the bottom of the screen (red), row 1
	// the top (blue).
	pixels := []byte{
		255, 0, 0, 255, 255, 0, 0, 255,
		0, 0, 255, 255, 0, 0, 255, 255,
	}

	path, err := w.SavePixels(pixels, 2, 2)
	if err != nil {
		t.Fatalf("SavePixels: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("decoding %s: %v", path, err)
	}

	r, _, b, _ := img.At(0, 0).RGBA()
	if r != 0 || b != 0xffff {
		t.Errorf("top-left pixel = (%d, _, %d), want blue", r, b)
	}
	r, _, b, _ = img.At(0, 1).RGBA()
	if r != 0xffff || b != 0 {
		t.Errorf("bottom-left pixel = (%d, _, %d), want red", r, b)
	}
}

func TestSavePixelsCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "captures", "nested")
	w := NewWriter(dir, "desk")

	path, err := w.SavePixels(make([]byte, 4), 1, 1)
	if err != nil {
		t.Fatalf("SavePixels: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(path), "desk_") {
		t.Errorf("filename %q does not carry the prefix", filepath.Base(path))
	}
	if filepath.Ext(path) != ".png" {
		t.Errorf("filename %q is not a .png", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("stat %s: %v", path, err)
	}
}

func TestSavePixelsSizeMismatch(t *testing.T) {
	w := NewWriter(t.TempDir(), "shot")
	if _, err := w.SavePixels(make([]byte, 5), 2, 2); err == nil {
		t.Error("expected error for short pixel buffer")
	}
}
