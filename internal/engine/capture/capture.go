// Package capture saves viewer screenshots as timestamped PNG files.
package capture

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// Writer saves screenshots into a directory, one file per capture.
type Writer struct {
	dir    string
	prefix string
}

// NewWriter creates a screenshot writer. dir may be empty to save into
// the working directory.
func NewWriter(dir, prefix string) *Writer {
	return &Writer{
		dir:    dir,
		prefix: prefix,
	}
}

// SavePixels writes an RGBA pixel buffer to a timestamped PNG and
// returns the file path. Rows are expected bottom-up, as glReadPixels
// returns them, and are flipped during the copy.
func (w *Writer) SavePixels(pixels []byte, width, height int) (string, error) {
	if len(pixels) != width*height*4 {
		return "", fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	if w.dir != "" {
		if err := os.MkdirAll(w.dir, 0755); err != nil {
			return "", fmt.Errorf("creating screenshot dir: %w", err)
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		srcY := height - 1 - y
		copy(img.Pix[y*img.Stride:y*img.Stride+rowSize], pixels[srcY*rowSize:srcY*rowSize+rowSize])
	}

	filename := fmt.Sprintf("%s_%s.png", w.prefix, time.Now().Format("2006-01-02_15-04-05"))
	if w.dir != "" {
		filename = filepath.Join(w.dir, filename)
	}

	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}

	return filename, nil
}
