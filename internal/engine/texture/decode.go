package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"path/filepath"
	"strings"

	// Formats texture files come in; TGA is decoded by hand below.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

// Decode turns raw image bytes into GPU-ready pixels: the source is
// converted to 8-bit RGBA and flipped vertically so row 0 is the bottom of
// the image, matching GL texture coordinates. name selects the decoder by
// extension and labels errors.
//
// Only 3- and 4-channel sources are accepted; grayscale images are a
// reported failure.
func Decode(data []byte, name string) (*image.RGBA, error) {
	if strings.EqualFold(filepath.Ext(name), ".tga") {
		// The TGA decoder only accepts 24/32 bpp, so the channel check
		// is implicit.
		img, err := DecodeTGA(data)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", name, err)
		}
		return flipVertical(toRGBA(img)), nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	if ch := sourceChannels(data, img); ch != 3 && ch != 4 {
		return nil, fmt.Errorf("decoding %s: unsupported image with %d channel(s)", name, ch)
	}

	return flipVertical(toRGBA(img)), nil
}

var pngSignature = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}

// sourceChannels reports how many channels the encoded source carried. Go
// decoders normalize pixel formats, so the count is recovered from the PNG
// header when possible and from the decoded representation otherwise.
func sourceChannels(data []byte, img image.Image) int {
	if n := pngChannels(data); n != 0 {
		if n == 3 {
			if p, ok := img.(*image.Paletted); ok && paletteHasAlpha(p.Palette) {
				return 4
			}
		}
		return n
	}

	switch src := img.(type) {
	case *image.Gray, *image.Gray16, *image.Alpha, *image.Alpha16:
		return 1
	case *image.YCbCr:
		return 3
	case *image.NYCbCrA:
		return 4
	case *image.CMYK:
		return 4
	case *image.Paletted:
		if paletteHasAlpha(src.Palette) {
			return 4
		}
		return 3
	default:
		// RGBA-class representations.
		return 4
	}
}

// pngChannels reads the IHDR color type byte for an exact source channel
// count. Returns 0 when data is not PNG.
func pngChannels(data []byte) int {
	if len(data) < 26 || !bytes.HasPrefix(data, pngSignature) {
		return 0
	}
	switch data[25] {
	case 0: // grayscale
		return 1
	case 2: // truecolor
		return 3
	case 3: // palette; a tRNS chunk adds alpha, resolved from the palette
		return 3
	case 4: // grayscale + alpha
		return 2
	case 6: // truecolor + alpha
		return 4
	}
	return 0
}

func paletteHasAlpha(p color.Palette) bool {
	for _, c := range p {
		if _, _, _, a := c.RGBA(); a < 0xffff {
			return true
		}
	}
	return false
}

// toRGBA converts any decoded image to a zero-origin *image.RGBA.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// flipVertical mirrors rows in place so the first row becomes the bottom of
// the image.
func flipVertical(img *image.RGBA) *image.RGBA {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	rowLen := w * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : y*img.Stride+rowLen]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-1-y)*img.Stride+rowLen]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
	return img
}
