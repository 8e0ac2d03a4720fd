package texture

import (
	"fmt"
	"image"
)

// TGA image types handled by DecodeTGA.
const (
	tgaTrueColor    = 2
	tgaTrueColorRLE = 10
)

// tgaHeader is the fixed 18-byte TGA file header.
type tgaHeader struct {
	idLength   int
	colorMap   byte
	imageType  byte
	width      int
	height     int
	depth      int
	descriptor byte
}

// DecodeTGA decodes uncompressed and RLE true-color TGA files at 24 or 32
// bits per pixel. The standard library has no TGA support.
func DecodeTGA(data []byte) (image.Image, error) {
	if len(data) < 18 {
		return nil, fmt.Errorf("tga: truncated header")
	}
	h := tgaHeader{
		idLength:   int(data[0]),
		colorMap:   data[1],
		imageType:  data[2],
		width:      int(data[12]) | int(data[13])<<8,
		height:     int(data[14]) | int(data[15])<<8,
		depth:      int(data[16]),
		descriptor: data[17],
	}

	if h.colorMap != 0 {
		return nil, fmt.Errorf("tga: color-mapped images not supported")
	}
	if h.imageType != tgaTrueColor && h.imageType != tgaTrueColorRLE {
		return nil, fmt.Errorf("tga: unsupported image type %d", h.imageType)
	}
	if h.depth != 24 && h.depth != 32 {
		return nil, fmt.Errorf("tga: unsupported depth %d", h.depth)
	}

	offset := 18 + h.idLength
	if offset > len(data) {
		return nil, fmt.Errorf("tga: truncated id field")
	}

	img := image.NewRGBA(image.Rect(0, 0, h.width, h.height))
	var err error
	if h.imageType == tgaTrueColor {
		err = tgaReadRaw(img, data[offset:], h)
	} else {
		err = tgaReadRLE(img, data[offset:], h)
	}
	if err != nil {
		return nil, err
	}
	return img, nil
}

// tgaPut writes one BGR(A) pixel at position idx in file order, honoring
// the origin bit (descriptor bit 5: top-to-bottom when set).
func tgaPut(img *image.RGBA, h tgaHeader, idx int, px []byte) {
	x := idx % h.width
	y := idx / h.width
	if h.descriptor&0x20 == 0 {
		y = h.height - 1 - y
	}
	o := img.PixOffset(x, y)
	img.Pix[o+0] = px[2]
	img.Pix[o+1] = px[1]
	img.Pix[o+2] = px[0]
	if len(px) == 4 {
		img.Pix[o+3] = px[3]
	} else {
		img.Pix[o+3] = 0xff
	}
}

func tgaReadRaw(img *image.RGBA, data []byte, h tgaHeader) error {
	bpp := h.depth / 8
	if len(data) < h.width*h.height*bpp {
		return fmt.Errorf("tga: truncated pixel data")
	}
	for i := 0; i < h.width*h.height; i++ {
		tgaPut(img, h, i, data[i*bpp:(i+1)*bpp])
	}
	return nil
}

func tgaReadRLE(img *image.RGBA, data []byte, h tgaHeader) error {
	bpp := h.depth / 8
	total := h.width * h.height
	idx, pos := 0, 0

	for idx < total {
		if pos >= len(data) {
			return fmt.Errorf("tga: truncated rle stream")
		}
		packet := data[pos]
		pos++
		count := int(packet&0x7f) + 1

		if packet&0x80 != 0 {
			// Run: one pixel value repeated count times.
			if pos+bpp > len(data) {
				return fmt.Errorf("tga: truncated rle packet")
			}
			px := data[pos : pos+bpp]
			pos += bpp
			for i := 0; i < count && idx < total; i++ {
				tgaPut(img, h, idx, px)
				idx++
			}
		} else {
			// Literal: count raw pixels.
			for i := 0; i < count && idx < total; i++ {
				if pos+bpp > len(data) {
					return fmt.Errorf("tga: truncated raw packet")
				}
				tgaPut(img, h, idx, data[pos:pos+bpp])
				pos += bpp
				idx++
			}
		}
	}
	return nil
}
