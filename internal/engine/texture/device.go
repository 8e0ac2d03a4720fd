package texture

import (
	"errors"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Device is the GPU surface the registry drives.
type Device interface {
	// CreateTexture uploads img and returns its GPU handle.
	CreateTexture(img *image.RGBA) (uint32, error)
	// BindUnit makes handle current on the given texture unit.
	BindUnit(unit int, handle uint32)
	// DeleteTexture releases the GPU storage behind handle.
	DeleteTexture(handle uint32)
}

// GLDevice implements Device on OpenGL 4.1 core. All methods must run on
// the rendering thread.
type GLDevice struct{}

// NewGLDevice returns the OpenGL texture device.
func NewGLDevice() GLDevice {
	return GLDevice{}
}

// CreateTexture uploads img with repeat wrapping, linear filtering and a
// generated mipmap chain.
func (GLDevice) CreateTexture(img *image.RGBA) (uint32, error) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w == 0 || h == 0 {
		return 0, errors.New("empty image")
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return id, nil
}

// BindUnit binds handle on texture unit `unit`.
func (GLDevice) BindUnit(unit int, handle uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, handle)
}

// DeleteTexture frees the texture object.
func (GLDevice) DeleteTexture(handle uint32) {
	gl.DeleteTextures(1, &handle)
}
