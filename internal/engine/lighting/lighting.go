// Package lighting models the scene light rig and writes it to shader
// uniforms. The shader declares a fixed array of light slots; Apply fills
// every slot so a shorter rig never leaves stale values behind.
package lighting

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxSources is the number of light slots the scene shader declares.
const MaxSources = 4

// Sink receives light parameters as named shader uniforms.
type Sink interface {
	SetVec3(name string, v mgl32.Vec3)
	SetFloat(name string, v float32)
}

// Source is one positional light.
type Source struct {
	Position          mgl32.Vec3
	AmbientColor      mgl32.Vec3
	DiffuseColor      mgl32.Vec3
	SpecularColor     mgl32.Vec3
	FocalStrength     float32
	SpecularIntensity float32
}

// Ambient is the scene-wide fill light.
type Ambient struct {
	Color     mgl32.Vec3
	Intensity float32
}

// Apply writes the rig into the sink. Sources beyond MaxSources are
// dropped; slots beyond len(sources) are zeroed.
func Apply(sink Sink, sources []Source, ambient Ambient) {
	for i := 0; i < MaxSources; i++ {
		var src Source
		if i < len(sources) {
			src = sources[i]
		}
		sink.SetVec3(slot(i, "position"), src.Position)
		sink.SetVec3(slot(i, "ambientColor"), src.AmbientColor)
		sink.SetVec3(slot(i, "diffuseColor"), src.DiffuseColor)
		sink.SetVec3(slot(i, "specularColor"), src.SpecularColor)
		sink.SetFloat(slot(i, "focalStrength"), src.FocalStrength)
		sink.SetFloat(slot(i, "specularIntensity"), src.SpecularIntensity)
	}
	sink.SetVec3("ambientLight.color", ambient.Color)
	sink.SetFloat("ambientLight.intensity", ambient.Intensity)
}

func slot(i int, field string) string {
	return fmt.Sprintf("lightSources[%d].%s", i, field)
}

// DeskSources returns the two lights the desk scene is lit by: warm
// sunlight from the right window and a cooler overhead lamp.
func DeskSources() []Source {
	return []Source{
		{
			Position:          mgl32.Vec3{10, 15, -5},
			AmbientColor:      mgl32.Vec3{0.6, 0.55, 0.5},
			DiffuseColor:      mgl32.Vec3{1.0, 0.95, 0.85},
			SpecularColor:     mgl32.Vec3{1.0, 1.0, 0.9},
			FocalStrength:     64,
			SpecularIntensity: 0.7,
		},
		{
			Position:          mgl32.Vec3{0, 10, 0},
			AmbientColor:      mgl32.Vec3{0.5, 0.5, 0.5},
			DiffuseColor:      mgl32.Vec3{0.7, 0.7, 0.8},
			SpecularColor:     mgl32.Vec3{0.6, 0.6, 0.7},
			FocalStrength:     32,
			SpecularIntensity: 0.5,
		},
	}
}

// DeskAmbient returns the slightly cool fill light for the desk scene.
func DeskAmbient() Ambient {
	return Ambient{Color: mgl32.Vec3{0.5, 0.5, 0.55}, Intensity: 1}
}
