// Package material holds the fixed table of Phong shading parameters scene
// objects draw with.
package material

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/calegray/deskscene/internal/logger"
)

// Material holds the shading parameters bound under one tag.
type Material struct {
	Tag             string
	AmbientColor    mgl32.Vec3
	AmbientStrength float32
	DiffuseColor    mgl32.Vec3
	SpecularColor   mgl32.Vec3
	Shininess       float32
}

// Table is the scene's material collection. It is filled during setup and
// read-only afterwards.
type Table struct {
	materials []Material
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{}
}

// Define appends m. A duplicate tag is kept but never resolves: the first
// definition wins on lookup.
func (t *Table) Define(m Material) {
	if _, exists := t.Find(m.Tag); exists {
		logger.Warn("duplicate material tag", zap.String("tag", m.Tag))
	}
	t.materials = append(t.materials, m)
}

// Find returns the material registered under tag.
func (t *Table) Find(tag string) (Material, bool) {
	for _, m := range t.materials {
		if m.Tag == tag {
			return m, true
		}
	}
	return Material{}, false
}

// Len returns the number of defined materials.
func (t *Table) Len() int {
	return len(t.materials)
}

func gray(v float32) mgl32.Vec3 {
	return mgl32.Vec3{v, v, v}
}

// Defaults returns the six standard surface materials the desk scene
// references.
func Defaults() []Material {
	return []Material{
		{
			Tag:             "metal",
			AmbientColor:    gray(0.2),
			AmbientStrength: 0.3,
			DiffuseColor:    gray(0.2),
			SpecularColor:   gray(0.5),
			Shininess:       22,
		},
		{
			Tag:             "wood",
			AmbientColor:    gray(0.1),
			AmbientStrength: 0.2,
			DiffuseColor:    gray(0.3),
			SpecularColor:   gray(0.1),
			Shininess:       0.3,
		},
		{
			Tag:             "glass",
			AmbientColor:    gray(0.4),
			AmbientStrength: 0.3,
			DiffuseColor:    gray(0.3),
			SpecularColor:   gray(0.6),
			Shininess:       85,
		},
		{
			Tag:             "plastic",
			AmbientColor:    gray(0.2),
			AmbientStrength: 0.5,
			DiffuseColor:    gray(0.4),
			SpecularColor:   gray(0.7),
			Shininess:       60,
		},
		{
			Tag:             "cloth",
			AmbientColor:    gray(0.3),
			AmbientStrength: 0.7,
			DiffuseColor:    gray(0.5),
			SpecularColor:   gray(0.1),
			Shininess:       10,
		},
		{
			Tag:             "aluminum",
			AmbientColor:    gray(0.3),
			AmbientStrength: 0.5,
			DiffuseColor:    gray(0.5),
			SpecularColor:   gray(0.8),
			Shininess:       90,
		},
	}
}
