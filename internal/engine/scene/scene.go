// Package scene drives shader state for a scene built from textured, lit
// primitive shapes. The Manager resolves texture and material tags into
// uniform writes, composes model transforms and dispatches primitive
// draws. All GL work happens behind the UniformSink, MeshProvider and
// texture.Device seams, which keeps the manager testable without a
// context.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/calegray/deskscene/internal/assets"
	"github.com/calegray/deskscene/internal/engine/lighting"
	"github.com/calegray/deskscene/internal/engine/material"
	"github.com/calegray/deskscene/internal/engine/mesh"
	"github.com/calegray/deskscene/internal/engine/texture"
	"github.com/calegray/deskscene/internal/logger"
)

// UniformSink receives named uniform writes. shader.Program implements it
// against a live GL program.
type UniformSink interface {
	SetBool(name string, v bool)
	SetInt(name string, v int32)
	SetFloat(name string, v float32)
	SetVec2(name string, v mgl32.Vec2)
	SetVec3(name string, v mgl32.Vec3)
	SetVec4(name string, v mgl32.Vec4)
	SetMat4(name string, v mgl32.Mat4)
	SetSampler(name string, unit int32)
}

// MeshProvider supplies the primitive shapes scenes are assembled from.
// mesh.Library implements it with uploaded GPU meshes.
type MeshProvider interface {
	DrawPlane()
	DrawBox()
	DrawSphere()
	DrawHalfSphere()
	DrawCylinder()
	DrawCone()
	DrawTorus()
	DrawHalfTorus()
	Destroy()
}

// Manager owns the scene's textures and materials and writes draw state
// through the sink. The sink itself belongs to the caller.
type Manager struct {
	sink      UniformSink
	meshes    MeshProvider
	textures  *texture.Registry
	materials *material.Table
}

// NewManager returns a manager rendering through sink and meshes, with an
// empty texture registry on dev and an empty material table.
func NewManager(sink UniformSink, meshes MeshProvider, dev texture.Device) *Manager {
	return &Manager{
		sink:      sink,
		meshes:    meshes,
		textures:  texture.NewRegistry(dev, texture.MaxSlots),
		materials: material.NewTable(),
	}
}

// LoadTexture loads one image file under tag.
func (m *Manager) LoadTexture(path, tag string) error {
	return m.textures.Load(path, tag)
}

// LoadTextures loads a manifest of images, skipping entries that fail.
// Returns the number loaded.
func (m *Manager) LoadTextures(manifest assets.Manifest) int {
	return m.textures.LoadAll(manifest)
}

// BindTextures binds every loaded texture to its slot's texture unit.
// Call once after loading, before the first frame.
func (m *Manager) BindTextures() {
	m.textures.BindAll()
}

// DefineMaterial registers one material for SetMaterial lookups.
func (m *Manager) DefineMaterial(mat material.Material) {
	m.materials.Define(mat)
}

// DefineMaterials registers a batch of materials.
func (m *Manager) DefineMaterials(mats []material.Material) {
	for _, mat := range mats {
		m.materials.Define(mat)
	}
}

// SetView writes the camera matrices and eye position.
func (m *Manager) SetView(view, projection mgl32.Mat4, viewPos mgl32.Vec3) {
	m.sink.SetMat4(UniformView, view)
	m.sink.SetMat4(UniformProjection, projection)
	m.sink.SetVec3(UniformViewPosition, viewPos)
}

// EnableLighting toggles the lighting path in the shader.
func (m *Manager) EnableLighting(on bool) {
	m.sink.SetBool(UniformUseLighting, on)
}

// SetupLights enables lighting and writes the rig.
func (m *Manager) SetupLights(sources []lighting.Source, ambient lighting.Ambient) {
	m.EnableLighting(true)
	lighting.Apply(m.sink, sources, ambient)
}

// Draw renders one primitive with the current shader state.
func (m *Manager) Draw(p mesh.Primitive) {
	switch p {
	case mesh.Plane:
		m.meshes.DrawPlane()
	case mesh.Box:
		m.meshes.DrawBox()
	case mesh.Sphere:
		m.meshes.DrawSphere()
	case mesh.HalfSphere:
		m.meshes.DrawHalfSphere()
	case mesh.Cylinder:
		m.meshes.DrawCylinder()
	case mesh.Cone:
		m.meshes.DrawCone()
	case mesh.Torus:
		m.meshes.DrawTorus()
	case mesh.HalfTorus:
		m.meshes.DrawHalfTorus()
	default:
		logger.Warn("No mesh for shape", zap.Stringer("shape", p))
	}
}

// Destroy releases the GPU resources the manager owns: every loaded
// texture and the primitive meshes. The uniform sink stays with its
// owner.
func (m *Manager) Destroy() {
	m.textures.ReleaseAll()
	m.meshes.Destroy()
}
