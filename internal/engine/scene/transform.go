package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/calegray/deskscene/internal/engine/texture"
	"github.com/calegray/deskscene/internal/logger"
)

// ModelMatrix composes a model transform from scale factors, per-axis
// rotation in degrees and a world position. Scale applies first, then the
// X, Y and Z rotations in that order, then the translation.
func ModelMatrix(scale, rotationDeg, position mgl32.Vec3) mgl32.Mat4 {
	t := mgl32.Translate3D(position.X(), position.Y(), position.Z())
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(rotationDeg.X()))
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(rotationDeg.Y()))
	rz := mgl32.HomogRotate3DZ(mgl32.DegToRad(rotationDeg.Z()))
	s := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())
	return t.Mul4(rx).Mul4(ry).Mul4(rz).Mul4(s)
}

// SetTransform writes the model matrix for the next draw.
func (m *Manager) SetTransform(scale, rotationDeg, position mgl32.Vec3) {
	m.sink.SetMat4(UniformModel, ModelMatrix(scale, rotationDeg, position))
}

// SetColor switches the next draw to a flat color.
func (m *Manager) SetColor(r, g, b, a float32) {
	m.sink.SetBool(UniformUseTexture, false)
	m.sink.SetVec4(UniformObjectColor, mgl32.Vec4{r, g, b, a})
}

// SetTexture switches the next draw to the texture loaded under tag. An
// unknown tag is logged and the sampler gets an out-of-range unit, which
// renders the object black rather than crashing.
func (m *Manager) SetTexture(tag string) {
	m.sink.SetBool(UniformUseTexture, true)
	slot := m.textures.FindSlot(tag)
	if slot == texture.SlotNotFound {
		logger.Warn("No texture loaded under tag", zap.String("tag", tag))
	}
	m.sink.SetSampler(UniformObjectTexture, int32(slot))
}

// SetUVScale sets the texture coordinate multiplier for the next draw.
func (m *Manager) SetUVScale(u, v float32) {
	m.sink.SetVec2(UniformUVScale, mgl32.Vec2{u, v})
}

// SetMaterial writes the surface properties defined under tag. An unknown
// tag is logged and leaves the previous material in place.
func (m *Manager) SetMaterial(tag string) {
	mat, ok := m.materials.Find(tag)
	if !ok {
		logger.Warn("No material defined under tag", zap.String("tag", tag))
		return
	}
	m.sink.SetVec3(UniformMaterialAmbientColor, mat.AmbientColor)
	m.sink.SetFloat(UniformMaterialAmbientStrength, mat.AmbientStrength)
	m.sink.SetVec3(UniformMaterialDiffuseColor, mat.DiffuseColor)
	m.sink.SetVec3(UniformMaterialSpecularColor, mat.SpecularColor)
	m.sink.SetFloat(UniformMaterialShininess, mat.Shininess)
}
