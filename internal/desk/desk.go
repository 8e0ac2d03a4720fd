// Package desk holds the content of the desk scene: a declarative table
// of textured and colored primitive objects (laptop, drink can, cat-ear
// headphones, frog planter, mouse) and the setup/render sequence that
// feeds them through a scene.Manager.
package desk

import (
	"go.uber.org/zap"

	"github.com/calegray/deskscene/internal/assets"
	"github.com/calegray/deskscene/internal/engine/lighting"
	"github.com/calegray/deskscene/internal/engine/material"
	"github.com/calegray/deskscene/internal/engine/mesh"
	"github.com/calegray/deskscene/internal/engine/scene"
	"github.com/calegray/deskscene/internal/logger"

	"github.com/go-gl/mathgl/mgl32"
)

// Object is one drawable piece of the scene. A non-empty Texture renders
// textured with UVScale; otherwise Color is used. A non-empty Material
// selects surface properties; an empty one leaves the previous object's
// material in effect, which parts of the scene rely on.
type Object struct {
	Name     string
	Shape    mesh.Primitive
	Scale    mgl32.Vec3
	Rotation mgl32.Vec3
	Position mgl32.Vec3
	Texture  string
	UVScale  mgl32.Vec2
	Material string
	Color    mgl32.Vec4
}

// Scene is the desk scene bound to a manager.
type Scene struct {
	mgr      *scene.Manager
	manifest assets.Manifest
	objects  []Object
}

// New returns the desk scene rendering through mgr, with texture files
// resolved under assetDir.
func New(mgr *scene.Manager, assetDir string) *Scene {
	return &Scene{
		mgr:      mgr,
		manifest: assets.Default().Resolve(assetDir),
		objects:  Objects(),
	}
}

// Prepare loads and binds the scene textures, defines the material set
// and configures the lights. Missing or broken texture files are logged
// and skipped; the scene renders with what loaded.
func (s *Scene) Prepare() {
	loaded := s.mgr.LoadTextures(s.manifest)
	logger.Info("Desk textures loaded",
		zap.Int("loaded", loaded),
		zap.Int("manifest", len(s.manifest)))
	s.mgr.BindTextures()
	s.mgr.DefineMaterials(material.Defaults())
	s.mgr.SetupLights(lighting.DeskSources(), lighting.DeskAmbient())
}

// Render draws every object in table order. The order matters: the sink
// is last-write-wins shared state and some objects inherit the previous
// material.
func (s *Scene) Render() {
	for _, o := range s.objects {
		s.renderObject(o)
	}
}

func (s *Scene) renderObject(o Object) {
	s.mgr.SetTransform(o.Scale, o.Rotation, o.Position)
	if o.Texture != "" {
		s.mgr.SetTexture(o.Texture)
		s.mgr.SetUVScale(o.UVScale.X(), o.UVScale.Y())
	} else {
		s.mgr.SetColor(o.Color.X(), o.Color.Y(), o.Color.Z(), o.Color.W())
	}
	if o.Material != "" {
		s.mgr.SetMaterial(o.Material)
	}
	s.mgr.Draw(o.Shape)
}
