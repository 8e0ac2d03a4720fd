package mesh

import (
	"github.com/calegray/deskscene/internal/logger"
	"go.uber.org/zap"
)

// Tessellation detail for the curved shapes.
const (
	sphereStacks     = 18
	sphereSlices     = 36
	cylinderSegments = 36
	coneSegments     = 36
	torusRings       = 36
	torusSides       = 18
	torusTube        = 0.2
)

// Library holds one uploaded mesh per primitive shape. Build it once after
// the GL context exists and share it across every scene object.
type Library struct {
	meshes map[Primitive]*Mesh
}

// NewLibrary tessellates and uploads all primitive shapes.
func NewLibrary() *Library {
	lib := &Library{meshes: make(map[Primitive]*Mesh)}

	shapes := map[Primitive]Geometry{
		Plane:      BuildPlane(),
		Box:        BuildBox(),
		Sphere:     BuildSphere(sphereStacks, sphereSlices),
		HalfSphere: BuildHalfSphere(sphereStacks/2, sphereSlices),
		Cylinder:   BuildCylinder(cylinderSegments),
		Cone:       BuildCone(coneSegments),
		Torus:      BuildTorus(torusRings, torusSides, torusTube),
		HalfTorus:  BuildHalfTorus(torusRings/2, torusSides, torusTube),
	}
	for p, g := range shapes {
		lib.meshes[p] = Upload(g)
		logger.Debug("Mesh uploaded",
			zap.Stringer("shape", p),
			zap.Int("vertices", g.VertexCount()),
			zap.Int("triangles", len(g.Indices)/3))
	}
	return lib
}

func (l *Library) draw(p Primitive) {
	if m, ok := l.meshes[p]; ok {
		m.Draw()
	}
}

func (l *Library) DrawPlane()      { l.draw(Plane) }
func (l *Library) DrawBox()        { l.draw(Box) }
func (l *Library) DrawSphere()     { l.draw(Sphere) }
func (l *Library) DrawHalfSphere() { l.draw(HalfSphere) }
func (l *Library) DrawCylinder()   { l.draw(Cylinder) }
func (l *Library) DrawCone()       { l.draw(Cone) }
func (l *Library) DrawTorus()      { l.draw(Torus) }
func (l *Library) DrawHalfTorus()  { l.draw(HalfTorus) }

// Destroy releases every mesh's GPU buffers.
func (l *Library) Destroy() {
	for _, m := range l.meshes {
		m.Destroy()
	}
	l.meshes = nil
}
