package mesh

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Primitive identifies one of the precomputed shapes in the Library.
type Primitive int

const (
	Plane Primitive = iota
	Box
	Sphere
	HalfSphere
	Cylinder
	Cone
	Torus
	HalfTorus
)

func (p Primitive) String() string {
	switch p {
	case Plane:
		return "plane"
	case Box:
		return "box"
	case Sphere:
		return "sphere"
	case HalfSphere:
		return "half-sphere"
	case Cylinder:
		return "cylinder"
	case Cone:
		return "cone"
	case Torus:
		return "torus"
	case HalfTorus:
		return "half-torus"
	}
	return "unknown"
}

// Shape conventions scene transforms are authored against:
//
//	plane       2x2 in the XZ axes at y=0, facing +Y
//	box         unit cube centered at the origin
//	sphere      radius 1, centered at the origin
//	half-sphere the y>=0 dome of the sphere, open underneath
//	cylinder    radius 1, y in [0,1], capped
//	cone        base radius 1 at y=0, apex at (0,1,0), capped
//	torus       center-circle radius 1 in the XY plane, tube radius r
//	half-torus  the y>=0 arch of the torus, open at both ends

// BuildPlane returns the 2x2 ground plane.
func BuildPlane() Geometry {
	var g Geometry
	a := g.vertex(-1, 0, 1, 0, 1, 0, 0, 0)
	b := g.vertex(1, 0, 1, 0, 1, 0, 1, 0)
	c := g.vertex(1, 0, -1, 0, 1, 0, 1, 1)
	d := g.vertex(-1, 0, -1, 0, 1, 0, 0, 1)
	g.triangle(a, b, c)
	g.triangle(a, c, d)
	return g
}

// BuildBox returns the unit cube. Each face carries its own four vertices
// so normals stay flat and uvs span the full texture.
func BuildBox() Geometry {
	var g Geometry
	const h = 0.5

	// Origin corner plus two unit edges per face; the normal is their
	// cross product.
	faces := [6]struct{ o, e1, e2 mgl32.Vec3 }{
		{mgl32.Vec3{-h, -h, h}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},  // front +Z
		{mgl32.Vec3{h, -h, -h}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}}, // back -Z
		{mgl32.Vec3{h, -h, h}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},  // right +X
		{mgl32.Vec3{-h, -h, -h}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}}, // left -X
		{mgl32.Vec3{-h, h, h}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},  // top +Y
		{mgl32.Vec3{-h, -h, -h}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}}, // bottom -Y
	}
	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	for _, f := range faces {
		n := f.e1.Cross(f.e2)
		corners := [4]mgl32.Vec3{
			f.o,
			f.o.Add(f.e1),
			f.o.Add(f.e1).Add(f.e2),
			f.o.Add(f.e2),
		}
		var idx [4]uint32
		for i, c := range corners {
			idx[i] = g.vertex(c.X(), c.Y(), c.Z(), n.X(), n.Y(), n.Z(), uvs[i][0], uvs[i][1])
		}
		g.triangle(idx[0], idx[1], idx[2])
		g.triangle(idx[0], idx[2], idx[3])
	}
	return g
}

// BuildSphere returns the radius-1 sphere.
func BuildSphere(stacks, slices int) Geometry {
	return buildSphereArc(stacks, slices, math32.Pi)
}

// BuildHalfSphere returns the y>=0 dome.
func BuildHalfSphere(stacks, slices int) Geometry {
	return buildSphereArc(stacks, slices, math32.Pi/2)
}

func buildSphereArc(stacks, slices int, maxPhi float32) Geometry {
	var g Geometry
	for i := 0; i <= stacks; i++ {
		phi := maxPhi * float32(i) / float32(stacks)
		y := math32.Cos(phi)
		ring := math32.Sin(phi)
		v := 1 - float32(i)/float32(stacks)
		for j := 0; j <= slices; j++ {
			theta := 2 * math32.Pi * float32(j) / float32(slices)
			x := ring * math32.Cos(theta)
			z := ring * math32.Sin(theta)
			g.vertex(x, y, z, x, y, z, float32(j)/float32(slices), v)
		}
	}
	stitchGrid(&g, stacks, slices)
	return g
}

// BuildCylinder returns the capped unit cylinder.
func BuildCylinder(segments int) Geometry {
	var g Geometry

	// Side wall: two rings sharing outward normals.
	for j := 0; j <= segments; j++ {
		theta := 2 * math32.Pi * float32(j) / float32(segments)
		x := math32.Cos(theta)
		z := math32.Sin(theta)
		u := float32(j) / float32(segments)
		g.vertex(x, 0, z, x, 0, z, u, 0)
		g.vertex(x, 1, z, x, 0, z, u, 1)
	}
	for j := 0; j < segments; j++ {
		base := uint32(2 * j)
		g.triangle(base, base+1, base+2)
		g.triangle(base+1, base+3, base+2)
	}

	g.capRing(segments, 1, true)
	g.capRing(segments, 0, false)
	return g
}

// capRing adds a disc at height y facing up or down.
func (g *Geometry) capRing(segments int, y float32, up bool) {
	ny := float32(-1)
	if up {
		ny = 1
	}
	center := g.vertex(0, y, 0, 0, ny, 0, 0.5, 0.5)
	ring := make([]uint32, segments+1)
	for j := 0; j <= segments; j++ {
		theta := 2 * math32.Pi * float32(j) / float32(segments)
		x := math32.Cos(theta)
		z := math32.Sin(theta)
		ring[j] = g.vertex(x, y, z, 0, ny, 0, 0.5+x/2, 0.5-z/2)
	}
	for j := 0; j < segments; j++ {
		if up {
			g.triangle(center, ring[j+1], ring[j])
		} else {
			g.triangle(center, ring[j], ring[j+1])
		}
	}
}

// BuildCone returns the capped unit cone. The apex vertex is duplicated
// per segment so the slant normals stay smooth around the rim.
func BuildCone(segments int) Geometry {
	var g Geometry

	// Unit cone rises 1 over radius 1; slant normals sit at 45 degrees.
	const s = 0.70710678

	for j := 0; j < segments; j++ {
		t0 := 2 * math32.Pi * float32(j) / float32(segments)
		t1 := 2 * math32.Pi * float32(j+1) / float32(segments)
		tm := (t0 + t1) / 2

		u0 := float32(j) / float32(segments)
		u1 := float32(j+1) / float32(segments)

		v0 := g.vertex(math32.Cos(t0), 0, math32.Sin(t0),
			s*math32.Cos(t0), s, s*math32.Sin(t0), u0, 0)
		apex := g.vertex(0, 1, 0,
			s*math32.Cos(tm), s, s*math32.Sin(tm), (u0+u1)/2, 1)
		v1 := g.vertex(math32.Cos(t1), 0, math32.Sin(t1),
			s*math32.Cos(t1), s, s*math32.Sin(t1), u1, 0)
		g.triangle(v0, apex, v1)
	}

	g.capRing(segments, 0, false)
	return g
}

// BuildTorus returns the full ring.
func BuildTorus(rings, sides int, tube float32) Geometry {
	return buildTorusArc(rings, sides, tube, 2*math32.Pi)
}

// BuildHalfTorus returns the y>=0 arch.
func BuildHalfTorus(rings, sides int, tube float32) Geometry {
	return buildTorusArc(rings, sides, tube, math32.Pi)
}

func buildTorusArc(rings, sides int, tube float32, maxU float32) Geometry {
	var g Geometry
	for i := 0; i <= rings; i++ {
		u := maxU * float32(i) / float32(rings)
		cu := math32.Cos(u)
		su := math32.Sin(u)
		for j := 0; j <= sides; j++ {
			// The tube angle winds negative-z first to keep the
			// outside faces front-facing.
			v := 2 * math32.Pi * float32(j) / float32(sides)
			cv := math32.Cos(v)
			sv := -math32.Sin(v)
			x := (1 + tube*cv) * cu
			y := (1 + tube*cv) * su
			z := tube * sv
			g.vertex(x, y, z, cv*cu, cv*su, sv, float32(i)/float32(rings), float32(j)/float32(sides))
		}
	}
	stitchGrid(&g, rings, sides)
	return g
}

// stitchGrid indexes a (rows+1) by (cols+1) vertex lattice into triangles
// with outward winding.
func stitchGrid(g *Geometry, rows, cols int) {
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			i0 := uint32(i*(cols+1) + j)
			i1 := i0 + uint32(cols) + 1
			g.triangle(i0, i0+1, i1)
			g.triangle(i0+1, i1+1, i1)
		}
	}
}
