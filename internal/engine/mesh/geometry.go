// Package mesh tessellates the primitive shapes scene objects are composed
// of and owns their GPU buffers. Geometry generation is pure; Upload and
// the draw calls touch GL and must run on the rendering thread.
package mesh

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// VertexStride is the number of floats per vertex: position, normal, uv.
const VertexStride = 8

// Geometry is CPU-side mesh data: interleaved position/normal/uv vertices
// and triangle indices.
type Geometry struct {
	Vertices []float32
	Indices  []uint32
}

// vertex appends one vertex and returns its index.
func (g *Geometry) vertex(px, py, pz, nx, ny, nz, u, v float32) uint32 {
	idx := uint32(len(g.Vertices) / VertexStride)
	g.Vertices = append(g.Vertices, px, py, pz, nx, ny, nz, u, v)
	return idx
}

func (g *Geometry) triangle(a, b, c uint32) {
	g.Indices = append(g.Indices, a, b, c)
}

// VertexCount returns the number of vertices.
func (g Geometry) VertexCount() int {
	return len(g.Vertices) / VertexStride
}

// Position returns the position of vertex i.
func (g Geometry) Position(i int) mgl32.Vec3 {
	o := i * VertexStride
	return mgl32.Vec3{g.Vertices[o], g.Vertices[o+1], g.Vertices[o+2]}
}

// Normal returns the normal of vertex i.
func (g Geometry) Normal(i int) mgl32.Vec3 {
	o := i * VertexStride
	return mgl32.Vec3{g.Vertices[o+3], g.Vertices[o+4], g.Vertices[o+5]}
}

// Mesh is geometry uploaded to the GPU.
type Mesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

// Upload creates the GPU buffers for g. Attribute layout: position at
// location 0, normal at 1, uv at 2.
func Upload(g Geometry) *Mesh {
	m := &Mesh{indexCount: int32(len(g.Indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(g.Vertices)*4, gl.Ptr(g.Vertices), gl.STATIC_DRAW)

	stride := int32(VertexStride * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(g.Indices)*4, gl.Ptr(g.Indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return m
}

// Draw renders the mesh as triangles.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Destroy releases the GPU buffers.
func (m *Mesh) Destroy() {
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
}
