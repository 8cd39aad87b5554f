package graphics

import "github.com/go-gl/gl/v3.3-core/gl"

// Mesh is a static, position-only vertex array uploaded once
type Mesh struct {
	vao   uint32
	vbo   uint32
	count int32
}

// NewMesh uploads vertices as one float attribute of the given component
// count at location 0.
func NewMesh(vertices []float32, components int32) *Mesh {
	m := &Mesh{count: VertexCount(vertices, components)}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, components, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(0)

	// unbind to reduce accidental state changes
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return m
}

// Draw issues one triangle-list draw of the whole mesh
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	gl.BindVertexArray(0)
}

// Dispose deletes the GL objects. Safe to call more than once.
func (m *Mesh) Dispose() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
}

// VertexCount returns how many whole vertices fit in a flat float slice
func VertexCount(vertices []float32, components int32) int32 {
	if components <= 0 {
		return 0
	}
	return int32(len(vertices)) / components
}
