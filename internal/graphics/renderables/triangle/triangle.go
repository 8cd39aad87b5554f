package triangle

import (
	"embed"
	"fmt"

	"gl-triangle/internal/graphics"
	renderer "gl-triangle/internal/graphics/renderer"
	"gl-triangle/internal/profiling"
)

//go:embed shaders/*.vert shaders/*.frag
var shaderFS embed.FS

const (
	VertShader = "shaders/triangle.vert"
	FragShader = "shaders/triangle.frag"

	modelUniform = "model"
)

// Vertices is the static triangle, three xyz positions
var Vertices = []float32{
	-1.0, -1.0, 0.0,
	1.0, -1.0, 0.0,
	0.0, 1.0, 0.0,
}

// Triangle implements rendering of the animated triangle
type Triangle struct {
	shader *graphics.Shader
	mesh   *graphics.Mesh
	model  int32
}

// NewTriangle creates a new triangle renderable
func NewTriangle() *Triangle {
	return &Triangle{model: -1}
}

// Init uploads the geometry and builds the shader program
func (t *Triangle) Init() error {
	t.mesh = graphics.NewMesh(Vertices, 3)

	shader, err := graphics.NewShaderFS(shaderFS, VertShader, FragShader)
	if err != nil {
		t.mesh.Dispose()
		t.mesh = nil
		return fmt.Errorf("triangle: %w", err)
	}
	t.shader = shader
	t.model = t.shader.UniformLocation(modelUniform)

	return nil
}

// Render draws the triangle with the frame's model matrix
func (t *Triangle) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderTriangle")()

	t.shader.Use()
	t.shader.SetMatrix4(t.model, ctx.Model)
	t.mesh.Draw()
	t.shader.Unbind()
}

// SetViewport is a no-op; the triangle is drawn in clip space
func (t *Triangle) SetViewport(width, height int) {}

// Dispose cleans up OpenGL resources
func (t *Triangle) Dispose() {
	if t.mesh != nil {
		t.mesh.Dispose()
	}
	if t.shader != nil {
		t.shader.Delete()
	}
}
