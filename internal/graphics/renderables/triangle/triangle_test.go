package triangle

import (
	"io/fs"
	"strings"
	"testing"

	renderer "gl-triangle/internal/graphics/renderer"
	"gl-triangle/internal/platform/platformtest"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

var _ renderer.Renderable = (*Triangle)(nil)

func TestVerticesFormCenteredTriangle(t *testing.T) {
	if len(Vertices) != 9 {
		t.Fatalf("len(Vertices) = %d, want 9", len(Vertices))
	}

	minX, maxX := Vertices[0], Vertices[0]
	minY, maxY := Vertices[1], Vertices[1]
	for i := 0; i < len(Vertices); i += 3 {
		x, y, z := Vertices[i], Vertices[i+1], Vertices[i+2]
		if z != 0 {
			t.Errorf("vertex %d has z = %v, want 0", i/3, z)
		}
		minX, maxX = min(minX, x), max(maxX, x)
		minY, maxY = min(minY, y), max(maxY, y)
	}
	if minX+maxX != 0 || minY+maxY != 0 {
		t.Errorf("bounds x[%v,%v] y[%v,%v] not centered on origin", minX, maxX, minY, maxY)
	}
}

func TestEmbeddedShaders(t *testing.T) {
	tests := []struct {
		path     string
		contains []string
	}{
		{VertShader, []string{"#version 330", "layout (location = 0) in vec3 pos", "uniform mat4 model", "0.4 * pos.x", "0.4 * pos.y"}},
		{FragShader, []string{"#version 330", "vec4(1.0, 0.0, 0.0, 1.0)"}},
	}
	for _, tt := range tests {
		src, err := fs.ReadFile(shaderFS, tt.path)
		if err != nil {
			t.Fatalf("read %s: %v", tt.path, err)
		}
		for _, want := range tt.contains {
			if !strings.Contains(string(src), want) {
				t.Errorf("%s missing %q", tt.path, want)
			}
		}
	}
}

func TestNewTriangleHasNoUniformYet(t *testing.T) {
	if tri := NewTriangle(); tri.model != -1 {
		t.Errorf("model location = %d before Init, want -1", tri.model)
	}
}

func TestDisposeBeforeInit(t *testing.T) {
	NewTriangle().Dispose()
}

func TestInitRenderDispose(t *testing.T) {
	platformtest.Context(t)

	tri := NewTriangle()
	if err := tri.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if tri.model < 0 {
		t.Errorf("model location = %d, want active uniform", tri.model)
	}

	tri.Render(renderer.RenderContext{Model: mgl32.HomogRotate3DZ(mgl32.DegToRad(45))})
	if code := gl.GetError(); code != gl.NO_ERROR {
		t.Errorf("GL error 0x%x after Render", code)
	}

	tri.Dispose()
	if tri.shader.ID != 0 {
		t.Error("program not deleted")
	}
}
