package graphics

import (
	"errors"
	"strings"
	"testing"

	"gl-triangle/internal/platform/platformtest"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	testVertexSrc = `#version 330
layout (location = 0) in vec3 pos;
uniform mat4 model;
void main() {
	gl_Position = model * vec4(pos, 1.0);
}`
	testFragmentSrc = `#version 330
out vec4 color;
void main() {
	color = vec4(1.0, 0.0, 0.0, 1.0);
}`
)

func TestNewShaderFromSourceFailures(t *testing.T) {
	platformtest.Context(t)

	tests := []struct {
		name     string
		vertex   string
		fragment string
		want     error
		contains string
	}{
		{
			name:     "vertex syntax",
			vertex:   "#version 330\nvoid main() { gl_Position = ; }",
			fragment: testFragmentSrc,
			want:     ErrCompile,
			contains: "vertex shader",
		},
		{
			name:     "fragment syntax",
			vertex:   testVertexSrc,
			fragment: "#version 330\nout vec4 color;\nvoid main() { color = undefined_value; }",
			want:     ErrCompile,
			contains: "fragment shader",
		},
		{
			name: "interface type mismatch",
			vertex: `#version 330
layout (location = 0) in vec3 pos;
out vec3 shade;
void main() {
	shade = pos;
	gl_Position = vec4(pos, 1.0);
}`,
			fragment: `#version 330
in vec4 shade;
out vec4 color;
void main() {
	color = shade;
}`,
			want: ErrLink,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewShaderFromSource(tt.vertex, tt.fragment)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if s != nil {
				t.Error("shader returned alongside error")
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("err %q does not mention %q", err, tt.contains)
			}
		})
	}
}

func TestNewShaderFromSourceCachesUniform(t *testing.T) {
	platformtest.Context(t)

	s, err := NewShaderFromSource(testVertexSrc, testFragmentSrc)
	if err != nil {
		t.Fatalf("NewShaderFromSource: %v", err)
	}
	defer s.Delete()

	loc := s.UniformLocation("model")
	if loc < 0 {
		t.Fatalf("model location = %d, want active uniform", loc)
	}
	if cached, ok := s.uniforms["model"]; !ok || cached != loc {
		t.Errorf("uniform cache = %v, want model -> %d", s.uniforms, loc)
	}
	if s.UniformLocation("missing") != -1 {
		t.Error("inactive uniform should resolve to -1")
	}

	s.Use()
	s.SetMatrix4(loc, mgl32.Ident4())
	s.Unbind()

	s.Delete()
	if s.ID != 0 {
		t.Errorf("ID after Delete = %d, want 0", s.ID)
	}
}
