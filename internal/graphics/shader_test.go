package graphics

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/go-gl/gl/v3.3-core/gl"
)

func TestErrorsAreDistinct(t *testing.T) {
	errs := []error{ErrCompile, ErrLink, ErrValidate}
	for i, a := range errs {
		for j, b := range errs {
			if i != j && errors.Is(a, b) {
				t.Errorf("%v should not match %v", a, b)
			}
		}
	}
}

func TestTerminate(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"void main() {}", "void main() {}\x00"},
		{"void main() {}\x00", "void main() {}\x00"},
		{"", "\x00"},
	}
	for _, tt := range tests {
		if got := terminate(tt.in); got != tt.want {
			t.Errorf("terminate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTrimLog(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"ERROR: 0:1: bad token\n\x00\x00", "ERROR: 0:1: bad token"},
		{"\x00", "no info log"},
		{"", "no info log"},
	}
	for _, tt := range tests {
		if got := trimLog(tt.in); got != tt.want {
			t.Errorf("trimLog(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStageName(t *testing.T) {
	if got := stageName(gl.VERTEX_SHADER); got != "vertex" {
		t.Errorf("stageName(VERTEX_SHADER) = %q", got)
	}
	if got := stageName(gl.FRAGMENT_SHADER); got != "fragment" {
		t.Errorf("stageName(FRAGMENT_SHADER) = %q", got)
	}
	if got := stageName(0x1234); got != "0x1234" {
		t.Errorf("stageName(0x1234) = %q", got)
	}
}

func TestNewShaderFSMissingFile(t *testing.T) {
	fsys := fstest.MapFS{
		"a.vert": {Data: []byte("#version 330\nvoid main() {}")},
	}
	if _, err := NewShaderFS(fsys, "a.vert", "missing.frag"); err == nil {
		t.Fatal("expected error for missing fragment shader")
	}
	if _, err := NewShaderFS(fsys, "missing.vert", "a.vert"); err == nil {
		t.Fatal("expected error for missing vertex shader")
	}
}

func TestVertexCount(t *testing.T) {
	tests := []struct {
		n          int
		components int32
		want       int32
	}{
		{9, 3, 3},
		{6, 2, 3},
		{10, 3, 3},
		{9, 0, 0},
		{0, 3, 0},
	}
	for _, tt := range tests {
		if got := VertexCount(make([]float32, tt.n), tt.components); got != tt.want {
			t.Errorf("VertexCount(%d floats, %d) = %d, want %d", tt.n, tt.components, got, tt.want)
		}
	}
}
