package renderer

import (
	"fmt"

	"gl-triangle/internal/config"
	"gl-triangle/internal/profiling"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// target is the framebuffer the renderer clears and sizes
type target interface {
	Clear(color mgl32.Vec4)
	Viewport(width, height int)
}

type glTarget struct{}

func (glTarget) Clear(c mgl32.Vec4) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (glTarget) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	target      target
	clearColor  mgl32.Vec4
}

// NewRenderer creates a renderer and initializes every renderable in order.
// If one fails, those already initialized are disposed and the error is returned.
func NewRenderer(rs ...Renderable) (*Renderer, error) {
	return newRenderer(glTarget{}, rs...)
}

func newRenderer(t target, rs ...Renderable) (*Renderer, error) {
	r := &Renderer{
		target:     t,
		clearColor: mgl32.Vec4(config.GetClearColor()),
	}

	for i, rd := range rs {
		if err := rd.Init(); err != nil {
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, fmt.Errorf("init renderable %d: %w", i, err)
		}
	}
	r.renderables = rs

	return r, nil
}

// Render clears the framebuffer and renders all features
func (r *Renderer) Render(ctx RenderContext) {
	defer profiling.Track("renderer.Render")()

	r.target.Clear(r.clearColor)
	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// UpdateViewport resizes the GL viewport to the framebuffer and notifies renderables
func (r *Renderer) UpdateViewport(width, height int) {
	if width <= 0 || height <= 0 {
		// minimized
		return
	}
	r.target.Viewport(width, height)
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
	r.renderables = nil
}
