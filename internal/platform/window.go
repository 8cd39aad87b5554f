package platform

import (
	"errors"
	"fmt"

	"gl-triangle/internal/config"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// ErrInit reports a windowing or GL loader failure during startup
var ErrInit = errors.New("platform init failed")

type hint struct {
	target glfw.Hint
	value  int
}

// contextHints requests an OpenGL 3.3 core, forward compatible context
func contextHints() []hint {
	return []hint{
		{glfw.ContextVersionMajor, 3},
		{glfw.ContextVersionMinor, 3},
		// Core profile = no backwards compat.
		{glfw.OpenGLProfile, glfw.OpenGLCoreProfile},
		{glfw.OpenGLForwardCompatible, glfw.True},
	}
}

// Init initializes GLFW. Must be called from the main thread.
func Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("%w: glfw: %v", ErrInit, err)
	}
	return nil
}

// Terminate releases GLFW
func Terminate() {
	glfw.Terminate()
}

// ApplyContextHints sets the window hints for the OpenGL 3.3 core context
func ApplyContextHints() {
	for _, h := range contextHints() {
		glfw.WindowHint(h.target, h.value)
	}
}

// SetSwapInterval sets the swap interval of the current context
func SetSwapInterval(interval int) {
	glfw.SwapInterval(interval)
}

// PollEvents pumps the window system event queue
func PollEvents() {
	glfw.PollEvents()
}

// NewWindow creates the window, makes its context current, loads GL and
// sizes the viewport to the framebuffer.
func NewWindow() (*glfw.Window, error) {
	ApplyContextHints()

	width, height := config.GetWindowSize()
	window, err := glfw.CreateWindow(width, height, config.GetWindowTitle(), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create window: %v", ErrInit, err)
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("%w: gl: %v", ErrInit, err)
	}

	SetSwapInterval(config.GetSwapInterval())

	fbWidth, fbHeight := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))

	return window, nil
}

// GLVersion returns the driver's version string, for the startup log
func GLVersion() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}
