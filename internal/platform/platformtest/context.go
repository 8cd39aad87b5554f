// Package platformtest provides a real OpenGL context for tests that need one.
package platformtest

import (
	"fmt"
	"os"
	"runtime"
	"testing"

	"gl-triangle/internal/platform"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Context makes a hidden window's OpenGL 3.3 core context current on the
// test's thread and returns the window. The test is skipped when no display
// or driver can provide one. Teardown is registered with tb.Cleanup.
func Context(tb testing.TB) *glfw.Window {
	tb.Helper()

	if runtime.GOOS == "linux" && os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		tb.Skip("no display available")
	}

	// GL contexts are bound to an OS thread
	runtime.LockOSThread()
	tb.Cleanup(runtime.UnlockOSThread)

	window, err := open()
	if err != nil {
		tb.Skipf("no OpenGL 3.3 core context: %v", err)
	}
	tb.Cleanup(func() {
		window.Destroy()
		platform.Terminate()
	})
	return window
}

func open() (window *glfw.Window, err error) {
	// glfw panics on errors it does not expect, e.g. a missing platform
	defer func() {
		if r := recover(); r != nil {
			window, err = nil, fmt.Errorf("glfw: %v", r)
		}
	}()

	if err := platform.Init(); err != nil {
		return nil, err
	}

	platform.ApplyContextHints()
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err = glfw.CreateWindow(64, 64, "test", nil, nil)
	if err != nil {
		platform.Terminate()
		return nil, err
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		platform.Terminate()
		return nil, err
	}
	return window, nil
}
