package main

import (
	"log"
	"runtime"

	"gl-triangle/internal/game"
	"gl-triangle/internal/graphics/renderables/triangle"
	renderer "gl-triangle/internal/graphics/renderer"
	"gl-triangle/internal/input"
	"gl-triangle/internal/platform"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	closer.Init(closer.Config{
		ExitCodeOK:  0,
		ExitCodeErr: 1,
		ExitSignals: closer.DefaultSignalSet,
	})
	closer.Bind(func() {
		log.Println("Shutting down")
	})

	if err := run(); err != nil {
		// exits with status 1 after bound cleanups
		closer.Fatalln(err)
	}
	closer.Close()
}

// run performs every fallible setup step before the loop starts. GL and GLFW
// teardown happens here, on the locked main thread, before closer exits.
func run() error {
	if err := platform.Init(); err != nil {
		return err
	}
	defer platform.Terminate()

	window, err := platform.NewWindow()
	if err != nil {
		return err
	}
	defer window.Destroy()
	log.Printf("OpenGL %s", platform.GLVersion())

	im := input.NewInputManager()
	im.SetKeyCallback(window)

	hooks := game.Hooks{
		PollEvents:   platform.PollEvents,
		SwapInterval: platform.SetSwapInterval,
	}
	return game.Launch(window, im, hooks, func() (game.Frame, error) {
		r, err := setupRenderer(window)
		if err != nil {
			return nil, err
		}
		return r, nil
	})
}

func setupRenderer(window *glfw.Window) (*renderer.Renderer, error) {
	r, err := renderer.NewRenderer(triangle.NewTriangle())
	if err != nil {
		return nil, err
	}

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		r.UpdateViewport(width, height)
	})

	return r, nil
}
