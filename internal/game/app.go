package game

import (
	"log"
	"time"

	"gl-triangle/internal/animation"
	"gl-triangle/internal/config"
	renderer "gl-triangle/internal/graphics/renderer"
	"gl-triangle/internal/input"
	"gl-triangle/internal/profiling"
)

// slowFrameBudget is the CPU time per frame, excluding swap and event
// polling, above which the frame is reported.
const slowFrameBudget = 16 * time.Millisecond

// Surface is the window the loop presents to
type Surface interface {
	ShouldClose() bool
	SetShouldClose(bool)
	SwapBuffers()
}

// Frame draws one frame and owns the GL resources behind it
type Frame interface {
	Render(ctx renderer.RenderContext)
	Dispose()
}

// Hooks are the window-system calls the loop makes outside the surface
type Hooks struct {
	PollEvents   func()
	SwapInterval func(interval int)
}

// App runs the single-threaded poll, update, draw, present loop
type App struct {
	surface Surface
	frame   Frame
	input   *input.InputManager
	hooks   Hooks

	state  animation.State
	params animation.Params
	paused bool
	frames uint64

	profilingEnabled bool

	fpsLimiter *FPSLimiter
	fpsCounter *FPSCounter
}

// NewApp creates an app with the animation at its start state
func NewApp(surface Surface, frame Frame, im *input.InputManager, hooks Hooks) *App {
	return &App{
		surface:    surface,
		frame:      frame,
		input:      im,
		hooks:      hooks,
		state:      animation.New(),
		params:     animation.DefaultParams(),
		fpsLimiter: NewFPSLimiter(),
		fpsCounter: NewFPSCounter(time.Now()),
	}
}

// Launch builds the frame and, only if that succeeds, runs the loop until the
// surface is closed. The frame is disposed when the loop ends.
func Launch(surface Surface, im *input.InputManager, hooks Hooks, build func() (Frame, error)) error {
	frame, err := build()
	if err != nil {
		return err
	}
	defer frame.Dispose()

	NewApp(surface, frame, im, hooks).Run()
	return nil
}

// Run loops until the surface reports it should close
func (a *App) Run() {
	for !a.surface.ShouldClose() {
		a.tick()
	}
	log.Printf("Closed after %d frames", a.frames)
}

func (a *App) tick() {
	profiling.ResetFrame()
	start := time.Now()

	func() { defer profiling.Track("glfw.PollEvents")(); a.hooks.PollEvents() }()

	step := a.handleInput()
	if !a.paused || step {
		func() { defer profiling.Track("animation.Step")(); a.state.Step(a.params) }()
	}

	a.frame.Render(renderer.RenderContext{Model: a.state.Model()})

	func() { defer profiling.Track("glfw.SwapBuffers")(); a.surface.SwapBuffers() }()
	a.frames++

	processing := time.Since(start) - profiling.SumWithPrefix("glfw.")
	if processing > slowFrameBudget {
		log.Printf("Slow frame: %v. Top tasks: %s", processing, profiling.TopN(5))
	}

	if fps, ok := a.fpsCounter.Tick(time.Now()); ok {
		if a.profilingEnabled {
			log.Printf("FPS: %d (%s)", fps, profiling.TopN(3))
		} else {
			log.Printf("FPS: %d", fps)
		}
	}

	a.input.PostUpdate() // Clear "JustPressed" flags
	a.fpsLimiter.Wait(a.paused)
}

// handleInput applies this frame's key actions and reports whether a single
// step was requested while paused.
func (a *App) handleInput() bool {
	if a.input.JustPressed(input.ActionQuit) {
		a.surface.SetShouldClose(true)
	}
	if a.input.JustPressed(input.ActionPause) {
		a.togglePause()
	}
	if a.input.JustPressed(input.ActionReset) {
		a.state.Reset()
	}
	if a.input.JustPressed(input.ActionToggleProfiling) {
		a.profilingEnabled = !a.profilingEnabled
	}
	if a.input.JustPressed(input.ActionCycleFPSLimit) {
		if limit := config.CycleFPSLimit(); limit > 0 {
			log.Printf("FPS limit: %d", limit)
		} else {
			log.Printf("FPS limit: unlimited")
		}
	}
	if a.input.JustPressed(input.ActionToggleVSync) {
		on := config.ToggleVSync()
		a.hooks.SwapInterval(config.GetSwapInterval())
		log.Printf("VSync: %v", on)
	}
	return a.paused && a.input.JustPressed(input.ActionStep)
}

// togglePause freezes or resumes the animation; drawing continues either way
func (a *App) togglePause() {
	a.paused = !a.paused
	if a.paused {
		log.Printf("Paused at offset %.4f, angle %.2f", a.state.Offset, a.state.Angle)
	}
}
