package config

import "sync"

// RenderSettings holds window and presentation configuration
type RenderSettings struct {
	mu           sync.RWMutex
	windowWidth  int
	windowHeight int
	windowTitle  string
	fpsLimit     int  // 0 = unlimited
	vsync        bool // swap interval 1 when true
	clearColor   [4]float32
}

var globalRenderSettings = &RenderSettings{
	windowWidth:  800,
	windowHeight: 600,
	windowTitle:  "Test Window",
	fpsLimit:     0,
	vsync:        true,
	clearColor:   [4]float32{0, 0, 1, 1},
}

// GetWindowSize returns the requested window size in screen coordinates
func GetWindowSize() (int, int) {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.windowWidth, globalRenderSettings.windowHeight
}

// GetWindowTitle returns the window title
func GetWindowTitle() string {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.windowTitle
}

// GetFPSLimit returns the frame cap, 0 meaning unlimited
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame cap
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	// Clamp to reasonable values
	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}

	globalRenderSettings.fpsLimit = limit
}

// fpsLimitPresets are the caps CycleFPSLimit steps through
var fpsLimitPresets = []int{0, 30, 60, 120, 144}

// CycleFPSLimit moves the cap to the next preset after the current one and
// returns it. A cap that is not a preset moves to unlimited.
func CycleFPSLimit() int {
	current := GetFPSLimit()
	next := fpsLimitPresets[0]
	for i, p := range fpsLimitPresets {
		if p == current {
			next = fpsLimitPresets[(i+1)%len(fpsLimitPresets)]
			break
		}
	}
	SetFPSLimit(next)
	return next
}

// GetVSync reports whether buffer swaps wait for the display refresh
func GetVSync() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.vsync
}

// ToggleVSync flips vsync and returns the new state
func ToggleVSync() bool {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.vsync = !globalRenderSettings.vsync
	return globalRenderSettings.vsync
}

// GetSwapInterval maps the vsync flag to a GLFW swap interval
func GetSwapInterval() int {
	if GetVSync() {
		return 1
	}
	return 0
}

// GetClearColor returns the RGBA framebuffer clear color
func GetClearColor() [4]float32 {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.clearColor
}
