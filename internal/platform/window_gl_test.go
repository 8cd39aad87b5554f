package platform_test

import (
	"testing"

	"gl-triangle/internal/platform"
	"gl-triangle/internal/platform/platformtest"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestNewWindowCreatesCoreContext(t *testing.T) {
	platformtest.Context(t)

	glfw.WindowHint(glfw.Visible, glfw.False)
	window, err := platform.NewWindow()
	if err != nil {
		t.Fatalf("NewWindow: %v", err)
	}
	defer window.Destroy()

	var major, minor, profile int32
	gl.GetIntegerv(gl.MAJOR_VERSION, &major)
	gl.GetIntegerv(gl.MINOR_VERSION, &minor)
	gl.GetIntegerv(gl.CONTEXT_PROFILE_MASK, &profile)

	if major < 3 || (major == 3 && minor < 3) {
		t.Errorf("context version %d.%d, want at least 3.3", major, minor)
	}
	if profile&gl.CONTEXT_CORE_PROFILE_BIT == 0 {
		t.Errorf("profile mask 0x%x, want core profile", profile)
	}
	if platform.GLVersion() == "" {
		t.Error("empty GL version string")
	}

	var viewport [4]int32
	gl.GetIntegerv(gl.VIEWPORT, &viewport[0])
	fbWidth, fbHeight := window.GetFramebufferSize()
	if viewport != [4]int32{0, 0, int32(fbWidth), int32(fbHeight)} {
		t.Errorf("viewport = %v, want framebuffer %dx%d", viewport, fbWidth, fbHeight)
	}
}
