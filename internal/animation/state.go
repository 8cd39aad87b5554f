package animation

import (
	"gl-triangle/internal/config"

	"github.com/go-gl/mathgl/mgl32"
)

const fullTurn = 360.0

// Params are the fixed per-frame steps of the triangle animation.
// Increments are applied once per Step, not scaled by elapsed time.
type Params struct {
	MaxOffset        float32
	OffsetIncrement  float32
	AngularIncrement float32 // degrees
}

// DefaultParams returns the params currently held by the config package
func DefaultParams() Params {
	return Params{
		MaxOffset:        config.GetMaxOffset(),
		OffsetIncrement:  config.GetOffsetIncrement(),
		AngularIncrement: config.GetAngularIncrement(),
	}
}

// State is the mutable animation state owned by the render loop.
type State struct {
	Offset  float32
	Forward bool
	Angle   float32 // degrees, in [0, 360)
}

// New returns the start state: centered, unrotated, moving forward.
func New() State {
	return State{Forward: true}
}

// Reset restores the start state
func (s *State) Reset() {
	*s = New()
}

// Step advances the state by one frame and reports whether the offset
// direction flipped.
//
// The bound is checked after the increment is applied, so Offset can end up
// to one increment past MaxOffset before it turns around.
func (s *State) Step(p Params) bool {
	if s.Forward {
		s.Offset += p.OffsetIncrement
	} else {
		s.Offset -= p.OffsetIncrement
	}

	flipped := false
	if mgl32.Abs(s.Offset) >= p.MaxOffset {
		s.Forward = !s.Forward
		flipped = true
	}

	s.Angle += p.AngularIncrement
	if s.Angle >= fullTurn {
		s.Angle -= fullTurn
	}

	return flipped
}

// Model composes the model matrix: rotate about Z by Angle, then translate by
// (Offset, 0, 0) in the rotated frame.
func (s State) Model() mgl32.Mat4 {
	model := mgl32.Ident4()
	model = model.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(s.Angle)))
	model = model.Mul4(mgl32.Translate3D(s.Offset, 0, 0))
	return model
}
