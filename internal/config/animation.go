package config

// Per-frame animation constants. Steps are applied once per frame, not per
// second, so the on-screen speed follows the achieved frame rate.
const (
	maxOffset        float32 = 0.7
	offsetIncrement  float32 = 0.0005
	angularIncrement float32 = 0.01 // degrees
)

// GetMaxOffset returns the offset magnitude at which the direction flips
func GetMaxOffset() float32 {
	return maxOffset
}

// GetOffsetIncrement returns the per-frame offset step
func GetOffsetIncrement() float32 {
	return offsetIncrement
}

// GetAngularIncrement returns the per-frame rotation step in degrees
func GetAngularIncrement() float32 {
	return angularIncrement
}
