package common

// Logical screen size. The camera renders the world into an offscreen
// image of this size regardless of the window resolution.
const (
	BaseWidth  = 1280
	BaseHeight = 720
)

// Gravity is the downward acceleration applied by the chipmunk space.
// Positive Y is down, matching screen coordinates.
const Gravity = 0.5

// Physics step rate. The space is stepped once per ebiten update tick.
const TicksPerSecond = 60
