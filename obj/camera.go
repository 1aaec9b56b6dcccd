package obj

import (
	"github.com/milk9111/downhill/common"
)

// Camera follows a world point with a deadzone and lerp smoothing,
// leading ahead in the direction of travel so the player sees more of
// the upcoming slope.
type Camera struct {
	PosX float64
	PosY float64

	screenW float64
	screenH float64

	// smoothing factor (0..1). higher -> faster follow.
	smooth float64
	// half-extent of the box the target may move in without dragging
	// the camera
	deadzoneW float64
	deadzoneH float64
	// horizontal lead applied in the direction of travel
	lookAhead float64
}

func NewCamera(screenW, screenH float64) *Camera {
	return &Camera{
		screenW:   screenW,
		screenH:   screenH,
		smooth:    0.12,
		deadzoneW: screenW * 0.08,
		deadzoneH: screenH * 0.1,
		lookAhead: screenW * 0.15,
	}
}

func (c *Camera) SetSmooth(f float64) {
	if f < 0 {
		f = 0
	}
	c.smooth = f
}

// SnapTo centers the view immediately, e.g. after a run restart.
func (c *Camera) SnapTo(x, y float64) {
	c.PosX = x
	c.PosY = y
}

// Update moves the camera toward the target. velX biases the center
// ahead of a moving target.
func (c *Camera) Update(targetX, targetY, velX float64) {
	targetX += common.Sign(velX) * c.lookAhead

	dx := targetX - c.PosX
	dy := targetY - c.PosY

	// only chase the part of the offset outside the deadzone
	if dx > c.deadzoneW {
		dx -= c.deadzoneW
	} else if dx < -c.deadzoneW {
		dx += c.deadzoneW
	} else {
		dx = 0
	}
	if dy > c.deadzoneH {
		dy -= c.deadzoneH
	} else if dy < -c.deadzoneH {
		dy += c.deadzoneH
	} else {
		dy = 0
	}

	if c.smooth <= 0 {
		c.PosX += dx
		c.PosY += dy
	} else {
		c.PosX += dx * c.smooth
		c.PosY += dy * c.smooth
	}
}

// ViewTopLeft returns the world-space top-left of the current view.
func (c *Camera) ViewTopLeft() (float64, float64) {
	return c.PosX - c.screenW/2, c.PosY - c.screenH/2
}
