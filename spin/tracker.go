// Package spin tracks airborne rotation and classifies landings.
package spin

import (
	"math"

	"github.com/milk9111/downhill/common"
)

// Landing is the outcome band for the body angle at touchdown.
type Landing int

const (
	LandingSafe Landing = iota
	LandingWobble
	LandingFail
	LandingCrash
)

func (l Landing) String() string {
	switch l {
	case LandingSafe:
		return "safe"
	case LandingWobble:
		return "wobble"
	case LandingFail:
		return "fail"
	default:
		return "crash"
	}
}

// WobbleFactor scales horizontal velocity after a wobbled landing.
const WobbleFactor = 0.7

// MaxMultiplier caps the clean-landing speed multiplier.
const MaxMultiplier = 2.5

// Callbacks are invoked synchronously from Update on landing and flip
// events. Nil callbacks are skipped.
type Callbacks struct {
	OnCleanLanding func(multiplier float64)
	OnCrash        func()
	OnWobble       func()
	OnFlipComplete func(fullFlips int, partialFlip float64)
}

// Tracker accumulates rotation between takeoff and touchdown.
type Tracker struct {
	callbacks Callbacks

	grounded             bool
	wasGrounded          bool
	currentAngle         float64
	takeoffAngle         float64
	rotationSinceTakeoff float64
}

func NewTracker(cb Callbacks) *Tracker {
	return &Tracker{callbacks: cb, grounded: true, wasGrounded: true}
}

// CurrentAngle returns the last normalized body angle in [0, 360).
func (t *Tracker) CurrentAngle() float64 { return t.currentAngle }

// TakeoffAngle returns the normalized angle recorded at the last
// ground-to-air transition.
func (t *Tracker) TakeoffAngle() float64 { return t.takeoffAngle }

// RotationSinceTakeoff returns accumulated signed rotation in degrees.
func (t *Tracker) RotationSinceTakeoff() float64 { return t.rotationSinceTakeoff }

// Classify maps a normalized touchdown angle onto its landing band.
// Boundary angles fall into the safer band: 30 and 330 are safe, 70
// and 290 wobble, 110 and 250 fail.
func Classify(angleDeg float64) Landing {
	a := common.NormalizeDeg(angleDeg)
	switch {
	case a <= 30 || a >= 330:
		return LandingSafe
	case a <= 70 || a >= 290:
		return LandingWobble
	case a <= 110 || a >= 250:
		return LandingFail
	default:
		return LandingCrash
	}
}

// Multiplier returns the clean-landing speed multiplier for the given
// number of flips (|rotation| / 360).
func Multiplier(flips float64) float64 {
	switch {
	case flips <= 1:
		return 1.0 + 0.2*flips
	case flips <= 1.5:
		return 1.2 + 0.2*(flips-1)
	case flips <= 2:
		return 1.3 + 0.2*(flips-1.5)
	default:
		return MaxMultiplier
	}
}

// Update feeds one frame of ground state and rotation into the
// tracker. deltaDeg is the rotation applied this frame in degrees,
// negative for counter-clockwise.
func (t *Tracker) Update(grounded bool, angleDeg, deltaDeg float64) {
	t.currentAngle = common.NormalizeDeg(angleDeg)
	t.wasGrounded = t.grounded
	t.grounded = grounded

	switch {
	case t.wasGrounded && !grounded:
		// takeoff
		t.takeoffAngle = t.currentAngle
		t.rotationSinceTakeoff = 0

	case !t.wasGrounded && grounded:
		t.land()
		t.rotationSinceTakeoff = 0

	case !grounded:
		prevFlips := math.Floor(math.Abs(t.rotationSinceTakeoff) / 360)
		t.rotationSinceTakeoff += deltaDeg
		abs := math.Abs(t.rotationSinceTakeoff)
		if flips := math.Floor(abs / 360); flips > prevFlips {
			if t.callbacks.OnFlipComplete != nil {
				t.callbacks.OnFlipComplete(int(flips), math.Mod(abs, 360)/360)
			}
		}
	}
}

func (t *Tracker) land() {
	switch Classify(t.currentAngle) {
	case LandingSafe:
		if t.callbacks.OnCleanLanding != nil {
			t.callbacks.OnCleanLanding(Multiplier(math.Abs(t.rotationSinceTakeoff) / 360))
		}
	case LandingWobble:
		if t.callbacks.OnWobble != nil {
			t.callbacks.OnWobble()
		}
	default:
		// Landing on the side or upside down both end the run the
		// same way.
		if t.callbacks.OnCrash != nil {
			t.callbacks.OnCrash()
		}
	}
}
