package obj

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/downhill/common"
	"github.com/milk9111/downhill/prefabs"
)

// Visual dimensions of the composite player (triangular rider over a
// horizontal sled). The collision body is a single circle.
const (
	PlayerW = 40.0
	PlayerH = 50.0
	SledW   = 70.0
	SledH   = 12.0

	// BodyRadius follows max(PlayerW, SledH)/1.5.
	BodyRadius = PlayerW / 1.5

	bodyDensity     = 0.2
	bodyRestitution = 0.1
	baseFriction    = 0.05

	slopeAlignThresholdDeg = 2.0
	parachuteSledRaise     = 1.25 * PlayerH
	airBrakeSledTrail      = -0.8 * SledW
)

// playerMode is the interface each control regime implements.
type playerMode interface {
	Enter(p *Player)
	Exit(p *Player)
	Update(p *Player)
	Name() string
}

// singletons so mode switches never allocate
var (
	modeSledding playerMode = &sleddingMode{}
	modeWalking  playerMode = &walkingMode{}
)

// Player is the rider+sled composite over one circular dynamic body.
// The body spins freely; walk mode locks the angle to zero.
type Player struct {
	Input *Input

	body  *cp.Body
	shape *cp.Shape

	tuning prefabs.PlayerTuning
	mode   playerMode

	// trick flags; tuck/drag need ground, parachute/air-brake need air
	Tucking     bool
	Parachuting bool
	Dragging    bool
	AirBraking  bool

	grounded   bool
	slopeAngle float64
	friction   float64

	speedMultiplier float64
	rotationDelta   float64 // degrees of air rotation applied this frame
	controlsLocked  int     // frames

	sledVisible              bool
	sledOffsetX, sledOffsetY float64
}

func NewPlayer(input *Input, tuning prefabs.PlayerTuning, x, y float64) *Player {
	mass := bodyDensity * math.Pi * BodyRadius * BodyRadius
	moment := cp.MomentForCircle(mass, 0, BodyRadius, cp.Vector{})
	body := cp.NewBody(mass, moment)
	body.SetPosition(cp.Vector{X: x, Y: y})

	shape := cp.NewCircle(body, BodyRadius, cp.Vector{})
	shape.SetFriction(baseFriction)
	shape.SetElasticity(bodyRestitution)
	shape.SetCollisionType(collisionTypePlayer)

	p := &Player{
		Input:           input,
		body:            body,
		shape:           shape,
		tuning:          tuning,
		mode:            modeSledding,
		speedMultiplier: 1.0,
		friction:        baseFriction,
		sledVisible:     true,
	}
	p.mode.Enter(p)
	return p
}

// Body returns the chipmunk body.
func (p *Player) Body() *cp.Body { return p.body }

// SetTuning swaps in live-reloaded tuning values.
func (p *Player) SetTuning(t prefabs.PlayerTuning) {
	if p == nil {
		return
	}
	p.tuning = t
}

// Tuning returns the active tuning values.
func (p *Player) Tuning() prefabs.PlayerTuning { return p.tuning }

// Walking reports whether the player is in walk mode.
func (p *Player) Walking() bool { return p != nil && p.mode == modeWalking }

// ModeName returns the active mode's name for the debug overlay.
func (p *Player) ModeName() string {
	if p == nil || p.mode == nil {
		return "nil"
	}
	return p.mode.Name()
}

// SetWalking switches control regimes. Switching to the current mode
// is a no-op, so toggling twice restores the original sled state.
func (p *Player) SetWalking(walking bool) {
	if p == nil {
		return
	}
	next := playerMode(modeSledding)
	if walking {
		next = modeWalking
	}
	if p.mode == next {
		return
	}
	p.mode.Exit(p)
	p.mode = next
	p.mode.Enter(p)
}

// SetGroundState mirrors the collision-derived ground flag and slope.
// Any ground/air transition clears all trick states before the next
// physics step.
func (p *Player) SetGroundState(grounded bool, slopeAngle float64) {
	if p == nil {
		return
	}
	if grounded != p.grounded {
		p.ClearTricks()
	}
	p.grounded = grounded
	p.slopeAngle = slopeAngle
}

// Grounded reports the mirrored ground flag.
func (p *Player) Grounded() bool { return p != nil && p.grounded }

// ClearTricks drops all four trick flags and restores the sled visual.
func (p *Player) ClearTricks() {
	if p == nil {
		return
	}
	p.Tucking = false
	p.Parachuting = false
	p.Dragging = false
	p.AirBraking = false
	p.sledOffsetX = 0
	p.sledOffsetY = 0
}

// LockControls disables input handling for n frames (crash recovery).
func (p *Player) LockControls(n int) {
	if p == nil {
		return
	}
	p.controlsLocked = n
}

// ControlsLocked reports whether input is currently ignored.
func (p *Player) ControlsLocked() bool { return p != nil && p.controlsLocked > 0 }

// SpeedMultiplier returns the clean-landing multiplier currently held.
func (p *Player) SpeedMultiplier() float64 {
	if p == nil {
		return 1
	}
	return p.speedMultiplier
}

func (p *Player) SetSpeedMultiplier(m float64) {
	if p == nil {
		return
	}
	p.speedMultiplier = m
}

// RotationDelta returns the degrees of commanded air rotation applied
// during the last Update, for the rotation tracker.
func (p *Player) RotationDelta() float64 {
	if p == nil {
		return 0
	}
	return p.rotationDelta
}

// Position returns the body position.
func (p *Player) Position() cp.Vector {
	if p == nil || p.body == nil {
		return cp.Vector{}
	}
	return p.body.Position()
}

// Velocity returns the body velocity.
func (p *Player) Velocity() cp.Vector {
	if p == nil || p.body == nil {
		return cp.Vector{}
	}
	return p.body.Velocity()
}

func (p *Player) SetVelocity(x, y float64) {
	if p == nil || p.body == nil {
		return
	}
	p.body.SetVelocity(x, y)
}

// AngleDeg returns the body angle in degrees, unnormalized.
func (p *Player) AngleDeg() float64 {
	if p == nil || p.body == nil {
		return 0
	}
	return common.Deg(p.body.Angle())
}

// SetFriction applies the friction for the surface color under the
// player.
func (p *Player) SetFriction(f float64) {
	if p == nil || p.shape == nil {
		return
	}
	p.friction = f
	p.shape.SetFriction(f)
}

// Friction returns the last friction applied to the player shape.
func (p *Player) Friction() float64 {
	if p == nil {
		return 0
	}
	return p.friction
}

// Update runs the active mode's per-frame control handling. Call after
// SetGroundState and before the physics step.
func (p *Player) Update() {
	if p == nil || p.body == nil {
		return
	}
	p.rotationDelta = 0
	if p.controlsLocked > 0 {
		p.controlsLocked--
		return
	}
	p.mode.Update(p)
}

// --- sledding ---

type sleddingMode struct{}

func (sleddingMode) Name() string { return "sledding" }

func (sleddingMode) Enter(p *Player) {
	p.sledVisible = true
	p.sledOffsetX = 0
	p.sledOffsetY = 0
}

func (sleddingMode) Exit(p *Player) {}

func (sleddingMode) Update(p *Player) {
	t := p.tuning
	in := p.Input
	v := p.body.Velocity()
	dir := common.Sign(v.X)
	if dir == 0 {
		dir = 1
	}

	// small bias along the facing keeps the sled moving on near-flat
	// segments
	if p.grounded {
		a := p.body.Angle()
		p.body.ApplyForceAtWorldPoint(cp.Vector{X: math.Sin(a) * t.DownhillBias, Y: math.Cos(a) * t.DownhillBias}, p.body.Position())
	}

	switch {
	case !p.grounded && in.Active(ActionRotateCCW):
		p.body.SetAngularVelocity(-t.AirRotVel)
		p.rotationDelta = -common.Deg(t.AirRotVel)
	case !p.grounded && in.Active(ActionRotateCW):
		p.body.SetAngularVelocity(t.AirRotVel)
		p.rotationDelta = common.Deg(t.AirRotVel)
	case !p.grounded:
		p.body.SetAngularVelocity(0)
	default:
		p.body.SetAngularVelocity(0)
		p.alignToSlope()
	}

	// brake wins when both actions are held so tuck/drag and
	// parachute/air-brake stay mutually exclusive
	brakeHeld := in.Active(ActionBrake)
	trickHeld := in.Active(ActionTrick) && !brakeHeld

	if trickHeld {
		if p.grounded {
			p.Tucking = true
			p.Parachuting = false
			p.body.ApplyForceAtWorldPoint(cp.Vector{X: dir * t.TuckForce * p.speedMultiplier, Y: 0}, p.body.Position())
		} else {
			p.Parachuting = true
			p.Tucking = false
			p.sledOffsetY = -parachuteSledRaise
			p.body.ApplyForceAtWorldPoint(cp.Vector{X: 0, Y: -t.ParachuteForce}, p.body.Position())
			p.body.SetVelocity(v.X*1.01, v.Y)
		}
	} else {
		p.Tucking = false
		p.Parachuting = false
	}

	if brakeHeld {
		if p.grounded {
			p.Dragging = true
			p.AirBraking = false
			p.body.ApplyForceAtWorldPoint(cp.Vector{X: -dir * t.DragForce, Y: 0}, p.body.Position())
		} else {
			p.AirBraking = true
			p.Dragging = false
			p.sledOffsetX = airBrakeSledTrail
			decayed := math.Abs(v.X) * (1 - t.AirBrakeDecay)
			if decayed < t.MinSpeed {
				decayed = t.MinSpeed
			}
			p.body.SetVelocity(decayed*common.Sign(v.X), p.body.Velocity().Y)
		}
	} else {
		p.Dragging = false
		p.AirBraking = false
	}

	if !p.Parachuting && !p.AirBraking {
		p.sledOffsetX = 0
		p.sledOffsetY = 0
	}

	// arrow keys push along x, at half strength in the air
	push := t.PushForce * p.speedMultiplier
	if !p.grounded {
		push /= 2
	}
	if in.Active(ActionWalkLeft) {
		p.body.ApplyForceAtWorldPoint(cp.Vector{X: -push, Y: 0}, p.body.Position())
	}
	if in.Active(ActionWalkRight) {
		p.body.ApplyForceAtWorldPoint(cp.Vector{X: push, Y: 0}, p.body.Position())
	}
}

// alignToSlope eases the body angle toward the slope under the sled.
func (p *Player) alignToSlope() {
	cur := common.Deg(p.body.Angle())
	target := common.Deg(p.slopeAngle)
	diff := common.NormalizeDeg(target-cur+180) - 180
	if math.Abs(diff) <= slopeAlignThresholdDeg {
		return
	}
	p.body.SetAngle(common.Rad(cur + diff*p.tuning.SlopeAlignRate))
}

// --- walking ---

type walkingMode struct{}

func (walkingMode) Name() string { return "walking" }

func (walkingMode) Enter(p *Player) {
	p.ClearTricks()
	p.sledVisible = false
	p.body.SetAngle(0)
	p.body.SetAngularVelocity(0)
}

func (walkingMode) Exit(p *Player) {
	p.sledVisible = true
	p.sledOffsetX = 0
	p.sledOffsetY = 0
}

func (walkingMode) Update(p *Player) {
	t := p.tuning
	v := p.body.Velocity()
	p.body.SetVelocity(0, v.Y)
	p.body.SetAngle(0)
	p.body.SetAngularVelocity(0)

	pos := p.body.Position()
	if p.Input.Active(ActionWalkLeft) {
		p.body.SetPosition(cp.Vector{X: pos.X - t.WalkSpeed, Y: pos.Y})
	} else if p.Input.Active(ActionWalkRight) {
		p.body.SetPosition(cp.Vector{X: pos.X + t.WalkSpeed, Y: pos.Y})
	}
}
