package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Action is an abstract input the game reacts to. The mapper folds
// keyboard and gamepad sources into the same action set.
type Action int

const (
	ActionJump Action = iota
	ActionWalkLeft
	ActionWalkRight
	ActionRotateCCW
	ActionRotateCW
	ActionTrick
	ActionBrake
	ActionToggleWalk

	actionCount
)

const gamepadStickThreshold = 0.3

// Input polls raw devices once per frame and exposes edge-less action
// states plus a latched walk-mode flag. A missing gamepad simply
// contributes no actions.
type Input struct {
	active    [actionCount]bool
	jumpEdge  bool
	pauseEdge bool
	walkMode  bool
}

func NewInput() *Input {
	return &Input{}
}

// Update reconciles keyboard and gamepad state into actions.
func (i *Input) Update() {
	if i == nil {
		return
	}

	for a := range i.active {
		i.active[a] = false
	}

	// Keyboard: arrows push, W/S rotate, A/D brake/trick, Space jump,
	// Tab toggles walk mode.
	i.active[ActionWalkLeft] = ebiten.IsKeyPressed(ebiten.KeyLeft)
	i.active[ActionWalkRight] = ebiten.IsKeyPressed(ebiten.KeyRight)
	i.active[ActionRotateCCW] = ebiten.IsKeyPressed(ebiten.KeyW)
	i.active[ActionRotateCW] = ebiten.IsKeyPressed(ebiten.KeyS)
	i.active[ActionBrake] = ebiten.IsKeyPressed(ebiten.KeyA)
	i.active[ActionTrick] = ebiten.IsKeyPressed(ebiten.KeyD)
	i.active[ActionJump] = ebiten.IsKeyPressed(ebiten.KeySpace)

	i.jumpEdge = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	i.pauseEdge = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	toggleEdge := inpututil.IsKeyJustPressed(ebiten.KeyTab)

	// Gamepad: first connected standard pad. Left-stick vertical maps
	// to rotation, horizontal to walking, south face to jump.
	if ids := ebiten.GamepadIDs(); len(ids) > 0 {
		gid := ids[0]

		leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if leftX < -gamepadStickThreshold {
			i.active[ActionWalkLeft] = true
		} else if leftX > gamepadStickThreshold {
			i.active[ActionWalkRight] = true
		}

		leftY := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickVertical)
		if leftY < -gamepadStickThreshold {
			i.active[ActionRotateCCW] = true
		} else if leftY > gamepadStickThreshold {
			i.active[ActionRotateCW] = true
		}

		if ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom) {
			i.active[ActionJump] = true
		}
		if inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightBottom) {
			i.jumpEdge = true
		}

		i.active[ActionBrake] = i.active[ActionBrake] ||
			ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonFrontTopLeft)
		i.active[ActionTrick] = i.active[ActionTrick] ||
			ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonFrontTopRight)

		if inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterLeft) {
			toggleEdge = true
		}
		if inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight) {
			i.pauseEdge = true
		}
	}

	i.active[ActionToggleWalk] = toggleEdge
	if toggleEdge {
		i.walkMode = !i.walkMode
	}
}

// Active reports whether an action is currently held.
func (i *Input) Active(a Action) bool {
	if i == nil || a < 0 || a >= actionCount {
		return false
	}
	return i.active[a]
}

// JumpPressed is true only on the frame the jump input went down.
func (i *Input) JumpPressed() bool {
	return i != nil && i.jumpEdge
}

// PausePressed is true on the frame the pause input went down.
func (i *Input) PausePressed() bool {
	return i != nil && i.pauseEdge
}

// WalkMode returns the latched walk-mode flag, toggled on each rising
// edge of the toggle action.
func (i *Input) WalkMode() bool {
	return i != nil && i.walkMode
}

// SetWalkMode overrides the latch, used when a crash forces walking.
func (i *Input) SetWalkMode(on bool) {
	if i == nil {
		return
	}
	i.walkMode = on
}
