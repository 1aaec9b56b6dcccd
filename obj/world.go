package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/downhill/common"
	"github.com/milk9111/downhill/seed"
	"github.com/milk9111/downhill/track"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypeTerrain
	collisionTypeExtraLife
)

// World owns the chipmunk space, the terrain streamer, and the
// collision handlers. Handlers only mutate scalar flags and queue
// touched extra-life sensors; all real work happens in the frame loop.
type World struct {
	space    *cp.Space
	streamer *track.Streamer

	playerShape *cp.Shape

	grounded     bool
	groundGrace  int
	slopeAngle   float64
	surfaceColor track.Color

	touchedLives []*cp.Shape

	handlersReady bool
}

// NewWorld creates the space with downward gravity and a streamer
// opening at (startX, startY).
func NewWorld(rng *seed.Source, startX, startY float64) *World {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: common.Gravity})

	w := &World{space: space}
	w.streamer = track.NewStreamer(space, rng, startX, startY, common.BaseWidth, collisionTypeTerrain)
	return w
}

// Space returns the underlying chipmunk space.
func (w *World) Space() *cp.Space {
	if w == nil {
		return nil
	}
	return w.space
}

// Streamer returns the terrain streamer.
func (w *World) Streamer() *track.Streamer {
	if w == nil {
		return nil
	}
	return w.streamer
}

// AttachPlayer registers the player body with the space and installs
// the collision handlers.
func (w *World) AttachPlayer(p *Player) {
	if w == nil || w.space == nil || p == nil || p.body == nil {
		return
	}
	w.space.AddBody(p.body)
	w.space.AddShape(p.shape)
	w.playerShape = p.shape
	w.setupHandlers()
}

// DetachPlayer removes the player body on scene teardown.
func (w *World) DetachPlayer(p *Player) {
	if w == nil || w.space == nil || p == nil || p.body == nil || w.playerShape == nil {
		return
	}
	w.space.RemoveShape(p.shape)
	w.space.RemoveBody(p.body)
	w.playerShape = nil
}

func (w *World) setupHandlers() {
	if w.handlersReady || w.space == nil {
		return
	}

	terrainHandler := w.space.NewCollisionHandler(collisionTypePlayer, collisionTypeTerrain)
	terrainHandler.UserData = w
	terrainHandler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*World)
		if !ok || world == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		terrainShape := shapeB
		if shapeB == world.playerShape {
			terrainShape = shapeA
		}
		if surf, ok := terrainShape.UserData.(*track.Surface); ok && surf != nil {
			world.slopeAngle = surf.Angle
			world.surfaceColor = surf.Color
		}
		world.grounded = true
		world.groundGrace = 6
		return true
	}

	lifeHandler := w.space.NewCollisionHandler(collisionTypePlayer, collisionTypeExtraLife)
	lifeHandler.UserData = w
	lifeHandler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*World)
		if !ok || world == nil {
			return false
		}
		shapeA, shapeB := arb.Shapes()
		sensor := shapeB
		if shapeB == world.playerShape {
			sensor = shapeA
		}
		world.touchedLives = append(world.touchedLives, sensor)
		return false
	}

	w.handlersReady = true
}

// BeginStep resets per-step contact flags. Grounded persists for a few
// grace frames so glancing contacts don't flicker the ground state.
func (w *World) BeginStep() {
	if w == nil {
		return
	}
	if w.groundGrace > 0 {
		w.groundGrace--
	}
	w.grounded = false
}

// Step advances the simulation.
func (w *World) Step(dt float64) {
	if w == nil || w.space == nil {
		return
	}
	w.space.Step(dt)
}

// Grounded reports whether the player touched terrain recently.
func (w *World) Grounded() bool {
	if w == nil {
		return false
	}
	return w.grounded || w.groundGrace > 0
}

// ClearGrounded drops the ground state immediately, e.g. on jump.
func (w *World) ClearGrounded() {
	if w == nil {
		return
	}
	w.grounded = false
	w.groundGrace = 0
}

// SlopeAngle returns the chord angle of the last terrain contact.
func (w *World) SlopeAngle() float64 {
	if w == nil {
		return 0
	}
	return w.slopeAngle
}

// SurfaceColor returns the color of the last terrain contact.
func (w *World) SurfaceColor() track.Color {
	if w == nil {
		return track.ColorBlue
	}
	return w.surfaceColor
}

// DrainTouchedLives returns and clears the extra-life sensors the
// player contacted during the last step.
func (w *World) DrainTouchedLives() []*cp.Shape {
	if w == nil || len(w.touchedLives) == 0 {
		return nil
	}
	touched := w.touchedLives
	w.touchedLives = nil
	return touched
}
