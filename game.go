package main

import (
	"fmt"
	"log"
	"math"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/downhill/common"
	"github.com/milk9111/downhill/obj"
	"github.com/milk9111/downhill/prefabs"
	"github.com/milk9111/downhill/seed"
	"github.com/milk9111/downhill/spin"
	"github.com/milk9111/downhill/track"
)

const (
	playerSpawnX  = 200.0
	playerSpawnY  = 260.0
	maxFallSpeed  = 18.0
	boostInterval = 6 // frames, ~10 Hz
	passiveBoost  = 0.02

	flashFrames        = 18 // 300 ms
	crashLockFrames    = 20
	gameOverGraceTicks = 90 // ~1.5 s from terminal crash to menu

	bluePointsPerTick = 2.0 / 60.0

	fallBoundBelow  = 800.0
	fallBoundBehind = 400.0
)

type gamePhase int

const (
	phasePlaying gamePhase = iota
	phasePaused
	phaseGameOver
)

type Game struct {
	frames int
	debug  bool
	quit   bool

	seedStr  string
	tunePath string
	tuning   prefabs.Tuning
	watcher  *prefabs.Watcher

	input        *obj.Input
	world        *obj.World
	player       *obj.Player
	tracker      *spin.Tracker
	collectibles *obj.CollectibleManager
	camera       *obj.Camera

	lives  int
	points float64
	startY float64

	phase          gamePhase
	gameOverTicks  int // counts down after the last life is lost
	pauseUI        *pauseUI
	gameOverUI     *pauseUI
	clipboardReady bool

	hud    *hud
	flash  *flashEffect
	bursts []*burstEffect
}

func NewGame(seedStr string, debug bool, tunePath string) *Game {
	if !seed.Valid(seedStr) {
		seedStr = seed.Generate()
	}
	log.Printf("Game: session seed %s", seedStr)

	tuning := prefabs.Default()
	var watcher *prefabs.Watcher
	if tunePath != "" {
		t, err := prefabs.Load(tunePath)
		if err != nil {
			log.Printf("Game: tuning load: %v", err)
		} else {
			tuning = t
		}
		w, err := prefabs.NewWatcher(filepath.Dir(tunePath))
		if err != nil {
			log.Printf("Game: tuning watch: %v", err)
		} else {
			watcher = w
		}
	}

	g := &Game{
		debug:    debug,
		seedStr:  seedStr,
		tunePath: tunePath,
		tuning:   tuning,
		watcher:  watcher,
		input:    obj.NewInput(),
		hud:      newHUD(),
	}
	g.buildScene()
	g.pauseUI = newPauseUI(g)
	g.gameOverUI = newGameOverUI(g)
	return g
}

// buildScene creates everything a run owns: space, terrain, player,
// pickups. The seed string fully determines the slope.
func (g *Game) buildScene() {
	rng := seed.NewSource(g.seedStr)
	g.world = obj.NewWorld(rng, 0, playerSpawnY+100)

	g.world.Streamer().Update(playerSpawnX)
	startY := g.world.Streamer().HeightAt(playerSpawnX) - obj.BodyRadius - obj.PlayerH

	g.player = obj.NewPlayer(g.input, g.tuning.Player, playerSpawnX, startY)
	g.world.AttachPlayer(g.player)
	g.collectibles = obj.NewCollectibleManager(g.world.Space(), rng, g.world.Streamer(), g.tuning.Collectible)

	g.tracker = spin.NewTracker(spin.Callbacks{
		OnCleanLanding: g.onCleanLanding,
		OnCrash:        g.onCrash,
		OnWobble:       g.onWobble,
		OnFlipComplete: g.onFlipComplete,
	})

	g.camera = obj.NewCamera(common.BaseWidth, common.BaseHeight)
	g.camera.SnapTo(playerSpawnX, startY)

	g.lives = g.tuning.Player.InitialLives
	g.points = 0
	g.startY = startY
	g.flash = nil
	g.bursts = nil
	g.gameOverTicks = 0
	g.hud.reset()
	g.input.SetWalkMode(false)
	g.phase = phasePlaying
}

// teardownScene releases every body and shape so a restart starts from
// an empty space.
func (g *Game) teardownScene() {
	g.collectibles.Teardown()
	g.world.DetachPlayer(g.player)
	g.world.Streamer().Teardown()
	g.player = nil
}

// restart tears the run down and rebuilds it. sameSeed replays the
// identical slope; otherwise a fresh seed is generated.
func (g *Game) restart(sameSeed bool) {
	g.teardownScene()
	if !sameSeed {
		g.seedStr = seed.Generate()
		log.Printf("Game: new session seed %s", g.seedStr)
	}
	g.buildScene()
	g.pauseUI = newPauseUI(g)
	g.gameOverUI = newGameOverUI(g)
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.reloadTuning()

	switch g.phase {
	case phasePaused:
		// the run clock and the walk latch freeze while the menu is up
		walk := g.input.WalkMode()
		g.input.Update()
		g.input.SetWalkMode(walk)
		if g.input.PausePressed() {
			g.phase = phasePlaying
			return nil
		}
		g.pauseUI.update()
		return nil
	case phaseGameOver:
		walk := g.input.WalkMode()
		g.input.Update()
		g.input.SetWalkMode(walk)
		g.gameOverUI.update()
		return nil
	}

	g.frames++
	g.world.BeginStep()
	g.input.Update()

	if g.input.PausePressed() {
		g.phase = phasePaused
		return nil
	}
	if g.player == nil {
		return nil
	}

	if g.gameOverTicks > 0 {
		g.gameOverTicks--
		if g.gameOverTicks == 0 {
			g.phase = phaseGameOver
			return nil
		}
	}

	// latched walk toggle
	if g.input.WalkMode() != g.player.Walking() {
		g.player.SetWalking(g.input.WalkMode())
	}

	grounded := g.world.Grounded()
	g.player.SetGroundState(grounded, g.world.SlopeAngle())

	if grounded {
		c := g.world.SurfaceColor()
		g.player.SetFriction(c.Friction())
		if c == track.ColorBlue {
			g.points += bluePointsPerTick
		}
	}

	g.player.Update()

	g.tracker.Update(grounded, g.player.AngleDeg(), g.player.RotationDelta())

	if g.input.JumpPressed() && grounded && !g.player.ControlsLocked() {
		v := g.player.Velocity()
		jump := g.tuning.Player.JumpVelocity
		if g.player.Walking() {
			jump = g.tuning.Player.WalkJump
		}
		g.player.SetVelocity(v.X, jump)
		g.world.ClearGrounded()
		g.player.SetSpeedMultiplier(1.0)
	}

	// low-frequency boost keeps a held multiplier tangible without
	// active input
	if g.frames%boostInterval == 0 && grounded && g.player.SpeedMultiplier() > 1 {
		v := g.player.Velocity()
		if dir := common.Sign(v.X); dir != 0 {
			boost := (g.player.SpeedMultiplier() - 1) * math.Abs(v.X) * passiveBoost
			g.player.SetVelocity(v.X+dir*boost, v.Y)
		}
	}

	pos := g.player.Position()
	g.world.Streamer().Update(pos.X)

	// thin terrain chords tunnel at extreme fall speeds
	if v := g.player.Velocity(); v.Y > maxFallSpeed {
		g.player.SetVelocity(v.X, maxFallSpeed)
	}

	g.world.Step(1.0)

	now := float64(g.frames) / float64(common.TicksPerSecond)
	pos = g.player.Position()

	g.collectLives(now)
	if err := g.collectibles.Update(now, pos.X, pos.Y, g.lives, g.tuning.Player.MaxLives); err != nil {
		log.Printf("Game: collectibles: %v", err)
	}

	camX, camY := g.camera.ViewTopLeft()
	if pos.Y > camY+common.BaseHeight+fallBoundBelow || pos.X < camX-fallBoundBehind {
		log.Printf("Game: player out of bounds at (%.0f, %.0f), restarting", pos.X, pos.Y)
		g.restart(false)
		return nil
	}

	g.updateEffects()
	g.hud.update()
	g.camera.Update(pos.X, pos.Y, g.player.Velocity().X)
	return nil
}

// collectLives resolves sensor contacts queued during the step.
func (g *Game) collectLives(now float64) {
	touched := g.world.DrainTouchedLives()
	if len(touched) == 0 {
		return
	}
	for _, at := range g.collectibles.Collect(now, touched, g.lives, g.tuning.Player.MaxLives) {
		g.lives++
		g.bursts = append(g.bursts, newBurst(at.X, at.Y))
		g.hud.toast("Extra Life!")
		log.Printf("Game: extra life collected, lives=%d", g.lives)
	}
}

// reloadTuning drains watcher events and re-applies the yaml tuning.
func (g *Game) reloadTuning() {
	if g.watcher == nil {
		return
	}
	reload := false
	for {
		select {
		case _, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			reload = true
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			if err != nil {
				log.Printf("Game: tuning watcher: %v", err)
			}
		default:
			if reload {
				t, err := prefabs.Load(g.tunePath)
				if err != nil {
					log.Printf("Game: tuning reload: %v", err)
					return
				}
				g.tuning = t
				g.player.SetTuning(t.Player)
				g.collectibles.SetTuning(t.Collectible)
				log.Printf("Game: tuning reloaded from %s", g.tunePath)
			}
			return
		}
	}
}

// --- rotation tracker callbacks ---

func (g *Game) onCleanLanding(multiplier float64) {
	if g.player == nil {
		return
	}
	g.player.SetSpeedMultiplier(multiplier)
	if multiplier > 1.0 {
		g.hud.toast(fmt.Sprintf("%.1fx Speed Boost!", multiplier))
	}
}

func (g *Game) onWobble() {
	if g.player == nil {
		return
	}
	v := g.player.Velocity()
	g.player.SetVelocity(v.X*spin.WobbleFactor, v.Y)
	g.player.SetSpeedMultiplier(1.0)
	g.hud.toast("Wobble!")
}

func (g *Game) onFlipComplete(fullFlips int, partialFlip float64) {
	g.hud.toast(fmt.Sprintf("%dx Flip!", fullFlips))
}

func (g *Game) onCrash() {
	if g.player == nil {
		return
	}
	g.player.SetVelocity(0, 0)
	g.player.SetSpeedMultiplier(1.0)
	g.lives--
	if g.lives <= 0 {
		g.lives = 0
		g.hud.toast("Wipeout!")
		g.flash = newFlash(terminalFlash)
		g.gameOverTicks = gameOverGraceTicks
		return
	}

	g.hud.toast("Crash!")
	g.flash = newFlash(crashFlash)
	g.input.SetWalkMode(true)
	g.player.SetWalking(true)
	g.player.LockControls(crashLockFrames)
	g.player.SetVelocity(2, -1)
	log.Printf("Game: crash, lives=%d", g.lives)
}

func (g *Game) updateEffects() {
	if g.flash != nil && g.flash.done() {
		g.flash = nil
	} else if g.flash != nil {
		g.flash.update()
	}
	live := g.bursts[:0]
	for _, b := range g.bursts {
		b.update()
		if !b.done() {
			live = append(live, b)
		}
	}
	g.bursts = live
}

func (g *Game) Draw(screen *ebiten.Image) {
	camX, camY := g.camera.ViewTopLeft()

	g.world.Streamer().Draw(screen, camX, camY)
	g.collectibles.Draw(screen, camX, camY)
	if g.player != nil {
		g.player.Draw(screen, camX, camY)
	}
	for _, b := range g.bursts {
		b.draw(screen, camX, camY)
	}
	if g.flash != nil {
		g.flash.draw(screen)
	}

	g.hud.draw(screen, g)

	switch g.phase {
	case phasePaused:
		g.pauseUI.draw(screen)
	case phaseGameOver:
		g.gameOverUI.draw(screen)
	}

	if g.debug {
		pos := g.player.Position()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
			"FPS: %.1f  mode: %s  grounded: %t  segments: %d  pos: (%.0f, %.0f)",
			ebiten.ActualFPS(), g.player.ModeName(), g.world.Grounded(),
			len(g.world.Streamer().Segments()), pos.X, pos.Y,
		), 4, common.BaseHeight-18)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
