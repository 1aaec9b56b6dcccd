package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/downhill/common"
)

type flashKind int

const (
	crashFlash flashKind = iota
	terminalFlash
)

// flashEffect tints the whole screen, fading out over its lifetime.
// Crashes flash red for 300 ms; the terminal variant holds longer and
// darker while the game-over grace period runs.
type flashEffect struct {
	kind   flashKind
	age    int
	length int
}

func newFlash(kind flashKind) *flashEffect {
	length := flashFrames
	if kind == terminalFlash {
		length = gameOverGraceTicks
	}
	return &flashEffect{kind: kind, length: length}
}

func (f *flashEffect) update() { f.age++ }

func (f *flashEffect) done() bool { return f.age >= f.length }

func (f *flashEffect) draw(screen *ebiten.Image) {
	t := 1 - float64(f.age)/float64(f.length)
	alpha := 0.4 * t
	if f.kind == terminalFlash {
		alpha = 0.25 + 0.35*(1-t)
	}
	vector.DrawFilledRect(screen, 0, 0, common.BaseWidth, common.BaseHeight,
		color.NRGBA{R: 0xff, G: 0x20, B: 0x20, A: uint8(alpha * 255)}, false)
}

const (
	burstLength    = 30 // frames
	burstMaxRadius = 60.0
	burstParticles = 8
)

// burstEffect is the pickup feedback: an expanding yellow ring with a
// handful of radial particles.
type burstEffect struct {
	x, y float64
	age  int
}

func newBurst(x, y float64) *burstEffect {
	return &burstEffect{x: x, y: y}
}

func (b *burstEffect) update() { b.age++ }

func (b *burstEffect) done() bool { return b.age >= burstLength }

func (b *burstEffect) draw(screen *ebiten.Image, camX, camY float64) {
	t := float64(b.age) / burstLength
	cx := float32(b.x - camX)
	cy := float32(b.y - camY)
	alpha := uint8((1 - t) * 255)
	yellow := color.NRGBA{R: 0xff, G: 0xe6, B: 0x30, A: alpha}

	radius := float32(t * burstMaxRadius)
	vector.StrokeCircle(screen, cx, cy, radius, 3, yellow, true)

	reach := float32(common.Lerp(0, burstMaxRadius*1.3, t))
	for i := 0; i < burstParticles; i++ {
		angle := float64(i) / burstParticles * 2 * math.Pi
		px := cx + reach*float32(math.Cos(angle))
		py := cy + reach*float32(math.Sin(angle))
		vector.DrawFilledCircle(screen, px, py, 2.5*(1-float32(t)), yellow, true)
	}
}
