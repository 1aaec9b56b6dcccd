package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/downhill/common"
)

const (
	toastFadeIn  = 18 // 300 ms
	toastDwell   = 90
	toastFadeOut = 30 // 500 ms
	toastDrift   = 20.0
	toastSpacing = 22.0

	livesTriangleSize = 14.0
	livesSpacing      = 34.0
)

type toastMsg struct {
	text string
	age  int
}

func (t *toastMsg) done() bool {
	return t.age >= toastFadeIn+toastDwell+toastFadeOut
}

// alpha and rise describe the toast's fade envelope: quick fade-in,
// dwell, then fade-out drifting upward.
func (t *toastMsg) alpha() float64 {
	switch {
	case t.age < toastFadeIn:
		return float64(t.age) / toastFadeIn
	case t.age < toastFadeIn+toastDwell:
		return 1
	default:
		out := float64(t.age-toastFadeIn-toastDwell) / toastFadeOut
		return 1 - out
	}
}

func (t *toastMsg) rise() float64 {
	if t.age < toastFadeIn+toastDwell {
		return 0
	}
	out := float64(t.age-toastFadeIn-toastDwell) / toastFadeOut
	return out * toastDrift
}

// hud draws the run stats, the lives indicator, and the bottom-center
// toast stack. New toasts push older ones upward.
type hud struct {
	face   ebtext.Face
	toasts []*toastMsg
}

func newHUD() *hud {
	return &hud{face: ebtext.NewGoXFace(basicfont.Face7x13)}
}

func (h *hud) reset() {
	h.toasts = nil
}

func (h *hud) toast(msg string) {
	h.toasts = append(h.toasts, &toastMsg{text: msg})
}

func (h *hud) update() {
	live := h.toasts[:0]
	for _, t := range h.toasts {
		t.age++
		if !t.done() {
			live = append(live, t)
		}
	}
	h.toasts = live
}

func (h *hud) draw(screen *ebiten.Image, g *Game) {
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	speed := 0.0
	drop := 0.0
	angle := 0.0
	if g.player != nil {
		speed = math.Abs(g.player.Velocity().X)
		drop = math.Max(0, g.player.Position().Y-g.startY)
		angle = common.Rad(g.player.AngleDeg())
	}

	lines := []string{
		fmt.Sprintf("Speed: %.1f", speed),
		fmt.Sprintf("Altitude Drop: %.0f", drop),
		fmt.Sprintf("Points: %.0f", g.points),
	}
	for i, line := range lines {
		op := &ebtext.DrawOptions{}
		op.GeoM.Translate(12, float64(10+i*16))
		op.ColorScale.ScaleWithColor(white)
		ebtext.Draw(screen, line, h.face, op)
	}

	h.drawLives(screen, g.lives, angle)
	h.drawToasts(screen)
}

// drawLives renders one yellow triangle per remaining life, each
// mirroring the player's current rotation.
func (h *hud) drawLives(screen *ebiten.Image, lives int, angle float64) {
	yellow := color.NRGBA{R: 0xff, G: 0xe6, B: 0x30, A: 0xff}
	for i := 0; i < lives; i++ {
		cx := common.BaseWidth - 30 - float64(i)*livesSpacing
		cy := 28.0
		h.drawTriangle(screen, cx, cy, livesTriangleSize, angle, yellow)
	}
}

func (h *hud) drawTriangle(screen *ebiten.Image, cx, cy, size, angle float64, clr color.NRGBA) {
	// upward-pointing triangle rotated by the player angle
	pts := [3][2]float64{
		{0, -size},
		{-size * 0.85, size * 0.7},
		{size * 0.85, size * 0.7},
	}
	cos, sin := math.Cos(angle), math.Sin(angle)
	var xs, ys [3]float32
	for i, p := range pts {
		xs[i] = float32(cx + p[0]*cos - p[1]*sin)
		ys[i] = float32(cy + p[0]*sin + p[1]*cos)
	}
	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		vector.StrokeLine(screen, xs[i], ys[i], xs[j], ys[j], 2, clr, true)
	}
}

func (h *hud) drawToasts(screen *ebiten.Image) {
	baseY := float64(common.BaseHeight) - 60
	// newest toast sits at the bottom; older ones are pushed up
	for i := len(h.toasts) - 1; i >= 0; i-- {
		t := h.toasts[i]
		slot := float64(len(h.toasts) - 1 - i)
		y := baseY - slot*toastSpacing - t.rise()

		op := &ebtext.DrawOptions{}
		op.GeoM.Translate(common.BaseWidth/2, y)
		op.PrimaryAlign = ebtext.AlignCenter
		op.ColorScale.ScaleWithColor(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
		op.ColorScale.ScaleAlpha(float32(t.alpha()))
		ebtext.Draw(screen, t.text, h.face, op)
	}
}
