package track

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	strokeWidth = 5
	glowWidth   = 8
	glowAlpha   = 0.3
)

// Draw renders every live segment as a neon line: a soft wide glow
// pass underneath a crisp full-opacity stroke. camX/camY is the world
// position of the screen's top-left corner.
func (s *Streamer) Draw(screen *ebiten.Image, camX, camY float64) {
	if s == nil || screen == nil {
		return
	}
	for _, seg := range s.segments {
		x1 := float32(seg.X1 - camX)
		y1 := float32(seg.Y1 - camY)
		x2 := float32(seg.X2 - camX)
		y2 := float32(seg.Y2 - camY)

		c := seg.Color.RGBA()
		glow := color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A) * glowAlpha)}
		vector.StrokeLine(screen, x1, y1, x2, y2, glowWidth, glow, true)
		vector.StrokeLine(screen, x1, y1, x2, y2, strokeWidth, c, true)
	}
}
