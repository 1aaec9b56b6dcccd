package obj

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	riderColor = color.NRGBA{R: 0xff, G: 0xd5, B: 0x2e, A: 0xff}
	sledColor  = color.NRGBA{R: 0x2e, G: 0xf6, B: 0xff, A: 0xff}
)

// Draw renders the rider triangle and sled rectangle rotated to the
// body angle. camX/camY is the world position of the screen's
// top-left corner.
func (p *Player) Draw(screen *ebiten.Image, camX, camY float64) {
	if p == nil || p.body == nil || screen == nil {
		return
	}

	pos := p.body.Position()
	angle := p.body.Angle()
	sin, cos := math.Sin(angle), math.Cos(angle)

	// rotate a body-local point into screen space
	toScreen := func(lx, ly float64) (float32, float32) {
		wx := pos.X + lx*cos - ly*sin
		wy := pos.Y + lx*sin + ly*cos
		return float32(wx - camX), float32(wy - camY)
	}

	strokeLoop := func(pts [][2]float64, c color.NRGBA) {
		glow := color.NRGBA{R: c.R, G: c.G, B: c.B, A: 76}
		for i := range pts {
			j := (i + 1) % len(pts)
			x1, y1 := toScreen(pts[i][0], pts[i][1])
			x2, y2 := toScreen(pts[j][0], pts[j][1])
			vector.StrokeLine(screen, x1, y1, x2, y2, 6, glow, true)
			vector.StrokeLine(screen, x1, y1, x2, y2, 3, c, true)
		}
	}

	// upward-pointing rider triangle
	strokeLoop([][2]float64{
		{0, -PlayerH * 0.7},
		{-PlayerW / 2, PlayerH * 0.3},
		{PlayerW / 2, PlayerH * 0.3},
	}, riderColor)

	if p.sledVisible {
		sx := p.sledOffsetX
		sy := PlayerH*0.3 + SledH/2 + p.sledOffsetY
		strokeLoop([][2]float64{
			{sx - SledW/2, sy - SledH/2},
			{sx + SledW/2, sy - SledH/2},
			{sx + SledW/2, sy + SledH/2},
			{sx - SledW/2, sy + SledH/2},
		}, sledColor)
	}
}
