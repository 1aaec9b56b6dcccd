package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var heartPink = color.NRGBA{R: 0xff, G: 0x4d, B: 0xa6, A: 0xff}

// sprite returns the pickup texture, synthesizing the fallback (pink
// circle with a heart motif) the first time it is needed.
func (m *CollectibleManager) sprite() *ebiten.Image {
	if m.spriteImg != nil {
		return m.spriteImg
	}

	size := int(collectibleSprite)
	img := ebiten.NewImage(size, size)
	half := float32(size) / 2

	vector.DrawFilledCircle(img, half, half, half-1, heartPink, true)

	// heart motif: two lobes and a point
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	lobe := half / 3.2
	vector.DrawFilledCircle(img, half-lobe, half-lobe/2, lobe, white, true)
	vector.DrawFilledCircle(img, half+lobe, half-lobe/2, lobe, white, true)
	vector.StrokeLine(img, half-2*lobe+1, half, half, half+2*lobe-1, lobe, white, true)
	vector.StrokeLine(img, half+2*lobe-1, half, half, half+2*lobe-1, lobe, white, true)

	m.spriteImg = img
	return img
}

// Draw renders every live pickup sprite at its hover position.
func (m *CollectibleManager) Draw(screen *ebiten.Image, camX, camY float64) {
	if m == nil || screen == nil {
		return
	}
	img := m.sprite()
	for _, c := range m.items {
		if c.removed {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(c.spawnX-collectibleSprite/2-camX, c.currentY-collectibleSprite/2-camY)
		screen.DrawImage(img, op)
	}
}
