// Package track generates and streams the procedural downhill slope.
package track

import (
	"image/color"

	"github.com/jakecoffman/cp"
)

// Color identifies a segment's surface. Surface color drives both the
// neon stroke and the friction applied to the player while riding it.
type Color int

const (
	ColorBlue Color = iota
	ColorPink
	ColorGreen
)

func (c Color) String() string {
	switch c {
	case ColorBlue:
		return "blue"
	case ColorPink:
		return "pink"
	default:
		return "green"
	}
}

// Friction returns the player shape friction while riding this color.
// Green is icy, pink is sticky.
func (c Color) Friction() float64 {
	switch c {
	case ColorGreen:
		return 0.01
	case ColorPink:
		return 0.28
	default:
		return 0.08
	}
}

// RGBA returns the neon stroke color.
func (c Color) RGBA() color.NRGBA {
	switch c {
	case ColorBlue:
		return color.NRGBA{R: 0x00, G: 0xbf, B: 0xff, A: 0xff}
	case ColorPink:
		return color.NRGBA{R: 0xff, G: 0x2e, B: 0xc4, A: 0xff}
	default:
		return color.NRGBA{R: 0x39, G: 0xff, B: 0x6e, A: 0xff}
	}
}

// Surface is attached as UserData to every terrain sub-body so the
// collision handlers can read the slope under the player.
type Surface struct {
	Angle float64 // chord angle in radians
	Color Color
}

// Segment is one 100-unit slice of the slope. Segments chain: each
// starts where the previous one ended. A live segment owns exactly
// SubBodies static collision shapes; a retired one owns none.
type Segment struct {
	X1, Y1 float64
	X2, Y2 float64
	Color  Color
	Angle  float64 // radians, atan2(Y2-Y1, SegmentWidth)

	shapes  []*cp.Shape
	retired bool
}

// Shapes returns the live collision sub-bodies of the segment.
func (s *Segment) Shapes() []*cp.Shape {
	if s == nil {
		return nil
	}
	return s.shapes
}

// Retired reports whether the segment's shapes have been removed.
func (s *Segment) Retired() bool {
	return s != nil && s.retired
}

// HeightAt interpolates the surface height at x. The caller must
// ensure X1 <= x <= X2.
func (s *Segment) HeightAt(x float64) float64 {
	t := (x - s.X1) / (s.X2 - s.X1)
	return s.Y1 + t*(s.Y2-s.Y1)
}
