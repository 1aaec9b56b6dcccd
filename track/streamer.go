package track

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/downhill/common"
	"github.com/milk9111/downhill/seed"
)

const (
	// SegmentWidth is the horizontal span of every segment.
	SegmentWidth = 100
	// SubBodies is the number of collision chords per segment.
	SubBodies = 5
	// DefaultHeight is returned by HeightAt outside generated coverage.
	DefaultHeight = 500

	subBodyThickness = 5
	subBodyFriction  = 0.01

	// Coverage extends this many viewport widths ahead of the player;
	// segments the same distance behind are retired.
	coverageFactor = 1.5
)

// Streamer owns the segment chain and its collision shapes. All
// randomness flows through the session seed source so runs with the
// same seed produce an identical slope.
type Streamer struct {
	space         *cp.Space
	rng           *seed.Source
	collisionType cp.CollisionType
	viewWidth     float64

	segments []*Segment
}

// NewStreamer creates a streamer that lays segments left to right
// starting at (startX, startY).
func NewStreamer(space *cp.Space, rng *seed.Source, startX, startY, viewWidth float64, collisionType cp.CollisionType) *Streamer {
	s := &Streamer{
		space:         space,
		rng:           rng,
		collisionType: collisionType,
		viewWidth:     viewWidth,
	}
	s.appendSegment(startX, startY)
	return s
}

// Segments returns the live segment chain, oldest first.
func (s *Streamer) Segments() []*Segment {
	if s == nil {
		return nil
	}
	return s.segments
}

// Update extends coverage ahead of playerX and retires segments that
// fell behind. Safe to call every frame.
func (s *Streamer) Update(playerX float64) {
	if s == nil {
		return
	}
	s.EnsureCoverage(playerX + coverageFactor*s.viewWidth)

	cutoff := playerX - coverageFactor*s.viewWidth
	for len(s.segments) > 0 && s.segments[0].X2 < cutoff {
		s.Retire(s.segments[0])
		s.segments = s.segments[1:]
	}
}

// EnsureCoverage generates segments until the chain spans past x.
func (s *Streamer) EnsureCoverage(x float64) {
	if s == nil {
		return
	}
	if len(s.segments) == 0 {
		s.appendSegment(x, DefaultHeight)
	}
	for s.segments[len(s.segments)-1].X2 < x {
		last := s.segments[len(s.segments)-1]
		s.appendSegment(last.X2, last.Y2)
	}
}

// Retire removes a segment's collision shapes from the space. Retiring
// a segment twice is a no-op.
func (s *Streamer) Retire(seg *Segment) {
	if s == nil || seg == nil || seg.retired {
		return
	}
	for _, shape := range seg.shapes {
		s.space.RemoveShape(shape)
	}
	seg.shapes = nil
	seg.retired = true
}

// Teardown retires every live segment. Called on scene restart.
func (s *Streamer) Teardown() {
	if s == nil {
		return
	}
	for _, seg := range s.segments {
		s.Retire(seg)
	}
	s.segments = nil
}

// HeightAt returns the interpolated surface height at x, or
// DefaultHeight when no segment covers x.
func (s *Streamer) HeightAt(x float64) float64 {
	if seg := s.covering(x); seg != nil {
		return seg.HeightAt(x)
	}
	return DefaultHeight
}

// SlopeAt returns the slope angle in radians at x, or 0 when no
// segment covers x.
func (s *Streamer) SlopeAt(x float64) float64 {
	if seg := s.covering(x); seg != nil {
		return seg.Angle
	}
	return 0
}

// ColorAt returns the surface color at x. Blue (neutral friction) is
// the fallback outside coverage.
func (s *Streamer) ColorAt(x float64) Color {
	if seg := s.covering(x); seg != nil {
		return seg.Color
	}
	return ColorBlue
}

func (s *Streamer) covering(x float64) *Segment {
	if s == nil {
		return nil
	}
	for _, seg := range s.segments {
		if x >= seg.X1 && x < seg.X2 {
			return seg
		}
	}
	return nil
}

// appendSegment rolls the next vertical delta and color, chains a new
// segment onto (prevX, prevY), and builds its collision sub-bodies.
func (s *Streamer) appendSegment(prevX, prevY float64) {
	var dy float64
	if len(s.segments) == 0 {
		// fixed gentle descent to open the run
		dy = s.rng.Float64In(40, 70)
	} else {
		r := s.rng.Next()
		switch {
		case r < 0.60:
			dy = s.rng.Float64In(35, 70) // moderate down
		case r < 0.85:
			dy = s.rng.Float64In(70, 120) // steep down
		case r < 0.95:
			dy = s.rng.Float64In(-15, 25) // mild variation
		default:
			dy = s.rng.Float64In(-40, -10) // small up
		}
	}

	newY := common.Clamp(prevY+dy, prevY-60, prevY+150)

	var col Color
	switch cr := s.rng.Next(); {
	case cr < 1.0/3.0:
		col = ColorBlue
	case cr < 2.0/3.0:
		col = ColorPink
	default:
		col = ColorGreen
	}

	seg := &Segment{
		X1:    prevX,
		Y1:    prevY,
		X2:    prevX + SegmentWidth,
		Y2:    newY,
		Color: col,
		Angle: math.Atan2(newY-prevY, SegmentWidth),
	}
	s.buildSubBodies(seg)
	s.segments = append(s.segments, seg)
}

// buildSubBodies subdivides the segment into equal chords and adds one
// thin static shape per chord. The shapes carry a Surface in UserData
// so collision handlers can recover the slope angle and color.
func (s *Streamer) buildSubBodies(seg *Segment) {
	if s.space == nil {
		return
	}
	seg.shapes = make([]*cp.Shape, 0, SubBodies)
	for i := 0; i < SubBodies; i++ {
		t0 := float64(i) / SubBodies
		t1 := float64(i+1) / SubBodies
		a := cp.Vector{X: seg.X1 + t0*(seg.X2-seg.X1), Y: seg.Y1 + t0*(seg.Y2-seg.Y1)}
		b := cp.Vector{X: seg.X1 + t1*(seg.X2-seg.X1), Y: seg.Y1 + t1*(seg.Y2-seg.Y1)}

		shape := cp.NewSegment(s.space.StaticBody, a, b, subBodyThickness/2.0)
		shape.SetFriction(subBodyFriction)
		shape.SetElasticity(0)
		shape.SetCollisionType(s.collisionType)
		shape.UserData = &Surface{Angle: seg.Angle, Color: seg.Color}
		s.space.AddShape(shape)
		seg.shapes = append(seg.shapes, shape)
	}
}
