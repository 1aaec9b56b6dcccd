package track

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/downhill/seed"
)

const testCollisionType cp.CollisionType = 2

func newTestStreamer(seedStr string) (*Streamer, *cp.Space) {
	space := cp.NewSpace()
	rng := seed.NewSource(seedStr)
	return NewStreamer(space, rng, 0, 300, 1280, testCollisionType), space
}

func TestSegmentContinuity(t *testing.T) {
	s, _ := newTestStreamer("continuity")
	s.EnsureCoverage(5000)

	segs := s.Segments()
	if len(segs) < 50 {
		t.Fatalf("expected at least 50 segments covering 5000 units, got %d", len(segs))
	}
	for i := 1; i < len(segs); i++ {
		if segs[i].X1 != segs[i-1].X2 {
			t.Fatalf("segment %d x gap: %v != %v", i, segs[i].X1, segs[i-1].X2)
		}
		if segs[i].Y1 != segs[i-1].Y2 {
			t.Fatalf("segment %d y gap: %v != %v", i, segs[i].Y1, segs[i-1].Y2)
		}
	}
}

func TestSegmentWidthAndClamp(t *testing.T) {
	s, _ := newTestStreamer("clamp")
	s.EnsureCoverage(20000)

	for i, seg := range s.Segments() {
		if seg.X2-seg.X1 != SegmentWidth {
			t.Fatalf("segment %d width = %v, want %v", i, seg.X2-seg.X1, float64(SegmentWidth))
		}
		dy := seg.Y2 - seg.Y1
		if dy < -60 || dy > 150 {
			t.Fatalf("segment %d delta %v outside [-60, 150]", i, dy)
		}
	}
}

func TestSubBodyCount(t *testing.T) {
	s, _ := newTestStreamer("subbodies")
	s.EnsureCoverage(2000)

	for i, seg := range s.Segments() {
		if len(seg.Shapes()) != SubBodies {
			t.Fatalf("live segment %d has %d sub-bodies, want %d", i, len(seg.Shapes()), SubBodies)
		}
		for _, shape := range seg.Shapes() {
			surf, ok := shape.UserData.(*Surface)
			if !ok || surf == nil {
				t.Fatalf("segment %d sub-body missing Surface user data", i)
			}
			if surf.Angle != seg.Angle {
				t.Fatalf("segment %d sub-body angle %v != segment angle %v", i, surf.Angle, seg.Angle)
			}
			if surf.Color != seg.Color {
				t.Fatalf("segment %d sub-body color %v != segment color %v", i, surf.Color, seg.Color)
			}
		}
	}

	first := s.Segments()[0]
	s.Retire(first)
	if len(first.Shapes()) != 0 {
		t.Fatalf("retired segment still has %d sub-bodies", len(first.Shapes()))
	}
	// retiring twice must be a no-op
	s.Retire(first)
	if !first.Retired() {
		t.Fatal("segment not marked retired")
	}
}

type endpoint struct {
	x1, y1, x2, y2 float64
	color          Color
}

func firstEndpoints(seedStr string, n int) []endpoint {
	s, _ := newTestStreamer(seedStr)
	s.EnsureCoverage(float64(n * SegmentWidth))
	out := make([]endpoint, 0, n)
	for _, seg := range s.Segments()[:n] {
		out = append(out, endpoint{seg.X1, seg.Y1, seg.X2, seg.Y2, seg.Color})
	}
	return out
}

func TestDeterministicGeneration(t *testing.T) {
	const seedStr = "bitstreambluffs-test-seed-2025"
	a := firstEndpoints(seedStr, 50)
	b := firstEndpoints(seedStr, 50)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("segment %d differs across runs: %+v vs %+v", i, a[i], b[i])
		}
	}
	if a[49].y2 <= a[0].y1 {
		t.Fatalf("expected downhill trend over 50 segments: y0=%v y50=%v", a[0].y1, a[49].y2)
	}
}

func TestStreamingCoverageAndRetirement(t *testing.T) {
	s, _ := newTestStreamer("stream")

	playerX := 0.0
	for step := 0; step < 200; step++ {
		playerX += 40
		s.Update(playerX)

		segs := s.Segments()
		if len(segs) == 0 {
			t.Fatal("no live segments")
		}
		if last := segs[len(segs)-1]; last.X2 < playerX+1.5*1280 {
			t.Fatalf("coverage fell behind at playerX=%v: last X2=%v", playerX, last.X2)
		}
		if first := segs[0]; first.X2 < playerX-1.5*1280 {
			t.Fatalf("stale segment not retired at playerX=%v: first X2=%v", playerX, first.X2)
		}
		for _, seg := range segs {
			if seg.Retired() {
				t.Fatal("retired segment still in live list")
			}
		}
	}
}

func TestHeightAndSlopeQueries(t *testing.T) {
	s, _ := newTestStreamer("queries")
	s.EnsureCoverage(1000)

	seg := s.Segments()[2]
	midX := (seg.X1 + seg.X2) / 2
	wantY := (seg.Y1 + seg.Y2) / 2
	if got := s.HeightAt(midX); math.Abs(got-wantY) > 1e-9 {
		t.Fatalf("HeightAt(%v) = %v, want %v", midX, got, wantY)
	}
	wantAngle := math.Atan2(seg.Y2-seg.Y1, SegmentWidth)
	if got := s.SlopeAt(midX); got != wantAngle {
		t.Fatalf("SlopeAt(%v) = %v, want %v", midX, got, wantAngle)
	}
	if got := s.ColorAt(midX); got != seg.Color {
		t.Fatalf("ColorAt(%v) = %v, want %v", midX, got, seg.Color)
	}

	// outside coverage
	if got := s.HeightAt(-5000); got != DefaultHeight {
		t.Fatalf("HeightAt outside coverage = %v, want %v", got, float64(DefaultHeight))
	}
	if got := s.SlopeAt(-5000); got != 0 {
		t.Fatalf("SlopeAt outside coverage = %v, want 0", got)
	}
}

func TestTeardownRemovesEverything(t *testing.T) {
	s, _ := newTestStreamer("teardown")
	s.EnsureCoverage(3000)
	segs := s.Segments()
	s.Teardown()
	if len(s.Segments()) != 0 {
		t.Fatalf("expected empty chain after teardown, got %d", len(s.Segments()))
	}
	for i, seg := range segs {
		if !seg.Retired() || len(seg.Shapes()) != 0 {
			t.Fatalf("segment %d not fully retired after teardown", i)
		}
	}
}

func TestColorFriction(t *testing.T) {
	cases := []struct {
		color Color
		want  float64
	}{
		{ColorGreen, 0.01},
		{ColorBlue, 0.08},
		{ColorPink, 0.28},
	}
	for _, c := range cases {
		if got := c.color.Friction(); got != c.want {
			t.Fatalf("%v friction = %v, want %v", c.color, got, c.want)
		}
	}
}
