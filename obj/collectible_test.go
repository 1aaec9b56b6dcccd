package obj

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/downhill/prefabs"
	"github.com/milk9111/downhill/seed"
	"github.com/milk9111/downhill/track"
)

func newTestManager(seedStr string) (*CollectibleManager, *cp.Space, *track.Streamer) {
	space := cp.NewSpace()
	rng := seed.NewSource(seedStr)
	streamer := track.NewStreamer(space, rng, 0, 300, 1280, collisionTypeTerrain)
	streamer.EnsureCoverage(4000)
	mgr := NewCollectibleManager(space, rng, streamer, prefabs.Default().Collectible)
	return mgr, space, streamer
}

// spawnOne drives Update until the Bernoulli gate fires.
func spawnOne(t *testing.T, mgr *CollectibleManager, playerX, playerY float64) *Collectible {
	t.Helper()
	now := 0.0
	for i := 0; i < 2000; i++ {
		now += 1.0 / 60.0
		if err := mgr.Update(now, playerX, playerY, 1, 5); err != nil {
			t.Fatalf("Update: %v", err)
		}
		if len(mgr.Items()) > 0 {
			return mgr.Items()[0]
		}
	}
	t.Fatal("spawn gate never fired in 2000 frames")
	return nil
}

func TestSpawnPlacement(t *testing.T) {
	mgr, _, streamer := newTestManager("placement")
	c := spawnOne(t, mgr, 100, 300)

	wantX := 100 + mgr.tuning.SpawnDistance
	if c.X() != wantX {
		t.Fatalf("spawn x = %v, want %v", c.X(), wantX)
	}
	terrainY := streamer.HeightAt(wantX)
	above := terrainY - c.SpawnY()
	if above < 2*PlayerH || above > 6*PlayerH {
		t.Fatalf("spawn height above terrain = %v, want within [%v, %v]", above, 2*PlayerH, 6*PlayerH)
	}
}

func TestSpawnGateRespectsLivesAndCap(t *testing.T) {
	mgr, _, _ := newTestManager("gate")

	// at max lives nothing may spawn
	now := 0.0
	for i := 0; i < 500; i++ {
		now += 1.0 / 60.0
		_ = mgr.Update(now, 100, 300, 5, 5)
	}
	if len(mgr.Items()) != 0 {
		t.Fatalf("spawned %d collectibles at max lives", len(mgr.Items()))
	}

	// below max lives spawns, but never beyond MaxActive
	for i := 0; i < 5000; i++ {
		now += 1.0 / 60.0
		_ = mgr.Update(now, 100, 300, 1, 5)
		if len(mgr.Items()) > mgr.tuning.MaxActive {
			t.Fatalf("active collectibles %d exceeds cap %d", len(mgr.Items()), mgr.tuning.MaxActive)
		}
	}
	if len(mgr.Items()) == 0 {
		t.Fatal("no collectible spawned below max lives")
	}
}

func TestHoverIsStaticAndBounded(t *testing.T) {
	mgr, _, _ := newTestManager("hover")
	c := spawnOne(t, mgr, 100, 300)

	startX := c.Body().Position().X
	now := c.spawnTime
	for i := 0; i < 120; i++ { // two seconds
		now += 1.0 / 60.0
		if err := mgr.Update(now, 100, 300, 1, 5); err != nil {
			t.Fatalf("Update: %v", err)
		}
		pos := c.Body().Position()
		if pos.X != startX {
			t.Fatalf("hover moved x from %v to %v", startX, pos.X)
		}
		if v := c.Body().Velocity(); v.X != 0 || v.Y != 0 {
			t.Fatalf("collectible body has velocity %v", v)
		}
		if diff := c.SpawnY() - pos.Y; diff < -1e-9 || diff > 3*collectibleSprite+1e-9 {
			t.Fatalf("hover offset %v outside [0, %v]", diff, 3*collectibleSprite)
		}
	}

	// the bob should actually move over a full cycle
	if c.Y() == c.SpawnY() {
		maxSeen := 0.0
		now2 := now
		for i := 0; i < 60; i++ {
			now2 += 1.0 / 60.0
			_ = mgr.Update(now2, 100, 300, 1, 5)
			maxSeen = math.Max(maxSeen, c.SpawnY()-c.Y())
		}
		if maxSeen == 0 {
			t.Fatal("hover never displaced the collectible")
		}
	}
}

func TestCollectIncrementsOnlyBelowMax(t *testing.T) {
	mgr, _, _ := newTestManager("collect")
	c := spawnOne(t, mgr, 100, 300)

	// at the cap the contact is ignored and the pickup stays
	if got := mgr.Collect(10, []*cp.Shape{c.sensor}, 5, 5); len(got) != 0 {
		t.Fatalf("collected %d at max lives, want 0", len(got))
	}
	if c.Removed() {
		t.Fatal("pickup removed despite max lives")
	}

	got := mgr.Collect(10, []*cp.Shape{c.sensor}, 1, 5)
	if len(got) != 1 {
		t.Fatalf("collected %d below max lives, want 1", len(got))
	}
	if !c.Removed() || len(mgr.Items()) != 0 {
		t.Fatal("pickup not removed after collection")
	}
	if mgr.nextAvailable < 10+mgr.tuning.MinNextSeconds || mgr.nextAvailable > 10+mgr.tuning.MaxNextSeconds {
		t.Fatalf("next-life window = %v, want within [%v, %v]",
			mgr.nextAvailable, 10+mgr.tuning.MinNextSeconds, 10+mgr.tuning.MaxNextSeconds)
	}

	// collecting the same sensor again is a no-op
	if got := mgr.Collect(11, []*cp.Shape{c.sensor}, 1, 5); len(got) != 0 {
		t.Fatalf("double collect returned %d", len(got))
	}
}

func TestOffscreenCleanup(t *testing.T) {
	mgr, _, _ := newTestManager("cleanup")
	c := spawnOne(t, mgr, 100, 300)

	// advance the player far past the pickup
	if err := mgr.Update(100, c.X()+4000, 300, 1, 5); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !c.Removed() {
		t.Fatal("distant pickup not cleaned up")
	}
	for _, it := range mgr.Items() {
		if it == c {
			t.Fatal("removed pickup still listed")
		}
	}

	// removing again must be tolerated
	mgr.remove(c)
}

func TestTeardown(t *testing.T) {
	mgr, _, _ := newTestManager("teardown")
	spawnOne(t, mgr, 100, 300)
	mgr.Teardown()
	if len(mgr.Items()) != 0 {
		t.Fatalf("%d pickups survived teardown", len(mgr.Items()))
	}
	mgr.Teardown()
}
