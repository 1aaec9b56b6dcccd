package obj

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/downhill/common"
	"github.com/milk9111/downhill/prefabs"
	"github.com/milk9111/downhill/seed"
	"github.com/milk9111/downhill/track"
)

const (
	collectibleRadius = 20.0
	collectibleSprite = 24.0 // sprite width in world units
	hoverDistance     = 3 * collectibleSprite
	hoverPeriod       = 2.0 // seconds for one yoyo cycle
)

// Collectible is one extra-life pickup. The manager owns both the
// sensor body and the drawn sprite; nothing else holds references.
type Collectible struct {
	id             int
	spawnX, spawnY float64
	spawnTime      float64
	currentY       float64
	body           *cp.Body
	sensor         *cp.Shape
	removed        bool
}

// X returns the fixed horizontal position.
func (c *Collectible) X() float64 { return c.spawnX }

// SpawnY returns the vertical anchor the hover oscillates around.
func (c *Collectible) SpawnY() float64 { return c.spawnY }

// Y returns the current hover position.
func (c *Collectible) Y() float64 { return c.currentY }

// Body returns the sensor's kinematic body.
func (c *Collectible) Body() *cp.Body { return c.body }

// Removed reports whether the pickup has left the world.
func (c *Collectible) Removed() bool { return c != nil && c.removed }

// CollectibleManager spawns, hovers, and retires extra-life pickups.
// All randomness flows through the shared session seed source.
type CollectibleManager struct {
	space    *cp.Space
	rng      *seed.Source
	streamer *track.Streamer
	tuning   prefabs.CollectibleTuning

	items     []*Collectible
	bySensor  map[*cp.Shape]*Collectible
	nextID    int
	spriteImg *ebiten.Image

	nextAvailable float64
}

func NewCollectibleManager(space *cp.Space, rng *seed.Source, streamer *track.Streamer, tuning prefabs.CollectibleTuning) *CollectibleManager {
	return &CollectibleManager{
		space:    space,
		rng:      rng,
		streamer: streamer,
		tuning:   tuning,
		bySensor: make(map[*cp.Shape]*Collectible),
	}
}

// SetTuning swaps in live-reloaded tuning values.
func (m *CollectibleManager) SetTuning(t prefabs.CollectibleTuning) {
	if m == nil {
		return
	}
	m.tuning = t
}

// Items returns the live pickups.
func (m *CollectibleManager) Items() []*Collectible {
	if m == nil {
		return nil
	}
	return m.items
}

// Update evaluates the spawn gate, advances hover motion, and retires
// pickups that drifted too far from the player. now is seconds since
// run start.
func (m *CollectibleManager) Update(now, playerX, playerY float64, lives, maxLives int) error {
	if m == nil || m.space == nil {
		return nil
	}

	if now >= m.nextAvailable &&
		len(m.items) < m.tuning.MaxActive &&
		lives < maxLives &&
		m.rng.Next() < m.tuning.SpawnChance {
		m.spawn(now, playerX)
	}

	for _, c := range m.items {
		m.hover(c, now)
	}

	m.cleanup(playerX, playerY)
	return nil
}

// spawn places one pickup ahead of the player, above the terrain.
func (m *CollectibleManager) spawn(now, playerX float64) {
	spawnX := playerX + m.tuning.SpawnDistance
	terrainY := track.DefaultHeight + 0.0
	if m.streamer != nil {
		terrainY = m.streamer.HeightAt(spawnX)
	}
	heightAbove := m.rng.Float64In(2*PlayerH, 6*PlayerH)

	c := &Collectible{
		id:        m.nextID,
		spawnX:    spawnX,
		spawnY:    terrainY - heightAbove,
		spawnTime: now,
	}
	m.nextID++
	c.currentY = c.spawnY

	body := cp.NewKinematicBody()
	body.SetPosition(cp.Vector{X: c.spawnX, Y: c.spawnY})
	sensor := cp.NewCircle(body, collectibleRadius, cp.Vector{})
	sensor.SetSensor(true)
	sensor.SetCollisionType(collisionTypeExtraLife)

	m.space.AddBody(body)
	m.space.AddShape(sensor)

	c.body = body
	c.sensor = sensor
	m.items = append(m.items, c)
	m.bySensor[sensor] = c
}

// hover drives the vertical bob as a pure function of time: a yoyoed
// phase in [0,1] over two seconds, offset by sin(pi*phase). The body
// is repositioned directly; it carries no velocity of its own.
func (m *CollectibleManager) hover(c *Collectible, now float64) {
	if c == nil || c.removed || c.body == nil {
		return
	}
	u := math.Mod(now-c.spawnTime, hoverPeriod) / hoverPeriod
	phase := 1 - math.Abs(1-2*u)
	offset := math.Sin(math.Pi*phase) * hoverDistance

	c.currentY = c.spawnY - offset
	c.body.SetVelocity(0, 0)
	c.body.SetPosition(cp.Vector{X: c.spawnX, Y: c.currentY})
}

// Collect resolves sensor contacts queued by the physics handlers.
// Pickups only collect while lives are below the cap; at the cap the
// contact is ignored and the pickup stays. Returns the world positions
// of collected pickups, one per life gained.
func (m *CollectibleManager) Collect(now float64, sensors []*cp.Shape, lives, maxLives int) []cp.Vector {
	if m == nil || len(sensors) == 0 {
		return nil
	}
	var collected []cp.Vector
	for _, s := range sensors {
		c, ok := m.bySensor[s]
		if !ok || c.removed {
			continue
		}
		if lives+len(collected) >= maxLives {
			continue
		}
		collected = append(collected, cp.Vector{X: c.spawnX, Y: c.currentY})
		m.remove(c)
		m.nextAvailable = now + m.rng.Float64In(m.tuning.MinNextSeconds, m.tuning.MaxNextSeconds)
	}
	return collected
}

// cleanup retires pickups too far from the player without collecting.
func (m *CollectibleManager) cleanup(playerX, playerY float64) {
	for _, c := range m.items {
		if c.removed {
			continue
		}
		dx := c.spawnX - playerX
		dy := c.currentY - playerY
		tooFar := math.Hypot(dx, dy) > m.tuning.MaxOffscreenDistance
		behind := c.spawnX < playerX-2*float64(common.BaseWidth)
		if tooFar || behind {
			m.remove(c)
		}
	}
}

// remove takes the pickup out of the space and the live list. Removing
// twice is a no-op.
func (m *CollectibleManager) remove(c *Collectible) {
	if m == nil || c == nil || c.removed {
		return
	}
	if m.space != nil && c.sensor != nil {
		m.space.RemoveShape(c.sensor)
		m.space.RemoveBody(c.body)
	}
	delete(m.bySensor, c.sensor)
	c.removed = true

	live := m.items[:0]
	for _, it := range m.items {
		if !it.removed {
			live = append(live, it)
		}
	}
	m.items = live
}

// Teardown removes every live pickup. Called on scene restart.
func (m *CollectibleManager) Teardown() {
	if m == nil {
		return
	}
	for _, c := range append([]*Collectible(nil), m.items...) {
		m.remove(c)
	}
}
