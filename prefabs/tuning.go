// Package prefabs holds the yaml tuning spec for the game feel. The
// defaults ship embedded; a disk copy can override them and, with the
// watcher, be hot-reloaded while the game runs.
package prefabs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning collects the engine-relative force and speed constants. The
// magnitudes have no dimensional analysis behind them; they are feel
// numbers meant to be edited in yaml, not derived.
type Tuning struct {
	Player      PlayerTuning      `yaml:"player"`
	Collectible CollectibleTuning `yaml:"collectible"`
}

type PlayerTuning struct {
	DownhillBias   float64 `yaml:"downhill_bias"`
	TuckForce      float64 `yaml:"tuck_force"`
	DragForce      float64 `yaml:"drag_force"`
	ParachuteForce float64 `yaml:"parachute_force"`
	PushForce      float64 `yaml:"push_force"`
	AirBrakeDecay  float64 `yaml:"air_brake_decay"`
	MinSpeed       float64 `yaml:"min_speed"`
	AirRotVel      float64 `yaml:"air_rot_vel"`
	JumpVelocity   float64 `yaml:"jump_velocity"`
	WalkJump       float64 `yaml:"walk_jump_velocity"`
	WalkSpeed      float64 `yaml:"walk_speed"`
	SlopeAlignRate float64 `yaml:"slope_align_rate"`
	InitialLives   int     `yaml:"initial_lives"`
	MaxLives       int     `yaml:"max_lives"`
}

type CollectibleTuning struct {
	SpawnDistance        float64 `yaml:"spawn_distance"`
	SpawnChance          float64 `yaml:"spawn_chance"`
	MaxActive            int     `yaml:"max_active"`
	MinNextSeconds       float64 `yaml:"min_next_seconds"`
	MaxNextSeconds       float64 `yaml:"max_next_seconds"`
	MaxOffscreenDistance float64 `yaml:"max_offscreen_distance"`
}

// Default returns the shipped tuning values.
func Default() Tuning {
	return Tuning{
		Player: PlayerTuning{
			DownhillBias:   0.0005,
			TuckForce:      0.003,
			DragForce:      0.1,
			ParachuteForce: 0.1,
			PushForce:      0.005,
			AirBrakeDecay:  1.2 / 60.0,
			MinSpeed:       0.1,
			AirRotVel:      0.06,
			JumpVelocity:   -10,
			WalkJump:       -6,
			WalkSpeed:      3,
			SlopeAlignRate: 0.2,
			InitialLives:   3,
			MaxLives:       5,
		},
		Collectible: CollectibleTuning{
			SpawnDistance:        600,
			SpawnChance:          0.20,
			MaxActive:            2,
			MinNextSeconds:       30,
			MaxNextSeconds:       120,
			MaxOffscreenDistance: 3000,
		},
	}
}

// Load returns the embedded defaults overlaid with tuning.yaml from
// disk when path is non-empty.
func Load(path string) (Tuning, error) {
	tuning := Default()
	data := defaultTuning
	if path != "" {
		d, err := os.ReadFile(path)
		if err != nil {
			return tuning, fmt.Errorf("prefabs: read %s: %w", path, err)
		}
		data = d
	}
	if err := yaml.Unmarshal(data, &tuning); err != nil {
		return Default(), fmt.Errorf("prefabs: unmarshal tuning: %w", err)
	}
	return tuning, nil
}
