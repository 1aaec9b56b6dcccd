package prefabs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefaults(t *testing.T) {
	tuning, err := Load("")
	if err != nil {
		t.Fatalf("Load embedded defaults: %v", err)
	}
	if tuning.Player.JumpVelocity >= 0 {
		t.Fatalf("jump velocity should be negative (up), got %v", tuning.Player.JumpVelocity)
	}
	if tuning.Player.MaxLives < tuning.Player.InitialLives {
		t.Fatalf("max lives %d < initial lives %d", tuning.Player.MaxLives, tuning.Player.InitialLives)
	}
	if tuning.Collectible.SpawnChance <= 0 || tuning.Collectible.SpawnChance >= 1 {
		t.Fatalf("spawn chance %v outside (0, 1)", tuning.Collectible.SpawnChance)
	}
	if tuning.Collectible.MinNextSeconds >= tuning.Collectible.MaxNextSeconds {
		t.Fatalf("next-life window inverted: [%v, %v]", tuning.Collectible.MinNextSeconds, tuning.Collectible.MaxNextSeconds)
	}
}

func TestLoadDiskOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte("player:\n  walk_speed: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tuning, err := Load(path)
	if err != nil {
		t.Fatalf("Load override: %v", err)
	}
	if tuning.Player.WalkSpeed != 7 {
		t.Fatalf("walk speed override = %v, want 7", tuning.Player.WalkSpeed)
	}
	// untouched fields keep their defaults
	if tuning.Player.MinSpeed != Default().Player.MinSpeed {
		t.Fatalf("min speed changed unexpectedly: %v", tuning.Player.MinSpeed)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing tuning file")
	}
}

func TestLoadBadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte("player: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}
