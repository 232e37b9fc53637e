package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileGivesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Expected defaults for a missing file, got error: %v", err)
	}
	if cfg.Generation.Rows != 25 || cfg.Generation.Cols != 41 || cfg.Generation.TileSize != 50 {
		t.Errorf("Unexpected generation defaults %+v", cfg.Generation)
	}
	if cfg.Physics.Friction != 0.85 || cfg.Physics.Snap != 0.01 {
		t.Errorf("Unexpected physics defaults %+v", cfg.Physics)
	}
	if !cfg.Weapons.Bouncer.Bounces || cfg.Weapons.Player.Bounces {
		t.Errorf("Only the bouncer profile should bounce")
	}
}

func TestLoadConfigOverlaysYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("generation:\n  rows: 31\n  room_attempts: 20\npopulation:\n  enemy_base: 4\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Generation.Rows != 31 || cfg.Generation.RoomAttempts != 20 {
		t.Errorf("Expected overridden generation, got %+v", cfg.Generation)
	}
	if cfg.Generation.Cols != 41 || cfg.Generation.RoomFailCap != 500 {
		t.Errorf("Expected untouched keys to keep defaults, got %+v", cfg.Generation)
	}
	if cfg.Population.EnemyBase != 4 || cfg.Population.CratePiles != 15 {
		t.Errorf("Unexpected population %+v", cfg.Population)
	}
}

func TestParseRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "generation: [rows"},
		{"tiny grid", "generation:\n  rows: 1\n"},
		{"zero tile", "generation:\n  tile_size: 0\n"},
		{"friction", "physics:\n  friction: 1.5\n"},
		{"player too big", "physics:\n  player_size: 60\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.yaml)); err == nil {
				t.Errorf("Expected an error")
			}
		})
	}
}
