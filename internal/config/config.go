// Package config provides the tunable parameters for level generation,
// population and physics. Values are loaded from YAML over built-in
// defaults so a config file only needs the keys it changes.
package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable of a game session
type Config struct {
	Generation GenerationConfig `yaml:"generation"`
	Population PopulationConfig `yaml:"population"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Blast      BlastConfig      `yaml:"blast"`
	Weapons    WeaponsConfig    `yaml:"weapons"`
}

// GenerationConfig sizes the level grid and the room placement budget
type GenerationConfig struct {
	Rows         int     `yaml:"rows"`          // Grid rows, rounded up to odd
	Cols         int     `yaml:"cols"`          // Grid columns, rounded up to odd
	RoomAttempts int     `yaml:"room_attempts"` // Rooms to place besides spawn
	RoomFailCap  int     `yaml:"room_fail_cap"` // Consecutive rejections before giving up
	TileSize     float64 `yaml:"tile_size"`     // Pixels per tile
}

// PopulationConfig defines how many crates and enemies a level gets
type PopulationConfig struct {
	CratePiles    int `yaml:"crate_piles"`
	ExplosiveBase int `yaml:"explosive_base"` // Lone explosive crates, plus one per level
	EnemyBase     int `yaml:"enemy_base"`
	EnemyPerLevel int `yaml:"enemy_per_level"`
}

// PhysicsConfig defines movement rules
type PhysicsConfig struct {
	Friction       float64 `yaml:"friction"`         // Velocity multiplier per frame
	Snap           float64 `yaml:"snap"`             // Components at or below this become 0
	PlayerSize     float64 `yaml:"player_size"`
	PlayerMaxSpeed float64 `yaml:"player_max_speed"`
	PlayerHealth   float64 `yaml:"player_health"`
	GraceFrames    int     `yaml:"grace_frames"` // Frames after level start before enemies fire
}

// BlastConfig defines explosive crate detonations
type BlastConfig struct {
	RadiusTiles float64 `yaml:"radius_tiles"`
	Damage      float64 `yaml:"damage"` // At the centre, falling to 0 at the radius
}

// WeaponConfig is the bullet profile of one weapon
type WeaponConfig struct {
	Damage      float64 `yaml:"damage"`
	Speed       float64 `yaml:"speed"` // Pixels per frame
	Size        float64 `yaml:"size"`
	Force       float64 `yaml:"force"`
	Inaccuracy  float64 `yaml:"inaccuracy"` // Max spread either side, radians
	Durability  float64 `yaml:"durability"`
	CrateDamage float64 `yaml:"crate_damage"`
	Lifespan    int     `yaml:"lifespan"` // Frames
	Cooldown    int     `yaml:"cooldown"` // Frames between shots
	Bounces     bool    `yaml:"bounces"`
}

// WeaponsConfig holds one profile per armed role
type WeaponsConfig struct {
	Player  WeaponConfig `yaml:"player"`
	Enemy   WeaponConfig `yaml:"enemy"`
	Bouncer WeaponConfig `yaml:"bouncer"`
}

// DefaultConfig returns the stock game tuning
func DefaultConfig() *Config {
	return &Config{
		Generation: GenerationConfig{
			Rows:         25,
			Cols:         41,
			RoomAttempts: 100,
			RoomFailCap:  500,
			TileSize:     50,
		},
		Population: PopulationConfig{
			CratePiles:    15,
			ExplosiveBase: 5,
			EnemyBase:     10,
			EnemyPerLevel: 2,
		},
		Physics: PhysicsConfig{
			Friction:       0.85,
			Snap:           0.01,
			PlayerSize:     25,
			PlayerMaxSpeed: 8,
			PlayerHealth:   100,
			GraceFrames:    60,
		},
		Blast: BlastConfig{
			RadiusTiles: 2,
			Damage:      50,
		},
		Weapons: WeaponsConfig{
			Player: WeaponConfig{
				Damage: 10, Speed: 10, Size: 15, Force: 3,
				Inaccuracy: 2 * math.Pi / 120,
				Durability: 1, CrateDamage: 7,
				Lifespan: 36, Cooldown: 15,
			},
			Enemy: WeaponConfig{
				Damage: 10, Speed: 2, Size: 15, Force: 3,
				Inaccuracy: 2 * math.Pi / 120,
				Durability: 1, CrateDamage: 7,
				Lifespan: 180, Cooldown: 25,
			},
			Bouncer: WeaponConfig{
				Damage: 2, Speed: 5, Size: 10, Force: 3,
				Inaccuracy: 2 * math.Pi / 60,
				Durability: 3, CrateDamage: 4,
				Lifespan: 180, Cooldown: 6,
				Bounces: true,
			},
		},
	}
}

// LoadConfig loads a config from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result
func Parse(data []byte) (*Config, error) {
	config := DefaultConfig() // Start with defaults
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

// Validate rejects values the engine cannot run with
func (c *Config) Validate() error {
	switch {
	case c.Generation.Rows < 3 || c.Generation.Cols < 3:
		return fmt.Errorf("grid %dx%d is smaller than 3x3", c.Generation.Rows, c.Generation.Cols)
	case c.Generation.TileSize <= 0:
		return fmt.Errorf("tile_size must be positive, got %v", c.Generation.TileSize)
	case c.Physics.Friction < 0 || c.Physics.Friction > 1:
		return fmt.Errorf("friction must be in [0,1], got %v", c.Physics.Friction)
	case c.Physics.PlayerSize <= 0 || c.Physics.PlayerSize >= c.Generation.TileSize:
		return fmt.Errorf("player_size must be in (0, tile_size), got %v", c.Physics.PlayerSize)
	}
	return nil
}
