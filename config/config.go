package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Variant selects the run ruleset, fixed for the whole run.
type Variant string

const (
	// VariantTimed spawns hostiles on an interval; the run is won by
	// having every hostile defeated when the target duration elapses.
	VariantTimed Variant = "timed"

	// VariantAreas seeds hostiles in per-area batches; clearing an
	// area unlocks navigation to its neighbors.
	VariantAreas Variant = "areas"
)

// Valid reports whether v names a known variant.
func (v Variant) Valid() bool {
	return v == VariantTimed || v == VariantAreas
}

// Config is the complete tuning surface, immutable for a run. It is
// built once in main from defaults, an optional YAML file, and flags,
// validated, and then passed by value into every subsystem. Nothing
// mutates it afterwards; runtime tuning would mean building a new
// snapshot and restarting the run.
type Config struct {
	World   WorldConfig   `yaml:"world"`
	Player  PlayerConfig  `yaml:"player"`
	Hostile HostileConfig `yaml:"hostile"`
	Pickup  PickupConfig  `yaml:"pickup"`
	Physics PhysicsConfig `yaml:"physics"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Run     RunConfig     `yaml:"run"`
	Audio   AudioConfig   `yaml:"audio"`
	Score   ScoreConfig   `yaml:"score"`
	Log     LogConfig     `yaml:"log"`
}

// WorldConfig fixes the simulation bounds in world units. The renderer
// maps one unit to one terminal cell.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PlayerConfig struct {
	Speed       float64 `yaml:"speed"`        // units per second
	Size        float64 `yaml:"size"`         // footprint edge, units
	Friction    float64 `yaml:"friction"`     // per-tick damping in (0, 1]
	MaxVitality int     `yaml:"max_vitality"`
}

type HostileConfig struct {
	Speed    float64 `yaml:"speed"`
	Size     float64 `yaml:"size"`
	Friction float64 `yaml:"friction"`
	Damage   int     `yaml:"damage"` // vitality cost per contact
}

type PickupConfig struct {
	Size   float64 `yaml:"size"`
	Heal   int     `yaml:"heal"`
	Reward int     `yaml:"reward"` // score per collection
}

type PhysicsConfig struct {
	MaxSpeed       float64 `yaml:"max_speed"`        // global velocity clamp, units per second
	MaxTickSeconds float64 `yaml:"max_tick_seconds"` // dt cap after a stall
}

type SpawnConfig struct {
	PickupIntervalSeconds  float64 `yaml:"pickup_interval_seconds"`
	MaxPickups             int     `yaml:"max_pickups"` // live pickup cap
	HostileIntervalSeconds float64 `yaml:"hostile_interval_seconds"` // timed variant
	MaxHostiles            int     `yaml:"max_hostiles"`             // timed variant live cap
	InitialHostiles        int     `yaml:"initial_hostiles"`         // seeded at run start, timed variant
	SafeRadius             float64 `yaml:"safe_radius"`              // minimum spawn distance from the player
}

type RunConfig struct {
	Variant         Variant `yaml:"variant"`
	TargetSeconds   float64 `yaml:"target_seconds"`    // timed variant duration
	Areas           int     `yaml:"areas"`             // areas variant room count
	HostilesPerArea int     `yaml:"hostiles_per_area"` // areas variant batch size
	Seed            string  `yaml:"seed"`              // empty means time-based
}

type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

type ScoreConfig struct {
	Path string `yaml:"path"` // SQLite file, empty disables persistence
}

type LogConfig struct {
	Path string `yaml:"path"` // debug log file
}

// Default returns the tuning every run starts from.
func Default() Config {
	return Config{
		World: WorldConfig{
			Width:  100,
			Height: 30,
		},
		Player: PlayerConfig{
			Speed:       24,
			Size:        1,
			Friction:    1.0,
			MaxVitality: 100,
		},
		Hostile: HostileConfig{
			Speed:    10,
			Size:     1,
			Friction: 1.0,
			Damage:   10,
		},
		Pickup: PickupConfig{
			Size:   1,
			Heal:   20,
			Reward: 50,
		},
		Physics: PhysicsConfig{
			MaxSpeed:       60,
			MaxTickSeconds: 0.25,
		},
		Spawn: SpawnConfig{
			PickupIntervalSeconds:  6,
			MaxPickups:             3,
			HostileIntervalSeconds: 5,
			MaxHostiles:            12,
			InitialHostiles:        3,
			SafeRadius:             12,
		},
		Run: RunConfig{
			Variant:         VariantTimed,
			TargetSeconds:   90,
			Areas:           5,
			HostilesPerArea: 3,
		},
		Audio: AudioConfig{
			Enabled: true,
		},
		Score: ScoreConfig{
			Path: "gridfall_scores.db",
		},
		Log: LogConfig{
			Path: "gridfall_debug.log",
		},
	}
}

// Load reads a YAML file over the defaults, so partial files override
// only what they name.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run on. Called once at
// startup; the core never re-checks these.
func (c Config) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("world dimensions must be positive, got %gx%g", c.World.Width, c.World.Height)
	}
	if c.Player.Speed < 0 || c.Hostile.Speed < 0 {
		return fmt.Errorf("speeds must be non-negative")
	}
	if c.Player.Size <= 0 || c.Hostile.Size <= 0 || c.Pickup.Size <= 0 {
		return fmt.Errorf("entity sizes must be positive")
	}
	if c.Player.Friction <= 0 || c.Player.Friction > 1 {
		return fmt.Errorf("player friction must be in (0, 1], got %g", c.Player.Friction)
	}
	if c.Hostile.Friction <= 0 || c.Hostile.Friction > 1 {
		return fmt.Errorf("hostile friction must be in (0, 1], got %g", c.Hostile.Friction)
	}
	if c.Player.MaxVitality <= 0 {
		return fmt.Errorf("max vitality must be positive, got %d", c.Player.MaxVitality)
	}
	if c.Hostile.Damage < 0 || c.Pickup.Heal < 0 || c.Pickup.Reward < 0 {
		return fmt.Errorf("damage, heal and reward must be non-negative")
	}
	if c.Physics.MaxSpeed <= 0 {
		return fmt.Errorf("max speed must be positive, got %g", c.Physics.MaxSpeed)
	}
	if c.Physics.MaxTickSeconds <= 0 {
		return fmt.Errorf("max tick seconds must be positive, got %g", c.Physics.MaxTickSeconds)
	}
	if c.Spawn.PickupIntervalSeconds <= 0 {
		return fmt.Errorf("pickup interval must be positive, got %g", c.Spawn.PickupIntervalSeconds)
	}
	if c.Spawn.SafeRadius < 0 {
		return fmt.Errorf("safe radius must be non-negative, got %g", c.Spawn.SafeRadius)
	}
	if !c.Run.Variant.Valid() {
		return fmt.Errorf("unknown variant %q", c.Run.Variant)
	}
	switch c.Run.Variant {
	case VariantTimed:
		if c.Run.TargetSeconds <= 0 {
			return fmt.Errorf("target seconds must be positive, got %g", c.Run.TargetSeconds)
		}
		if c.Spawn.HostileIntervalSeconds <= 0 {
			return fmt.Errorf("hostile interval must be positive, got %g", c.Spawn.HostileIntervalSeconds)
		}
	case VariantAreas:
		if c.Run.Areas < 1 {
			return fmt.Errorf("areas must be at least 1, got %d", c.Run.Areas)
		}
		if c.Run.HostilesPerArea < 1 {
			return fmt.Errorf("hostiles per area must be at least 1, got %d", c.Run.HostilesPerArea)
		}
	}
	return nil
}
