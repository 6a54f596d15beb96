// Package config holds the arena tuning knobs and their TOML loader.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config groups every gameplay tunable the way the TOML file does.
type Config struct {
	World      World      `toml:"world"`
	Player     Unit       `toml:"player"`
	Enemy      Unit       `toml:"enemy"`
	Bullet     Bullet     `toml:"bullet"`
	Obstacles  Obstacles  `toml:"obstacles"`
	Controller Controller `toml:"controller"`
}

// World sizes the window and the playfield inside it.
type World struct {
	Width      int `toml:"width"`
	Height     int `toml:"height"`
	FieldInset int `toml:"field_inset"` // margin between window edge and playfield
	SpawnInset int `toml:"spawn_inset"` // spawn distance from the playfield corner
}

// Unit tunes one tank.
type Unit struct {
	Width    int     `toml:"width"`
	Height   int     `toml:"height"`
	Speed    float64 `toml:"speed"` // px/s
	Health   int     `toml:"health"`
	ReloadMS int64   `toml:"reload_ms"`
}

// Bullet tunes projectiles. Both tanks fire the same shell.
type Bullet struct {
	Width  int     `toml:"width"`
	Height int     `toml:"height"`
	Speed  float64 `toml:"speed"` // px/s
}

// Obstacles tunes random terrain placement.
type Obstacles struct {
	Count       int     `toml:"count"`
	Width       int     `toml:"width"`
	Height      int     `toml:"height"`
	Inset       int     `toml:"inset"`        // keep-out margin inside the playfield
	MinSpacing  float64 `toml:"min_spacing"`  // center-to-center floor between obstacles
	SafeRadius  float64 `toml:"safe_radius"`  // clearance around each spawn point
	MaxAttempts int     `toml:"max_attempts"` // rejection sampling budget
}

// Controller tunes the autonomous opponent.
type Controller struct {
	DecisionMinSec float64 `toml:"decision_min_sec"`
	DecisionMaxSec float64 `toml:"decision_max_sec"`
	SeekProb       float64 `toml:"seek_probability"`
	RandomFireProb float64 `toml:"random_fire_probability"`
	AlignTolerance float64 `toml:"align_tolerance"` // px off-axis slack for aimed fire
}

// Default returns the stock arena tuning.
func Default() Config {
	return Config{
		World: World{
			Width:      640,
			Height:     480,
			FieldInset: 48,
			SpawnInset: 70,
		},
		Player: Unit{
			Width:    52,
			Height:   56,
			Speed:    140,
			Health:   4,
			ReloadMS: 450,
		},
		Enemy: Unit{
			Width:    52,
			Height:   56,
			Speed:    110,
			Health:   4,
			ReloadMS: 450,
		},
		Bullet: Bullet{
			Width:  20,
			Height: 20,
			Speed:  360,
		},
		Obstacles: Obstacles{
			Count:       6,
			Width:       100,
			Height:      32,
			Inset:       100,
			MinSpacing:  100,
			SafeRadius:  80,
			MaxAttempts: 1000,
		},
		Controller: Controller{
			DecisionMinSec: 0.35,
			DecisionMaxSec: 0.9,
			SeekProb:       0.6,
			RandomFireProb: 0.008,
			AlignTolerance: 18,
		},
	}
}

// Load reads a TOML file over the defaults, so a partial file only
// overrides what it names. An empty path returns the defaults as-is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validate config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects tunings that cannot produce a playable arena.
func (c Config) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("window %dx%d must be positive", c.World.Width, c.World.Height)
	}
	if c.World.Width <= 2*c.World.FieldInset || c.World.Height <= 2*c.World.FieldInset {
		return fmt.Errorf("field inset %d leaves no playfield", c.World.FieldInset)
	}
	for _, u := range []struct {
		name string
		unit Unit
	}{{"player", c.Player}, {"enemy", c.Enemy}} {
		if u.unit.Width <= 0 || u.unit.Height <= 0 {
			return fmt.Errorf("%s size %dx%d must be positive", u.name, u.unit.Width, u.unit.Height)
		}
		if u.unit.Speed < 0 {
			return fmt.Errorf("%s speed %v must not be negative", u.name, u.unit.Speed)
		}
		if u.unit.Health <= 0 {
			return fmt.Errorf("%s health %d must be positive", u.name, u.unit.Health)
		}
		if u.unit.ReloadMS <= 0 {
			return fmt.Errorf("%s reload %dms must be positive", u.name, u.unit.ReloadMS)
		}
	}
	if c.Bullet.Width <= 0 || c.Bullet.Height <= 0 || c.Bullet.Speed <= 0 {
		return fmt.Errorf("bullet %dx%d at %v px/s must be positive", c.Bullet.Width, c.Bullet.Height, c.Bullet.Speed)
	}
	if c.Obstacles.Count < 0 || c.Obstacles.Width <= 0 || c.Obstacles.Height <= 0 {
		return fmt.Errorf("obstacle count %d size %dx%d invalid", c.Obstacles.Count, c.Obstacles.Width, c.Obstacles.Height)
	}
	if c.Obstacles.MaxAttempts <= 0 {
		return fmt.Errorf("obstacle attempt budget %d must be positive", c.Obstacles.MaxAttempts)
	}
	if c.Controller.DecisionMinSec <= 0 || c.Controller.DecisionMaxSec < c.Controller.DecisionMinSec {
		return fmt.Errorf("decision interval [%v, %v] invalid", c.Controller.DecisionMinSec, c.Controller.DecisionMaxSec)
	}
	if c.Controller.SeekProb < 0 || c.Controller.SeekProb > 1 {
		return fmt.Errorf("seek probability %v outside [0, 1]", c.Controller.SeekProb)
	}
	if c.Controller.RandomFireProb < 0 || c.Controller.RandomFireProb > 1 {
		return fmt.Errorf("random fire probability %v outside [0, 1]", c.Controller.RandomFireProb)
	}
	return nil
}
