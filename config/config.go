// Package config loads the optional YAML tuning file over compiled-in defaults
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/wallwalk/collision"
	"github.com/lixenwraith/wallwalk/geom"
	"github.com/lixenwraith/wallwalk/parameter"
	"github.com/lixenwraith/wallwalk/view"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("config: invalid")

// Config is the on-disk shape; enum fields are names parsed by Resolve
type Config struct {
	Agent     AgentConfig     `yaml:"agent"`
	Collision CollisionConfig `yaml:"collision"`
	View      ViewConfig      `yaml:"view"`
	World     WorldConfig     `yaml:"world"`
	Audio     AudioConfig     `yaml:"audio"`
	Debug     bool            `yaml:"debug"`
	FPS       int             `yaml:"fps"`
}

type AgentConfig struct {
	Radius    float64 `yaml:"radius"`
	Speed     float64 `yaml:"speed"`
	ClipDepth float64 `yaml:"clip_depth"`
	TurnRate  float64 `yaml:"turn_rate"`
}

type CollisionConfig struct {
	Tolerance  float64 `yaml:"tolerance"`
	Damping    float64 `yaml:"damping"`
	Policy     string  `yaml:"policy"`
	Iterations int     `yaml:"iterations"`
}

type ViewConfig struct {
	ClipPolicy string  `yaml:"clip_policy"`
	Mode       string  `yaml:"mode"`
	WallHeight float64 `yaml:"wall_height"`
	// MapScale is world-to-cell scale in overhead mode
	MapScale float64 `yaml:"map_scale"`
}

type WorldConfig struct {
	Rotation string `yaml:"rotation"`
	// Walls replaces the default layout when non-empty; each is [x1, y1, x2, y2]
	Walls [][4]float64 `yaml:"walls,omitempty"`
}

type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the compiled-in configuration
func Default() Config {
	return Config{
		Agent: AgentConfig{
			Radius:    parameter.AgentRadius,
			Speed:     parameter.AgentSpeed,
			ClipDepth: parameter.AgentClipDepth,
			TurnRate:  parameter.AgentTurnRate,
		},
		Collision: CollisionConfig{
			Tolerance:  parameter.CollisionTolerance,
			Damping:    parameter.CollisionDamping,
			Policy:     collision.PolicyLastWins.String(),
			Iterations: parameter.CollisionIterations,
		},
		View: ViewConfig{
			ClipPolicy: view.ClipTrim.String(),
			Mode:       view.ModePerspective.String(),
			WallHeight: parameter.WallHeight,
			MapScale:   parameter.MapScale,
		},
		World: WorldConfig{
			Rotation: geom.RotateSnapshot.String(),
		},
		Audio: AudioConfig{Enabled: true},
		FPS:   parameter.DefaultFPS,
	}
}

// Load reads path over Default; an empty path returns the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML over Default and validates the result
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: decode: %w", err)
	}
	if _, err := cfg.Resolve(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
