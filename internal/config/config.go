// Package config loads the YAML file shared by the room tools and binds its
// most common fields to command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"cozy-spring/internal/dungeon"
	"cozy-spring/internal/logger"
	"cozy-spring/internal/room"
)

// Room sizes the standalone room and carries its generation parameters.
type Room struct {
	Width  int         `yaml:"width"`
	Height int         `yaml:"height"`
	Params room.Params `yaml:"params"`
}

// Viewer holds the window settings of the interactive viewer.
type Viewer struct {
	Scale int   `yaml:"scale"`
	TPS   int   `yaml:"tps"`
	Seed  int64 `yaml:"seed"`
	HUD   bool  `yaml:"hud"`
}

// Config is the root of the YAML file.
type Config struct {
	Room    Room           `yaml:"room"`
	Dungeon dungeon.Config `yaml:"dungeon"`
	Viewer  Viewer         `yaml:"viewer"`
	Logging logger.Config  `yaml:"logging"`

	// Overrides collects -set key=value flags. They are applied to
	// Room.Params by Resolve.
	Overrides Overrides `yaml:"-"`
}

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	d := dungeon.DefaultConfig()
	return &Config{
		Room: Room{
			Width:  d.RoomWidth,
			Height: d.RoomHeight,
			Params: room.DefaultParams(),
		},
		Dungeon: d,
		Viewer:  Viewer{Scale: 1, TPS: 60, Seed: 42, HUD: true},
		Logging: logger.DefaultConfig(),
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return cfg, nil
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Marshal encodes the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Bind attaches the flag-settable fields to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Room.Width, "w", c.Room.Width, "room width in tiles")
	fs.IntVar(&c.Room.Height, "h", c.Room.Height, "room height in tiles")
	fs.IntVar(&c.Viewer.Scale, "scale", c.Viewer.Scale, "pixel scale multiplier")
	fs.IntVar(&c.Viewer.TPS, "tps", c.Viewer.TPS, "ticks per second")
	fs.Int64Var(&c.Viewer.Seed, "seed", c.Viewer.Seed, "generation seed")
	fs.Var(&c.Overrides, "set", "room parameter override in key=value form (repeatable)")
}

// Parse loads the file named by -config in args, binds the remaining flags
// over it on fs, parses args and resolves the result. Commands register
// their own flags on fs before calling Parse.
func Parse(fs *flag.FlagSet, args []string) (*Config, error) {
	path := configPath(args)
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	fs.String("config", path, "YAML configuration file")
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	logger.ApplyEnv(&cfg.Logging)
	if err := cfg.Resolve(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// configPath finds the value of -config ahead of flag parsing.
func configPath(args []string) string {
	for i, arg := range args {
		if arg == "--" {
			break
		}
		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if !strings.HasPrefix(arg, "-") || name != "config" {
			continue
		}
		if hasValue {
			return value
		}
		if i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

// Resolve applies the -set overrides and validates the result.
func (c *Config) Resolve() error {
	for _, kv := range c.Overrides {
		key, value, _ := strings.Cut(kv, "=")
		if err := c.Room.Params.Set(key, value); err != nil {
			return err
		}
	}
	if c.Room.Width <= 0 || c.Room.Height <= 0 {
		return fmt.Errorf("room size %dx%d must be positive", c.Room.Width, c.Room.Height)
	}
	if c.Viewer.Scale <= 0 {
		c.Viewer.Scale = 1
	}
	if c.Viewer.TPS <= 0 {
		c.Viewer.TPS = 60
	}
	return c.Dungeon.Validate()
}

// Overrides is a repeatable key=value flag.
type Overrides []string

func (o *Overrides) String() string {
	return strings.Join(*o, ",")
}

// Set implements flag.Value.
func (o *Overrides) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("override %q is not key=value", value)
	}
	*o = append(*o, value)
	return nil
}

// Map returns the overrides keyed by parameter name. Later entries win.
func (o Overrides) Map() map[string]string {
	m := make(map[string]string, len(o))
	for _, kv := range o {
		key, value, _ := strings.Cut(kv, "=")
		m[key] = value
	}
	return m
}
