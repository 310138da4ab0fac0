package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"tilebrush/internal/level"
)

// Filename is the config file looked up under the user config directory.
const Filename = "config.yml"

// ErrInvalidScale is returned when the zoom bounds cannot hold the initial
// scale.
var ErrInvalidScale = errors.New("invalid scale configuration")

// Scale bounds the zoom level, in braille dots per grid unit.
type Scale struct {
	Initial float64 `yaml:"initial"`
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
	Step    float64 `yaml:"step"`
}

// Config holds editor preferences.
type Config struct {
	ExportDir       string         `yaml:"export_dir"`
	Scale           Scale          `yaml:"scale"`
	PanFraction     float64        `yaml:"pan_fraction"`
	TickRate        int            `yaml:"tick_rate"`
	PreviewPNG      bool           `yaml:"preview_png"`
	CopyToClipboard bool           `yaml:"copy_to_clipboard"`
	Seed            bool           `yaml:"seed"`
	Settings        map[string]any `yaml:"settings"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		ExportDir:   ".",
		Scale:       Scale{Initial: 6, Min: 1, Max: 40, Step: 1.05},
		PanFraction: 0.2,
		TickRate:    60,
		Seed:        true,
	}
}

// DefaultPath returns the config location under the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "tilebrush", Filename), nil
}

// Load reads the config at path over the defaults. A missing file is not an
// error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if _, err := cfg.LevelSettings(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the numeric settings.
func (c Config) Validate() error {
	s := c.Scale
	if s.Min <= 0 || s.Min > s.Initial || s.Initial > s.Max || s.Step <= 1 {
		return fmt.Errorf("%w: need 0 < min <= initial <= max and step > 1, got %+v", ErrInvalidScale, s)
	}
	if c.PanFraction <= 0 {
		return fmt.Errorf("pan_fraction must be positive, got %v", c.PanFraction)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("tick_rate must be positive, got %d", c.TickRate)
	}
	return nil
}

// LevelSettings applies the settings overrides to the default level settings.
// Keys use the document's names, e.g. "bpm" or "trackColor".
func (c Config) LevelSettings() (level.Settings, error) {
	s := level.DefaultSettings()
	if len(c.Settings) == 0 {
		return s, nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &s,
		ErrorUnused: true,
	})
	if err != nil {
		return s, err
	}
	if err := dec.Decode(c.Settings); err != nil {
		return level.DefaultSettings(), fmt.Errorf("invalid level settings: %w", err)
	}
	return s, nil
}
