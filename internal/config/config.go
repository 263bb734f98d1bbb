// Package config loads and saves opxplay's on-disk configuration.
package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
)

// Config is opxplay's persisted configuration.
type Config struct {
	Clock  ClockConfig  `toml:"clock"`
	Audio  AudioConfig  `toml:"audio"`
	Render RenderConfig `toml:"render"`
}

// ClockConfig selects a named master-clock preset, or a literal frequency.
type ClockConfig struct {
	// Preset is one of "arcade" (16.9344 MHz) or "console" (33.8688 MHz).
	// Ignored if HzOverride is non-zero.
	Preset string `toml:"preset"`

	HzOverride uint32 `toml:"hz_override"`
}

type AudioConfig struct {
	SampleRate int `toml:"sample_rate"`
	BufferSize int `toml:"buffer_size"`
}

type RenderConfig struct {
	// Parallelism bounds how many independent Chip instances a batch
	// render may advance concurrently. Zero means "use runtime.NumCPU()".
	Parallelism int `toml:"parallelism"`
}

var clockPresets = map[string]uint32{
	"arcade":  16934400,
	"console": 33868800,
}

// ResolveClock returns the configured master clock in Hz.
func (c ClockConfig) ResolveClock() uint32 {
	if c.HzOverride != 0 {
		return c.HzOverride
	}
	if hz, ok := clockPresets[c.Preset]; ok {
		return hz
	}
	return clockPresets["arcade"]
}

func defaultConfig() Config {
	return Config{
		Clock:  ClockConfig{Preset: "arcade"},
		Audio:  AudioConfig{SampleRate: 44100, BufferSize: 2048},
		Render: RenderConfig{Parallelism: 0},
	}
}

var dirOnce sync.Once
var dir string

// Dir returns the directory opxplay stores its config file in, creating it
// if necessary.
func Dir() string {
	dirOnce.Do(func() {
		base, err := os.UserConfigDir()
		if err != nil {
			base = "."
		}
		dir = filepath.Join(base, "opxplay")
		_ = os.MkdirAll(dir, 0o755)
	})
	return dir
}

const filename = "config.toml"

// LoadOrDefault loads the configuration from Dir(), or returns the default
// configuration if no file exists or it fails to parse.
func LoadOrDefault() Config {
	cfg := defaultConfig()
	_, err := toml.DecodeFile(filepath.Join(Dir(), filename), &cfg)
	if err != nil {
		return defaultConfig()
	}
	return cfg
}

// Save writes cfg to Dir().
func Save(cfg Config) error {
	f, err := os.Create(filepath.Join(Dir(), filename))
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}
