package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for the simulator
type Config struct {
	Width          int           `json:"width"`
	Height         int           `json:"height"`
	FrameRate      time.Duration `json:"frame_rate"`
	MaxGenerations int           `json:"max_generations"`
	Toroidal       bool          `json:"toroidal"`
	Creature       string        `json:"creature"`
	PatternFile    string        `json:"pattern_file"`
	SavePath       string        `json:"save_path"`
	RandomDensity  float64       `json:"random_density"`
	Interactive    bool          `json:"interactive"`
	LogLevel       string        `json:"log_level"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:          60,
		Height:         30,
		FrameRate:      150 * time.Millisecond,
		MaxGenerations: 1000,
		Toroidal:       false,
		Creature:       "glider",
		RandomDensity:  0,
		Interactive:    false,
		LogLevel:       "info",
	}
}

// Normalized returns the config with a usable frame rate. The run loops feed
// it to time.NewTicker, which panics on non-positive intervals, so those fall
// back to the default.
func (c Config) Normalized() Config {
	if c.FrameRate <= 0 {
		c.FrameRate = DefaultConfig().FrameRate
	}
	return c
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}
