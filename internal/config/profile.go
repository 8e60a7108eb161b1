package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/pulsenet/internal/logging"
	"github.com/aretw0/pulsenet/internal/runtime"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides, e.g. PULSENET_PRESSES=5000.
const EnvPrefix = "PULSENET_"

// Profile holds the settings of a CLI run.
type Profile struct {
	Presses        int    `mapstructure:"presses" yaml:"presses"`
	Target         string `mapstructure:"target" yaml:"target"`
	Level          string `mapstructure:"level" yaml:"level"`
	MaxPresses     int    `mapstructure:"max_presses" yaml:"max_presses"`
	MaxPulses      int    `mapstructure:"max_pulses" yaml:"max_pulses"`
	MaxStates      int    `mapstructure:"max_tracked_states" yaml:"max_tracked_states"`
	CycleDetection bool   `mapstructure:"cycle_detection" yaml:"cycle_detection"`
	LogLevel       string `mapstructure:"log_level" yaml:"log_level"`
	Metrics        string `mapstructure:"metrics" yaml:"metrics"`
	Plain          bool   `mapstructure:"plain" yaml:"plain"`
}

// Defaults returns the settings used when nothing overrides them.
func Defaults() map[string]any {
	return map[string]any{
		"presses":            1000,
		"target":             "rx",
		"level":              "low",
		"max_presses":        runtime.DefaultMaxPresses,
		"max_pulses":         runtime.DefaultMaxPulsesPerPress,
		"max_tracked_states": runtime.DefaultMaxTrackedStates,
		"cycle_detection":    true,
		"log_level":          "warn",
		"metrics":            "",
		"plain":              false,
	}
}

// Load builds a profile from defaults, then the YAML file at path (if any),
// then PULSENET_* environment variables.
func Load(path string) (*Profile, error) {
	settings := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read profile: %w", err)
		}
		var file map[string]any
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse profile %s: %w", path, err)
		}
		for k, v := range file {
			settings[k] = v
		}
	}

	for k := range Defaults() {
		if v, ok := os.LookupEnv(EnvPrefix + strings.ToUpper(k)); ok {
			settings[k] = v
		}
	}

	return Decode(settings)
}

// Decode converts raw settings into a Profile. Strings are converted to numbers
// and booleans where needed; unknown keys are rejected.
func Decode(settings map[string]any) (*Profile, error) {
	var p Profile
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &p,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(settings); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks ranges that the decoder cannot.
func (p *Profile) Validate() error {
	switch {
	case p.Presses < 0:
		return fmt.Errorf("presses must not be negative")
	case p.MaxPresses <= 0:
		return fmt.Errorf("max_presses must be positive")
	case p.MaxPulses <= 0:
		return fmt.Errorf("max_pulses must be positive")
	case p.MaxStates <= 0:
		return fmt.Errorf("max_tracked_states must be positive")
	case p.Level != "low" && p.Level != "high":
		return fmt.Errorf("level must be low or high, got %q", p.Level)
	}
	if _, err := logging.ParseLevel(p.LogLevel); err != nil {
		return err
	}
	return nil
}
