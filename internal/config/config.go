package config

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"flip/internal/app/errors"
)

// Config represents the application configuration
type Config struct {
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		File   string `yaml:"file"`
	}
	Switch struct {
		Left          string `yaml:"left"`
		Right         string `yaml:"right"`
		RightSelected bool   `yaml:"right_selected" mapstructure:"right_selected"`
		WrapLabels    bool   `yaml:"wrap_labels" mapstructure:"wrap_labels"`
	}
	Palette struct {
		Accent string `yaml:"accent"`
		Muted  string `yaml:"muted"`
		Track  string `yaml:"track"`
	}
	Animation struct {
		FPS       int     `yaml:"fps"`
		Frequency float64 `yaml:"frequency"`
		Damping   float64 `yaml:"damping"`
	}
	Watch struct {
		Enabled  bool          `yaml:"enabled"`
		Debounce time.Duration `yaml:"debounce"`
	}
	Mouse   bool   `yaml:"mouse"`
	Path    string `yaml:"-" mapstructure:"-"`
	Version int
}

var (
	knownKeys = map[string]struct{}{
		"logging":   {},
		"switch":    {},
		"palette":   {},
		"animation": {},
		"watch":     {},
		"mouse":     {},
		"version":   {},
	}

	logLevels  = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic"}
	logFormats = []string{"console", "json"}
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{
		Path:    DefaultPath,
		Mouse:   true,
		Version: 1,
	}

	cfg.Logging.Level = DefaultLogLevel
	cfg.Logging.Format = DefaultLogFormat

	cfg.Switch.Left = DefaultLeftText
	cfg.Switch.Right = DefaultRightText

	cfg.Palette.Accent = DefaultAccentColor
	cfg.Palette.Muted = DefaultMutedColor
	cfg.Palette.Track = DefaultTrackColor

	cfg.Animation.FPS = DefaultAnimationFPS
	cfg.Animation.Frequency = DefaultAnimationFrequency
	cfg.Animation.Damping = DefaultAnimationDamping

	cfg.Watch.Debounce = DefaultWatchDebounce

	return cfg
}

// Load loads the configuration from path; an empty path means flip.yaml in the working directory,
// which may be absent
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	cfg := DefaultConfig()
	cfg.Path = path

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if explicit {
				return nil, fmt.Errorf("%w: %s", errors.ErrConfigNotFound, path)
			}

			return cfg, nil
		}

		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToReadConfig, err)
	}

	if err := Parse(cfg, data); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse overlays YAML data onto cfg and validates the result
func Parse(cfg *Config, data []byte) error {
	if err := checkKeys(data); err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigType("yaml")

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToReadConfig, err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToParseConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return nil
}

// checkKeys rejects top-level sections the application does not know about
func checkKeys(data []byte) error {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToParseConfig, err)
	}

	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return errors.ErrFailedToParseConfig
	}

	for i := 0; i < len(doc.Content); i += 2 {
		key := doc.Content[i]
		if _, ok := knownKeys[key.Value]; !ok {
			return fmt.Errorf("%w: '%s' (line %d)", errors.ErrUnknownConfigKey, key.Value, key.Line)
		}
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}

	if err := c.validateAnimation(); err != nil {
		return err
	}

	return c.validateWatch()
}

// validateLogging validates logging settings
func (c *Config) validateLogging() error {
	if !contains(logLevels, c.Logging.Level) {
		return fmt.Errorf("%w: '%s'", errors.ErrInvalidLogLevel, c.Logging.Level)
	}

	if !contains(logFormats, c.Logging.Format) {
		return fmt.Errorf("%w: '%s' (must be 'console' or 'json')", errors.ErrInvalidLogFormat, c.Logging.Format)
	}

	return nil
}

// validateAnimation validates thumb animation settings
func (c *Config) validateAnimation() error {
	if c.Animation.FPS <= 0 {
		return errors.ErrInvalidAnimationFPS
	}

	if c.Animation.Frequency <= 0 {
		return errors.ErrInvalidAnimationFrequency
	}

	if c.Animation.Damping < 0 {
		return errors.ErrInvalidAnimationDamping
	}

	return nil
}

// validateWatch validates config reload settings
func (c *Config) validateWatch() error {
	if c.Watch.Debounce < 0 {
		return errors.ErrInvalidWatchDebounce
	}

	return nil
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}

	return false
}
