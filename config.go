package remainder

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTotalItems      = 10
	DefaultTotalRecipients = 3
)

// Config holds the two parameters of a distribution. It is copied into the
// animator at construction and never changes afterwards.
type Config struct {
	TotalItems      int `yaml:"total_items"`
	TotalRecipients int `yaml:"total_recipients"`
}

// DefaultConfig returns ten items dealt to three recipients.
func DefaultConfig() Config {
	return Config{
		TotalItems:      DefaultTotalItems,
		TotalRecipients: DefaultTotalRecipients,
	}
}

// Validate reports a *ConfigError when the recipients count is not positive
// or the item count is negative. Zero items is valid.
func (c Config) Validate() error {
	if c.TotalRecipients <= 0 {
		return &ConfigError{Field: "total_recipients", Value: c.TotalRecipients}
	}
	if c.TotalItems < 0 {
		return &ConfigError{Field: "total_items", Value: c.TotalItems}
	}
	return nil
}

// ParseConfig decodes YAML over the defaults, so keys missing from data keep
// their default values.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("remainder: parse config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads a YAML config file. See ParseConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("remainder: read config: %w", err)
	}
	return ParseConfig(data)
}

// SaveConfig writes cfg to path as YAML.
func SaveConfig(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("remainder: encode config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
