package remainder

import (
	"errors"
	"fmt"
)

// ErrConfiguration indicates the animator was given parameters it cannot
// distribute with.
var ErrConfiguration = errors.New("remainder: invalid configuration")

// ConfigError reports which configuration field was rejected.
// It unwraps to ErrConfiguration.
type ConfigError struct {
	Field string
	Value int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s = %d", ErrConfiguration, e.Field, e.Value)
}

func (e *ConfigError) Unwrap() error {
	return ErrConfiguration
}
