package analysis

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when the benchmark configuration is unusable.
var ErrInvalidConfig = errors.New("invalid config")

// ConfigError reports an invalid configuration field.
//
// errors.Is(err, ErrInvalidConfig) holds for every ConfigError.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s: %s", ErrInvalidConfig, e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }
