package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is matched by every ConfigError through errors.Is.
var ErrInvalidConfig = errors.New("invalid config")

// ConfigError reports a setting that makes generation impossible.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config [%s]: %s", e.Field, e.Reason)
}

// Is lets errors.Is(err, ErrInvalidConfig) match any ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

func newConfigError(field, format string, args ...any) *ConfigError {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
