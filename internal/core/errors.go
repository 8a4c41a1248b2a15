package core

import (
	"errors"
	"fmt"
)

// ErrConfig is the sentinel every ConfigError unwraps to.
var ErrConfig = errors.New("configuration error")

// ConfigError reports input or settings that make a simulation impossible to
// construct. It is only ever produced before the first generation runs.
type ConfigError struct {
	Op  string
	Msg string
}

func (e *ConfigError) Error() string {
	if e.Op == "" {
		return "configuration error: " + e.Msg
	}
	return e.Op + ": configuration error: " + e.Msg
}

func (e *ConfigError) Unwrap() error { return ErrConfig }

// Configf builds a ConfigError for op with a formatted message.
func Configf(op, format string, args ...any) error {
	return &ConfigError{Op: op, Msg: fmt.Sprintf(format, args...)}
}
