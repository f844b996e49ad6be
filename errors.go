package kv3

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrInvalidConfiguration is matched by every error reporting a rejected
// header or encoder setting.
var ErrInvalidConfiguration = errors.New("kv3: invalid configuration")

// A ConfigError describes a setting that was rejected at construction time.
type ConfigError struct {
	Setting string
	Value   any
	Reason  string
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("kv3: invalid %s %q", e.Setting, fmt.Sprint(e.Value))
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Is reports whether target is ErrInvalidConfiguration.
func (e *ConfigError) Is(target error) bool { return target == ErrInvalidConfiguration }
