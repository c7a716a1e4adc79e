package codegen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors.
var (
	// ErrConfigNotFound is returned when no codegen.yaml is found.
	ErrConfigNotFound = errors.New("codegen: no codegen.yaml found")
)

// ConfigurationError reports a configuration option whose string value does
// not parse as a valid type expression in the target language. It is
// recoverable at option granularity: declarations that reference the broken
// option are dropped while unrelated declarations still emit.
type ConfigurationError struct {
	// Option is the configuration option name, e.g. "maybeValue".
	Option string

	// Value is the rejected option value.
	Value string

	// Reason describes why the value was rejected.
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid value for %s: %q: %s", e.Option, e.Value, e.Reason)
}

// ConfigurationErrors aggregates all configuration errors encountered
// during a run so they can be reported together.
type ConfigurationErrors []*ConfigurationError

func (e ConfigurationErrors) Error() string {
	if len(e) == 1 {
		return e[0].Error()
	}

	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}

	return fmt.Sprintf("%d configuration errors: %s", len(e), strings.Join(msgs, "; "))
}

// UnresolvedReferenceError reports a field whose named type is absent from
// the supplied schema graph. It indicates a broken upstream contract and
// aborts the run with no partial output.
type UnresolvedReferenceError struct {
	// TypeName is the missing type name.
	TypeName string

	// Site is the use site, e.g. "User.posts".
	Site string
}

func (e *UnresolvedReferenceError) Error() string {
	if e.Site == "" {
		return fmt.Sprintf("unresolved type reference %q", e.TypeName)
	}

	return fmt.Sprintf("unresolved type reference %q at %s", e.TypeName, e.Site)
}
