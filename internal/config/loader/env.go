package loader

import (
	"fmt"
	"strconv"
	"strings"
)

// ValueKind is the type a setting is decoded as.
type ValueKind int

// Setting value kinds.
const (
	KindString ValueKind = iota
	KindInt
)

// EnvVar describes the setting an environment variable overrides.
type EnvVar struct {
	Path string    // Dot-separated setting path, e.g. "editor.tabWidth"
	Kind ValueKind // How the raw value is converted
}

// EnvError reports an environment variable whose value does not fit its
// setting.
type EnvError struct {
	Var   string
	Value string
	Err   error
}

func (e *EnvError) Error() string {
	return fmt.Sprintf("environment variable %s=%q: %v", e.Var, e.Value, e.Err)
}

func (e *EnvError) Unwrap() error {
	return e.Err
}

// EnvLoader loads configuration from environment variables.
type EnvLoader struct {
	mapping map[string]EnvVar
	lookup  func(string) (string, bool)
}

// NewEnvLoader creates a loader for the given environment variable
// mapping. Variables are read through lookup, normally os.LookupEnv.
func NewEnvLoader(mapping map[string]EnvVar, lookup func(string) (string, bool)) *EnvLoader {
	return &EnvLoader{
		mapping: mapping,
		lookup:  lookup,
	}
}

// Load reads the mapped variables and returns a configuration map.
// Unset variables are skipped; a variable set to the empty string is kept.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)

	for env, v := range l.mapping {
		raw, ok := l.lookup(env)
		if !ok {
			continue
		}
		val, err := parseValue(raw, v.Kind)
		if err != nil {
			return nil, &EnvError{Var: env, Value: raw, Err: err}
		}
		setByPath(config, v.Path, val)
	}

	return config, nil
}

// parseValue converts s to the Go type of kind.
func parseValue(s string, kind ValueKind) (any, error) {
	switch kind {
	case KindInt:
		return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	default:
		return s, nil
	}
}

// setByPath sets a value in a nested map using a dot-separated path.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data

	// Navigate/create intermediate maps
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}

	current[parts[len(parts)-1]] = value
}
