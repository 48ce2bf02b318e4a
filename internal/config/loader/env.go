package loader

import (
	"os"
	"strconv"
	"strings"
)

// DefaultEnvPrefix is the prefix of environment overrides.
const DefaultEnvPrefix = "SMARTKEY_"

// EnvLoader loads configuration overrides from environment variables.
type EnvLoader struct {
	prefix  string
	mapping map[string]string // env var suffix -> config path
	lookup  func(string) (string, bool)
}

// NewEnvLoader creates an environment loader. The prefix should include
// the trailing underscore.
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix: prefix,
		mapping: map[string]string{
			"LOG_LEVEL":       "log_level",
			"INDENT_SIZE":     "indent_size",
			"SMART_SEMICOLON": "smart_semicolon",
			"SEMICOLON_CHAR":  "semicolon_char",
		},
		lookup: os.LookupEnv,
	}
}

// Load reads the mapped environment variables. Unset variables are
// skipped; an empty value is still a value.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)
	for suffix, path := range l.mapping {
		if val, ok := l.lookup(l.prefix + suffix); ok {
			setByPath(config, path, parseValue(val))
		}
	}
	return config, nil
}

// parseValue converts booleans and integers and leaves everything else
// as a string.
func parseValue(s string) any {
	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	return s
}

// setByPath sets a value in a nested map using a dot-separated path.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data
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
