package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrInvalidValue is wrapped by every rejected configuration value.
var ErrInvalidValue = errors.New("invalid value")

// Validator normalizes a raw value or reports why it cannot be used.
// Rejected values are replaced by the key's default.
type Validator func(value string) (string, error)

// validators holds the rule of every checked key. Other keys accept any value.
var validators = map[string]Validator{
	"catalog_path":      CatalogFile,
	"clipboard_backend": OneOf("auto", "system", "osc52", "none"),
	"copy_feedback_ms":  IntRange(100, 60000),
	"debug":             Bool,
	"list_format":       OneOf("simple", "table", "json", "yaml", "markdown"),
	"logging_enabled":   Bool,
	"logging_level":     OneOf("debug", "info", "warn", "error"),
	"logging_max_files": IntRange(1, 1000),
	"sidebar_width":     IntRange(16, 120),
}

// IntRange accepts integers in [lo, hi].
func IntRange(lo, hi int) Validator {
	return func(value string) (string, error) {
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n < lo || n > hi {
			return "", fmt.Errorf("%w %q: want an integer between %d and %d", ErrInvalidValue, value, lo, hi)
		}
		return strconv.Itoa(n), nil
	}
}

// OneOf accepts the listed values, case-insensitively, and lowercases them.
func OneOf(allowed ...string) Validator {
	return func(value string) (string, error) {
		v := strings.ToLower(strings.TrimSpace(value))
		for _, a := range allowed {
			if v == a {
				return v, nil
			}
		}
		return "", fmt.Errorf("%w %q: want one of %s", ErrInvalidValue, value, strings.Join(allowed, ", "))
	}
}

// Bool accepts 1/0, true/false, yes/no and on/off.
func Bool(value string) (string, error) {
	v := normalizeBool(strings.TrimSpace(value))
	if v != "true" && v != "false" {
		return "", fmt.Errorf("%w %q: want true or false", ErrInvalidValue, value)
	}
	return v, nil
}

// CatalogFile accepts a .toml, .yaml or .yml path and expands a leading ~.
func CatalogFile(value string) (string, error) {
	p := strings.TrimSpace(value)
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("%w %q: %v", ErrInvalidValue, value, err)
		}
		p = filepath.Join(home, strings.TrimPrefix(p, "~"))
	}
	switch strings.ToLower(filepath.Ext(p)) {
	case ".toml", ".yaml", ".yml":
		return filepath.Clean(p), nil
	}
	return "", fmt.Errorf("%w %q: catalog must be a .toml, .yaml or .yml file", ErrInvalidValue, value)
}

// normalizeBool converts various boolean representations to "true"/"false".
func normalizeBool(val string) string {
	switch strings.ToLower(val) {
	case "1", "true", "yes", "on":
		return "true"
	case "0", "false", "no", "off":
		return "false"
	default:
		return val
	}
}
