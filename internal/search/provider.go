// Package search filters a command catalog and resolves selections against it.
//
// Matching strategies are expressed through the Provider interface so that the
// TUI, the CLI and the exporters share a single definition of "matches".
// Everything here is pure: no function keeps state between calls.
package search

import (
	"github.com/cristianoliveira/artisan-ref/internal/catalog"
)

// Searchable command fields.
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldTags        = "tags"
)

// Provider decides whether a command matches a query.
type Provider interface {
	// Match returns true if cmd matches query.
	Match(cmd catalog.Command, query string) bool

	// Name returns the provider name for identification and debugging.
	Name() string
}

// Options holds configuration options for creating search providers.
type Options struct {
	CaseInsensitive bool     // If true, searches ignore case
	Fields          []string // Fields to search in
}

// DefaultOptions returns the default search options.
func DefaultOptions() Options {
	return Options{
		CaseInsensitive: false,
		Fields:          []string{FieldName, FieldDescription, FieldTags},
	}
}

// Option is a function that modifies search options.
type Option func(*Options)

// WithCaseInsensitive sets case-insensitive search.
func WithCaseInsensitive(enabled bool) Option {
	return func(o *Options) {
		o.CaseInsensitive = enabled
	}
}

// WithFields sets the fields to search in.
// Valid fields: "name", "description", "tags".
func WithFields(fields []string) Option {
	return func(o *Options) {
		o.Fields = fields
	}
}

func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// DefaultProvider is the catalog filter used by every front end:
// case-insensitive substring containment on name, description and tags.
func DefaultProvider() Provider {
	return NewSubstringProvider(WithCaseInsensitive(true))
}
