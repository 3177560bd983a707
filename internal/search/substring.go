package search

import (
	"strings"

	"github.com/cristianoliveira/artisan-ref/internal/catalog"
)

// SubstringProvider matches if any configured field contains the query.
type SubstringProvider struct {
	opts Options
}

// NewSubstringProvider creates a new substring search provider.
func NewSubstringProvider(opts ...Option) Provider {
	return &SubstringProvider{
		opts: applyOptions(opts),
	}
}

// Match returns true if any configured field contains the query substring.
func (p *SubstringProvider) Match(cmd catalog.Command, query string) bool {
	if query == "" {
		return true
	}

	searchQuery := query
	if p.opts.CaseInsensitive {
		searchQuery = strings.ToLower(query)
	}

	for _, field := range p.opts.Fields {
		var values []string
		switch field {
		case FieldName:
			values = []string{cmd.Name}
		case FieldDescription:
			values = []string{cmd.Description}
		case FieldTags:
			values = cmd.Tags
		}

		for _, value := range values {
			if p.opts.CaseInsensitive {
				value = strings.ToLower(value)
			}
			if strings.Contains(value, searchQuery) {
				return true
			}
		}
	}

	return false
}

// Name returns the provider name.
func (p *SubstringProvider) Name() string {
	return "substring"
}
