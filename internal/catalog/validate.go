package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCatalog is wrapped by every validation failure.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Validate checks categories against the catalog invariants and reports every
// problem found, joined into a single error.
func Validate(categories []Category) error {
	var errs []error
	seen := make(map[string]bool, len(categories))
	for i, cat := range categories {
		if strings.TrimSpace(cat.Name) == "" {
			errs = append(errs, fmt.Errorf("category #%d: empty name", i+1))
			continue
		}
		if seen[cat.Name] {
			errs = append(errs, fmt.Errorf("category %q: duplicate name", cat.Name))
		}
		seen[cat.Name] = true
		if len(cat.Commands) == 0 {
			errs = append(errs, fmt.Errorf("category %q: no commands", cat.Name))
		}
		errs = append(errs, validateCommands(cat)...)
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidCatalog, errors.Join(errs...))
}

func validateCommands(cat Category) []error {
	var errs []error
	names := make(map[string]bool, len(cat.Commands))
	for i, cmd := range cat.Commands {
		if strings.TrimSpace(cmd.Name) == "" {
			errs = append(errs, fmt.Errorf("category %q: command #%d: empty name", cat.Name, i+1))
			continue
		}
		if names[cmd.Name] {
			errs = append(errs, fmt.Errorf("category %q: command %q: duplicate name", cat.Name, cmd.Name))
		}
		names[cmd.Name] = true
		if len(cmd.Examples) == 0 {
			errs = append(errs, fmt.Errorf("category %q: command %q: no examples", cat.Name, cmd.Name))
		}
		for j, ex := range cmd.Examples {
			if strings.TrimSpace(ex) == "" {
				errs = append(errs, fmt.Errorf("category %q: command %q: example #%d is empty", cat.Name, cmd.Name, j+1))
			}
		}
		for j, opt := range cmd.Options {
			if strings.TrimSpace(opt.Name) == "" {
				errs = append(errs, fmt.Errorf("category %q: command %q: option #%d: empty name", cat.Name, cmd.Name, j+1))
			}
		}
	}
	return errs
}
