package format

import "github.com/cristianoliveira/artisan-ref/internal/catalog"

// CommandView is the serializable form of a command together with its
// category and reserved-tag classification.
type CommandView struct {
	Category    string           `json:"category" yaml:"category"`
	Name        string           `json:"name" yaml:"name"`
	Description string           `json:"description" yaml:"description"`
	Examples    []string         `json:"examples" yaml:"examples"`
	Options     []catalog.Option `json:"options,omitempty" yaml:"options,omitempty"`
	Tags        []string         `json:"tags,omitempty" yaml:"tags,omitempty"`
	Dangerous   bool             `json:"dangerous" yaml:"dangerous"`
	Production  bool             `json:"production" yaml:"production"`
}

// CategoryView is the serializable form of a category.
type CategoryView struct {
	Name     string        `json:"name" yaml:"name"`
	Icon     string        `json:"icon" yaml:"icon"`
	Count    int           `json:"count" yaml:"count"`
	Commands []CommandView `json:"commands,omitempty" yaml:"commands,omitempty"`
}

// CatalogView is the serializable form of a whole catalog.
type CatalogView struct {
	Total      int            `json:"total" yaml:"total"`
	Categories []CategoryView `json:"categories" yaml:"categories"`
}

// NewCommandView builds the view of cmd within category.
func NewCommandView(category string, cmd catalog.Command) CommandView {
	class := catalog.ClassifyTags(cmd)
	return CommandView{
		Category:    category,
		Name:        cmd.Name,
		Description: cmd.Description,
		Examples:    cmd.Examples,
		Options:     cmd.Options,
		Tags:        cmd.Tags,
		Dangerous:   class.IsDangerous,
		Production:  class.IsProductionRelated,
	}
}

// NewCatalogView builds the view of c. Commands are omitted when
// withCommands is false.
func NewCatalogView(c *catalog.Catalog, withCommands bool) CatalogView {
	view := CatalogView{
		Total:      c.CountAll(),
		Categories: make([]CategoryView, 0, c.Len()),
	}
	for _, cat := range c.All() {
		cv := CategoryView{
			Name:  cat.Name,
			Icon:  cat.DisplayIcon(),
			Count: len(cat.Commands),
		}
		if withCommands {
			cv.Commands = make([]CommandView, 0, len(cat.Commands))
			for _, cmd := range cat.Commands {
				cv.Commands = append(cv.Commands, NewCommandView(cat.Name, cmd))
			}
		}
		view.Categories = append(view.Categories, cv)
	}
	return view
}
