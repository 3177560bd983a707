package state

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding of the viewer. It implements help.KeyMap.
type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Top         key.Binding
	Bottom      key.Binding
	Select      key.Binding
	Search      key.Binding
	ClearQuery  key.Binding
	Back        key.Binding
	Focus       key.Binding
	NextExample key.Binding
	PrevExample key.Binding
	Copy        key.Binding
	CopyN       key.Binding
	Help        key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:          key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "subir")),
		Down:        key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "bajar")),
		Top:         key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "inicio")),
		Bottom:      key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "final")),
		Select:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "ver comando")),
		Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "buscar")),
		ClearQuery:  key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "limpiar búsqueda")),
		Back:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "salir de búsqueda / limpiar")),
		Focus:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "cambiar panel")),
		NextExample: key.NewBinding(key.WithKeys("J", "n"), key.WithHelp("J/n", "siguiente ejemplo")),
		PrevExample: key.NewBinding(key.WithKeys("K", "p"), key.WithHelp("K/p", "ejemplo anterior")),
		Copy:        key.NewBinding(key.WithKeys("y", "c"), key.WithHelp("y/c", "copiar ejemplo")),
		CopyN:       key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "copiar ejemplo N")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "ayuda")),
		Quit:        key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "salir")),
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp is shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Search, k.Copy, k.Help, k.Quit}
}

// FullHelp is shown in the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom, k.Select, k.Focus},
		{k.Search, k.ClearQuery, k.Back},
		{k.NextExample, k.PrevExample, k.Copy, k.CopyN},
		{k.Help, k.Quit},
	}
}

// searchKeyMap is the short help while typing a query.
type searchKeyMap struct {
	keyMap
}

func (k searchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "aceptar")),
		k.Back,
		k.ClearQuery,
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "mover")),
	}
}
