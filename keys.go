package main

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/noelruault/emd/internal/i18n"
)

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Enter    key.Binding
	Back     key.Binding
	Quit     key.Binding
	Settings key.Binding
	Refresh  key.Binding
	Retry    key.Binding
	New      key.Binding
	Delete   key.Binding
	Add      key.Binding
	Single   key.Binding
	Generate key.Binding
	MoveUp   key.Binding
	MoveDown key.Binding
	Save     key.Binding
	Open     key.Binding
	Toggle   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k")),
		Down:     key.NewBinding(key.WithKeys("down", "j")),
		Enter:    key.NewBinding(key.WithKeys("enter")),
		Back:     key.NewBinding(key.WithKeys("esc")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
		Settings: key.NewBinding(key.WithKeys("tab")),
		Refresh:  key.NewBinding(key.WithKeys("r")),
		Retry:    key.NewBinding(key.WithKeys("r")),
		New:      key.NewBinding(key.WithKeys("n")),
		Delete:   key.NewBinding(key.WithKeys("d")),
		Add:      key.NewBinding(key.WithKeys("a")),
		Single:   key.NewBinding(key.WithKeys("s")),
		Generate: key.NewBinding(key.WithKeys("g")),
		MoveUp:   key.NewBinding(key.WithKeys("shift+up", "K")),
		MoveDown: key.NewBinding(key.WithKeys("shift+down", "J")),
		Save:     key.NewBinding(key.WithKeys("s")),
		Open:     key.NewBinding(key.WithKeys("o")),
		Toggle:   key.NewBinding(key.WithKeys("enter", " ")),
	}
}

// hint is one entry of the header key legend.
type hint struct {
	keys  string
	label i18n.Key
}
