package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Create key.Binding
	Edit   key.Binding
	Delete key.Binding
	Quit   key.Binding

	// modal
	Submit key.Binding
	Close  key.Binding
	Next   key.Binding
	Prev   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Create: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "create")),
		Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Submit: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "submit")),
		Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
	}
}

func (k keyMap) listHelp() []key.Binding { return []key.Binding{k.Create, k.Edit, k.Delete} }

func (k keyMap) formHelp() []key.Binding { return []key.Binding{k.Next, k.Submit, k.Close} }
