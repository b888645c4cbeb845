package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Quit   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Up     key.Binding
	Down   key.Binding
	Submit key.Binding
	Edit   key.Binding
	Cancel key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "prev row")),
		Down:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next row")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Edit:   key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "edit row")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
	}
}

func (k keyMap) help() string {
	bindings := []key.Binding{k.Submit, k.Next, k.Prev, k.Up, k.Down, k.Edit, k.Cancel, k.Quit}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, "["+h.Key+"] "+h.Desc)
	}
	return strings.Join(parts, "  ")
}
