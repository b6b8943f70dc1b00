package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Toggle key.Binding
	Tint   key.Binding
	Easing key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Toggle: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "play/pause")),
		Tint:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "tint")),
		Easing: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "easing")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Tint, k.Easing, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Tint, k.Easing},
		{k.Help, k.Quit},
	}
}
