package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings for the checklist
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Choose    key.Binding
	Preview   key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "вверх"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "вниз"),
		),
		Choose: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("пробел/enter", "выбрать"),
		),
		Preview: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "просмотр файла"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "выход без сохранения"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Choose, k.Preview, k.ForceQuit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Choose, k.Preview, k.ForceQuit},
	}
}
