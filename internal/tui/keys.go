package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	ZoomIn  key.Binding
	ZoomOut key.Binding
	Undo    key.Binding
	Redo    key.Binding
	Export  key.Binding
	Copy    key.Binding
	Sidebar key.Binding
	Offsets key.Binding
	Jump    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up")),
		Down:    key.NewBinding(key.WithKeys("down")),
		Left:    key.NewBinding(key.WithKeys("left"), key.WithHelp("↑↓←→", "pan")),
		Right:   key.NewBinding(key.WithKeys("right")),
		ZoomIn:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("wheel/+-", "zoom")),
		ZoomOut: key.NewBinding(key.WithKeys("-", "_")),
		Undo:    key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo:    key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "redo")),
		Export:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "export")),
		Copy:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
		Sidebar: key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "branches")),
		Offsets: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "offsets")),
		Jump:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "go to branch")),
		Help:    key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "help")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.ZoomIn, k.Undo, k.Redo, k.Export, k.Copy, k.Sidebar, k.Offsets, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.ZoomIn},
		{k.Undo, k.Redo},
		{k.Export, k.Copy},
		{k.Sidebar, k.Jump, k.Offsets},
		{k.Help, k.Quit},
	}
}
