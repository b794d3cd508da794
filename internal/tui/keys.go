package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the canvas.
type KeyMap struct {
	Start     key.Binding
	Reset     key.Binding
	Toggle    key.Binding
	Quit      key.Binding
	Interrupt key.Binding
}

// DefaultKeyMap returns the default key bindings, with toggle as the key
// that flips the drag modifier.
func DefaultKeyMap(toggle string) KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "animate"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(toggle),
			key.WithHelp(toggle, "drag mode"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit"),
		),
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "interrupt"),
		),
	}
}

// ShortHelp returns the bindings shown in the help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Reset, k.Toggle, k.Quit}
}

// FullHelp returns the full help string
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Reset},
		{k.Toggle, k.Quit, k.Interrupt},
	}
}
