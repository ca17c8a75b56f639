package common

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines shared key bindings across all views.
type KeyMap struct {
	Quit    key.Binding
	Submit  key.Binding // ctrl+s — submit the draft
	Editor  key.Binding // ctrl+e — edit the draft in $EDITOR
	Refresh key.Binding // ctrl+r — reload the feed
	Up      key.Binding
	Down    key.Binding
}

// DefaultKeyMap returns the default key bindings.
// Plain letters are left to the textarea, so everything is chorded.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "post"),
		),
		Editor: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "$EDITOR"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "refresh"),
		),
		Up: key.NewBinding(
			key.WithKeys("ctrl+up", "pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("ctrl+down", "pgdown"),
			key.WithHelp("pgdn", "scroll down"),
		),
	}
}

// HelpLine renders bindings as "key: desc • key: desc".
func HelpLine(bindings ...key.Binding) string {
	var out string
	for i, b := range bindings {
		if i > 0 {
			out += " • "
		}
		h := b.Help()
		out += h.Key + ": " + h.Desc
	}
	return out
}
