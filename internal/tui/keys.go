package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the bindings shown in the help line. Bindings that do not
// apply to the current state are disabled, which hides them from help and
// stops key.Matches from firing.
type keyMap struct {
	Rock     key.Binding
	Paper    key.Binding
	Scissors key.Binding
	Mode     key.Binding
	Dismiss  key.Binding
	Scroll   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Rock: key.NewBinding(
			key.WithKeys("r", "1"),
			key.WithHelp("r", "rock"),
		),
		Paper: key.NewBinding(
			key.WithKeys("p", "2"),
			key.WithHelp("p", "paper"),
		),
		Scissors: key.NewBinding(
			key.WithKeys("s", "3"),
			key.WithHelp("s", "scissors"),
		),
		Mode: key.NewBinding(
			key.WithKeys("tab", "m"),
			key.WithHelp("tab", "switch opponent"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play again"),
		),
		Scroll: key.NewBinding(
			key.WithKeys("up", "down", "pgup", "pgdown"),
			key.WithHelp("↑/↓", "scroll log"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Rock, k.Paper, k.Scissors, k.Mode, k.Dismiss, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Rock, k.Paper, k.Scissors},
		{k.Mode, k.Dismiss, k.Scroll},
		{k.Help, k.Quit},
	}
}

// setResultShown enables the bindings for either the board or the result
// dialog.
func (k *keyMap) setResultShown(shown bool) {
	k.Rock.SetEnabled(!shown)
	k.Paper.SetEnabled(!shown)
	k.Scissors.SetEnabled(!shown)
	k.Mode.SetEnabled(!shown)
	k.Dismiss.SetEnabled(shown)
}
