package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"textkit/internal/shell"
)

// KeyMap defines all keybindings of the TUI.
type KeyMap struct {
	Load          key.Binding
	SaveEncrypted key.Binding
	Decrypt       key.Binding
	Analyze       key.Binding
	Histogram     key.Binding
	Compare       key.Binding
	FindPatterns  key.Binding
	Help          key.Binding
	Quit          key.Binding
	Confirm       key.Binding
	Cancel        key.Binding
}

// DefaultKeyMap returns the default keybindings. Every action has a function
// key and a control key not used by the text editor.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Load: key.NewBinding(
			key.WithKeys("f2", "ctrl+o"),
			key.WithHelp("f2", "load"),
		),
		SaveEncrypted: key.NewBinding(
			key.WithKeys("f3", "ctrl+s"),
			key.WithHelp("f3", "save encrypted"),
		),
		Decrypt: key.NewBinding(
			key.WithKeys("f4", "ctrl+r"),
			key.WithHelp("f4", "decrypt"),
		),
		Analyze: key.NewBinding(
			key.WithKeys("f5", "ctrl+g"),
			key.WithHelp("f5", "analyze"),
		),
		Histogram: key.NewBinding(
			key.WithKeys("f6", "ctrl+x"),
			key.WithHelp("f6", "histogram"),
		),
		Compare: key.NewBinding(
			key.WithKeys("f7", "ctrl+l"),
			key.WithHelp("f7", "compare"),
		),
		FindPatterns: key.NewBinding(
			key.WithKeys("f8", "ctrl+y"),
			key.WithHelp("f8", "patterns"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+q"),
			key.WithHelp("ctrl+q", "quit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Load, k.Analyze, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Load, k.SaveEncrypted, k.Decrypt, k.Analyze},
		{k.Histogram, k.Compare, k.FindPatterns},
		{k.Help, k.Quit},
	}
}

type actionBinding struct {
	binding key.Binding
	action  shell.Action
}

func (k KeyMap) actionBindings() []actionBinding {
	return []actionBinding{
		{k.Load, shell.ActionLoad},
		{k.SaveEncrypted, shell.ActionSaveEncrypted},
		{k.Decrypt, shell.ActionDecrypt},
		{k.Analyze, shell.ActionAnalyze},
		{k.Histogram, shell.ActionHistogram},
		{k.Compare, shell.ActionCompare},
		{k.FindPatterns, shell.ActionFindPatterns},
	}
}

// actionFor returns the shell action bound to msg.
func (k KeyMap) actionFor(msg tea.KeyMsg) (shell.Action, bool) {
	for _, ab := range k.actionBindings() {
		if key.Matches(msg, ab.binding) {
			return ab.action, true
		}
	}
	return "", false
}
