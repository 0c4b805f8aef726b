package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/lox/pairs/internal/i18n"
)

// keyMap holds the bindings; help text follows the current locale.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Flip     key.Binding
	New      key.Binding
	Reset    key.Binding
	Set      key.Binding
	Level    key.Binding
	Language key.Binding
	Theme    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap(tr *i18n.Translator) keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k")),
		Down:     key.NewBinding(key.WithKeys("down", "j")),
		Left:     key.NewBinding(key.WithKeys("left", "h")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("←↓↑→", tr.T(i18n.HelpMove))),
		Flip:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", tr.T(i18n.HelpFlip))),
		New:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", tr.T(i18n.HelpNew))),
		Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", tr.T(i18n.HelpReset))),
		Set:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", tr.T(i18n.HelpSet))),
		Level:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", tr.T(i18n.HelpLevel))),
		Language: key.NewBinding(key.WithKeys("L"), key.WithHelp("L", tr.T(i18n.HelpLanguage))),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", tr.T(i18n.HelpTheme))),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", tr.T(i18n.HelpHelp))),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", tr.T(i18n.HelpQuit))),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Right, k.Flip, k.New, k.Reset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Right, k.Flip},
		{k.New, k.Reset},
		{k.Set, k.Level},
		{k.Language, k.Theme},
		{k.Help, k.Quit},
	}
}
