// Package tui is the Bubble Tea front end for a pairs round.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/pairs/internal/deck"
	"github.com/lox/pairs/internal/game"
	"github.com/lox/pairs/internal/i18n"
	"github.com/lox/pairs/internal/theme"
)

// Model is the Bubble Tea model for one play session.
type Model struct {
	ctrl   *game.Controller
	logger *log.Logger

	keys   keyMap
	help   help.Model
	tr     *i18n.Translator
	mode   theme.Mode
	styles theme.Styles

	state  game.State
	cursor int
	notice string

	width    int
	height   int
	quitting bool
}

// stateMsg carries a state published by the controller.
type stateMsg struct {
	state game.State
}

// closedMsg is sent once the controller's update stream ends.
type closedMsg struct{}

// New creates a model driving ctrl. The theme mode can be Auto.
func New(ctrl *game.Controller, mode theme.Mode, logger *log.Logger) *Model {
	tr := i18n.New(ctrl.Settings().Locale)
	return &Model{
		ctrl:   ctrl,
		logger: logger.WithPrefix("tui"),
		keys:   newKeyMap(tr),
		help:   help.New(),
		tr:     tr,
		mode:   mode,
		styles: theme.New(mode),
		state:  ctrl.Snapshot(),
	}
}

// Run starts the program on the alternate screen and blocks until the
// player quits or ctx is cancelled.
func Run(ctx context.Context, m *Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// Init starts listening for controller updates
func (m *Model) Init() tea.Cmd {
	return waitForState(m.ctrl.Updates())
}

func waitForState(updates <-chan game.State) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-updates
		if !ok {
			return closedMsg{}
		}
		return stateMsg{state: s}
	}
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		m.state = msg.state
		m.clampCursor()
		return m, waitForState(m.ctrl.Updates())

	case closedMsg:
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""
	cols := m.columns()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-cols)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(cols)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)

	case key.Matches(msg, m.keys.Flip):
		m.ctrl.Flip(m.cursor)

	case key.Matches(msg, m.keys.New):
		if err := m.ctrl.NewGame(); err != nil {
			m.fail("new game", err)
		}

	case key.Matches(msg, m.keys.Reset):
		m.ctrl.Reset()

	case key.Matches(msg, m.keys.Set):
		s := m.ctrl.Settings()
		s.VisualSet = deck.NextSet(s.VisualSet).Name
		m.applySettings(s)

	case key.Matches(msg, m.keys.Level):
		s := m.ctrl.Settings()
		s.Pairs = deck.NextDifficulty(s.Pairs).Pairs
		m.applySettings(s)

	case key.Matches(msg, m.keys.Language):
		s := m.ctrl.Settings()
		s.Locale = i18n.Next(m.tr.Tag()).String()
		if m.applySettings(s) {
			m.tr = i18n.New(s.Locale)
			m.keys = newKeyMap(m.tr)
		}

	case key.Matches(msg, m.keys.Theme):
		m.mode = m.mode.Toggle()
		m.styles = theme.New(m.mode)
		m.logger.Debug("Theme toggled", "mode", m.mode)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	m.state = m.ctrl.Snapshot()
	m.clampCursor()
	return m, nil
}

func (m *Model) applySettings(s game.Settings) bool {
	if err := m.ctrl.ApplySettings(s); err != nil {
		m.fail("apply settings", err)
		return false
	}
	return true
}

func (m *Model) fail(action string, err error) {
	m.logger.Error("Action failed", "action", action, "error", err)
	m.notice = fmt.Sprintf("%s: %v", action, err)
}

func (m *Model) columns() int {
	return deck.Columns(m.state.Pairs())
}

func (m *Model) moveCursor(delta int) {
	next := m.cursor + delta
	if next < 0 || next >= m.state.Deck().Len() {
		return
	}
	m.cursor = next
}

func (m *Model) clampCursor() {
	if n := m.state.Deck().Len(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Cursor returns the highlighted tile position
func (m *Model) Cursor() int {
	return m.cursor
}

// State returns the state currently on screen
func (m *Model) State() game.State {
	return m.state
}
