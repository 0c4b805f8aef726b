package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/pairs/internal/deck"
	"github.com/lox/pairs/internal/i18n"
)

const hiddenFace = "?"

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.renderHeader(),
		m.renderStatus(),
		m.renderBoard(),
		m.renderSettings(),
	}
	if m.notice != "" {
		sections = append(sections, m.styles.Muted.Render(m.notice))
	}
	sections = append(sections, m.help.View(m.keys))
	body := lipgloss.JoinVertical(lipgloss.Left, sections...)

	if m.state.Won() {
		modal := m.renderWinModal()
		if m.width > 0 && m.height > 0 {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
				lipgloss.JoinVertical(lipgloss.Center, m.renderHeader(), modal))
		}
		return lipgloss.JoinVertical(lipgloss.Left, body, modal)
	}

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, body)
	}
	return body
}

func (m *Model) renderHeader() string {
	subtitle := m.tr.T(i18n.SubtitlePlay)
	if m.state.Won() {
		subtitle = m.tr.T(i18n.SubtitleWon)
	}
	return m.styles.Title.Render(m.tr.T(i18n.Title)) + "  " + m.styles.Subtitle.Render(subtitle)
}

func (m *Model) renderStatus() string {
	parts := []string{
		m.tr.T(i18n.Moves, m.state.Moves()),
		m.tr.T(i18n.Time, m.tr.Duration(m.state.Elapsed())),
		m.tr.T(i18n.Matched, m.state.MatchedCount(), m.state.Pairs()),
		// No best time is kept between sessions.
		m.tr.T(i18n.Best, "—"),
	}
	return m.styles.Status.Render(strings.Join(parts, "   "))
}

func (m *Model) renderBoard() string {
	d := m.state.Deck()
	cols := m.columns()

	var rows []string
	var row []string
	for i := 0; i < d.Len(); i++ {
		row = append(row, m.renderTile(i))
		if len(row) == cols || i == d.Len()-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) renderTile(i int) string {
	tile := m.state.Deck().Tile(i)

	style := m.styles.Hidden
	face := hiddenFace
	switch {
	case m.state.IsTileMatched(i):
		style = m.styles.Matched
		face = tile.Symbol
	case m.state.IsFlipped(i):
		style = m.styles.Revealed
		face = tile.Symbol
	}
	if i == m.cursor && !m.state.Won() {
		style = style.BorderForeground(m.styles.Palette.Cursor).Inherit(m.styles.Cursor)
	}
	return style.Render(face)
}

func (m *Model) renderSettings() string {
	s := m.ctrl.Settings()
	level := strconv.Itoa(s.Pairs)
	for _, d := range deck.Difficulties() {
		if d.Pairs == s.Pairs {
			level = d.Name
		}
	}
	parts := []string{
		m.tr.T(i18n.Difficulty, level),
		m.tr.T(i18n.VisualSet, s.VisualSet),
		m.tr.Tag().String(),
		string(m.styles.Mode),
	}
	return m.styles.Muted.Render(strings.Join(parts, " · "))
}

func (m *Model) renderWinModal() string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		m.styles.Heading.Render(m.tr.T(i18n.WinHeading)),
		"",
		m.tr.T(i18n.WinSummary, m.state.Moves(), m.tr.Duration(m.state.Elapsed())),
		"",
		m.styles.Muted.Render(m.tr.T(i18n.WinPrompt)),
	)
	return m.styles.Modal.Render(content)
}
