package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pairs/internal/game"
	"github.com/lox/pairs/internal/randutil"
	"github.com/lox/pairs/internal/theme"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel}) // Quiet logger for tests
	ctrl, err := game.NewController(game.Options{
		Settings: game.Settings{VisualSet: "glyphs", Pairs: 6, Locale: "en"},
		Clock:    quartz.NewMock(t),
		Rand:     randutil.New(7),
		Logger:   logger,
	})
	require.NoError(t, err)
	t.Cleanup(ctrl.Close)
	return New(ctrl, theme.Dark, logger)
}

func press(m *Model, keys ...tea.KeyMsg) {
	for _, k := range keys {
		m.Update(k)
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestCursorMovement(t *testing.T) {
	m := newTestModel(t) // 12 tiles, 4 columns

	t.Run("stays inside the board", func(t *testing.T) {
		press(m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyUp})
		assert.Equal(t, 0, m.Cursor())
	})

	t.Run("arrows and vim keys", func(t *testing.T) {
		press(m, tea.KeyMsg{Type: tea.KeyRight}, runes("l"))
		assert.Equal(t, 2, m.Cursor())
		press(m, tea.KeyMsg{Type: tea.KeyDown})
		assert.Equal(t, 6, m.Cursor())
		press(m, runes("j"), runes("j"))
		assert.Equal(t, 10, m.Cursor(), "bottom row stops the cursor")
		press(m, runes("k"), runes("h"))
		assert.Equal(t, 5, m.Cursor())
	})
}

func TestFlipThroughKeys(t *testing.T) {
	m := newTestModel(t)

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []int{0}, m.State().Flipped())
	assert.Equal(t, game.Running, m.State().Phase())

	press(m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, 1, m.State().Moves())
	assert.Contains(t, m.View(), "Moves: 1")
}

func TestWinShowsModal(t *testing.T) {
	m := newTestModel(t)
	d := m.State().Deck()

	done := map[int]bool{}
	for i := 0; i < d.Len(); i++ {
		if done[i] {
			continue
		}
		j := d.PartnerOf(i)
		done[i], done[j] = true, true
		for _, pos := range []int{i, j} {
			m.cursor = pos
			press(m, tea.KeyMsg{Type: tea.KeyEnter})
		}
	}

	require.True(t, m.State().Won())
	view := m.View()
	assert.Contains(t, view, "You win!")
	assert.Contains(t, view, "6 moves in 0:00")
	assert.Contains(t, view, "Every pair found!")

	press(m, runes("n"))
	assert.False(t, m.State().Won())
	assert.NotContains(t, m.View(), "You win!")
}

func TestResetKeepsLayout(t *testing.T) {
	m := newTestModel(t)
	before := m.State().Deck().Tiles()

	press(m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, 1, m.State().Moves())

	press(m, runes("r"))
	assert.Equal(t, 0, m.State().Moves())
	assert.Equal(t, before, m.State().Deck().Tiles())
}

func TestSettingsKeys(t *testing.T) {
	m := newTestModel(t)

	t.Run("difficulty cycles pair count", func(t *testing.T) {
		press(m, runes("d"))
		assert.Equal(t, 8, m.ctrl.Settings().Pairs)
		assert.Equal(t, 16, m.State().Deck().Len())
		assert.Contains(t, m.View(), "Level: medium")
	})

	t.Run("visual set switches", func(t *testing.T) {
		press(m, runes("s"))
		assert.Equal(t, "animals", m.ctrl.Settings().VisualSet)
		assert.Equal(t, "animals", m.State().Deck().Set())
	})

	t.Run("language restarts the round and translates", func(t *testing.T) {
		press(m, tea.KeyMsg{Type: tea.KeyEnter})
		gen := m.State().Generation()

		press(m, runes("L"))
		assert.Equal(t, "es", m.ctrl.Settings().Locale)
		assert.Greater(t, m.State().Generation(), gen)
		assert.Equal(t, game.Idle, m.State().Phase())
		assert.Contains(t, m.View(), "Movimientos: 0")
	})

	t.Run("theme toggles without a restart", func(t *testing.T) {
		gen := m.State().Generation()
		press(m, runes("t"))
		assert.Equal(t, theme.Light, m.styles.Mode)
		assert.Equal(t, gen, m.State().Generation())
	})
}

func TestCursorClampsWhenBoardShrinks(t *testing.T) {
	m := newTestModel(t)
	press(m, runes("d")) // 16 tiles
	m.cursor = 15
	press(m, runes("d"), runes("d")) // hard (24), then easy (12)
	assert.Equal(t, 11, m.Cursor())
}

func TestStateMessagesKeepListening(t *testing.T) {
	m := newTestModel(t)
	s := m.ctrl.Snapshot()

	_, cmd := m.Update(stateMsg{state: s})
	assert.NotNil(t, cmd)

	_, cmd = m.Update(closedMsg{})
	assert.Nil(t, cmd)
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestWindowSizePlacesView(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	assert.Len(t, strings.Split(m.View(), "\n"), 30)
}
