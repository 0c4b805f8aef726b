// Package theme defines the light and dark palettes and the lipgloss styles
// built from them.
package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Mode selects a palette.
type Mode string

const (
	Auto  Mode = "auto"
	Light Mode = "light"
	Dark  Mode = "dark"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(s)); m {
	case Auto, Light, Dark:
		return m, nil
	case "":
		return Auto, nil
	default:
		return "", fmt.Errorf("unknown theme %q (want auto, light or dark)", s)
	}
}

// Resolve turns Auto into Light or Dark by asking the terminal for its
// background color.
func (m Mode) Resolve() Mode {
	if m != Auto {
		return m
	}
	if termenv.HasDarkBackground() {
		return Dark
	}
	return Light
}

// Toggle flips between light and dark. Auto is resolved first.
func (m Mode) Toggle() Mode {
	if m.Resolve() == Dark {
		return Light
	}
	return Dark
}

// Palette is the set of colors a theme paints with.
type Palette struct {
	Foreground lipgloss.Color
	Background lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	TileBack   lipgloss.Color
	TileFace   lipgloss.Color
	Matched    lipgloss.Color
	Cursor     lipgloss.Color
	Success    lipgloss.Color
}

var palettes = map[Mode]Palette{
	Dark: {
		Foreground: lipgloss.Color("#FAFAFA"),
		Background: lipgloss.Color("#1E1E2E"),
		Muted:      lipgloss.Color("#626262"),
		Accent:     lipgloss.Color("#7D56F4"),
		TileBack:   lipgloss.Color("#3C3C5A"),
		TileFace:   lipgloss.Color("#FFEAA7"),
		Matched:    lipgloss.Color("#96CEB4"),
		Cursor:     lipgloss.Color("#04B575"),
		Success:    lipgloss.Color("#96CEB4"),
	},
	Light: {
		Foreground: lipgloss.Color("#1E1E2E"),
		Background: lipgloss.Color("#FAFAFA"),
		Muted:      lipgloss.Color("#8A8A8A"),
		Accent:     lipgloss.Color("#5A3FD1"),
		TileBack:   lipgloss.Color("#C9C3F0"),
		TileFace:   lipgloss.Color("#FFF6D5"),
		Matched:    lipgloss.Color("#2E8B57"),
		Cursor:     lipgloss.Color("#D35400"),
		Success:    lipgloss.Color("#2E8B57"),
	},
}

// Styles are the rendered styles for one resolved mode.
type Styles struct {
	Mode     Mode
	Palette  Palette
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Status   lipgloss.Style
	Hidden   lipgloss.Style
	Revealed lipgloss.Style
	Matched  lipgloss.Style
	Cursor   lipgloss.Style
	Modal    lipgloss.Style
	Heading  lipgloss.Style
	Muted    lipgloss.Style
}

// New builds the styles for m. Auto resolves against the terminal.
func New(m Mode) Styles {
	m = m.Resolve()
	p := palettes[m]

	tile := lipgloss.NewStyle().
		Width(4).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder())

	return Styles{
		Mode:    m,
		Palette: p,
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(p.Accent).
			Padding(0, 1).
			Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(p.Muted).Italic(true),
		Status:   lipgloss.NewStyle().Foreground(p.Foreground).Bold(true),
		Hidden:   tile.BorderForeground(p.TileBack).Foreground(p.TileBack),
		Revealed: tile.BorderForeground(p.Accent).Foreground(p.Foreground).Background(p.TileFace),
		Matched:  tile.BorderForeground(p.Matched).Foreground(p.Matched),
		Cursor:   lipgloss.NewStyle().BorderForeground(p.Cursor).Bold(true),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(p.Success).
			Padding(1, 4).
			Align(lipgloss.Center),
		Heading: lipgloss.NewStyle().Foreground(p.Success).Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(p.Muted),
	}
}
