package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-scene/internal/core"
	"github.com/vovakirdan/flappy-scene/internal/registry"
)

// colorStyles caches one lipgloss style per core.Color.
var colorStyles = func() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style)
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		style := lipgloss.NewStyle()
		if code := c.ANSI(); code != "" {
			style = style.Foreground(lipgloss.Color(code))
		}
		styles[c] = style
	}
	return styles
}()

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	pausedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// bannerReporter is implemented by scenes with a one-line prompt to show
// over the canvas, such as "TAP TO START".
type bannerReporter interface {
	Banner() string
}

// DrawBanner writes the paused notice, or else the scene's prompt, across the
// middle row of s. It reports whether anything was drawn.
// A paused scene no longer renders, so the notice is padded to cover the
// prompt left on screen by the last frame.
func DrawBanner(s *core.Screen, scene registry.Scene, paused bool) bool {
	prompt := ""
	if r, ok := scene.(bannerReporter); ok {
		prompt = r.Banner()
	}

	text := prompt
	if paused {
		text = "PAUSED"
		if pad := len(prompt) - len(text); pad > 0 {
			text = strings.Repeat(" ", pad/2) + text + strings.Repeat(" ", pad-pad/2)
		}
	}
	if text == "" {
		return false
	}
	s.DrawTextCentered(s.Height()/2, text, core.ColorBrightYellow)
	return true
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
