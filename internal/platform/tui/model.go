package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-scene/internal/core"
	"github.com/vovakirdan/flappy-scene/internal/director"
)

// footerLines is the space kept below the canvas for status and help.
const footerLines = 2

// statusReporter is implemented by scenes that describe their phase for
// the status line.
type statusReporter interface {
	Status() string
}

// Model is the Bubble Tea model driving a director.
type Model struct {
	director *director.Director
	screen   *core.Screen
	surface  *Surface
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	paused   bool // Paused by the user, as opposed to losing focus
	blurred  bool
	frameErr error
	quitting bool
}

// NewModel creates a model for d, which must already run a scene.
func NewModel(d *director.Director, cfg core.RuntimeConfig) Model {
	screenH := max(cfg.ScreenH-footerLines, 1)
	screen := core.NewScreen(cfg.ScreenW, screenH)
	w, h := d.ViewSize()

	return Model{
		director: d,
		screen:   screen,
		surface:  NewSurface(screen, w, h),
		config:   cfg,
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.FocusMsg:
		m.blurred = false
		m.syncSuspend()
		return m, nil

	case tea.BlurMsg:
		m.blurred = true
		m.syncSuspend()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case ActionTap:
		// Keyboard taps land in the middle of the canvas, away from the exit button
		w, h := m.director.ViewSize()
		m.director.Push(core.PointerDown(w/2, h/2))
		m.director.Push(core.PointerUp(w/2, h/2))
	case ActionPause:
		m.paused = !m.paused
		m.syncSuspend()
	case ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	case ActionNone:
	}
	return m, nil
}

// handleMouse maps clicks on the canvas to pointer events.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	x, y, ok := m.surface.CanvasPoint(msg.X, msg.Y)
	if !ok {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.director.Push(core.PointerDown(x, y))
		}
	case tea.MouseActionMotion:
		m.director.Push(core.PointerMove(x, y))
	case tea.MouseActionRelease:
		m.director.Push(core.PointerUp(x, y))
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerLines, 1))
	m.surface.Layout()
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one director frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	w, h := m.director.ViewSize()
	m.surface.SetCanvas(w, h)

	if err := m.director.Frame(m.config.FrameSeconds(), m.surface); err != nil {
		m.frameErr = err
	}
	DrawBanner(m.screen, m.director.Scene(), m.paused)
	return m, tickCmd(m.config.TickRate)
}

// syncSuspend suspends the scene while paused or unfocused.
func (m Model) syncSuspend() {
	if m.paused || m.blurred {
		m.director.Suspend()
	} else {
		m.director.Resume()
	}
}

// View renders the last frame plus the status and help lines.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) statusLine() string {
	var parts []string
	if scene := m.director.Scene(); scene != nil {
		status := scene.ID()
		if r, ok := scene.(statusReporter); ok {
			status = r.Status()
		}
		parts = append(parts, statusStyle.Render(status))
	}
	if m.paused {
		parts = append(parts, pausedStyle.Render("PAUSED"))
	}
	if m.frameErr != nil {
		parts = append(parts, statusStyle.Render(m.frameErr.Error()))
	}
	return strings.Join(parts, "  ")
}

// Paused reports whether the user paused the scene.
func (m Model) Paused() bool {
	return m.paused
}

// Run starts the Bubble Tea program for d.
func Run(d *director.Director, cfg core.RuntimeConfig) error {
	model := NewModel(d, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks become pointer events
		tea.WithReportFocus(),     // Losing focus suspends the scene
	)

	_, err := p.Run()
	return err
}
