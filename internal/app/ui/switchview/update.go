package switchview

import (
	"math"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"flip/internal/app/geometry"
	"flip/internal/app/toggle"
	"flip/internal/app/ui/components"
	"flip/internal/config"
)

// headerRows is the rows above the switch: header line and a blank line
const headerRows = 2

// frameMsg advances the thumb animation
type frameMsg time.Time

// ChangedMsg reports that the switch value changed
type ChangedMsg struct {
	Side toggle.Side
}

// ConfigMsg carries a reloaded configuration
type ConfigMsg struct {
	Config *config.Config
}

// ConfigErrorMsg carries a failed configuration reload
type ConfigErrorMsg struct {
	Err error
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui.width = msg.Width
		m.ui.height = msg.Height
		m.ui.help.Width = msg.Width
		m.layout()

		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.BlurMsg:
		m.tracker.Cancel()

		return m.sync()

	case frameMsg:
		if m.slide.Update() {
			return m, m.frameCmd()
		}

		m.state.animating = false

		return m, nil

	case ChangedMsg:
		m.log.Info().Str("side", msg.Side.String()).Msg("Switch value changed")

		return m, nil

	case ConfigMsg:
		m.applyConfig(msg.Config)

		return m.sync()

	case ConfigErrorMsg:
		m.log.Warn().Err(msg.Err).Msg("Config reload failed, keeping previous settings")
		m.state.reloadErr = msg.Err

		return m, nil
	}

	return m, nil
}

// handleKeyPress maps key bindings onto the control
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.ui.keys.ForceQuit), key.Matches(msg, m.ui.keys.Quit):
		m.tracker.Cancel()
		m.state.quitting = true

		return m, tea.Quit

	case key.Matches(msg, m.ui.keys.Toggle):
		m.tracker.Cancel()
		m.control.SetSide(m.control.Side().Opposite())

	case key.Matches(msg, m.ui.keys.Left):
		m.tracker.Cancel()
		m.control.SetSide(toggle.Left)

	case key.Matches(msg, m.ui.keys.Right):
		m.tracker.Cancel()
		m.control.SetSide(toggle.Right)

	case key.Matches(msg, m.ui.keys.Cancel):
		m.tracker.Cancel()

	default:
		return m, nil
	}

	return m.sync()
}

// handleMouse feeds mouse events to the gesture tracker
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.state.mouse || !m.ui.ready {
		return m, nil
	}

	local, inside := m.locate(msg)
	if !m.tracker.Handle(msg, local, inside) {
		return m, nil
	}

	return m.sync()
}

// locate maps a mouse event to control-local coordinates at the centre of the hit cell
func (m Model) locate(msg tea.MouseMsg) (geometry.Point, bool) {
	originX, originY := m.ui.originX, m.ui.originY

	if m.zones != nil {
		if z := m.zones.Get(m.zoneID()); z != nil && !z.IsZero() {
			local := geometry.Point{X: float64(msg.X-z.StartX) + 0.5, Y: float64(msg.Y-z.StartY) + 0.5}
			return local, z.InBounds(msg)
		}
	}

	local := geometry.Point{X: float64(msg.X-originX) + 0.5, Y: float64(msg.Y-originY) + 0.5}

	return local, m.control.Bounds().Contains(local)
}

// sync publishes pending value changes and points the animation at the thumb
func (m Model) sync() (tea.Model, tea.Cmd) {
	cmds := m.drainChanges()

	x := m.control.Thumb().X
	if m.control.Phase() == toggle.PhaseDragging {
		m.slide.Jump(x)
	} else {
		m.slide.SetTarget(x)
	}

	if !m.slide.Settled() && !m.state.animating {
		m.state.animating = true
		cmds = append(cmds, m.frameCmd())
	}

	return m, tea.Batch(cmds...)
}

// drainChanges turns value changes collected by the listener into messages
func (m Model) drainChanges() []tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.outbox.changes))

	for _, side := range m.outbox.changes {
		changed := ChangedMsg{Side: side}
		cmds = append(cmds, func() tea.Msg { return changed })
	}

	m.outbox.changes = m.outbox.changes[:0]

	return cmds
}

func (m Model) frameCmd() tea.Cmd {
	return tea.Tick(m.ui.frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// layout sizes the switch for the window and lays the control out, dropping any gesture
func (m *Model) layout() {
	available := geometry.Size{
		Width:  float64(m.ui.width - 2*components.BorderCells),
		Height: float64(m.ui.height - components.ChromeHeight - components.BorderCells),
	}

	fit := m.control.SizeThatFits(available)

	width := int(math.Ceil(fit.Width)) + 2*components.BorderCells
	if width > m.ui.width {
		width = m.ui.width
	}

	// even widths split evenly into two halves; round down when rounding up would overflow the window
	if width%2 == 1 {
		if width < m.ui.width {
			width++
		} else {
			width--
		}
	}

	if width < components.MinSwitchWidth {
		width = components.MinSwitchWidth
	}

	height := int(math.Ceil(fit.Height)) + components.BorderCells
	if height < components.BorderCells+1 {
		height = components.BorderCells + 1
	}

	gap := m.ui.width - width
	if gap < 0 {
		gap = 0
	}

	m.ui.switchWidth = width
	m.ui.switchHeight = height
	m.ui.originX = int(math.Round(float64(gap) * 0.5))
	m.ui.originY = headerRows

	m.control.SetBounds(geometry.NewRect(0, 0, float64(width), float64(height)))
	m.tracker.Reset()
	m.slide.Jump(m.control.Thumb().X)
	m.ui.ready = true

	m.log.Debug().Msgf("Laid out switch %dx%d at %d,%d", width, height, m.ui.originX, m.ui.originY)
}

// applyConfig applies a reloaded configuration to the running switch
func (m *Model) applyConfig(cfg *config.Config) {
	m.state.reloadErr = nil
	m.state.mouse = cfg.Mouse

	m.control.SetLeftText(cfg.Switch.Left)
	m.control.SetRightText(cfg.Switch.Right)
	m.control.SetPalette(paletteFromConfig(cfg))

	m.state.wrap = cfg.Switch.WrapLabels
	if cfg.Switch.WrapLabels {
		m.control.SetMeasurer(toggle.NewWrapMeasurer())
	} else {
		m.control.SetMeasurer(toggle.NewLineMeasurer())
	}

	position := m.slide.Position()
	m.slide = components.NewSlide(cfg.Animation.FPS, cfg.Animation.Frequency, cfg.Animation.Damping)
	m.slide.Jump(position)
	m.ui.frameInterval = frameInterval(cfg.Animation.FPS)

	if m.ui.ready {
		m.layout()
	}

	if cfg.Switch.RightSelected != m.state.rightSelected {
		m.control.SetRightSelected(cfg.Switch.RightSelected)
	}

	m.state.rightSelected = cfg.Switch.RightSelected

	m.log.Info().Str("path", cfg.Path).Msg("Applied reloaded config")
}
