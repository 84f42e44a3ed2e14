package switchview

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"flip/internal/app/toggle"
	"flip/internal/app/ui/components"
	"flip/internal/app/ui/pointer"
	"flip/internal/config"
	"flip/internal/config/logger"
)

// switchZone is the bubblezone id of the rendered switch
const switchZone = "switch"

// outbox collects value changes between the control and the next Update return
type outbox struct {
	changes []toggle.Side
}

// Model represents the Bubble Tea model hosting one switch
type Model struct {
	control *toggle.Control
	tracker *pointer.Tracker
	slide   *components.Slide
	zones   *zone.Manager
	outbox  *outbox

	state struct {
		title         string
		zonePrefix    string
		mouse         bool
		wrap          bool
		rightSelected bool
		animating     bool
		quitting      bool
		reloadErr     error
	}

	ui struct {
		width         int
		height        int
		switchWidth   int
		switchHeight  int
		originX       int
		originY       int
		ready         bool
		frameInterval time.Duration
		keys          components.KeyMap
		help          help.Model
	}

	log logger.Logger
}

// NewModel creates the switch UI model from configuration
func NewModel(cfg *config.Config, zones *zone.Manager, log logger.Logger) Model {
	log = log.WithComponent("UI")

	m := Model{
		control: toggle.New(controlOptions(cfg)...),
		slide:   components.NewSlide(cfg.Animation.FPS, cfg.Animation.Frequency, cfg.Animation.Damping),
		zones:   zones,
		outbox:  &outbox{},
		log:     log,
	}

	m.tracker = pointer.NewTracker(m.control, log)

	out := m.outbox
	m.control.Subscribe(func(side toggle.Side) {
		out.changes = append(out.changes, side)
	})

	m.state.title = config.AppName
	m.state.mouse = cfg.Mouse
	m.state.wrap = cfg.Switch.WrapLabels
	m.state.rightSelected = cfg.Switch.RightSelected

	if zones != nil {
		m.state.zonePrefix = zones.NewPrefix()
	}

	m.ui.frameInterval = frameInterval(cfg.Animation.FPS)
	m.ui.keys = components.DefaultKeyMap()
	m.ui.help = help.New()

	log.Debug().Msgf("Created switch model (left=%q, right=%q, side=%s)", cfg.Switch.Left, cfg.Switch.Right, m.control.Side())

	return m
}

// controlOptions maps configuration onto control options
func controlOptions(cfg *config.Config) []toggle.Option {
	opts := []toggle.Option{
		toggle.WithLabels(cfg.Switch.Left, cfg.Switch.Right),
		toggle.WithPalette(paletteFromConfig(cfg)),
		toggle.WithSide(toggle.SideFromBool(cfg.Switch.RightSelected)),
	}

	if cfg.Switch.WrapLabels {
		opts = append(opts, toggle.WithMeasurer(toggle.NewWrapMeasurer()))
	}

	return opts
}

func paletteFromConfig(cfg *config.Config) toggle.Palette {
	return toggle.Palette{
		Accent: components.ParseColor(cfg.Palette.Accent),
		Muted:  components.ParseColor(cfg.Palette.Muted),
		Track:  components.ParseColor(cfg.Palette.Track),
	}
}

func frameInterval(fps int) time.Duration {
	if fps <= 0 {
		return components.MinFrameInterval
	}

	interval := time.Second / time.Duration(fps)
	if interval < components.MinFrameInterval {
		return components.MinFrameInterval
	}

	return interval
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// zoneID is the bubblezone id of this model's switch
func (m Model) zoneID() string {
	return m.state.zonePrefix + switchZone
}

// Control exposes the hosted switch so embedding code can subscribe to it
func (m Model) Control() *toggle.Control {
	return m.control
}

// RightSelected reports the switch value
func (m Model) RightSelected() bool {
	return m.control.RightSelected()
}
