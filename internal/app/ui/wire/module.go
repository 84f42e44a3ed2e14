package wire

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"go.uber.org/fx"

	"flip/internal/app/ui/switchview"
	"flip/internal/config"
	"flip/internal/config/logger"
)

// UI creates a Bubble Tea program hosting the switch
type UI func(ctx context.Context, opts ...tea.ProgramOption) (*tea.Program, error)

// Module provides the zone manager and the UI factory
var Module = fx.Options(
	fx.Provide(zone.New),
	fx.Provide(NewUI),
	fx.Invoke(Register),
)

// Register stops the zone manager's worker when the app stops
func Register(lifecycle fx.Lifecycle, zones *zone.Manager) {
	lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			zones.Close()
			return nil
		},
	})
}

// UIParams contains dependencies for creating the UI factory
type UIParams struct {
	fx.In

	Config *config.Config
	Zones  *zone.Manager
	Logger logger.Logger
}

// NewUI creates a factory function for constructing Bubble Tea programs
func NewUI(params UIParams) UI {
	return func(ctx context.Context, opts ...tea.ProgramOption) (*tea.Program, error) {
		model := switchview.NewModel(params.Config, params.Zones, params.Logger)

		p := tea.NewProgram(model, append(programOptions(ctx, params.Config), opts...)...)

		params.Logger.Debug().Msg("TUI: Program created via factory")

		return p, nil
	}
}

// programOptions returns the program options for the given configuration
func programOptions(ctx context.Context, cfg *config.Config) []tea.ProgramOption {
	opts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithReportFocus(),
		tea.WithContext(ctx),
	}

	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	return opts
}
