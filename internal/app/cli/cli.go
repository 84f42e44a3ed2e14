package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/term"
	"go.uber.org/fx"

	"flip/internal/app/errors"
	"flip/internal/app/ui/switchview"
	"flip/internal/app/ui/wire"
	"flip/internal/app/watcher"
	"flip/internal/config"
	"flip/internal/config/logger"
)

//go:generate mockgen -source=cli.go -destination=cli_mock.go -package=cli

// CLI defines the interface for running the command the user asked for
type CLI interface {
	Execute() (exitCode int, err error)
}

// Params contains dependencies for creating the CLI
type Params struct {
	fx.In

	Options *Options
	Config  *config.Config
	UI      wire.UI
	Watcher watcher.Watcher
	Logger  logger.Logger
}

// cli represents the command-line interface for the application
type cli struct {
	opts       *Options
	cfg        *config.Config
	ui         wire.UI
	watcher    watcher.Watcher
	out        io.Writer
	isTerminal func() bool
	log        logger.Logger
}

// NewCLI creates a new cli instance
func NewCLI(params Params) CLI {
	return &cli{
		opts:       params.Options,
		cfg:        params.Config,
		ui:         params.UI,
		watcher:    params.Watcher,
		out:        os.Stdout,
		isTerminal: interactive,
		log:        params.Logger,
	}
}

// Execute runs the parsed command and returns the process exit code
func (c *cli) Execute() (int, error) {
	switch c.opts.Type {
	case CommandVersion:
		fmt.Fprintln(c.out, renderTitle())
		return 0, nil
	case CommandHelp:
		fmt.Fprint(c.out, renderHelp())
		return 0, nil
	default:
		return c.runTUI()
	}
}

// runTUI shows the switch until the user quits, then prints its value
func (c *cli) runTUI() (int, error) {
	if !c.isTerminal() {
		return 1, errors.ErrNotATerminal
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p, err := c.ui(ctx)
	if err != nil {
		c.log.Error().Err(err).Msg("Failed to create TUI program")
		return 1, fmt.Errorf("%w: %w", errors.ErrProgramFailed, err)
	}

	if c.cfg.Watch.Enabled {
		err := c.watcher.Start(ctx, func(cfg *config.Config, err error) {
			if err != nil {
				p.Send(switchview.ConfigErrorMsg{Err: err})
				return
			}

			c.opts.Apply(cfg)
			p.Send(switchview.ConfigMsg{Config: cfg})
		})
		if err != nil {
			c.log.Warn().Err(err).Msg("Config reload disabled")
		}
	}

	final, err := p.Run()
	if err != nil {
		c.log.Error().Err(err).Msg("TUI program failed")
		return 1, fmt.Errorf("%w: %w", errors.ErrProgramFailed, err)
	}

	if m, ok := final.(switchview.Model); ok {
		fmt.Fprintln(c.out, m.Control().Side())
	}

	return 0, nil
}

// interactive reports whether both stdin and stdout are attached to a terminal
func interactive() bool {
	return term.IsTerminal(os.Stdin.Fd()) && term.IsTerminal(os.Stdout.Fd())
}
