package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"flip/internal/app"
	"flip/internal/app/cli"
	"flip/internal/config"
	"flip/internal/config/logger"
)

// stopTimeout bounds how long fx waits for the application to wind down
const stopTimeout = 5 * time.Second

// main is the entry point for the application
func main() {
	os.Exit(runApp(os.Args[1:]))
}

// runApp contains the main application logic and returns the exit code
func runApp(args []string) int {
	opts, err := cli.Parse(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	opts.Apply(cfg)

	logOutput, closeLog, err := logger.OpenOutput(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	return run(createApp(cfg, opts, logOutput))
}

// loadConfig wraps config.Load for easier testing
func loadConfig(path string) (*config.Config, error) {
	return config.Load(path)
}

// run starts the fx application, waits for it to shut itself down and returns its exit code
func run(application *fx.App) int {
	startCtx, cancel := context.WithTimeout(context.Background(), fx.DefaultTimeout)
	defer cancel()

	if err := application.Start(startCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	sig := <-application.Wait()

	stopCtx, cancelStop := context.WithTimeout(context.Background(), stopTimeout)
	defer cancelStop()

	if err := application.Stop(stopCtx); err != nil {
		return 1
	}

	return sig.ExitCode
}

// createApp creates the FX application with the given config
func createApp(cfg *config.Config, opts *cli.Options, logOutput io.Writer) *fx.App {
	return fx.New(
		fx.WithLogger(createFxLogger(cfg, logOutput)),
		fx.Supply(cfg, opts),
		fx.Supply(logger.Sink{W: logOutput}),
		app.Module,
	)
}

// createFxLogger returns an FX logger based on the config
func createFxLogger(cfg *config.Config, out io.Writer) func() fxevent.Logger {
	return func() fxevent.Logger {
		if cfg.Logging.Level == logger.DebugLevel {
			return &fxevent.ConsoleLogger{W: out}
		}

		return fxevent.NopLogger
	}
}
