package logger

import (
	"io"

	"go.uber.org/fx"

	"flip/internal/config"
)

// Sink carries the writer logs go to; a nil writer means stdout
type Sink struct {
	W io.Writer
}

// Module provides the fx dependency injection options for the logger package
var Module = fx.Options(
	fx.Provide(func(cfg *config.Config, sink Sink) Logger {
		return NewLoggerWithOutput(cfg, sink.W)
	}),
)
