package watcher

import (
	"context"

	"go.uber.org/fx"
)

// Module provides the config file watcher and closes it when the app stops
var Module = fx.Options(
	fx.Provide(NewWatcher),
	fx.Invoke(Register),
)

// Register releases the watcher on shutdown whether or not it was started
func Register(lifecycle fx.Lifecycle, w Watcher) {
	lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			w.Close()
			return nil
		},
	})
}
