package app

import (
	"go.uber.org/fx"

	"flip/internal/app/cli"
	"flip/internal/app/ui/wire"
	"flip/internal/app/watcher"
	"flip/internal/config/logger"
)

var Module = fx.Options(
	cli.Module,
	wire.Module,
	watcher.Module,
	logger.Module,
	fx.Provide(NewApp),
	fx.Invoke(Register),
)
