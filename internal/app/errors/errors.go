package errors

import (
	"errors"
)

var (
	ErrFailedToReadConfig  = errors.New("failed to read config file")
	ErrFailedToParseConfig = errors.New("failed to parse config file")
	ErrInvalidConfig       = errors.New("invalid configuration")
	ErrConfigNotFound      = errors.New("config file not found")
	ErrUnknownConfigKey    = errors.New("unknown config key")

	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrInvalidLogFormat = errors.New("invalid log format")
	ErrFailedToOpenLog  = errors.New("failed to open log file")

	ErrInvalidAnimationFPS       = errors.New("animation fps must be positive")
	ErrInvalidAnimationFrequency = errors.New("animation frequency must be positive")
	ErrInvalidAnimationDamping   = errors.New("animation damping must not be negative")
	ErrInvalidWatchDebounce      = errors.New("watch debounce must not be negative")

	ErrFailedToCreateWatcher = errors.New("failed to create config watcher")
	ErrFailedToWatchConfig   = errors.New("failed to watch config file")

	ErrProgramFailed = errors.New("switch program failed")
	ErrNotATerminal  = errors.New("flip needs an interactive terminal")
)

var (
	As  = errors.As
	Is  = errors.Is
	New = errors.New
)
