package config

import "time"

// app constants
const (
	AppName = "flip"
	Version = "0.3.0"

	DefaultPath = "flip.yaml"
)

// logging constants
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

// switch constants
const (
	DefaultLeftText  = "Off"
	DefaultRightText = "On"
)

// palette constants
const (
	DefaultAccentColor = "#7D56F4"
	DefaultMutedColor  = "7"
	DefaultTrackColor  = ""
)

// animation constants
const (
	DefaultAnimationFPS       = 60
	DefaultAnimationFrequency = 12.0
	DefaultAnimationDamping   = 0.9
)

// watch constants
const (
	DefaultWatchDebounce = 200 * time.Millisecond
)
