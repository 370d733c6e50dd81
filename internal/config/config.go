package config

import "os"

const (
	WindowWidth  = 1024
	WindowHeight = 768

	// Network defaults for the Pure Data patch connection
	DefaultListenAddr = "localhost:13001"
	DefaultAssetsDir  = "Assets"

	// Interaction parameters
	DoubleClickMs       = 300
	RotationSpeedFactor = 2.0
	ArcPressScale       = 1.2
	GaugePressScale     = 1.1

	// Lines/dots scale adjustment per drag event
	LinesScaleStep = 0.01
	LinesScaleMin  = 1.0
	LinesScaleMax  = 5.0

	// Easing factor per frame for the arc and gauge scales
	EasingFactor = 0.2
)

// Config carries the settings adjustable at startup. Everything else is a
// compile-time constant above.
type Config struct {
	ListenAddr string
	AssetsDir  string
}

// FromEnv returns the defaults overridden by environment variables. Callers
// that support flags use the result as flag defaults.
func FromEnv() Config {
	cfg := Config{
		ListenAddr: DefaultListenAddr,
		AssetsDir:  DefaultAssetsDir,
	}
	if v := os.Getenv("SOUNDCOMPASS_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("SOUNDCOMPASS_ASSETS"); v != "" {
		cfg.AssetsDir = v
	}
	return cfg
}
