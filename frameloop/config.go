package frameloop

import "log/slog"

// DefaultStep is how far time advances on every redraw.
const DefaultStep float32 = 0.02

// Config holds the tunables of a Loop.
type Config struct {
	// Step is added to the time state once per redraw.
	Step float32

	// ClearColor is the RGBA color every frame is cleared to.
	ClearColor [4]float32

	Logger *slog.Logger
}

// DefaultConfig returns a step of 0.02 and an opaque blue clear color.
func DefaultConfig() Config {
	return Config{
		Step:       DefaultStep,
		ClearColor: [4]float32{0, 0, 1, 1},
		Logger:     slog.Default(),
	}
}

func (c Config) withDefaults() Config {
	if c.Step == 0 {
		c.Step = DefaultStep
	}
	if c.ClearColor == ([4]float32{}) {
		c.ClearColor = DefaultConfig().ClearColor
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}
