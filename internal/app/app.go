package app

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"time"
)

// App encapsulates the dependencies of one generation run.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	seed   uint64
	rng    *rand.Rand
}

// NewApp is the constructor for the main application. The summary goes to
// outW and logs to logW. A zero Seed in cfg is replaced by a clock-derived
// one, which is logged so the run can be reproduced.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		seed:   seed,
		rng:    rand.New(rand.NewPCG(seed, seed)),
	}
}

// Seed returns the seed of the run's random source.
func (a *App) Seed() uint64 {
	return a.seed
}
