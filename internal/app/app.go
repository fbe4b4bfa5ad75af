// Package app wires the simulation core to the ambient stack — logging
// router/sinks, telemetry, and a fixed-rate tick loop — the way the
// teacher's internal/app wires its hub to an HTTP server.
package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"bugworld/server/internal/rng"
	"bugworld/server/internal/telemetry"
	"bugworld/server/internal/worldsim"
	"bugworld/server/logging"
	loggingSinks "bugworld/server/logging/sinks"
)

const (
	// DefaultSeed matches the reference engine's documented default run.
	DefaultSeed    int64 = 1
	DefaultTickSPS int   = 30
)

// Config tunes a single engine run. Zero values are replaced by defaults
// in normalized, the teacher's Config idiom.
type Config struct {
	Logger   telemetry.Logger
	Seed     int64
	TickRate int // ticks (days) per second of wall-clock pacing

	// AfterTick, if set, runs once per tick with the freshly-advanced
	// world — a collaborator's hook for broadcasting a snapshot, logging
	// stats, and so on. It must not block the caller for long.
	AfterTick func(ctx context.Context, w *worldsim.World)
}

func (cfg Config) normalized() Config {
	normalized := cfg
	if normalized.Seed == 0 {
		normalized.Seed = DefaultSeed
	}
	if normalized.TickRate <= 0 {
		normalized.TickRate = DefaultTickSPS
	}
	return normalized
}

// Engine bundles a running world with the router driving its structured
// events, so callers can close the router once the world is done with it.
type Engine struct {
	World  *worldsim.World
	Router *logging.Router
}

// NewEngine builds a seeded, genesis-populated world wired to a console
// logging sink, mirroring the teacher's router construction in Run.
func NewEngine(cfg Config) (*Engine, error) {
	cfg = cfg.normalized()

	logConfig := logging.DefaultConfig()
	namedSinks := []logging.NamedSink{
		{Name: "console", Sink: loggingSinks.NewConsoleSink(os.Stdout, logConfig.Console)},
	}
	router, err := logging.NewRouter(logging.SystemClock{}, logConfig, namedSinks)
	if err != nil {
		return nil, fmt.Errorf("failed to construct logging router: %w", err)
	}

	world := worldsim.NewWorld(rng.New(cfg.Seed))
	world.Publisher = router
	world.Genesis()

	return &Engine{World: world, Router: router}, nil
}

// Close releases the engine's router, flushing its sinks.
func (e *Engine) Close(ctx context.Context) error {
	if e == nil || e.Router == nil {
		return nil
	}
	return e.Router.Close(ctx)
}

// Run builds an engine and drives its tick loop on a fixed-rate ticker
// until ctx is cancelled, the teacher's Loop.Run idiom adapted to a
// day-stepped, command-free simulation.
func Run(ctx context.Context, cfg Config) error {
	cfg = cfg.normalized()

	telemetryLogger := cfg.Logger
	if telemetryLogger == nil {
		telemetryLogger = telemetry.WrapLogger(log.Default())
	}

	engine, err := NewEngine(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := engine.Close(ctx); cerr != nil {
			telemetryLogger.Printf("failed to close logging router: %v", cerr)
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.TickRate))
	defer ticker.Stop()

	telemetryLogger.Printf("engine running, seed=%d tickRate=%d", cfg.Seed, cfg.TickRate)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			engine.World.Tick(ctx)
			if cfg.AfterTick != nil {
				cfg.AfterTick(ctx, engine.World)
			}
		}
	}
}
