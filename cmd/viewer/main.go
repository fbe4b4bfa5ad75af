// Command viewer runs the engine and broadcasts a compact per-tick
// snapshot to connected browser clients over a websocket — the spec's
// "native GUI and browser viewers" collaborator, kept entirely outside
// the deterministic core.
package main

import (
	"context"
	"flag"
	"log"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/websocket"

	"bugworld/server/internal/app"
	"bugworld/server/internal/snapshot"
	"bugworld/server/internal/worldsim"
)

func main() {
	var addr string
	var seed int64
	var tickRate int
	flag.StringVar(&addr, "addr", ":8081", "http listen address")
	flag.Int64Var(&seed, "seed", app.DefaultSeed, "engine rng seed")
	flag.IntVar(&tickRate, "tick-rate", app.DefaultTickSPS, "engine ticks per second")
	flag.Parse()

	logger := log.Default()
	hub := newBroadcastHub(logger)

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     func(r *nethttp.Request) bool { return true },
	}

	mux := nethttp.NewServeMux()
	mux.HandleFunc("/ws", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Printf("upgrade failed: %v", err)
			return
		}
		hub.register(conn)
	})

	srv := &nethttp.Server{Addr: addr, Handler: mux}
	go func() {
		logger.Printf("viewer listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != nethttp.ErrServerClosed {
			logger.Fatalf("viewer server failed: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := app.Config{
		Logger:   nil,
		Seed:     seed,
		TickRate: tickRate,
		AfterTick: func(_ context.Context, w *worldsim.World) {
			data, err := snapshot.MarshalJSON(w.Snapshot())
			if err != nil {
				logger.Printf("failed to marshal snapshot: %v", err)
				return
			}
			hub.broadcast(data)
		},
	}

	if err := app.Run(ctx, cfg); err != nil {
		logger.Fatalf("engine run failed: %v", err)
	}

	if err := srv.Shutdown(context.Background()); err != nil {
		logger.Printf("viewer server shutdown error: %v", err)
	}
}
