/*
Package main
File: main.go
Description: Server entry point. Loads the catalog, builds the game
session and the real-time WebSocket hub, and runs the frame loop that
keeps the economy alive.
*/

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Squallever/clicker/internal/api"
	"github.com/Squallever/clicker/internal/clock"
	"github.com/Squallever/clicker/internal/game"
	"github.com/Squallever/clicker/internal/oracle"
	"github.com/Squallever/clicker/internal/scheduler"
)

// frameInterval is the cadence of the accumulation loop. The engine only
// cares about the real elapsed time per tick, so the exact rate just
// bounds how stale the balance can get between deposits.
const frameInterval = 50 * time.Millisecond

func main() {
	// 1. Load the static catalog configuration from YAML.
	cfgPath := os.Getenv("CATALOG_PATH")
	if cfgPath == "" {
		cfgPath = "catalog.yaml"
	}
	cfg, err := game.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("Config Fail: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Initialize and start the Real-Time WebSocket Hub.
	hub := api.NewHub()
	go hub.Run(ctx)

	// 3. Build the session with its collaborators: the hub-backed sound
	// broadcaster and the oracle client. Both degrade gracefully when
	// nobody is listening or no API key is set.
	clk := clock.RealClock{}
	audio := api.NewSoundBroadcaster(hub, clk)
	sess := game.NewSession(cfg, clk, audio, oracle.NewFromEnv())

	// 4. THE FRAME LOOP.
	// Deposits passive production once per tick and enforces the combo
	// decay deadline. Stops cleanly with the rest of the process.
	go func() {
		ticker := time.NewTicker(frameInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				sess.Advance()
			}
		}
	}()

	// 5. Fixed-interval jobs: history sampling, petting reset, state pulse.
	sched := scheduler.NewScheduler(sess, hub)
	if err := sched.RegisterAll(os.Getenv("PULSE_CRON")); err != nil {
		log.Fatalf("Scheduler Fail: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// 6. Setup Router and Handlers.
	srv := api.NewServer(sess, hub)
	mux := http.NewServeMux()

	// Information Endpoints
	mux.HandleFunc("/api/state", srv.HandleGetState)
	mux.HandleFunc("/api/upgrades", srv.HandleGetUpgrades)
	mux.HandleFunc("/api/history", srv.HandleGetHistory)

	// Action Endpoints
	mux.HandleFunc("/api/click", srv.HandleClick)
	mux.HandleFunc("/api/stroke", srv.HandleStroke)
	mux.HandleFunc("/api/stroke/end", srv.HandleStrokeEnd)
	mux.HandleFunc("/api/buy", srv.HandleBuy)
	mux.HandleFunc("/api/oracle", srv.HandleOracle)

	// Real-Time WebSocket Endpoint
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		api.ServeWs(hub, w, r)
	})

	// 7. Start the Server.
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8081"
	}
	if port[0] != ':' {
		port = ":" + port
	}

	httpSrv := &http.Server{Addr: port, Handler: api.CORSMiddleware(mux)}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		httpSrv.Shutdown(shutdownCtx)
	}()

	log.Printf("CLOVER CAT Server live on %s", port)
	log.Printf("Real-time Hub: Online")

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
