// Package main starts the CursorCage utility.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frudas24/cursorcage/internal/app"
	"github.com/frudas24/cursorcage/internal/config"
	"github.com/frudas24/cursorcage/internal/winsys"
)

// run wires the application and blocks until shutdown.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logStartup(cfg)

	probe, err := winsys.NewProbe()
	if err != nil {
		return err
	}
	cursor, err := winsys.NewCursor()
	if err != nil {
		return err
	}

	appInstance, err := app.New(cfg, probe, cursor)
	if err != nil {
		return err
	}

	key, name := config.LoadRecenterKey(cfg.KeyFile)
	appInstance.State().SetRecenterKey(key)
	log.Printf("config: recenter key %s", name)

	logMonitors()

	// Console close, interrupt, logoff, and shutdown all arrive here.
	// Release the clip synchronously; the loop may never run again.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		appInstance.ReleaseCursor()
		appInstance.State().Stop()
	}()

	server := startStatusServer(cfg, appInstance)

	appInstance.Run()

	if server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("diag: shutdown: %v", err)
		}
	}
	log.Printf("exit: cursor released")
	return nil
}

// startStatusServer launches the optional local status server.
func startStatusServer(cfg config.Config, appInstance *app.App) *http.Server {
	d := appInstance.Diag()
	if d == nil {
		return nil
	}
	go d.Run()

	mux := http.NewServeMux()
	d.RegisterRoutes(mux)
	server := &http.Server{
		Addr:    cfg.StatusAddr,
		Handler: mux,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("diag: %v", err)
		}
	}()
	log.Printf("diag: status server on %s", cfg.StatusAddr)
	return server
}

// logFatal prints and exits for startup failures.
func logFatal(err error) {
	log.Printf("fatal: %v", err)
	os.Exit(1)
}

// logStartup prints the banner and effective configuration.
func logStartup(cfg config.Config) {
	log.Printf("CursorCage starting")
	log.Printf("target: %s (title fallback %q)", cfg.TargetExe, cfg.TargetTitle)
	log.Printf("policy: %s, poll every %dms", cfg.Policy, cfg.PollMs)
	log.Printf("confine: enabled at startup")
}

// logMonitors prints the attached display inventory.
func logMonitors() {
	monitors, err := winsys.Monitors()
	if err != nil {
		log.Printf("monitor: %v", err)
		return
	}
	for _, m := range monitors {
		primary := ""
		if m.Primary {
			primary = " primary"
		}
		log.Printf("monitor %d: %s%s", m.Index, m.Bounds, primary)
	}
}
