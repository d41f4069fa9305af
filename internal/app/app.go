// Package app wires the confinement engine, hooks, and status server together.
package app

import (
	"errors"
	"log"
	"runtime"
	"time"

	"github.com/frudas24/cursorcage/internal/classify"
	"github.com/frudas24/cursorcage/internal/config"
	"github.com/frudas24/cursorcage/internal/diag"
	"github.com/frudas24/cursorcage/internal/engine"
	"github.com/frudas24/cursorcage/internal/hook"
	"github.com/frudas24/cursorcage/internal/hotkey"
	"github.com/frudas24/cursorcage/internal/state"
	"github.com/frudas24/cursorcage/internal/target"
	"github.com/frudas24/cursorcage/internal/winsys"
)

// toggleHotkeyID identifies the confinement toggle in WM_HOTKEY messages.
const toggleHotkeyID = 1

// transitionBuffer bounds the diag event feed; the engine drops events
// beyond it rather than block the poll loop.
const transitionBuffer = 64

// App coordinates the poll engine, the keyboard hook, the toggle hotkey,
// and the optional status server.
type App struct {
	cfg        config.Config
	st         *state.State
	cursor     winsys.Cursor
	recenterer *hook.Recenterer
	engine     *engine.Engine
	diag       *diag.Server
	events     chan engine.Transition

	keyboardHook *hook.Hook
	hotkeyReg    *hotkey.Registration
}

// New creates an application with its dependencies wired.
func New(cfg config.Config, probe winsys.Probe, cursor winsys.Cursor) (*App, error) {
	if probe == nil {
		return nil, errors.New("window probe is required")
	}
	if cursor == nil {
		return nil, errors.New("cursor controller is required")
	}

	st := state.New()
	matcher := target.NewMatcher(probe, target.Spec{
		ExeName:        cfg.TargetExe,
		TitleSubstring: cfg.TargetTitle,
	})
	classifier, err := classify.ForPolicy(cfg.Policy, probe, classify.Tunables{
		EdgeTolerancePx: int32(cfg.EdgeTolerancePx),
		MinCoverage:     cfg.MinCoverage,
		SampleGrid:      cfg.SampleGrid,
		SampleMargin:    cfg.SampleMargin,
		SampleThreshold: cfg.SampleThreshold,
	})
	if err != nil {
		return nil, err
	}

	pump := winsys.NewThreadPump(toggleHotkeyID)
	pollEvery := time.Duration(cfg.PollMs) * time.Millisecond
	eng := engine.New(probe, cursor, matcher, classifier, st, pump, pollEvery)

	a := &App{
		cfg:        cfg,
		st:         st,
		cursor:     cursor,
		recenterer: hook.NewRecenterer(probe, cursor, matcher, st),
		engine:     eng,
	}

	if cfg.StatusAddr != "" {
		a.events = make(chan engine.Transition, transitionBuffer)
		eng.SetSink(a.events)
		a.diag = diag.NewServer(st, cfg.Policy, cfg.TargetExe, a.ToggleConfinement, a.events)
	}

	return a, nil
}

// State returns the shared runtime flags.
func (a *App) State() *state.State {
	return a.st
}

// Diag returns the status server, or nil when STATUS_ADDR is unset.
func (a *App) Diag() *diag.Server {
	return a.diag
}

// ToggleConfinement flips the enabled flag with hotkey-equivalent
// semantics: disabling releases the cursor immediately. Safe to call from
// any goroutine; the engine reconciles its own record on the next tick.
func (a *App) ToggleConfinement() {
	if !a.st.Toggle() {
		_ = a.cursor.Release()
	}
}

// ReleaseCursor clears confinement immediately. Called from the signal
// handler so the cursor is freed even if the poll loop never runs again.
func (a *App) ReleaseCursor() {
	_ = a.cursor.Release()
}

// Run installs the hook and hotkey, then drives the poll loop until
// shutdown. The calling goroutine is pinned to its OS thread: hook
// callbacks and WM_HOTKEY delivery belong to the thread that installed
// them, and the engine pumps that thread's messages.
func (a *App) Run() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	a.installKeyboardHook()
	a.registerToggleHotkey()
	defer a.teardown()

	a.engine.Run()
}

// installKeyboardHook registers the non-consuming recenter key observer.
// Failure disables recentering for the session and is not fatal.
func (a *App) installKeyboardHook() {
	h, err := hook.Install(a.recenterer.OnKeyDown)
	if err != nil {
		log.Printf("hook: install failed, recenter key unavailable: %v", err)
		return
	}
	a.keyboardHook = h
	log.Printf("hook: recenter key ready, press %s (or ESC) to recenter", a.st.Snapshot().RecenterKey)
}

// registerToggleHotkey claims the global toggle chord. Failure disables
// toggling for the session and is not fatal.
func (a *App) registerToggleHotkey() {
	chord, err := hotkey.ParseChord(a.cfg.ToggleHotkey)
	if err != nil {
		log.Printf("hotkey: %v, toggle unavailable", err)
		return
	}
	reg, err := hotkey.Register(toggleHotkeyID, chord)
	if err != nil {
		log.Printf("hotkey: register failed, toggle unavailable: %v", err)
		return
	}
	a.hotkeyReg = reg
	log.Printf("hotkey: %s toggles confinement on/off", chord)
}

// teardown removes the hook and hotkey after the loop exits.
func (a *App) teardown() {
	if a.keyboardHook != nil {
		a.keyboardHook.Uninstall()
		a.keyboardHook = nil
	}
	if a.hotkeyReg != nil {
		a.hotkeyReg.Unregister()
		a.hotkeyReg = nil
	}
}
