// Package engine drives the cursor-confinement poll loop.
package engine

import (
	"log"
	"runtime"
	"time"

	"github.com/frudas24/cursorcage/internal/classify"
	"github.com/frudas24/cursorcage/internal/state"
	"github.com/frudas24/cursorcage/internal/target"
	"github.com/frudas24/cursorcage/internal/wingeom"
	"github.com/frudas24/cursorcage/internal/winsys"
)

// Transition kinds emitted on confinement state changes.
const (
	TransConfined = "confined"
	TransReleased = "released"
	TransDisabled = "disabled"
	TransEnabled  = "enabled"
)

// Transition is one observable confinement state change.
type Transition struct {
	Kind string       `json:"kind"`
	Clip wingeom.Rect `json:"clip"`
	At   time.Time    `json:"at"`
}

// Pump drains pending thread messages and reports toggle-hotkey hits.
type Pump interface {
	Drain() int
}

const (
	defaultPollEvery = 10 * time.Millisecond
	idleSleep        = time.Millisecond
)

// Engine polls the foreground window and applies or releases cursor
// confinement as the target's classification changes. All fields below
// the dependency block are loop-local; only the shared state flags are
// touched from other goroutines.
type Engine struct {
	probe      winsys.Probe
	cursor     winsys.Cursor
	matcher    *target.Matcher
	classifier classify.Classifier
	st         *state.State
	pump       Pump
	pollEvery  time.Duration

	logf  func(format string, args ...any)
	now   func() time.Time
	sleep func(time.Duration)
	sink  chan<- Transition

	lastPoll      time.Time
	lastActive    winsys.Handle
	lastWasTarget bool
	applied       bool
	appliedClip   wingeom.Rect
	debugLogged   bool
}

// New returns an engine in the released state.
func New(probe winsys.Probe, cursor winsys.Cursor, matcher *target.Matcher, classifier classify.Classifier, st *state.State, pump Pump, pollEvery time.Duration) *Engine {
	if pollEvery <= 0 {
		pollEvery = defaultPollEvery
	}
	return &Engine{
		probe:      probe,
		cursor:     cursor,
		matcher:    matcher,
		classifier: classifier,
		st:         st,
		pump:       pump,
		pollEvery:  pollEvery,
		logf:       log.Printf,
		now:        time.Now,
		sleep:      time.Sleep,
	}
}

// SetNowFunc overrides the clock used for poll scheduling.
func (e *Engine) SetNowFunc(fn func() time.Time) {
	if fn != nil {
		e.now = fn
	}
}

// SetSleepFunc overrides the inter-iteration sleep.
func (e *Engine) SetSleepFunc(fn func(time.Duration)) {
	if fn != nil {
		e.sleep = fn
	}
}

// SetLogFunc overrides the transition logger.
func (e *Engine) SetLogFunc(fn func(format string, args ...any)) {
	if fn != nil {
		e.logf = fn
	}
}

// SetSink attaches a transition event channel. Sends never block; events
// are dropped when the receiver is slow.
func (e *Engine) SetSink(sink chan<- Transition) {
	e.sink = sink
}

// Run iterates until the running flag clears, then releases confinement.
// It pins the goroutine to its OS thread: the message pump, the hotkey
// registration, and the low-level keyboard hook all belong to this thread.
func (e *Engine) Run() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	for e.st.Running() {
		e.iterate()
		e.sleep(idleSleep)
	}
	e.shutdown()
}

// iterate drains pending messages and runs at most one poll tick.
func (e *Engine) iterate() {
	for i := e.pump.Drain(); i > 0; i-- {
		e.toggled()
	}
	now := e.now()
	if !e.lastPoll.IsZero() && now.Sub(e.lastPoll) < e.pollEvery {
		return
	}
	e.lastPoll = now
	e.tick()
}

// toggled handles one toggle-hotkey hit. Disabling releases confinement
// in the same iteration rather than waiting for the next tick.
func (e *Engine) toggled() {
	if e.st.Toggle() {
		e.logf("confine: enabled by hotkey")
		e.emit(TransEnabled, wingeom.Rect{})
		return
	}
	e.logf("confine: disabled by hotkey, cursor released")
	e.release(TransDisabled)
}

// tick classifies the foreground window and reconciles confinement.
func (e *Engine) tick() {
	if !e.st.Enabled() {
		// A remote toggle releases the clip itself; this reconciles the
		// loop-local record and covers any path that only cleared the flag.
		if e.applied {
			e.release(TransDisabled)
		}
		return
	}

	fg := e.probe.ForegroundWindow()
	isTarget := fg != 0 && e.matcher.IsTarget(fg)
	e.noteForeground(fg, isTarget)

	if isTarget {
		e.debugGeometry(fg)
		if v := e.classifier.Classify(fg); v.Qualifies {
			e.apply(v.Clip)
			return
		}
	}
	if e.applied {
		e.release(TransReleased)
	}
}

// noteForeground logs target activation changes. Purely informational;
// confinement is reconciled by the caller.
func (e *Engine) noteForeground(fg winsys.Handle, isTarget bool) {
	if fg == e.lastActive {
		return
	}
	if isTarget {
		e.logf("target: window active")
	} else if e.lastWasTarget {
		e.logf("target: window inactive")
	}
	e.lastActive = fg
	e.lastWasTarget = isTarget
}

// debugGeometry logs window and monitor bounds once per run to aid
// diagnosing classification near the fullscreen tolerances.
func (e *Engine) debugGeometry(h winsys.Handle) {
	if e.debugLogged {
		return
	}
	e.debugLogged = true
	if wr, ok := e.probe.WindowRect(h); ok {
		e.logf("classify: window bounds %s", wr)
	}
	if mr, ok := e.probe.MonitorRect(h); ok {
		e.logf("classify: monitor bounds %s", mr)
	}
}

// apply confines the cursor to the clip rectangle. Reapplying the same
// rectangle reasserts the OS region without a new transition event.
func (e *Engine) apply(clip wingeom.Rect) {
	if err := e.cursor.Clip(clip); err != nil {
		// Transient failure: treat as not confined so the next
		// successful apply is reported.
		e.applied = false
		return
	}
	first := !e.applied
	e.applied = true
	e.appliedClip = clip
	if first {
		e.logf("confine: entered, clip %s", clip)
		e.emit(TransConfined, clip)
	}
}

// release clears confinement and reports the transition once.
func (e *Engine) release(kind string) {
	_ = e.cursor.Release()
	if !e.applied {
		return
	}
	e.applied = false
	if kind == TransReleased {
		e.logf("confine: released")
	}
	e.emit(kind, wingeom.Rect{})
}

// shutdown releases confinement unconditionally on loop exit.
func (e *Engine) shutdown() {
	_ = e.cursor.Release()
	e.applied = false
	e.logf("confine: released on exit")
}

// emit forwards a transition to the sink without blocking.
func (e *Engine) emit(kind string, clip wingeom.Rect) {
	if e.sink == nil {
		return
	}
	t := Transition{Kind: kind, Clip: clip, At: e.now()}
	select {
	case e.sink <- t:
	default:
	}
}
