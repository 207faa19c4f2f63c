package wizard

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Phase is the state of a simulated backend round trip attached to the
// terminal step of a wizard.
type Phase int

const (
	PhaseInput Phase = iota
	PhaseProcessing
	PhaseSettled
)

// Outcome is the terminal resolution of a settlement. The current design
// has no failure branch: every action settles successfully.
type Outcome struct {
	Success   bool
	Reference string
}

// Scheduler defers a callback by a fixed delay. Injected so tests can
// advance time deterministically and the TUI can marshal callbacks onto
// its update loop.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// TimerScheduler fires callbacks from wall-clock timers. Callbacks run on
// a timer goroutine; hosts with single-threaded state must wrap it.
type TimerScheduler struct{}

func (TimerScheduler) After(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

// ManualScheduler collects callbacks and fires them on demand.
type ManualScheduler struct {
	queue []func()
}

func (s *ManualScheduler) After(_ time.Duration, fn func()) {
	s.queue = append(s.queue, fn)
}

// Fire runs every queued callback once and reports how many ran.
func (s *ManualScheduler) Fire() int {
	q := s.queue
	s.queue = nil
	for _, fn := range q {
		fn()
	}
	return len(q)
}

// Action is the Input -> Processing -> Settled machine. Submit is only
// honored from Input; settlement happens exactly once, after the fixed
// delay, and is irreversible. There is no retry-in-place: after Settled
// the only exit is acknowledging, which tears the owning wizard down.
type Action struct {
	phase   Phase
	sched   Scheduler
	delay   time.Duration
	prefix  string
	outcome Outcome

	// OnSettle runs synchronously when the action settles, with the form
	// long since committed; it never observes partial input.
	OnSettle func(Outcome)
}

// NewAction builds an idle action whose reference tokens carry prefix
// (e.g. "TX-", "TXW-").
func NewAction(sched Scheduler, delay time.Duration, prefix string) *Action {
	return &Action{sched: sched, delay: delay, prefix: prefix}
}

func (a *Action) Phase() Phase     { return a.phase }
func (a *Action) Outcome() Outcome { return a.outcome }

// Submit moves Input to Processing and schedules the settlement. It
// reports false without side effects from any other phase.
func (a *Action) Submit() bool {
	if a.phase != PhaseInput {
		return false
	}
	a.phase = PhaseProcessing
	a.sched.After(a.delay, a.settle)
	return true
}

func (a *Action) settle() {
	if a.phase != PhaseProcessing {
		return
	}
	a.phase = PhaseSettled
	a.outcome = Outcome{Success: true, Reference: NewReference(a.prefix)}
	if a.OnSettle != nil {
		a.OnSettle(a.outcome)
	}
}

// Acknowledge reports whether the action is settled and may be closed.
// The owner discards both the action and its wizard afterwards.
func (a *Action) Acknowledge() bool {
	return a.phase == PhaseSettled
}

// NewReference mints an opaque client-visible token. Displayed, never
// validated.
func NewReference(prefix string) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + strings.ToUpper(raw[:6])
}
