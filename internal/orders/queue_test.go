package orders

import (
	"testing"
	"time"

	"github.com/nusahq/nusapp/internal/session"
	"github.com/nusahq/nusapp/internal/wizard"
)

func seededQueue() (*Queue, *wizard.ManualScheduler) {
	sched := &wizard.ManualScheduler{}
	return NewQueue(sched, 1200*time.Millisecond, Seed()), sched
}

func TestAcceptLingersThenRemoves(t *testing.T) {
	q, sched := seededQueue()
	if q.Len() != 2 {
		t.Fatalf("seed size = %d", q.Len())
	}

	if !q.Accept("ORD-991") {
		t.Fatalf("accept refused")
	}
	rec, ok := q.Get("ORD-991")
	if !ok || rec.Status != StatusAccepted {
		t.Fatalf("accepted record = %+v, ok=%v", rec, ok)
	}
	if q.Len() != 2 {
		t.Fatalf("record removed before linger elapsed")
	}

	sched.Fire()
	if _, ok := q.Get("ORD-991"); ok {
		t.Fatalf("accepted record still present after linger")
	}
	if q.Len() != 1 {
		t.Fatalf("queue size after removal = %d", q.Len())
	}
}

func TestAcceptGuards(t *testing.T) {
	q, sched := seededQueue()
	if q.Accept("ORD-000") {
		t.Fatalf("accepted unknown order")
	}
	q.Accept("ORD-992")
	if q.Accept("ORD-992") {
		t.Fatalf("accepted the same order twice")
	}
	if n := sched.Fire(); n != 1 {
		t.Fatalf("scheduled %d removals, want 1", n)
	}
}

func TestRejectNeedsConfirmation(t *testing.T) {
	q, _ := seededQueue()
	if got := q.Reject("ORD-991", false); got != session.ConfirmationRequired {
		t.Fatalf("unconfirmed reject = %v", got)
	}
	if q.Len() != 2 {
		t.Fatalf("unconfirmed reject mutated the queue")
	}
	if got := q.Reject("ORD-991", true); got != session.Done {
		t.Fatalf("confirmed reject = %v", got)
	}
	if _, ok := q.Get("ORD-991"); ok {
		t.Fatalf("rejected record still present")
	}
	if got := q.Reject("ORD-991", true); got != session.Ignored {
		t.Fatalf("reject of missing order = %v, want Ignored", got)
	}
}

func TestByStatusFilters(t *testing.T) {
	q, _ := seededQueue()
	q.Accept("ORD-991")
	if got := len(q.ByStatus(StatusAccepted)); got != 1 {
		t.Fatalf("accepted count = %d", got)
	}
	if got := len(q.ByStatus(StatusPending)); got != 1 {
		t.Fatalf("pending count = %d", got)
	}
}
