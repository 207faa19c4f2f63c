// Package orders holds the merchant-side intake queue. Resolved orders
// leave the active set instead of being archived; the queue is ephemeral
// by design.
package orders

import (
	"time"

	"github.com/nusahq/nusapp/internal/session"
	"github.com/nusahq/nusapp/internal/wizard"
)

// Status of an order in the active set. Once a record leaves Pending its
// status never reverts.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusAccepted Status = "ACCEPTED"
)

// Record is one incoming order as shown to the merchant.
type Record struct {
	ID       string
	Customer string
	Items    string
	TotalIDR int64
	Status   Status
	Age      string
}

// AcceptLinger is how long an accepted order stays visible before it is
// removed from the active set.
const AcceptLinger = 1200 * time.Millisecond

// Queue is the mutable set of open orders, keyed by id, in arrival order.
// Single-owner: all mutation happens on the session's event loop.
type Queue struct {
	sched   wizard.Scheduler
	linger  time.Duration
	records []Record
}

// NewQueue builds a queue over the given seed records.
func NewQueue(sched wizard.Scheduler, linger time.Duration, seed []Record) *Queue {
	q := &Queue{sched: sched, linger: linger}
	q.records = append(q.records, seed...)
	return q
}

// Seed returns the demo intake the merchant dashboard starts with.
func Seed() []Record {
	return []Record{
		{ID: "ORD-991", Customer: "Andi S.", Items: "2x Burger Original, 1x Cola", TotalIDR: 92000, Status: StatusPending, Age: "2 mnt lalu"},
		{ID: "ORD-992", Customer: "Siti M.", Items: "1x Nasi Goreng Spesial", TotalIDR: 28000, Status: StatusPending, Age: "5 mnt lalu"},
	}
}

// Active returns a copy of the open records.
func (q *Queue) Active() []Record {
	return append([]Record(nil), q.records...)
}

// ByStatus filters the active set for tabbed display.
func (q *Queue) ByStatus(s Status) []Record {
	out := make([]Record, 0, len(q.records))
	for _, r := range q.records {
		if r.Status == s {
			out = append(out, r)
		}
	}
	return out
}

// Get looks up an active record by id.
func (q *Queue) Get(id string) (Record, bool) {
	for _, r := range q.records {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}

// Len reports how many records are active.
func (q *Queue) Len() int { return len(q.records) }

// Accept marks a pending order accepted and schedules its removal from
// the active set after the linger delay. Accepting anything but a
// pending record is a no-op.
func (q *Queue) Accept(id string) bool {
	for i := range q.records {
		if q.records[i].ID == id {
			if q.records[i].Status != StatusPending {
				return false
			}
			q.records[i].Status = StatusAccepted
			q.sched.After(q.linger, func() { q.remove(id) })
			return true
		}
	}
	return false
}

// Reject deletes a pending order outright. It is destructive, so the
// first call without confirmation commits nothing.
func (q *Queue) Reject(id string, confirmed bool) session.Decision {
	r, ok := q.Get(id)
	if !ok || r.Status != StatusPending {
		return session.Ignored
	}
	if !confirmed {
		return session.ConfirmationRequired
	}
	q.remove(id)
	return session.Done
}

func (q *Queue) remove(id string) {
	for i := range q.records {
		if q.records[i].ID == id {
			q.records = append(q.records[:i], q.records[i+1:]...)
			return
		}
	}
}
