package adminops

import "github.com/nusahq/nusapp/internal/session"

// Application is a pending partner onboarding request with its submitted
// documents.
type Application struct {
	ID        string
	Name      string
	RoleLabel string
	Submitted string
	Docs      []string
}

// VerificationQueue holds partner applications awaiting review.
// Resolved applications leave the queue either way.
type VerificationQueue struct {
	apps []Application
}

// SeedApplications are the pending reviews the admin dashboard shows.
func SeedApplications() []Application {
	return []Application{
		{ID: "V-001", Name: "Andi Driver", RoleLabel: "Mitra Driver", Submitted: "2 mnt lalu", Docs: []string{"KTP", "SIM", "STNK"}},
		{ID: "V-002", Name: "Kopi Kenangan", RoleLabel: "Mitra Toko", Submitted: "1 jam lalu", Docs: []string{"SIUP", "Identitas Pemilik"}},
	}
}

func NewVerificationQueue(seed []Application) *VerificationQueue {
	q := &VerificationQueue{}
	q.apps = append(q.apps, seed...)
	return q
}

func (q *VerificationQueue) Pending() []Application {
	return append([]Application(nil), q.apps...)
}

func (q *VerificationQueue) Len() int { return len(q.apps) }

// Approve admits the partner and removes the application.
func (q *VerificationQueue) Approve(id string) bool {
	return q.remove(id)
}

// Reject turns the partner away; unconfirmed calls commit nothing.
func (q *VerificationQueue) Reject(id string, confirmed bool) session.Decision {
	for _, a := range q.apps {
		if a.ID == id {
			if !confirmed {
				return session.ConfirmationRequired
			}
			q.remove(id)
			return session.Done
		}
	}
	return session.Ignored
}

func (q *VerificationQueue) remove(id string) bool {
	for i := range q.apps {
		if q.apps[i].ID == id {
			q.apps = append(q.apps[:i], q.apps[i+1:]...)
			return true
		}
	}
	return false
}
