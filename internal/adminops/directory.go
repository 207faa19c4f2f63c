// Package adminops carries the administrator moderation surfaces:
// account suspension, promo voucher management and the partner
// verification queue. Like the session itself, everything here is
// volatile for the lifetime of the process.
package adminops

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/nusahq/nusapp/internal/session"
)

// AccountStatus of a directory account.
type AccountStatus string

const (
	StatusActive    AccountStatus = "Aktif"
	StatusSuspended AccountStatus = "Ditangguhkan"
)

// Account is one row of the user directory.
type Account struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	RoleLabel string
	Status    AccountStatus
	Joined    string
}

// Directory is the moderated account list. Seeded once from the catalog
// store; moderation state lives here only.
type Directory struct {
	accounts []Account
}

func NewDirectory(seed []Account) *Directory {
	d := &Directory{}
	d.accounts = append(d.accounts, seed...)
	return d
}

// All returns a copy of the accounts in directory order.
func (d *Directory) All() []Account {
	return append([]Account(nil), d.accounts...)
}

// Get looks up an account by id.
func (d *Directory) Get(id string) (Account, bool) {
	for _, a := range d.accounts {
		if a.ID == id {
			return a, true
		}
	}
	return Account{}, false
}

// Suspend freezes an active account. Destructive: the first call without
// confirmation commits nothing.
func (d *Directory) Suspend(id string, confirmed bool) session.Decision {
	for i := range d.accounts {
		if d.accounts[i].ID == id && d.accounts[i].Status == StatusActive {
			if !confirmed {
				return session.ConfirmationRequired
			}
			d.accounts[i].Status = StatusSuspended
			return session.Done
		}
	}
	return session.Ignored
}

// Activate lifts a suspension. Restoring access is not destructive, so no
// confirmation is asked.
func (d *Directory) Activate(id string) session.Decision {
	for i := range d.accounts {
		if d.accounts[i].ID == id && d.accounts[i].Status == StatusSuspended {
			d.accounts[i].Status = StatusActive
			return session.Done
		}
	}
	return session.Ignored
}

// Search filters by role tab and a fuzzy name/email query. An empty
// query keeps every row of the tab; matching tolerates small typos.
func (d *Directory) Search(roleLabel, query string) []Account {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Account, 0, len(d.accounts))
	for _, a := range d.accounts {
		if roleLabel != "" && a.RoleLabel != roleLabel {
			continue
		}
		if q == "" || fuzzyMatch(q, a.Name) || fuzzyMatch(q, a.Email) {
			out = append(out, a)
		}
	}
	return out
}

func fuzzyMatch(q, candidate string) bool {
	c := strings.ToLower(candidate)
	if strings.Contains(c, q) {
		return true
	}
	for _, word := range strings.Fields(c) {
		limit := len(q) / 3
		if limit < 1 {
			limit = 1
		}
		if levenshtein.ComputeDistance(q, word) <= limit {
			return true
		}
	}
	return false
}
