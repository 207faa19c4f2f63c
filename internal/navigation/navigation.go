package navigation

import "github.com/nusahq/nusapp/internal/session"

// Destination ids. Profile is universal: every role's surface ends with
// it, so it is appended once rather than duplicated per row.
const (
	DestHome      = "home"
	DestMarket    = "market"
	DestWallet    = "wallet"
	DestDashboard = "dashboard"
	DestEarnings  = "earnings"
	DestStore     = "store"
	DestOrders    = "orders"
	DestAdmin     = "admin"
	DestUsers     = "users"
	DestConfig    = "config"
	DestProfile   = "profile"
)

var surfaces = map[session.Role][]string{
	session.RoleCustomer: {DestHome, DestMarket, DestWallet},
	session.RoleDriver:   {DestDashboard, DestEarnings},
	session.RoleMerchant: {DestStore, DestOrders},
	session.RoleAdmin:    {DestAdmin, DestUsers, DestConfig},
}

// Navigator is the declarative reachability table. It has no mutable
// state; the zero value is ready to use.
type Navigator struct{}

// ReachableFor returns the ordered destinations visible in the role's
// navigation surface. Unknown roles fall back to the customer surface.
func (Navigator) ReachableFor(role session.Role) []string {
	row, ok := surfaces[role]
	if !ok {
		row = surfaces[session.RoleCustomer]
	}
	out := make([]string, 0, len(row)+1)
	out = append(out, row...)
	return append(out, DestProfile)
}

// DefaultFor returns the destination a role lands on at login.
func (n Navigator) DefaultFor(role session.Role) string {
	return n.ReachableFor(role)[0]
}

// Reachable reports whether id is on the role's surface.
func (n Navigator) Reachable(role session.Role, id string) bool {
	for _, d := range n.ReachableFor(role) {
		if d == id {
			return true
		}
	}
	return false
}

// Label returns the tab caption for a destination id.
func Label(id string) string {
	switch id {
	case DestHome:
		return "Beranda"
	case DestMarket:
		return "Belanja"
	case DestWallet:
		return "Dompet"
	case DestDashboard:
		return "Tugas"
	case DestEarnings:
		return "Dompet"
	case DestStore:
		return "Toko"
	case DestOrders:
		return "Pesanan"
	case DestAdmin:
		return "Sistem"
	case DestUsers:
		return "User"
	case DestConfig:
		return "Setelan"
	case DestProfile:
		return "Profil"
	}
	return id
}
