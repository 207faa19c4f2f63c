package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nusahq/nusapp/internal/navigation"
	"github.com/nusahq/nusapp/internal/session"
)

// renderShell draws the authenticated frame: header, tab bar, the active
// surface, and the footer.
func (a *App) renderShell() string {
	snap := a.ctrl.Snapshot()
	prof := a.ctrl.Profile()

	header := titleStyle.Render("NusaApp") +
		mutedStyle.Render("  ·  ") + snap.Role.Label()
	if prof.Name != "" {
		header += mutedStyle.Render("  ·  ") + prof.Name
	}

	var body string
	switch snap.Destination {
	case navigation.DestHome:
		body = a.renderHome()
	case navigation.DestMarket:
		body = a.renderMarket()
	case navigation.DestWallet:
		body = a.renderWallet()
	case navigation.DestDashboard:
		body = a.renderDriverDashboard()
	case navigation.DestEarnings:
		body = a.renderEarnings()
	case navigation.DestStore:
		body = a.renderStore()
	case navigation.DestOrders:
		body = a.renderOrders()
	case navigation.DestAdmin:
		body = a.renderAdminHome()
	case navigation.DestUsers:
		body = a.renderUsers()
	case navigation.DestConfig:
		body = a.renderConfig()
	case navigation.DestProfile:
		body = a.renderProfile()
	default:
		body = mutedStyle.Render("(halaman kosong)")
	}

	out := header + "\n" + a.renderTabs(snap) + "\n\n" + body
	out += "\n\n" + helpLine("1-9", "Tab", "c", "NusaBot", "R", "Ganti peran", "L", "Keluar", "q", "Tutup")
	if a.status != "" {
		out += "\n" + warnStyle.Render(a.status)
	}
	return out
}

func (a *App) renderTabs(snap session.Snapshot) string {
	tabs := a.nav.ReachableFor(snap.Role)
	parts := make([]string, 0, len(tabs))
	for i, id := range tabs {
		label := fmt.Sprintf("%d·%s", i+1, navigation.Label(id))
		if id == snap.Destination {
			parts = append(parts, tabActiveStyle.Render(label))
		} else {
			parts = append(parts, tabIdleStyle.Render(label))
		}
	}
	return strings.Join(parts, mutedStyle.Render("  │  "))
}

// surfaceInputActive reports whether the current surface is capturing
// free text, which suppresses global shortcuts.
func (a *App) surfaceInputActive() bool {
	return a.marketSearch || a.userSearch || a.vchForm != nil
}

func (a *App) handleSurfaceInput(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case a.marketSearch:
		return a.handleMarketSearchKey(m)
	case a.userSearch:
		return a.handleUserSearchKey(m)
	case a.vchForm != nil:
		return a.handleVoucherFormKey(m)
	}
	return a, nil
}

func (a *App) handleSurfaceKey(m tea.KeyMsg, snap session.Snapshot) (tea.Model, tea.Cmd) {
	switch snap.Destination {
	case navigation.DestHome:
		return a.handleHomeKey(m)
	case navigation.DestMarket:
		return a.handleMarketKey(m)
	case navigation.DestWallet:
		return a.handleWalletKey(m)
	case navigation.DestDashboard:
		return a.handleDriverDashboardKey(m)
	case navigation.DestEarnings:
		return a.handleEarningsKey(m)
	case navigation.DestStore:
		return a.handleStoreKey(m)
	case navigation.DestOrders:
		return a.handleOrdersKey(m)
	case navigation.DestAdmin:
		return a.handleAdminHomeKey(m)
	case navigation.DestUsers:
		return a.handleUsersKey(m)
	case navigation.DestConfig:
		return a.handleConfigKey(m)
	case navigation.DestProfile:
		return a.handleProfileKey(m)
	}
	return a, nil
}
