package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nusahq/nusapp/internal/session"
)

func (a *App) renderProfile() string {
	snap := a.ctrl.Snapshot()
	prof := a.ctrl.Profile()

	out := titleStyle.Render("Profil") + "\n\n"
	out += "  Nama   : " + nonEmpty(prof.Name, "-") + "\n"
	out += "  HP     : " + nonEmpty(prof.Phone, "-") + "\n"
	out += "  Email  : " + nonEmpty(prof.Email, "-") + "\n"
	out += "  Peran  : " + snap.Role.Label() + "\n\n"

	if snap.Role == session.RoleDriver {
		out += mutedStyle.Render("Mitra sejak 2024 · 1.240 perjalanan · ★4.9") + "\n\n"
	}
	out += helpLine("R", "Ganti peran", "L", "Keluar")
	return out
}

func (a *App) handleProfileKey(_ tea.KeyMsg) (tea.Model, tea.Cmd) {
	return a, nil
}
