package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nusahq/nusapp/internal/adminops"
	"github.com/nusahq/nusapp/internal/session"
)

var userTabs = []string{"Semua", "Pelanggan", "Driver", "Merchant"}

// voucherForm is the inline editor for a new promo voucher.
type voucherForm struct {
	field    int
	code     string
	discount string
	expiry   string
}

func (a *App) renderAdminHome() string {
	out := titleStyle.Render("Panel Kontrol") + "\n\n"
	out += "  Pengguna aktif   " + focusStyle.Render("12.450") + "\n"
	out += "  Transaksi hari ini " + amountStyle.Render(formatIDR(458000000)) + "\n"
	out += "  Mitra terdaftar  " + focusStyle.Render("1.830") + "\n\n"

	out += titleStyle.Render("Antrean Verifikasi Mitra") + "\n"
	apps := a.verify.Pending()
	if len(apps) == 0 {
		out += mutedStyle.Render("  Tidak ada pengajuan baru.") + "\n"
	}
	cursor := clampCursor(a.verCursor, len(apps))
	for i, app := range apps {
		marker := "  "
		if i == cursor {
			marker = focusStyle.Render("▶ ")
		}
		out += fmt.Sprintf("%s%s  %-16s %s\n", marker, app.ID, app.Name, mutedStyle.Render(app.RoleLabel))
		out += "    Dokumen: " + strings.Join(app.Docs, ", ") + mutedStyle.Render("  ·  "+app.Submitted) + "\n"
	}
	out += "\n" + helpLine("v", "Setujui", "x", "Tolak", "↑↓", "Pilih")
	return out
}

func (a *App) handleAdminHomeKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	apps := a.verify.Pending()
	a.verCursor = clampCursor(a.verCursor, len(apps))
	switch m.String() {
	case "up", "k":
		if a.verCursor > 0 {
			a.verCursor--
		}
	case "down", "j":
		if a.verCursor < len(apps)-1 {
			a.verCursor++
		}
	case "v":
		if a.verCursor < len(apps) {
			app := apps[a.verCursor]
			if a.verify.Approve(app.ID) {
				a.status = "Pengajuan " + app.Name + " disetujui"
			}
		}
	case "x":
		if a.verCursor < len(apps) {
			app := apps[a.verCursor]
			if a.verify.Reject(app.ID, false) == session.ConfirmationRequired {
				id, name := app.ID, app.Name
				a.confirm = &confirmPrompt{
					title: "Tolak pengajuan " + name + "?",
					body:  "Pemohon harus mendaftar ulang dari awal.",
					accept: func() tea.Cmd {
						if a.verify.Reject(id, true) == session.Done {
							a.status = "Pengajuan " + name + " ditolak"
						}
						return nil
					},
				}
			}
		}
	}
	return a, nil
}

func (a *App) visibleAccounts() []adminops.Account {
	roleLabel := ""
	if a.userTab > 0 {
		roleLabel = userTabs[a.userTab]
	}
	return a.dir.Search(roleLabel, a.userQuery)
}

func (a *App) renderUsers() string {
	out := titleStyle.Render("Manajemen Pengguna") + "\n"
	var tabs []string
	for i, t := range userTabs {
		if i == a.userTab {
			tabs = append(tabs, tabActiveStyle.Render(t))
		} else {
			tabs = append(tabs, tabIdleStyle.Render(t))
		}
	}
	out += strings.Join(tabs, "  ") + "\n"
	if a.userSearch {
		out += "Cari: " + a.userQuery + "▌\n"
	} else if a.userQuery != "" {
		out += mutedStyle.Render("Filter: "+a.userQuery) + "\n"
	}
	out += "\n"

	accounts := a.visibleAccounts()
	cursor := clampCursor(a.userCursor, len(accounts))
	if len(accounts) == 0 {
		out += mutedStyle.Render("Tidak ada akun yang cocok.") + "\n"
	}
	for i, u := range accounts {
		marker := "  "
		if i == cursor && !a.userSearch {
			marker = focusStyle.Render("▶ ")
		}
		badge := okStyle.Render(string(u.Status))
		if u.Status == adminops.StatusSuspended {
			badge = dangerStyle.Render(string(u.Status))
		}
		out += fmt.Sprintf("%s%-5s %-16s %-10s %s\n", marker, u.ID, u.Name, mutedStyle.Render(u.RoleLabel), badge)
		out += "    " + mutedStyle.Render(u.Email+" · "+u.Phone+" · sejak "+u.Joined) + "\n"
	}
	out += "\n" + helpLine("/", "Cari", "f", "Filter peran", "s", "Tangguhkan", "b", "Pulihkan")
	return out
}

func (a *App) handleUsersKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	accounts := a.visibleAccounts()
	a.userCursor = clampCursor(a.userCursor, len(accounts))
	switch m.String() {
	case "/":
		a.userSearch = true
		a.userQuery = ""
		return a, nil
	case "f":
		a.userTab = (a.userTab + 1) % len(userTabs)
		a.userCursor = 0
		return a, nil
	case "up", "k":
		if a.userCursor > 0 {
			a.userCursor--
		}
		return a, nil
	case "down", "j":
		if a.userCursor < len(accounts)-1 {
			a.userCursor++
		}
		return a, nil
	case "esc":
		if a.userQuery != "" {
			a.userQuery = ""
		}
		return a, nil
	}
	if a.userCursor >= len(accounts) {
		return a, nil
	}
	u := accounts[a.userCursor]
	switch m.String() {
	case "s":
		if a.dir.Suspend(u.ID, false) == session.ConfirmationRequired {
			id, name := u.ID, u.Name
			a.confirm = &confirmPrompt{
				title: "Tangguhkan akun " + name + "?",
				body:  "Akun tidak bisa masuk sampai dipulihkan.",
				accept: func() tea.Cmd {
					if a.dir.Suspend(id, true) != session.Done {
						return nil
					}
					a.status = "Akun " + name + " ditangguhkan"
					return a.persistAccountStatus(id, adminops.StatusSuspended)
				},
			}
		}
	case "b":
		if a.dir.Activate(u.ID) == session.Done {
			a.status = "Akun " + u.Name + " dipulihkan"
			return a, a.persistAccountStatus(u.ID, adminops.StatusActive)
		}
	}
	return a, nil
}

func (a *App) persistAccountStatus(id string, status adminops.AccountStatus) tea.Cmd {
	return func() tea.Msg {
		if err := a.repos.Users.UpdateStatus(a.ctx, id, string(status)); err != nil {
			return errMsg{err}
		}
		return nil
	}
}

func (a *App) handleUserSearchKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyEsc:
		a.userSearch = false
		a.userQuery = ""
	case tea.KeyEnter:
		a.userSearch = false
		a.userCursor = 0
	case tea.KeyBackspace, tea.KeyCtrlH:
		a.userQuery = chop(a.userQuery)
	case tea.KeySpace:
		a.userQuery += " "
	case tea.KeyRunes:
		a.userQuery += string(m.Runes)
	}
	return a, nil
}

func (a *App) renderConfig() string {
	out := titleStyle.Render("Konfigurasi & Promo") + "\n\n"
	out += titleStyle.Render("Voucher Aktif") + "\n"
	vouchers := a.vouchers.All()
	cursor := clampCursor(a.vchCursor, len(vouchers))
	if len(vouchers) == 0 {
		out += mutedStyle.Render("  Belum ada voucher.") + "\n"
	}
	for i, v := range vouchers {
		marker := "  "
		if i == cursor && a.vchForm == nil {
			marker = focusStyle.Render("▶ ")
		}
		state := okStyle.Render("AKTIF")
		if !v.Active {
			state = mutedStyle.Render("NONAKTIF")
		}
		out += fmt.Sprintf("%s%-14s %-8s %s\n", marker, v.Code, v.Discount, state)
		out += "    " + mutedStyle.Render("Berlaku: "+v.Expiry+" · Dipakai: "+itoa(v.Usage)+"x") + "\n"
	}

	if a.vchForm != nil {
		out += "\n" + titleStyle.Render("Voucher Baru") + "\n"
		labels := []string{"Kode", "Diskon", "Berlaku s/d"}
		values := []string{a.vchForm.code, a.vchForm.discount, a.vchForm.expiry}
		for i := range labels {
			marker := "  "
			val := values[i]
			if i == a.vchForm.field {
				marker = focusStyle.Render("▶ ")
				val += "▌"
			}
			out += fmt.Sprintf("%s%-12s %s\n", marker, labels[i], val)
		}
		out += "\n" + helpLine("enter", "Simpan", "esc", "Batal", "↑↓", "Pindah kolom")
		return out
	}

	out += "\n" + helpLine("n", "Voucher baru", "t", "Aktif/nonaktif", "x", "Hapus", "↑↓", "Pilih")
	return out
}

func (a *App) handleConfigKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	vouchers := a.vouchers.All()
	a.vchCursor = clampCursor(a.vchCursor, len(vouchers))
	switch m.String() {
	case "n":
		a.vchForm = &voucherForm{}
		return a, nil
	case "up", "k":
		if a.vchCursor > 0 {
			a.vchCursor--
		}
		return a, nil
	case "down", "j":
		if a.vchCursor < len(vouchers)-1 {
			a.vchCursor++
		}
		return a, nil
	}
	if a.vchCursor >= len(vouchers) {
		return a, nil
	}
	v := vouchers[a.vchCursor]
	switch m.String() {
	case "t":
		if a.vouchers.Toggle(v.ID) {
			a.status = "Voucher " + v.Code + " diperbarui"
		}
	case "x":
		if a.vouchers.Delete(v.ID, false) == session.ConfirmationRequired {
			id, code := v.ID, v.Code
			a.confirm = &confirmPrompt{
				title: "Hapus voucher " + code + "?",
				body:  "Voucher hilang dari semua pengguna.",
				accept: func() tea.Cmd {
					if a.vouchers.Delete(id, true) == session.Done {
						a.status = "Voucher " + code + " dihapus"
					}
					return nil
				},
			}
		}
	}
	return a, nil
}

func (a *App) handleVoucherFormKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := a.vchForm
	fieldPtr := []*string{&f.code, &f.discount, &f.expiry}[f.field]

	switch m.Type {
	case tea.KeyEsc:
		a.vchForm = nil
		return a, nil
	case tea.KeyEnter:
		if _, ok := a.vouchers.Add(f.code, f.discount, f.expiry); !ok {
			a.status = "Kode dan diskon wajib diisi"
			return a, nil
		}
		a.vchForm = nil
		a.status = "Voucher baru ditambahkan"
		return a, nil
	case tea.KeyUp:
		if f.field > 0 {
			f.field--
		}
		return a, nil
	case tea.KeyDown:
		if f.field < 2 {
			f.field++
		}
		return a, nil
	case tea.KeyBackspace, tea.KeyCtrlH:
		*fieldPtr = chop(*fieldPtr)
	case tea.KeySpace:
		*fieldPtr += " "
	case tea.KeyRunes:
		*fieldPtr += string(m.Runes)
	}
	return a, nil
}
