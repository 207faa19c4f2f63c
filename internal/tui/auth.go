package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nusahq/nusapp/internal/flows"
	"github.com/nusahq/nusapp/internal/session"
	"github.com/nusahq/nusapp/internal/wizard"
)

func (a *App) handleAuthKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.stage {
	case stageLanding:
		switch m.String() {
		case "q":
			return a, tea.Quit
		case "m", "enter":
			a.stage = stageLoginRole
			a.roleCursor = 0
		case "d":
			a.stage = stageRegisterRole
			a.roleCursor = 0
		}
	case stageLoginRole, stageRegisterRole:
		return a.handleRoleSelectKey(m)
	case stageLoginName:
		return a.handleLoginNameKey(m)
	case stageRegisterForm:
		return a.handleRegisterFormKey(m)
	case stageWelcome:
		if m.String() == "enter" || m.String() == " " {
			a.login(a.regRole, a.pendingProfile)
			a.stage = stageLanding
		}
	}
	return a, nil
}

func (a *App) handleRoleSelectKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q":
		return a, tea.Quit
	case "esc":
		a.stage = stageLanding
	case "up", "k":
		if a.roleCursor > 0 {
			a.roleCursor--
		}
	case "down", "j":
		if a.roleCursor < len(session.AllRoles)-1 {
			a.roleCursor++
		}
	case "enter":
		role := session.AllRoles[a.roleCursor]
		if a.stage == stageLoginRole {
			a.stage = stageLoginName
			a.nameInput = ""
			a.regRole = role
		} else {
			a.regRole = role
			a.reg = flows.NewRegistration(role)
			a.regField = 0
			a.stage = stageRegisterForm
		}
	}
	return a, nil
}

func (a *App) handleLoginNameKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyEsc:
		a.stage = stageLoginRole
		return a, nil
	case tea.KeyEnter:
		name := trimmed(a.nameInput)
		if name == "" {
			a.status = "Nama tidak boleh kosong"
			return a, nil
		}
		a.login(a.regRole, session.Profile{Name: name})
		return a, nil
	case tea.KeyBackspace, tea.KeyCtrlH:
		a.nameInput = chop(a.nameInput)
	case tea.KeySpace:
		a.nameInput += " "
	case tea.KeyRunes:
		a.nameInput += string(m.Runes)
	}
	return a, nil
}

func (a *App) login(role session.Role, profile session.Profile) {
	a.ctrl.Login(role, profile)
	a.enterRole(role)
	a.status = ""
	a.nameInput = ""
	a.reg = nil
}

// regFields lists the editable fields for the active registration step.
func regFields(step wizard.Step, role session.Role) []formField {
	switch step {
	case flows.StepAccount:
		fields := []formField{
			{key: flows.FieldName, label: "Nama Lengkap"},
			{key: flows.FieldPhone, label: "Nomor HP", digits: true},
			{key: flows.FieldEmail, label: "Email (opsional)"},
		}
		if role == session.RoleAdmin {
			fields = append(fields, formField{key: flows.FieldStaffKey, label: "Kunci Staf"})
		}
		return fields
	case flows.StepVehicle:
		return []formField{
			{key: flows.FieldVehicleType, label: "Jenis Kendaraan", options: flows.VehicleTypes},
			{key: flows.FieldPlate, label: "Plat Nomor"},
		}
	case flows.StepStore:
		return []formField{
			{key: flows.FieldStoreName, label: "Nama Toko"},
			{key: flows.FieldStoreKind, label: "Kategori", options: flows.StoreCategories},
			{key: flows.FieldAddress, label: "Alamat"},
		}
	}
	return nil
}

func (a *App) handleRegisterFormKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	fields := regFields(a.reg.Step(), a.regRole)
	if a.regField >= len(fields) {
		a.regField = 0
	}

	switch m.String() {
	case "up":
		if a.regField > 0 {
			a.regField--
		}
		return a, nil
	case "down":
		if a.regField < len(fields)-1 {
			a.regField++
		}
		return a, nil
	case "enter":
		switch a.reg.Advance() {
		case wizard.Submitted:
			a.pendingProfile = flows.RegistrationProfile(a.reg.Form())
			a.reg = nil
			a.stage = stageWelcome
			return a, nil
		case wizard.Advanced:
			a.regField = 0
		case wizard.Blocked:
			a.status = "Lengkapi data wajib dulu"
		}
		return a, nil
	case "esc":
		if a.reg.Retreat() == wizard.Exited {
			a.reg.Cancel()
			a.reg = nil
			a.stage = stageRegisterRole
		} else {
			a.regField = 0
		}
		return a, nil
	}

	if editField(a.reg, fields[a.regField], m) {
		a.status = ""
	}
	return a, nil
}

func (a *App) renderAuth() string {
	switch a.stage {
	case stageLanding:
		out := titleStyle.Render("NusaApp") + "\n"
		out += mutedStyle.Render("Satu aplikasi untuk semua kebutuhan harian Anda") + "\n\n"
		out += helpLine("m", "Masuk", "d", "Daftar", "q", "Tutup")
		return out
	case stageLoginRole, stageRegisterRole:
		heading := "Masuk sebagai"
		if a.stage == stageRegisterRole {
			heading = "Daftar sebagai"
		}
		out := titleStyle.Render(heading) + "\n"
		for i, r := range session.AllRoles {
			marker := "  "
			if i == a.roleCursor {
				marker = focusStyle.Render("▶ ")
			}
			out += marker + r.Label() + "\n"
		}
		out += "\n" + helpLine("enter", "Pilih", "esc", "Kembali")
		if a.status != "" {
			out += "\n" + warnStyle.Render(a.status)
		}
		return out
	case stageLoginName:
		out := titleStyle.Render("Masuk · "+a.regRole.Label()) + "\n"
		out += "Nama: " + a.nameInput + "▌\n\n"
		out += helpLine("enter", "Masuk", "esc", "Kembali")
		if a.status != "" {
			out += "\n" + warnStyle.Render(a.status)
		}
		return out
	case stageRegisterForm:
		return a.renderRegisterForm()
	case stageWelcome:
		out := okStyle.Render("Pendaftaran berhasil!") + "\n"
		out += "Akun " + a.regRole.Label() + " Anda siap digunakan.\n\n"
		out += helpLine("enter", "Mulai")
		return out
	}
	return ""
}

func (a *App) renderRegisterForm() string {
	fields := regFields(a.reg.Step(), a.regRole)
	out := titleStyle.Render("Daftar · "+a.regRole.Label()) + "\n"
	out += mutedStyle.Render(stepCaption(a.reg)) + "\n\n"
	for i, f := range fields {
		out += renderField(a.reg, f, i == a.regField) + "\n"
	}
	out += "\n" + helpLine("enter", "Lanjut", "esc", "Kembali", "↑↓", "Pindah kolom")
	if a.status != "" {
		out += "\n" + warnStyle.Render(a.status)
	}
	return out
}

func stepCaption(w *wizard.Wizard) string {
	name := ""
	switch w.Step() {
	case flows.StepAccount:
		name = "Data Akun"
	case flows.StepVehicle:
		name = "Data Kendaraan"
	case flows.StepStore:
		name = "Data Toko"
	case flows.StepDestination:
		name = "Tujuan"
	case flows.StepFleet:
		name = "Pilih Armada"
	case flows.StepTrack:
		name = "Lacak"
	case flows.StepAddress:
		name = "Alamat"
	case flows.StepDetail:
		name = "Detail Paket"
	case flows.StepConfirm:
		name = "Konfirmasi"
	case flows.StepAmount:
		name = "Nominal"
	}
	return "Langkah " + itoa(w.Index()+1) + " dari " + itoa(w.Len()) + " · " + name
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var b []byte
	for n > 0 {
		b = append([]byte{byte('0' + n%10)}, b...)
		n /= 10
	}
	return string(b)
}
