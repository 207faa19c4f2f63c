package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nusahq/nusapp/internal/flows"
	"github.com/nusahq/nusapp/internal/wizard"
)

// demo job offer shown while the driver is online
var driverOffer = struct {
	Pickup, Dest string
	FareIDR      int64
}{"Stasiun Sudirman", "Blok M Plaza", 18000}

func (a *App) renderDriverDashboard() string {
	out := titleStyle.Render("Pusat Tugas") + "\n"
	if a.driverOnline {
		out += okStyle.Render("● Online") + mutedStyle.Render(" — siap menerima order") + "\n\n"
	} else {
		out += mutedStyle.Render("○ Offline — aktifkan untuk menerima order") + "\n\n"
	}

	switch {
	case !a.driverOnline:
		out += helpLine("o", "Mulai Online")
	case a.driverTrip:
		out += focusStyle.Render("Perjalanan berlangsung") + "\n"
		out += "  " + driverOffer.Pickup + " → " + driverOffer.Dest + "\n"
		out += "  Tarif: " + amountStyle.Render(formatIDR(driverOffer.FareIDR)) + "\n\n"
		out += helpLine("s", "Selesaikan", "o", "Offline")
	default:
		out += titleStyle.Render("Order Masuk") + "\n"
		out += "  Jemput : " + driverOffer.Pickup + "\n"
		out += "  Tujuan : " + driverOffer.Dest + "\n"
		out += "  Tarif  : " + amountStyle.Render(formatIDR(driverOffer.FareIDR)) + "\n\n"
		out += helpLine("a", "Terima", "o", "Offline")
	}
	return out
}

func (a *App) handleDriverDashboardKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "o":
		a.driverOnline = !a.driverOnline
		a.driverTrip = false
		if a.driverOnline {
			a.status = "Anda sekarang online"
		} else {
			a.status = "Anda offline"
		}
	case "a":
		if a.driverOnline && !a.driverTrip {
			a.driverTrip = true
			a.status = "Order diterima. Jemput penumpang!"
		}
	case "s":
		if a.driverTrip {
			a.driverTrip = false
			a.status = "Perjalanan selesai. " + formatIDR(driverOffer.FareIDR) + " masuk ke dompet"
		}
	}
	return a, nil
}

func (a *App) renderEarnings() string {
	out := titleStyle.Render("Dompet Mitra") + "\n"
	out += "Saldo bisa ditarik: " + amountStyle.Render(formatIDR(flows.WithdrawableIDR)) + "\n\n"
	out += titleStyle.Render("Pendapatan Minggu Ini") + "\n"
	out += "  Senin   " + formatIDR(85000) + "\n"
	out += "  Selasa  " + formatIDR(120000) + "\n"
	out += "  Rabu    " + formatIDR(96000) + "\n"
	out += "  Kamis   " + formatIDR(124000) + "\n\n"
	out += helpLine("w", "Tarik Dana")
	return out
}

func (a *App) handleEarningsKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.String() == "w" {
		a.withdrawWiz = flows.NewWithdrawal()
		a.withdrawFld = 0
	}
	return a, nil
}

func withdrawFields() []formField {
	return []formField{
		{key: flows.FieldAmount, label: "Nominal (Rp)", digits: true},
		{key: flows.FieldMethod, label: "Tujuan", options: flows.PayoutMethods},
	}
}

func (a *App) handleWithdrawKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.payout != nil {
		switch a.payout.Phase() {
		case wizard.PhaseProcessing:
			return a, nil
		case wizard.PhaseSettled:
			if m.String() == "enter" {
				ref := a.payout.Outcome().Reference
				a.payout.Acknowledge()
				a.payout = nil
				a.withdrawWiz = nil
				a.status = "Penarikan " + ref + " diproses ke rekening Anda"
			}
			return a, nil
		}
	}

	fields := withdrawFields()
	if a.withdrawFld >= len(fields) {
		a.withdrawFld = 0
	}
	switch m.String() {
	case "esc":
		a.withdrawWiz = nil
		return a, nil
	case "up":
		if a.withdrawFld > 0 {
			a.withdrawFld--
		}
		return a, nil
	case "down":
		if a.withdrawFld < len(fields)-1 {
			a.withdrawFld++
		}
		return a, nil
	case "enter":
		if parseAmount(a.withdrawWiz.Field(flows.FieldAmount)) > flows.WithdrawableIDR {
			a.status = "Nominal melebihi saldo"
			return a, nil
		}
		if a.withdrawWiz.Advance() == wizard.Submitted {
			a.payout = flows.NewWithdrawalSettlement(a.sched)
			a.payout.Submit()
		} else {
			a.status = "Masukkan nominal dulu"
		}
		return a, nil
	}
	editField(a.withdrawWiz, fields[a.withdrawFld], m)
	return a, nil
}

func (a *App) renderWithdrawCard() string {
	title := titleStyle.Render("Tarik Dana")
	if a.payout != nil {
		switch a.payout.Phase() {
		case wizard.PhaseProcessing:
			return title + "\n\n" + warnStyle.Render("Memproses penarikan...")
		case wizard.PhaseSettled:
			out := okStyle.Render("Penarikan berhasil!") + "\n\n"
			out += "Nominal   : " + amountStyle.Render(formatIDR(parseAmount(a.withdrawWiz.Field(flows.FieldAmount)))) + "\n"
			out += "Referensi : " + a.payout.Outcome().Reference + "\n\n"
			out += helpLine("enter", "Selesai")
			return out
		}
	}
	out := title + "\n"
	out += mutedStyle.Render("Saldo tersedia "+formatIDR(flows.WithdrawableIDR)) + "\n\n"
	for i, f := range withdrawFields() {
		out += renderField(a.withdrawWiz, f, i == a.withdrawFld) + "\n"
	}
	out += "\n" + helpLine("enter", "Tarik", "esc", "Batal")
	return out
}
