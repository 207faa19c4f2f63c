package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/nusahq/nusapp/internal/database/repository"
	"github.com/nusahq/nusapp/internal/flows"
	"github.com/nusahq/nusapp/internal/navigation"
	"github.com/nusahq/nusapp/internal/session"
	"github.com/nusahq/nusapp/internal/wizard"
)

// BalanceIDR is the demo wallet balance shown on customer surfaces.
const BalanceIDR = 2500000

func (a *App) renderHome() string {
	prof := a.ctrl.Profile()
	out := "Halo, " + focusStyle.Render(nonEmpty(prof.Name, "Kak")) + "!\n"
	out += "Saldo NusaPay: " + amountStyle.Render(formatIDR(BalanceIDR)) + "\n\n"
	out += titleStyle.Render("Layanan") + "\n"
	out += "  " + helpLine("o", "Nusa Ojeg", "b", "Nusa Mobil") + "\n"
	out += "  " + helpLine("k", "Nusa Kirim", "x", "Nusa Box") + "\n"
	out += "  " + helpLine("t", "Top Up", "f", "Transfer") + "\n\n"
	out += okStyle.Render("Promo: ") + "Pakai kode NUSAHEMAT50 untuk diskon 50%!"
	return out
}

func (a *App) handleHomeKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "o":
		a.openServiceFlow(session.FlowRide)
	case "b":
		a.openServiceFlow(session.FlowCar)
	case "k":
		a.openServiceFlow(session.FlowParcel)
	case "x":
		a.openServiceFlow(session.FlowCargo)
	case "t":
		return a, a.queueWalletAction(session.WalletTopUp)
	case "f":
		return a, a.queueWalletAction(session.WalletTransfer)
	}
	return a, nil
}

// queueWalletAction parks the request on the session and rides it into
// the wallet surface, where it is consumed exactly once.
func (a *App) queueWalletAction(kind session.WalletAction) tea.Cmd {
	a.ctrl.QueueWalletAction(kind)
	if a.ctrl.SetDestination(navigation.DestWallet) == session.Done {
		a.mountWallet()
	}
	return nil
}

// mountWallet runs whenever the wallet surface becomes active. A queued
// action opens its overlay here and nowhere else.
func (a *App) mountWallet() {
	kind, ok := a.ctrl.ConsumeWalletAction()
	if !ok {
		return
	}
	a.walletKind = kind
	a.walletWiz = flows.NewWalletAction()
	a.walletFld = 0
}

func (a *App) renderMarket() string {
	out := titleStyle.Render("NusaFood & Mart") + "\n"
	if a.marketSearch {
		out += "Cari: " + a.marketQuery + "▌\n"
	} else if a.marketQuery != "" {
		out += mutedStyle.Render("Hasil untuk: "+a.marketQuery) + "\n"
	}
	out += "\n"
	if len(a.products) == 0 {
		out += mutedStyle.Render("Tidak ada produk yang cocok.") + "\n"
	}
	for i, p := range a.products {
		marker := "  "
		if i == a.marketCursor && !a.marketSearch {
			marker = focusStyle.Render("▶ ")
		}
		out += fmt.Sprintf("%s%-24s %-11s  ★%.1f  %s\n",
			marker, p.Name, mutedStyle.Render(p.Category), p.Rating, amountStyle.Render(formatIDR(p.PriceIDR)))
	}
	out += "\n" + helpLine("/", "Cari", "enter", "Pesan", "↑↓", "Pilih")
	return out
}

func (a *App) handleMarketKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "/":
		a.marketSearch = true
		a.marketQuery = ""
	case "up", "k":
		if a.marketCursor > 0 {
			a.marketCursor--
		}
	case "down", "j":
		if a.marketCursor < len(a.products)-1 {
			a.marketCursor++
		}
	case "enter":
		if len(a.products) > 0 {
			a.status = a.products[a.marketCursor].Name + " ditambahkan ke pesanan"
		}
	case "esc":
		if a.marketQuery != "" {
			a.marketQuery = ""
			return a, a.loadProducts("")
		}
	}
	return a, nil
}

func (a *App) handleMarketSearchKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyEsc:
		a.marketSearch = false
		a.marketQuery = ""
		return a, a.loadProducts("")
	case tea.KeyEnter:
		a.marketSearch = false
		return a, a.loadProducts(trimmed(a.marketQuery))
	case tea.KeyBackspace, tea.KeyCtrlH:
		a.marketQuery = chop(a.marketQuery)
	case tea.KeySpace:
		a.marketQuery += " "
	case tea.KeyRunes:
		a.marketQuery += string(m.Runes)
	}
	return a, nil
}

func (a *App) renderWallet() string {
	out := titleStyle.Render("NusaPay") + "\n"
	out += "Saldo aktif: " + amountStyle.Render(formatIDR(BalanceIDR)) + "\n\n"

	filters := []struct{ key, id, label string }{
		{"s", "", "Semua"}, {"m", "IN", "Masuk"}, {"u", "OUT", "Keluar"},
	}
	for _, f := range filters {
		label := f.label
		if a.walletFilter == f.id {
			label = tabActiveStyle.Render(label)
		} else {
			label = tabIdleStyle.Render(label)
		}
		out += label + "  "
	}
	out += "\n\n"

	for _, t := range a.walletHistory {
		sign := dangerStyle.Render("-")
		if t.Direction == "IN" {
			sign = okStyle.Render("+")
		}
		out += fmt.Sprintf("  %-28s %-16s %s%s\n",
			t.Title, mutedStyle.Render(t.Occurred), sign, formatIDR(t.AmountIDR))
	}
	out += "\n" + helpLine("t", "Top Up", "f", "Transfer", "s/m/u", "Filter")
	return out
}

func (a *App) handleWalletKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "t":
		a.walletKind = session.WalletTopUp
		a.walletWiz = flows.NewWalletAction()
		a.walletFld = 0
	case "f":
		a.walletKind = session.WalletTransfer
		a.walletWiz = flows.NewWalletAction()
		a.walletFld = 0
	case "s":
		a.walletFilter = ""
		return a, a.loadWalletHistory("")
	case "m":
		a.walletFilter = "IN"
		return a, a.loadWalletHistory("IN")
	case "u":
		a.walletFilter = "OUT"
		return a, a.loadWalletHistory("OUT")
	}
	return a, nil
}

func walletFields(kind session.WalletAction) []formField {
	fields := []formField{
		{key: flows.FieldAmount, label: "Nominal (Rp)", digits: true},
	}
	if kind == session.WalletTransfer {
		fields = append(fields, formField{key: flows.FieldRecipient, label: "Nomor Tujuan", digits: true})
	}
	return append(fields, formField{key: flows.FieldMethod, label: "Metode", options: flows.PaymentMethods})
}

func (a *App) handleWalletActionKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.settlement != nil {
		switch a.settlement.Phase() {
		case wizard.PhaseProcessing:
			return a, nil // nothing to do but wait
		case wizard.PhaseSettled:
			if m.String() == "enter" {
				return a, a.finishWalletSettlement()
			}
			return a, nil
		}
	}

	fields := walletFields(a.walletKind)
	if a.walletFld >= len(fields) {
		a.walletFld = 0
	}
	switch m.String() {
	case "esc":
		a.walletWiz = nil
		a.walletKind = session.WalletNone
		return a, nil
	case "up":
		if a.walletFld > 0 {
			a.walletFld--
		}
		return a, nil
	case "down":
		if a.walletFld < len(fields)-1 {
			a.walletFld++
		}
		return a, nil
	case "enter":
		if a.walletWiz.Advance() == wizard.Submitted {
			a.settlement = flows.NewWalletSettlement(a.sched)
			a.settlement.Submit()
		} else {
			a.status = "Masukkan nominal dulu"
		}
		return a, nil
	}
	editField(a.walletWiz, fields[a.walletFld], m)
	return a, nil
}

// finishWalletSettlement records the settled action into the wallet
// history and closes the overlay.
func (a *App) finishWalletSettlement() tea.Cmd {
	out := a.settlement.Outcome()
	amount := parseAmount(a.walletWiz.Field(flows.FieldAmount))
	kind := a.walletKind

	a.settlement.Acknowledge()
	a.settlement = nil
	a.walletWiz = nil
	a.walletKind = session.WalletNone

	row := repository.WalletTransaction{
		ID:       uuid.NewString(),
		Occurred: "Hari ini",
		Category: "Top Up",
	}
	if kind == session.WalletTransfer {
		row.Title = "Transfer Keluar"
		row.AmountIDR = amount
		row.Direction = "OUT"
		row.Category = "Transfer"
	} else {
		row.Title = "Top Up via " + flows.PaymentMethods[0]
		row.AmountIDR = amount
		row.Direction = "IN"
	}
	return tea.Batch(
		func() tea.Msg {
			if err := a.repos.Wallet.Insert(a.ctx, row); err != nil {
				return errMsg{err}
			}
			return statusMsg("Transaksi " + out.Reference + " berhasil")
		},
		a.loadWalletHistory(a.walletFilter),
	)
}

func (a *App) renderWalletActionCard() string {
	heading := "Top Up Saldo"
	if a.walletKind == session.WalletTransfer {
		heading = "Transfer Saldo"
	}
	if a.settlement != nil {
		switch a.settlement.Phase() {
		case wizard.PhaseProcessing:
			return titleStyle.Render(heading) + "\n\n" +
				warnStyle.Render("Memproses transaksi...") + "\n" +
				mutedStyle.Render("Jangan tutup aplikasi.")
		case wizard.PhaseSettled:
			out := okStyle.Render("Berhasil!") + "\n\n"
			out += "Nominal   : " + amountStyle.Render(formatIDR(parseAmount(a.walletWiz.Field(flows.FieldAmount)))) + "\n"
			out += "Referensi : " + a.settlement.Outcome().Reference + "\n\n"
			out += helpLine("enter", "Selesai")
			return out
		}
	}
	out := titleStyle.Render(heading) + "\n\n"
	fields := walletFields(a.walletKind)
	for i, f := range fields {
		out += renderField(a.walletWiz, f, i == a.walletFld) + "\n"
	}
	out += "\n" + helpLine("enter", "Bayar", "esc", "Batal")
	return out
}

func parseAmount(s string) int64 {
	var v int64
	for _, r := range s {
		if r < '0' || r > '9' {
			continue
		}
		v = v*10 + int64(r-'0')
	}
	return v
}

func nonEmpty(s, fallback string) string {
	if trimmed(s) == "" {
		return fallback
	}
	return s
}
