package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nusahq/nusapp/internal/orders"
	"github.com/nusahq/nusapp/internal/session"
)

func (a *App) renderStore() string {
	out := titleStyle.Render("Toko Saya") + "\n"
	out += mutedStyle.Render("Ringkasan hari ini") + "\n\n"
	out += "  Omzet        " + amountStyle.Render(formatIDR(1250000)) + "\n"
	out += "  Pesanan      24\n"
	out += "  Rating toko  ★4.8\n\n"
	out += titleStyle.Render("Menu Terlaris") + "\n"
	for _, p := range a.products {
		if p.MerchantID != "m1" && p.MerchantID != "m2" {
			continue
		}
		out += fmt.Sprintf("  %-24s %s\n", p.Name, amountStyle.Render(formatIDR(p.PriceIDR)))
	}
	return out
}

func (a *App) handleStoreKey(_ tea.KeyMsg) (tea.Model, tea.Cmd) {
	return a, nil
}

func (a *App) renderOrders() string {
	out := titleStyle.Render("Pesanan Masuk") + "\n\n"
	if a.orders == nil || a.orders.Len() == 0 {
		out += mutedStyle.Render("Belum ada pesanan baru.") + "\n"
		return out
	}
	records := a.orders.Active()
	cursor := clampCursor(a.orderCursor, len(records))
	for i, r := range records {
		marker := "  "
		if i == cursor {
			marker = focusStyle.Render("▶ ")
		}
		badge := warnStyle.Render(string(r.Status))
		if r.Status == orders.StatusAccepted {
			badge = okStyle.Render(string(r.Status))
		}
		out += fmt.Sprintf("%s%s  %-10s %s\n", marker, r.ID, r.Customer, badge)
		out += "    " + r.Items + "\n"
		out += "    " + amountStyle.Render(formatIDR(r.TotalIDR)) + mutedStyle.Render("  ·  "+r.Age) + "\n"
	}
	out += "\n" + helpLine("a", "Terima", "x", "Tolak", "↑↓", "Pilih")
	return out
}

func (a *App) handleOrdersKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.orders == nil {
		return a, nil
	}
	records := a.orders.Active()
	if len(records) == 0 {
		return a, nil
	}
	a.orderCursor = clampCursor(a.orderCursor, len(records))
	current := records[a.orderCursor]

	switch m.String() {
	case "up", "k":
		if a.orderCursor > 0 {
			a.orderCursor--
		}
	case "down", "j":
		if a.orderCursor < len(records)-1 {
			a.orderCursor++
		}
	case "a":
		if a.orders.Accept(current.ID) {
			a.status = "Pesanan " + current.ID + " diterima, siapkan pesanan"
		}
	case "x":
		if a.orders.Reject(current.ID, false) == session.ConfirmationRequired {
			id := current.ID
			a.confirm = &confirmPrompt{
				title: "Tolak pesanan " + id + "?",
				body:  "Pelanggan akan menerima pengembalian dana.",
				accept: func() tea.Cmd {
					if a.orders.Reject(id, true) == session.Done {
						a.status = "Pesanan " + id + " ditolak"
					}
					return nil
				},
			}
		}
	}
	return a, nil
}
