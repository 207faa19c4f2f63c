package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nusahq/nusapp/internal/flows"
	"github.com/nusahq/nusapp/internal/session"
	"github.com/nusahq/nusapp/internal/wizard"
)

func flowTitle(kind session.ServiceFlow) string {
	switch kind {
	case session.FlowRide:
		return "Nusa Ojeg"
	case session.FlowCar:
		return "Nusa Mobil"
	case session.FlowParcel:
		return "Nusa Kirim"
	case session.FlowCargo:
		return "Nusa Box"
	}
	return "Layanan"
}

func isRide(kind session.ServiceFlow) bool {
	return kind == session.FlowRide || kind == session.FlowCar
}

func (a *App) openServiceFlow(kind session.ServiceFlow) {
	if a.ctrl.OpenServiceFlow(kind) != session.Done {
		return
	}
	a.flowKind = kind
	if isRide(kind) {
		a.flow = flows.NewRide(kind)
	} else {
		a.flow = flows.NewLogistics(kind)
	}
	a.flowField = 0
	a.status = ""
}

func (a *App) closeServiceFlow() {
	a.flow = nil
	a.flowKind = session.FlowNone
	a.flowField = 0
	a.placement = nil
	a.ctrl.CloseServiceFlow()
}

func fleetNames(opts []flows.FleetOption) []string {
	names := make([]string, len(opts))
	for i, o := range opts {
		names[i] = o.Name
	}
	return names
}

func (a *App) fleetOptions() []flows.FleetOption {
	if isRide(a.flowKind) {
		return flows.RideFleet()
	}
	return flows.LogisticsFleet(a.flowKind)
}

func (a *App) flowFields() []formField {
	switch a.flow.Step() {
	case flows.StepDestination, flows.StepAddress:
		return []formField{
			{key: flows.FieldPickup, label: "Titik Jemput"},
			{key: flows.FieldDestination, label: "Tujuan"},
		}
	case flows.StepDetail:
		return []formField{
			{key: flows.FieldWeight, label: "Berat (kg)", digits: true},
			{key: flows.FieldParcelKind, label: "Isi Paket", options: flows.ParcelCategories},
			{key: flows.FieldNote, label: "Catatan"},
		}
	case flows.StepFleet, flows.StepConfirm:
		return []formField{
			{key: flows.FieldFleet, label: "Armada", options: fleetNames(a.fleetOptions())},
		}
	}
	return nil
}

func (a *App) handleFlowKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.placement != nil {
		switch a.placement.Phase() {
		case wizard.PhaseProcessing:
			return a, nil
		case wizard.PhaseSettled:
			if m.String() == "enter" {
				ref := a.placement.Outcome().Reference
				a.placement.Acknowledge()
				a.closeServiceFlow()
				a.status = "Pesanan " + ref + " sedang dijemput kurir"
			}
			return a, nil
		}
	}

	// tracking screen has its own keys
	if a.flow.Step() == flows.StepTrack {
		switch m.String() {
		case "enter":
			if a.flow.Advance() == wizard.Submitted {
				a.closeServiceFlow()
				a.status = "Perjalanan selesai. Terima kasih!"
			}
		case "x":
			flows.CancelDispatch(a.flow)
			a.flowField = 0
			a.status = "Pencarian dibatalkan"
		}
		return a, nil
	}

	fields := a.flowFields()
	if a.flowField >= len(fields) {
		a.flowField = 0
	}
	switch m.String() {
	case "esc":
		if a.flow.Retreat() == wizard.Exited {
			a.closeServiceFlow()
		}
		a.flowField = 0
		return a, nil
	case "up":
		if a.flowField > 0 {
			a.flowField--
		}
		return a, nil
	case "down":
		if a.flowField < len(fields)-1 {
			a.flowField++
		}
		return a, nil
	case "enter":
		switch a.flow.Advance() {
		case wizard.Submitted:
			// logistics confirm hands off to the order placement
			a.placement = flows.NewOrderPlacement(a.sched)
			a.placement.Submit()
		case wizard.Advanced:
			a.flowField = 0
			a.status = ""
		case wizard.Blocked:
			a.status = "Isi tujuan dulu"
		}
		return a, nil
	}
	if len(fields) > 0 {
		editField(a.flow, fields[a.flowField], m)
	}
	return a, nil
}

func (a *App) renderFlowCard() string {
	title := titleStyle.Render(flowTitle(a.flowKind))

	if a.placement != nil {
		switch a.placement.Phase() {
		case wizard.PhaseProcessing:
			return title + "\n\n" + warnStyle.Render("Mencarikan kurir terbaik...") + "\n" +
				mutedStyle.Render("Mohon tunggu sebentar.")
		case wizard.PhaseSettled:
			out := okStyle.Render("Pesanan dibuat!") + "\n\n"
			out += "Nomor Order : " + a.placement.Outcome().Reference + "\n"
			out += "Armada      : " + a.flow.Field(flows.FieldFleet) + "\n\n"
			out += helpLine("enter", "Selesai")
			return out
		}
	}

	if a.flow.Step() == flows.StepTrack {
		out := title + "\n" + mutedStyle.Render(stepCaption(a.flow)) + "\n\n"
		out += okStyle.Render("Driver ditemukan!") + "\n"
		out += "Agus Salim · B 3021 XYZ · ★4.9\n"
		out += "Menuju " + a.flow.Field(flows.FieldDestination) + "\n\n"
		out += helpLine("enter", "Selesai", "x", "Batalkan")
		return out
	}

	out := title + "\n" + mutedStyle.Render(stepCaption(a.flow)) + "\n\n"
	for i, f := range a.flowFields() {
		out += renderField(a.flow, f, i == a.flowField) + "\n"
	}
	if step := a.flow.Step(); step == flows.StepFleet || step == flows.StepConfirm {
		out += "\n"
		for _, opt := range a.fleetOptions() {
			line := "  " + opt.Name + " · " + opt.Desc + " · " + formatIDR(opt.PriceIDR)
			if opt.Name == a.flow.Field(flows.FieldFleet) {
				line = focusStyle.Render(line)
			} else {
				line = mutedStyle.Render(line)
			}
			out += line + "\n"
		}
	}
	out += "\n" + helpLine("enter", "Lanjut", "esc", "Kembali")
	return out
}
