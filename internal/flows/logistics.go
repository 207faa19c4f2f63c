package flows

import (
	"time"

	"github.com/nusahq/nusapp/internal/session"
	"github.com/nusahq/nusapp/internal/wizard"
)

// Logistics booking steps: delivery addresses, package detail, fleet
// confirmation. The confirm step's submit runs an order-placement
// settlement.
const (
	StepAddress wizard.Step = "address"
	StepDetail  wizard.Step = "detail"
	StepConfirm wizard.Step = "confirm"
)

// ParcelCategories are the declared package contents options.
var ParcelCategories = []string{"Dokumen", "Makanan", "Pakaian", "Elektronik", "Pecah Belah"}

// LogisticsFleet lists the courier options for a logistics kind.
func LogisticsFleet(kind session.ServiceFlow) []FleetOption {
	if kind == session.FlowCargo {
		return []FleetOption{
			{Name: "Nusa Pickup (Bak)", Desc: "Kapasitas hingga 500kg", PriceIDR: 85000},
			{Name: "Nusa Box (Tertutup)", Desc: "Kapasitas hingga 800kg", PriceIDR: 125000},
		}
	}
	return []FleetOption{
		{Name: "Nusa Kirim (Motor)", Desc: "Kapasitas hingga 5kg", PriceIDR: 15000},
	}
}

// NewLogistics builds the parcel/cargo booking wizard.
func NewLogistics(kind session.ServiceFlow) *wizard.Wizard {
	w := wizard.New([]wizard.Step{StepAddress, StepDetail, StepConfirm}, logisticsValidity)
	w.Update(FieldPickup, "Lokasi Saya Saat Ini")
	w.Update(FieldWeight, "1")
	w.Update(FieldParcelKind, ParcelCategories[0])
	w.Update(FieldFleet, LogisticsFleet(kind)[0].Name)
	return w
}

func logisticsValidity(step wizard.Step, form wizard.Form) bool {
	if step == StepAddress {
		return filled(form, FieldDestination)
	}
	return true
}

// NewOrderPlacement is the settlement run when the confirm step submits.
func NewOrderPlacement(sched wizard.Scheduler) *wizard.Action {
	return wizard.NewAction(sched, ProcessingDelay, "ORD-")
}

// ProcessingDelay is the fixed simulated backend latency shared by every
// settlement in the app.
const ProcessingDelay = 2 * time.Second
