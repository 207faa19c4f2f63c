package flows

import (
	"github.com/nusahq/nusapp/internal/session"
	"github.com/nusahq/nusapp/internal/wizard"
)

// Ride booking steps: enter the destination, pick a fleet option, then
// the dispatch/track stage.
const (
	StepDestination wizard.Step = "destination"
	StepFleet       wizard.Step = "fleet"
	StepTrack       wizard.Step = "track"
)

// Shared ride/logistics form fields.
const (
	FieldPickup      = "pickup"
	FieldDestination = "destination"
	FieldFleet       = "fleet"
	FieldWeight      = "weight"
	FieldParcelKind  = "parcel_category"
	FieldNote        = "note"
)

// FleetOption is one selectable vehicle class with its flat fare.
type FleetOption struct {
	Name     string
	Desc     string
	PriceIDR int64
}

// RideFleet lists the ride-hailing options in display order.
func RideFleet() []FleetOption {
	return []FleetOption{
		{Name: "Nusa Ojeg", Desc: "Paling cepat", PriceIDR: 12000},
		{Name: "Nusa Mobil", Desc: "Nyaman & ber-AC", PriceIDR: 28000},
		{Name: "Nusa XL", Desc: "Hingga 6 orang", PriceIDR: 42000},
	}
}

// NewRide builds the booking wizard for a ride service flow. The pickup
// point is fixed to the device location placeholder; the default fleet
// follows which shortcut launched the flow.
func NewRide(kind session.ServiceFlow) *wizard.Wizard {
	w := wizard.New([]wizard.Step{StepDestination, StepFleet, StepTrack}, rideValidity)
	w.Update(FieldPickup, "Grand Indonesia, Jakarta")
	if kind == session.FlowCar {
		w.Update(FieldFleet, "Nusa Mobil")
	} else {
		w.Update(FieldFleet, "Nusa Ojeg")
	}
	return w
}

func rideValidity(step wizard.Step, form wizard.Form) bool {
	if step == StepDestination {
		return filled(form, FieldDestination)
	}
	return true
}

// CancelDispatch aborts the searching-for-driver stage and restarts the
// wizard at destination entry, mirroring the cancel button on the track
// screen. Form data survives so the rider can adjust rather than retype.
func CancelDispatch(w *wizard.Wizard) {
	w.Jump(StepDestination)
}
