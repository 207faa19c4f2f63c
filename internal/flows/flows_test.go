package flows

import (
	"strings"
	"testing"

	"github.com/nusahq/nusapp/internal/session"
	"github.com/nusahq/nusapp/internal/wizard"
)

func TestRegistrationStepsPerRole(t *testing.T) {
	cases := []struct {
		role session.Role
		want int
	}{
		{session.RoleCustomer, 1},
		{session.RoleAdmin, 1},
		{session.RoleDriver, 2},
		{session.RoleMerchant, 2},
	}
	for _, c := range cases {
		if got := len(RegistrationSteps(c.role)); got != c.want {
			t.Fatalf("%s: %d steps, want %d", c.role, got, c.want)
		}
	}
}

func TestDriverRegistrationGatesPlate(t *testing.T) {
	w := NewRegistration(session.RoleDriver)
	w.Update(FieldName, "Agus Salim")
	w.Update(FieldPhone, "08556677889")
	if got := w.Advance(); got != wizard.Advanced {
		t.Fatalf("account step advance = %v", got)
	}
	if w.Step() != StepVehicle {
		t.Fatalf("on step %q, want vehicle", w.Step())
	}
	// vehicle type is prefilled; the empty plate still blocks
	if got := w.Advance(); got != wizard.Blocked {
		t.Fatalf("vehicle step with empty plate = %v, want Blocked", got)
	}
	w.Update(FieldPlate, "B 1234 ABC")
	if got := w.Advance(); got != wizard.Submitted {
		t.Fatalf("vehicle step advance = %v, want Submitted", got)
	}
}

func TestAdminRegistrationNeedsStaffKey(t *testing.T) {
	w := NewRegistration(session.RoleAdmin)
	w.Update(FieldName, "Rina")
	w.Update(FieldPhone, "0811")
	if got := w.Advance(); got != wizard.Blocked {
		t.Fatalf("admin without staff key = %v, want Blocked", got)
	}
	w.Update(FieldStaffKey, "NUSA-OPS")
	if got := w.Advance(); got != wizard.Submitted {
		t.Fatalf("admin with staff key = %v, want Submitted", got)
	}
}

func TestRegistrationProfileFromForm(t *testing.T) {
	w := NewRegistration(session.RoleCustomer)
	w.Update(FieldName, "Budi")
	w.Update(FieldPhone, "0812")
	w.Update(FieldEmail, "budi@mail.com")
	p := RegistrationProfile(w.Form())
	if p.Name != "Budi" || p.Phone != "0812" || p.Email != "budi@mail.com" {
		t.Fatalf("profile = %+v", p)
	}
}

func TestRideFlowDestinationGate(t *testing.T) {
	w := NewRide(session.FlowRide)
	if w.Field(FieldPickup) == "" {
		t.Fatalf("pickup not prefilled")
	}
	if w.Field(FieldFleet) != "Nusa Ojeg" {
		t.Fatalf("ride default fleet = %q", w.Field(FieldFleet))
	}
	if got := w.Advance(); got != wizard.Blocked {
		t.Fatalf("empty destination advance = %v, want Blocked", got)
	}
	w.Update(FieldDestination, "Blok M")
	if got := w.Advance(); got != wizard.Advanced {
		t.Fatalf("destination advance = %v", got)
	}
	if got := w.Advance(); got != wizard.Advanced {
		t.Fatalf("fleet advance = %v", got)
	}
	if w.Step() != StepTrack {
		t.Fatalf("on %q, want track", w.Step())
	}
}

func TestCarFlowDefaultsToMobilFleet(t *testing.T) {
	w := NewRide(session.FlowCar)
	if w.Field(FieldFleet) != "Nusa Mobil" {
		t.Fatalf("car default fleet = %q", w.Field(FieldFleet))
	}
}

func TestCancelDispatchRestartsDestination(t *testing.T) {
	w := NewRide(session.FlowRide)
	w.Update(FieldDestination, "Kemang")
	w.Advance()
	w.Advance()
	CancelDispatch(w)
	if w.Step() != StepDestination {
		t.Fatalf("after cancel on %q, want destination", w.Step())
	}
	if w.Field(FieldDestination) != "Kemang" {
		t.Fatalf("cancel dropped the form")
	}
}

func TestLogisticsFleetByKind(t *testing.T) {
	if got := len(LogisticsFleet(session.FlowParcel)); got != 1 {
		t.Fatalf("parcel fleet size = %d", got)
	}
	if got := len(LogisticsFleet(session.FlowCargo)); got != 2 {
		t.Fatalf("cargo fleet size = %d", got)
	}
}

func TestLogisticsPlacementReference(t *testing.T) {
	sched := &wizard.ManualScheduler{}
	act := NewOrderPlacement(sched)
	if !act.Submit() {
		t.Fatalf("placement submit refused")
	}
	sched.Fire()
	if ref := act.Outcome().Reference; !strings.HasPrefix(ref, "ORD-") {
		t.Fatalf("placement reference = %q", ref)
	}
}

func TestWalletActionAmountGate(t *testing.T) {
	w := NewWalletAction()
	if w.Field(FieldMethod) == "" {
		t.Fatalf("method not prefilled")
	}
	if got := w.Advance(); got != wizard.Blocked {
		t.Fatalf("empty amount advance = %v, want Blocked", got)
	}
	w.Update(FieldAmount, "50000")
	if got := w.Advance(); got != wizard.Submitted {
		t.Fatalf("amount advance = %v, want Submitted", got)
	}
}

func TestSettlementPrefixes(t *testing.T) {
	sched := &wizard.ManualScheduler{}

	tx := NewWalletSettlement(sched)
	tx.Submit()
	wd := NewWithdrawalSettlement(sched)
	wd.Submit()
	sched.Fire()

	if ref := tx.Outcome().Reference; !strings.HasPrefix(ref, "TX-") {
		t.Fatalf("wallet reference = %q", ref)
	}
	if ref := wd.Outcome().Reference; !strings.HasPrefix(ref, "TXW-") {
		t.Fatalf("withdrawal reference = %q", ref)
	}
}

func TestWithdrawalPrefilled(t *testing.T) {
	w := NewWithdrawal()
	if w.Field(FieldAmount) != "425000" {
		t.Fatalf("withdrawal amount = %q", w.Field(FieldAmount))
	}
	if w.Field(FieldMethod) != PayoutMethods[0] {
		t.Fatalf("withdrawal method = %q", w.Field(FieldMethod))
	}
	if got := w.Advance(); got != wizard.Submitted {
		t.Fatalf("prefilled withdrawal advance = %v, want Submitted", got)
	}
}
