package session_test

import (
	"testing"

	"github.com/nusahq/nusapp/internal/navigation"
	"github.com/nusahq/nusapp/internal/session"
)

func newController() *session.Controller {
	return session.NewController(navigation.Navigator{})
}

func TestLoginLandsOnRoleDefault(t *testing.T) {
	c := newController()
	c.Login(session.RoleDriver, session.Profile{Name: "Agus"})

	snap := c.Snapshot()
	if !snap.Authenticated {
		t.Fatalf("expected authenticated session")
	}
	if snap.Role != session.RoleDriver {
		t.Fatalf("role = %q, want driver", snap.Role)
	}
	if snap.Destination != navigation.DestDashboard {
		t.Fatalf("destination = %q, want %q", snap.Destination, navigation.DestDashboard)
	}
	if c.Profile().Name != "Agus" {
		t.Fatalf("profile name = %q", c.Profile().Name)
	}
}

func TestLogoutNeedsConfirmation(t *testing.T) {
	c := newController()
	c.Login(session.RoleCustomer, session.Profile{Name: "Budi"})
	c.OpenServiceFlow(session.FlowRide)

	if got := c.Logout(false); got != session.ConfirmationRequired {
		t.Fatalf("unconfirmed logout = %v, want ConfirmationRequired", got)
	}
	if !c.Snapshot().Authenticated {
		t.Fatalf("unconfirmed logout must not mutate the session")
	}

	fired := 0
	c.OnReset = func() { fired++ }
	if got := c.Logout(true); got != session.Done {
		t.Fatalf("confirmed logout = %v, want Done", got)
	}
	snap := c.Snapshot()
	if snap.Authenticated || snap.ServiceFlow != session.FlowNone || snap.Destination != "" {
		t.Fatalf("logout left residue: %+v", snap)
	}
	if c.Profile() != (session.Profile{}) {
		t.Fatalf("profile not cleared: %+v", c.Profile())
	}
	if fired != 1 {
		t.Fatalf("OnReset fired %d times, want 1", fired)
	}

	// already signed out: confirmed or not, nothing changes
	if got := c.Logout(true); got != session.Done {
		t.Fatalf("repeat logout = %v, want Done", got)
	}
	if fired != 2 {
		t.Fatalf("OnReset fired %d times after repeat, want 2", fired)
	}
}

func TestSetDestinationGuardsReachability(t *testing.T) {
	c := newController()
	c.Login(session.RoleCustomer, session.Profile{})

	if got := c.SetDestination(navigation.DestAdmin); got != session.Ignored {
		t.Fatalf("customer reaching admin = %v, want Ignored", got)
	}
	if c.Snapshot().Destination != navigation.DestHome {
		t.Fatalf("failed request moved the destination to %q", c.Snapshot().Destination)
	}
	if got := c.SetDestination(navigation.DestWallet); got != session.Done {
		t.Fatalf("customer reaching wallet = %v, want Done", got)
	}
}

func TestSwitchRoleResetsFlows(t *testing.T) {
	c := newController()
	c.Login(session.RoleCustomer, session.Profile{Name: "Budi"})
	c.OpenServiceFlow(session.FlowCargo)
	c.QueueWalletAction(session.WalletTopUp)

	if got := c.SwitchRole(session.RoleCustomer, false); got != session.Ignored {
		t.Fatalf("switch to current role = %v, want Ignored", got)
	}
	if got := c.SwitchRole(session.RoleMerchant, false); got != session.ConfirmationRequired {
		t.Fatalf("unconfirmed switch = %v, want ConfirmationRequired", got)
	}
	if c.Snapshot().Role != session.RoleCustomer {
		t.Fatalf("unconfirmed switch changed role")
	}

	if got := c.SwitchRole(session.RoleMerchant, true); got != session.Done {
		t.Fatalf("confirmed switch = %v, want Done", got)
	}
	snap := c.Snapshot()
	if snap.Role != session.RoleMerchant || snap.Destination != navigation.DestStore {
		t.Fatalf("switch landed on %q/%q", snap.Role, snap.Destination)
	}
	if snap.ServiceFlow != session.FlowNone || snap.WalletAction != session.WalletNone {
		t.Fatalf("switch leaked flows: %+v", snap)
	}
	if c.Profile().Name != "Budi" {
		t.Fatalf("switch dropped the profile")
	}
}

func TestServiceFlowReplacesNotStacks(t *testing.T) {
	c := newController()
	c.Login(session.RoleCustomer, session.Profile{})

	c.OpenServiceFlow(session.FlowRide)
	c.OpenServiceFlow(session.FlowParcel)
	if got := c.Snapshot().ServiceFlow; got != session.FlowParcel {
		t.Fatalf("service flow = %q, want parcel", got)
	}
	c.CloseServiceFlow()
	if got := c.Snapshot().ServiceFlow; got != session.FlowNone {
		t.Fatalf("service flow after close = %q", got)
	}
}

func TestWalletActionConsumedOnce(t *testing.T) {
	c := newController()
	c.Login(session.RoleCustomer, session.Profile{})
	c.QueueWalletAction(session.WalletTransfer)

	kind, ok := c.ConsumeWalletAction()
	if !ok || kind != session.WalletTransfer {
		t.Fatalf("first consume = (%q, %v)", kind, ok)
	}
	if _, ok := c.ConsumeWalletAction(); ok {
		t.Fatalf("second consume should find nothing")
	}
}
