package navigation_test

import (
	"testing"

	"github.com/nusahq/nusapp/internal/navigation"
	"github.com/nusahq/nusapp/internal/session"
)

func TestEveryRoleEndsOnProfile(t *testing.T) {
	var nav navigation.Navigator
	for _, role := range session.AllRoles {
		tabs := nav.ReachableFor(role)
		if len(tabs) < 2 {
			t.Fatalf("%s: surface too small: %v", role, tabs)
		}
		if last := tabs[len(tabs)-1]; last != navigation.DestProfile {
			t.Fatalf("%s: last tab = %q, want profile", role, last)
		}
	}
}

func TestDefaultIsReachable(t *testing.T) {
	var nav navigation.Navigator
	for _, role := range session.AllRoles {
		def := nav.DefaultFor(role)
		if !nav.Reachable(role, def) {
			t.Fatalf("%s: default %q not in surface", role, def)
		}
	}
}

func TestUnknownRoleFallsBackToCustomer(t *testing.T) {
	var nav navigation.Navigator
	got := nav.ReachableFor(session.Role("ghost"))
	want := nav.ReachableFor(session.RoleCustomer)
	if len(got) != len(want) {
		t.Fatalf("fallback surface = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("fallback surface = %v, want %v", got, want)
		}
	}
}

func TestSurfacesAreRoleScoped(t *testing.T) {
	var nav navigation.Navigator
	if nav.Reachable(session.RoleCustomer, navigation.DestOrders) {
		t.Fatalf("customer must not reach the merchant order queue")
	}
	if nav.Reachable(session.RoleDriver, navigation.DestAdmin) {
		t.Fatalf("driver must not reach the admin panel")
	}
	if !nav.Reachable(session.RoleAdmin, navigation.DestConfig) {
		t.Fatalf("admin should reach config")
	}
}

func TestLabelsCovered(t *testing.T) {
	var nav navigation.Navigator
	for _, role := range session.AllRoles {
		for _, id := range nav.ReachableFor(role) {
			if navigation.Label(id) == "" {
				t.Fatalf("destination %q has no caption", id)
			}
		}
	}
}
