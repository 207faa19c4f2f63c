package tui

import (
	"testing"

	"github.com/nusahq/nusapp/internal/adminops"
	"github.com/nusahq/nusapp/internal/orders"
	"github.com/nusahq/nusapp/internal/wizard"
)

func TestFormatIDR(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "Rp 0"},
		{950, "Rp 950"},
		{35000, "Rp 35.000"},
		{2500000, "Rp 2.500.000"},
		{-12000, "-Rp 12.000"},
	}
	for _, c := range cases {
		if got := formatIDR(c.in); got != c.want {
			t.Fatalf("formatIDR(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestDigitIndexBounds(t *testing.T) {
	if idx, ok := digitIndex("1", 4); !ok || idx != 0 {
		t.Fatalf("digitIndex(1) = (%d, %v)", idx, ok)
	}
	if idx, ok := digitIndex("4", 4); !ok || idx != 3 {
		t.Fatalf("digitIndex(4) = (%d, %v)", idx, ok)
	}
	if _, ok := digitIndex("5", 4); ok {
		t.Fatalf("digitIndex beyond tabs accepted")
	}
	if _, ok := digitIndex("0", 4); ok {
		t.Fatalf("digitIndex(0) accepted")
	}
	if _, ok := digitIndex("enter", 4); ok {
		t.Fatalf("digitIndex(enter) accepted")
	}
}

func TestTabCycling(t *testing.T) {
	tabs := []string{"home", "market", "wallet", "profile"}
	if got := nextIndex(tabs, "wallet"); got != 3 {
		t.Fatalf("nextIndex = %d", got)
	}
	if got := nextIndex(tabs, "profile"); got != 0 {
		t.Fatalf("nextIndex wrap = %d", got)
	}
	if got := prevIndex(tabs, "home"); got != 3 {
		t.Fatalf("prevIndex wrap = %d", got)
	}
	if got := nextIndex(tabs, "ghost"); got != 0 {
		t.Fatalf("nextIndex unknown = %d", got)
	}
}

func TestCycleOption(t *testing.T) {
	opts := []string{"Motor", "Mobil", "Box"}
	if got := cycleOption(opts, "Motor", 1); got != "Mobil" {
		t.Fatalf("cycle forward = %q", got)
	}
	if got := cycleOption(opts, "Motor", -1); got != "Box" {
		t.Fatalf("cycle backward = %q", got)
	}
	if got := cycleOption(opts, "unknown", 1); got != "Mobil" {
		t.Fatalf("cycle from unknown = %q", got)
	}
}

func TestParseAmountIgnoresNoise(t *testing.T) {
	if got := parseAmount("50.000"); got != 50000 {
		t.Fatalf("parseAmount = %d", got)
	}
	if got := parseAmount(""); got != 0 {
		t.Fatalf("parseAmount empty = %d", got)
	}
}

func TestChopHandlesMultibyte(t *testing.T) {
	if got := chop("ojég"); got != "ojé" {
		t.Fatalf("chop = %q", got)
	}
	if got := chop(""); got != "" {
		t.Fatalf("chop empty = %q", got)
	}
}

func TestEditFieldDigitsOnly(t *testing.T) {
	w := wizard.New([]wizard.Step{"s"}, nil)
	f := formField{key: "amount", digits: true}

	if ok := editField(w, f, runesKey("12a")); ok {
		t.Fatalf("non-digit input accepted")
	}
	if !editField(w, f, runesKey("125")) {
		t.Fatalf("digit input rejected")
	}
	if got := w.Field("amount"); got != "125" {
		t.Fatalf("amount = %q", got)
	}
}

func demoApp() *App {
	sched := &wizard.ManualScheduler{}
	return &App{
		orders:   orders.NewQueue(sched, orders.AcceptLinger, orders.Seed()),
		verify:   adminops.NewVerificationQueue(adminops.SeedApplications()),
		vouchers: adminops.NewVoucherBook(adminops.SeedVouchers()),
		dir:      adminops.NewDirectory(nil),
	}
}

func TestRenderLeavesCursorsAlone(t *testing.T) {
	a := demoApp()
	a.orderCursor, a.verCursor, a.userCursor, a.vchCursor = 99, 99, 99, 99

	_ = a.renderOrders()
	_ = a.renderAdminHome()
	_ = a.renderUsers()
	_ = a.renderConfig()

	if a.orderCursor != 99 || a.verCursor != 99 || a.userCursor != 99 || a.vchCursor != 99 {
		t.Fatalf("render mutated cursors: %d %d %d %d",
			a.orderCursor, a.verCursor, a.userCursor, a.vchCursor)
	}
}

func TestHandlersClampStaleCursors(t *testing.T) {
	a := demoApp()
	a.orderCursor, a.verCursor, a.vchCursor = 99, 99, 99

	a.handleOrdersKey(runesKey("a"))
	if a.orderCursor != 0 {
		t.Fatalf("order cursor = %d, want 0", a.orderCursor)
	}
	if got := a.orders.Active()[0].Status; got != orders.StatusAccepted {
		t.Fatalf("first order status = %q, want accepted", got)
	}

	a.handleAdminHomeKey(runesKey("j"))
	if a.verCursor >= len(a.verify.Pending()) {
		t.Fatalf("verification cursor = %d out of range", a.verCursor)
	}
	a.handleConfigKey(runesKey("t"))
	if a.vchCursor != 0 {
		t.Fatalf("voucher cursor = %d, want 0", a.vchCursor)
	}
}
