package wizard

import (
	"strings"
	"testing"
	"time"
)

func TestActionSettlesOnceThroughScheduler(t *testing.T) {
	sched := &ManualScheduler{}
	act := NewAction(sched, 2*time.Second, "TX-")

	settles := 0
	act.OnSettle = func(o Outcome) {
		settles++
		if !o.Success {
			t.Fatalf("settlement outcome not successful: %+v", o)
		}
	}

	if act.Phase() != PhaseInput {
		t.Fatalf("new action phase = %v", act.Phase())
	}
	if !act.Submit() {
		t.Fatalf("Submit from Input refused")
	}
	if act.Phase() != PhaseProcessing {
		t.Fatalf("phase after submit = %v", act.Phase())
	}
	if act.Acknowledge() {
		t.Fatalf("Acknowledge honored before settlement")
	}

	// double submit while processing is a no-op
	if act.Submit() {
		t.Fatalf("Submit from Processing accepted")
	}

	if n := sched.Fire(); n != 1 {
		t.Fatalf("fired %d callbacks, want 1", n)
	}
	if act.Phase() != PhaseSettled {
		t.Fatalf("phase after fire = %v", act.Phase())
	}
	ref := act.Outcome().Reference
	if !strings.HasPrefix(ref, "TX-") || len(ref) != len("TX-")+6 {
		t.Fatalf("reference = %q", ref)
	}

	// the double submit above must not have queued a second settle
	if n := sched.Fire(); n != 0 {
		t.Fatalf("stray callbacks: %d", n)
	}
	if settles != 1 {
		t.Fatalf("settled %d times, want 1", settles)
	}
	if !act.Acknowledge() {
		t.Fatalf("Acknowledge refused after settlement")
	}
}

func TestReferenceIsOpaqueUppercase(t *testing.T) {
	a := NewReference("ORD-")
	b := NewReference("ORD-")
	if a == b {
		t.Fatalf("references collide: %q", a)
	}
	for _, ref := range []string{a, b} {
		if !strings.HasPrefix(ref, "ORD-") {
			t.Fatalf("reference %q lacks prefix", ref)
		}
		body := strings.TrimPrefix(ref, "ORD-")
		if body != strings.ToUpper(body) {
			t.Fatalf("reference %q not uppercase", ref)
		}
	}
}
