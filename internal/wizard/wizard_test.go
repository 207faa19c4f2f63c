package wizard

import "testing"

func gatedWizard() *Wizard {
	return New([]Step{"one", "two", "three"}, func(step Step, form Form) bool {
		return form[string(step)] != ""
	})
}

func TestAdvanceBlocksSilently(t *testing.T) {
	w := gatedWizard()
	if got := w.Advance(); got != Blocked {
		t.Fatalf("Advance on empty form = %v, want Blocked", got)
	}
	if w.Index() != 0 {
		t.Fatalf("blocked advance moved the pointer to %d", w.Index())
	}
	if got := w.Field("one"); got != "" {
		t.Fatalf("blocked advance touched the form: %q", got)
	}
}

func TestAdvanceThroughToSubmitted(t *testing.T) {
	w := gatedWizard()
	w.Update("one", "x")
	if got := w.Advance(); got != Advanced {
		t.Fatalf("step 1 advance = %v", got)
	}
	w.Update("two", "x")
	if got := w.Advance(); got != Advanced {
		t.Fatalf("step 2 advance = %v", got)
	}
	if !w.Last() {
		t.Fatalf("expected last step, on %q", w.Step())
	}
	w.Update("three", "x")
	if got := w.Advance(); got != Submitted {
		t.Fatalf("last step advance = %v, want Submitted", got)
	}
	// submission does not walk off the end
	if w.Step() != "three" {
		t.Fatalf("pointer left the last step: %q", w.Step())
	}
}

func TestRetreatNeverGates(t *testing.T) {
	w := gatedWizard()
	w.Update("one", "x")
	w.Advance()
	w.Update("one", "") // invalidate the step behind us
	if got := w.Retreat(); got != Retreated {
		t.Fatalf("Retreat = %v, want Retreated", got)
	}
	if got := w.Retreat(); got != Exited {
		t.Fatalf("Retreat at first step = %v, want Exited", got)
	}
	if w.Index() != 0 {
		t.Fatalf("exit moved the pointer to %d", w.Index())
	}
}

func TestNilValidityPassesEverything(t *testing.T) {
	w := New([]Step{"a", "b"}, nil)
	if got := w.Advance(); got != Advanced {
		t.Fatalf("Advance = %v", got)
	}
	if got := w.Advance(); got != Submitted {
		t.Fatalf("Advance = %v", got)
	}
}

func TestJumpRestartsAStage(t *testing.T) {
	w := gatedWizard()
	w.Update("one", "x")
	w.Update("two", "x")
	w.Advance()
	w.Advance()
	w.Jump("one")
	if w.Index() != 0 {
		t.Fatalf("Jump landed on %d", w.Index())
	}
	if w.Field("two") != "x" {
		t.Fatalf("Jump discarded form data")
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("Jump to unknown step should panic")
		}
	}()
	w.Jump("nowhere")
}

func TestCancelDiscardsForm(t *testing.T) {
	w := gatedWizard()
	w.Update("one", "x")
	w.Advance()
	w.Cancel()
	if w.Index() != 0 || len(w.Form()) != 0 {
		t.Fatalf("Cancel left index=%d form=%v", w.Index(), w.Form())
	}
}

func TestNewPanicsOnEmptySteps(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("New with no steps should panic")
		}
	}()
	New(nil, nil)
}
