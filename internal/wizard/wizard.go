package wizard

import "fmt"

// Step identifies one stage of a linear flow.
type Step string

// Form is the accumulated field data of a wizard. Values are kept as
// entered; interpretation belongs to the flow that owns the wizard.
type Form map[string]string

func (f Form) Get(key string) string { return f[key] }

// Validity reports whether the given step may be advanced past with the
// current form data. A nil Validity means every step is passable.
type Validity func(step Step, form Form) bool

// AdvanceResult is the outcome of an Advance request.
type AdvanceResult int

const (
	// Blocked: the current step failed its validity check; nothing moved.
	Blocked AdvanceResult = iota
	// Advanced: the pointer moved forward one step.
	Advanced
	// Submitted: the last step was valid; the owner should run the
	// flow's terminal action.
	Submitted
)

// RetreatResult is the outcome of a Retreat request.
type RetreatResult int

const (
	// Retreated: the pointer moved back one step.
	Retreated RetreatResult = iota
	// Exited: already on the first step; the owner should collapse the
	// wizard back to the non-wizard view.
	Exited
)

// Wizard drives a linear multi-step flow with gated forward progression.
// It carries no domain knowledge; each flow supplies steps and validity.
type Wizard struct {
	steps []Step
	index int
	form  Form
	valid Validity
}

// New builds a wizard positioned on the first step. An empty step list is
// a programming error.
func New(steps []Step, valid Validity) *Wizard {
	if len(steps) == 0 {
		panic("wizard: no steps")
	}
	return &Wizard{steps: steps, form: Form{}, valid: valid}
}

func (w *Wizard) Step() Step    { return w.steps[w.index] }
func (w *Wizard) Index() int    { return w.index }
func (w *Wizard) Len() int      { return len(w.steps) }
func (w *Wizard) Form() Form    { return w.form }
func (w *Wizard) Last() bool    { return w.index == len(w.steps)-1 }
func (w *Wizard) Steps() []Step { return append([]Step(nil), w.steps...) }

// Field reads a single form value.
func (w *Wizard) Field(key string) string { return w.form[key] }

// Update merges a field into the form. It never moves the pointer and
// never re-runs validity; gating happens lazily in Advance.
func (w *Wizard) Update(field, value string) {
	w.form[field] = value
}

// Advance moves forward when the current step is valid. On the last step
// a valid form yields Submitted instead of walking off the end. Invalid
// steps block silently.
func (w *Wizard) Advance() AdvanceResult {
	if w.valid != nil && !w.valid(w.steps[w.index], w.form) {
		return Blocked
	}
	if w.Last() {
		return Submitted
	}
	w.index++
	return Advanced
}

// Retreat moves back one step, or signals exit instead of underflowing.
// Backward motion is never gated and never revalidates.
func (w *Wizard) Retreat() RetreatResult {
	if w.index == 0 {
		return Exited
	}
	w.index--
	return Retreated
}

// Jump repositions on a known step; used when a flow restarts a stage
// (e.g. cancelling dispatch back to destination entry). Unknown steps are
// a programming error in the owning flow.
func (w *Wizard) Jump(s Step) {
	for i, st := range w.steps {
		if st == s {
			w.index = i
			return
		}
	}
	panic(fmt.Sprintf("wizard: unknown step %q", s))
}

// Cancel discards the form unconditionally. The caller is expected to
// have confirmed intent at the presentation boundary and to drop the
// instance; nothing propagates back to the session.
func (w *Wizard) Cancel() {
	w.form = Form{}
	w.index = 0
}
