package flows

import (
	"github.com/nusahq/nusapp/internal/wizard"
)

// Wallet action flow: a single input step, then the settlement phases.
const StepAmount wizard.Step = "amount"

const (
	FieldAmount    = "amount"
	FieldRecipient = "recipient"
	FieldMethod    = "method"
)

// PaymentMethods are the funding sources for top-up and transfer.
var PaymentMethods = []string{"BCA Account", "NusaPay Wallet"}

// NewWalletAction builds the wizard shared by top-up and transfer. Only
// the amount gates submission; the transfer recipient is display data,
// so the caller decides which fields to show.
func NewWalletAction() *wizard.Wizard {
	w := wizard.New([]wizard.Step{StepAmount}, walletValidity)
	w.Update(FieldMethod, PaymentMethods[0])
	return w
}

func walletValidity(step wizard.Step, form wizard.Form) bool {
	return filled(form, FieldAmount)
}

// NewWalletSettlement is the payment round trip behind a wallet action;
// its reference tokens carry the TX- prefix.
func NewWalletSettlement(sched wizard.Scheduler) *wizard.Action {
	return wizard.NewAction(sched, ProcessingDelay, "TX-")
}
