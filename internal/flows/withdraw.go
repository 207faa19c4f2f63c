package flows

import "github.com/nusahq/nusapp/internal/wizard"

// PayoutMethods are the destinations a driver can cash out to.
var PayoutMethods = []string{"BCA Account", "E-Wallet OVO"}

// WithdrawableIDR is the driver earnings balance shown as available.
const WithdrawableIDR = 425000

// NewWithdrawal builds the driver payout wizard, prefilled with the full
// withdrawable balance and the default payout method.
func NewWithdrawal() *wizard.Wizard {
	w := wizard.New([]wizard.Step{StepAmount}, walletValidity)
	w.Update(FieldAmount, "425000")
	w.Update(FieldMethod, PayoutMethods[0])
	return w
}

// NewWithdrawalSettlement is the payout round trip; its reference tokens
// carry the TXW- prefix.
func NewWithdrawalSettlement(sched wizard.Scheduler) *wizard.Action {
	return wizard.NewAction(sched, ProcessingDelay, "TXW-")
}
