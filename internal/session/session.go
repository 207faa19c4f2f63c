package session

// Role is the access level an account authenticates as. It is fixed at
// login and only changes through the role-switch preview.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleDriver   Role = "driver"
	RoleMerchant Role = "merchant"
	RoleAdmin    Role = "admin"
)

// AllRoles lists the roles in the order the auth surface offers them.
var AllRoles = []Role{RoleCustomer, RoleDriver, RoleMerchant, RoleAdmin}

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleDriver, RoleMerchant, RoleAdmin:
		return true
	}
	return false
}

// Label returns the display name used across the app.
func (r Role) Label() string {
	switch r {
	case RoleCustomer:
		return "Pelanggan"
	case RoleDriver:
		return "Mitra Driver"
	case RoleMerchant:
		return "Mitra Toko"
	case RoleAdmin:
		return "Admin Sistem"
	}
	return string(r)
}

// ServiceFlow identifies an overlay service launched from a destination.
// The ids match the home-grid shortcuts of the customer surface.
type ServiceFlow string

const (
	FlowNone   ServiceFlow = ""
	FlowRide   ServiceFlow = "ride"  // motorcycle ride hailing
	FlowCar    ServiceFlow = "mobil" // car ride hailing
	FlowParcel ServiceFlow = "kirim" // same-day parcel courier
	FlowCargo  ServiceFlow = "box"   // box/cargo logistics
)

// WalletAction is a one-shot wallet request queued from another
// destination and consumed when the wallet mounts.
type WalletAction string

const (
	WalletNone     WalletAction = ""
	WalletTopUp    WalletAction = "topup"
	WalletTransfer WalletAction = "transfer"
)

// Profile carries the display identity captured at login/registration.
// Nothing in it is verified.
type Profile struct {
	Name  string
	Phone string
	Email string
}

// Snapshot is the read-only view of the session handed to the
// presentation layer. All mutation goes through Controller operations.
type Snapshot struct {
	Authenticated bool
	Role          Role
	Destination   string
	ServiceFlow   ServiceFlow
	WalletAction  WalletAction
}

// Decision is the outcome of a requested transition. Blocked or
// unreachable requests are representable states, never errors.
type Decision int

const (
	// Done means the mutation was applied.
	Done Decision = iota
	// ConfirmationRequired means the operation is destructive and must be
	// re-invoked with confirmation before anything changes.
	ConfirmationRequired
	// Ignored means the request failed its guard and was a no-op.
	Ignored
)

// Navigator resolves which destinations a role can reach. Implemented by
// the navigation package; injected so the controller stays table-free.
type Navigator interface {
	ReachableFor(role Role) []string
	DefaultFor(role Role) string
}

// Controller is the single source of truth for who is logged in, as what
// role, looking at what, with what sub-flow open. One instance per
// session, passed explicitly to whoever needs it.
type Controller struct {
	nav     Navigator
	snap    Snapshot
	profile Profile

	// OnReset is invoked after logout or a role switch so the host can
	// discard in-flight wizards and pending settlements.
	OnReset func()
}

func NewController(nav Navigator) *Controller {
	return &Controller{nav: nav, snap: pristine()}
}

func pristine() Snapshot {
	return Snapshot{Role: RoleCustomer}
}

func (c *Controller) Snapshot() Snapshot { return c.snap }

func (c *Controller) Profile() Profile { return c.profile }

// Login starts an authenticated session. Authentication is assumed to
// succeed once submitted; there is no error path.
func (c *Controller) Login(role Role, profile Profile) {
	if !role.Valid() {
		role = RoleCustomer
	}
	c.snap = Snapshot{
		Authenticated: true,
		Role:          role,
		Destination:   c.nav.DefaultFor(role),
	}
	c.profile = profile
}

// Logout resets the whole session to its pristine unauthenticated state.
// It never fails and is idempotent; in-flight flows are discarded, not
// settled.
func (c *Controller) Logout(confirmed bool) Decision {
	if !confirmed {
		return ConfirmationRequired
	}
	c.snap = pristine()
	c.profile = Profile{}
	if c.OnReset != nil {
		c.OnReset()
	}
	return Done
}

// SwitchRole changes the active role without re-authenticating (the
// multi-role preview) and resets to that role's default destination.
// Pending flows are cleared alongside.
func (c *Controller) SwitchRole(role Role, confirmed bool) Decision {
	if !c.snap.Authenticated || !role.Valid() || role == c.snap.Role {
		return Ignored
	}
	if !confirmed {
		return ConfirmationRequired
	}
	c.snap.Role = role
	c.snap.Destination = c.nav.DefaultFor(role)
	c.snap.ServiceFlow = FlowNone
	c.snap.WalletAction = WalletNone
	if c.OnReset != nil {
		c.OnReset()
	}
	return Done
}

// SetDestination moves to a primary destination. Requests for
// destinations outside the active role's surface are ignored.
func (c *Controller) SetDestination(id string) Decision {
	if !c.snap.Authenticated {
		return Ignored
	}
	for _, d := range c.nav.ReachableFor(c.snap.Role) {
		if d == id {
			c.snap.Destination = id
			return Done
		}
	}
	return Ignored
}

// OpenServiceFlow activates a service overlay. Opening while another is
// active replaces it; flows never stack.
func (c *Controller) OpenServiceFlow(kind ServiceFlow) Decision {
	if !c.snap.Authenticated || kind == FlowNone {
		return Ignored
	}
	c.snap.ServiceFlow = kind
	return Done
}

func (c *Controller) CloseServiceFlow() {
	c.snap.ServiceFlow = FlowNone
}

// QueueWalletAction records a wallet request made away from the wallet
// destination. A newer request replaces an unconsumed one.
func (c *Controller) QueueWalletAction(kind WalletAction) Decision {
	if !c.snap.Authenticated || kind == WalletNone {
		return Ignored
	}
	c.snap.WalletAction = kind
	return Done
}

// ConsumeWalletAction hands over the queued action exactly once. A second
// call reports nothing queued, so re-mounting the wallet does not replay.
func (c *Controller) ConsumeWalletAction() (WalletAction, bool) {
	k := c.snap.WalletAction
	if k == WalletNone {
		return WalletNone, false
	}
	c.snap.WalletAction = WalletNone
	return k, true
}
