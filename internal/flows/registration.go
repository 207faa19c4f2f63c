// Package flows configures the concrete wizard instances of the app:
// registration, ride booking, logistics booking, wallet actions and
// driver withdrawal. The wizard package stays generic; everything
// domain-shaped lives here.
package flows

import (
	"strings"

	"github.com/nusahq/nusapp/internal/session"
	"github.com/nusahq/nusapp/internal/wizard"
)

// Registration steps. Customer and admin register in a single step;
// driver and merchant add a role-specific second step.
const (
	StepAccount wizard.Step = "account"
	StepVehicle wizard.Step = "vehicle"
	StepStore   wizard.Step = "store"
)

// Registration form fields.
const (
	FieldName        = "name"
	FieldPhone       = "phone"
	FieldEmail       = "email"
	FieldStaffKey    = "staff_key"
	FieldVehicleType = "vehicle_type"
	FieldPlate       = "plate"
	FieldStoreName   = "store_name"
	FieldStoreKind   = "store_category"
	FieldAddress     = "address"
)

// VehicleTypes are the driver fleet classes offered at registration.
var VehicleTypes = []string{"Motor", "Mobil", "Box", "XL"}

// StoreCategories are the merchant business categories.
var StoreCategories = []string{"Makanan", "Elektronik", "Swalayan", "Apotek", "Pakaian"}

// RegistrationSteps returns the step sequence for a role.
func RegistrationSteps(role session.Role) []wizard.Step {
	switch role {
	case session.RoleDriver:
		return []wizard.Step{StepAccount, StepVehicle}
	case session.RoleMerchant:
		return []wizard.Step{StepAccount, StepStore}
	default:
		return []wizard.Step{StepAccount}
	}
}

// NewRegistration builds the registration wizard for a role, with the
// same selection defaults the original sign-up form starts from.
func NewRegistration(role session.Role) *wizard.Wizard {
	w := wizard.New(RegistrationSteps(role), registrationValidity(role))
	if role == session.RoleDriver {
		w.Update(FieldVehicleType, VehicleTypes[0])
	}
	if role == session.RoleMerchant {
		w.Update(FieldStoreKind, StoreCategories[0])
	}
	return w
}

func registrationValidity(role session.Role) wizard.Validity {
	return func(step wizard.Step, form wizard.Form) bool {
		switch step {
		case StepAccount:
			if filled(form, FieldName) && filled(form, FieldPhone) {
				return role != session.RoleAdmin || filled(form, FieldStaffKey)
			}
			return false
		case StepVehicle:
			return filled(form, FieldPlate)
		case StepStore:
			return filled(form, FieldStoreName) && filled(form, FieldAddress)
		}
		return false
	}
}

func filled(form wizard.Form, key string) bool {
	return strings.TrimSpace(form[key]) != ""
}

// RegistrationProfile lifts the captured identity out of a finished
// registration form.
func RegistrationProfile(form wizard.Form) session.Profile {
	return session.Profile{
		Name:  strings.TrimSpace(form[FieldName]),
		Phone: strings.TrimSpace(form[FieldPhone]),
		Email: strings.TrimSpace(form[FieldEmail]),
	}
}
