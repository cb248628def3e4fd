package actor

import (
	"fmt"
	"strings"

	"laundry/internal/pkg/errs"
)

// Role decides which worklist an actor sees and which transitions it may request.
type Role string

const (
	Customer Role = "customer"
	Delivery Role = "delivery"
	Vendor   Role = "vendor"
	Laundry  Role = "laundry"
	Admin    Role = "admin"
)

// Roles lists every valid role.
func Roles() []Role {
	return []Role{Customer, Delivery, Vendor, Laundry, Admin}
}

// ParseRole accepts role names case-insensitively. "rider" and "driver" are
// accepted as aliases of Delivery since rider-facing clients send them.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case Customer, Delivery, Vendor, Laundry, Admin:
		return r, nil
	case "rider", "driver":
		return Delivery, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a known role", s))
	}
}

// Validate rejects roles outside of Roles().
func (r Role) Validate() error {
	switch r {
	case Customer, Delivery, Vendor, Laundry, Admin:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a known role", string(r)))
	}
}

func (r Role) String() string {
	return string(r)
}

// IsStaff reports whether the role operates on the shared order pool
// rather than on orders it owns or carries.
func (r Role) IsStaff() bool {
	return r == Vendor || r == Laundry || r == Admin
}
