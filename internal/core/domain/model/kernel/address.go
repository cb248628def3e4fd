package kernel

import (
	"errors"
	"strings"

	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when validating a zero-value Address.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress")

// Address is the pickup and drop-off point of an order.
type Address struct {
	street string
	city   string
	guard  guard.ConstructorGuard
}

// NewAddress trims both parts and requires them to be non-empty.
func NewAddress(street, city string) (Address, error) {
	addr := Address{guard: guard.NewConstructorGuard()}

	street = strings.TrimSpace(street)
	city = strings.TrimSpace(city)

	var streetErr, cityErr error
	if street == "" {
		streetErr = errs.NewValueIsRequiredError("street")
	}
	if city == "" {
		cityErr = errs.NewValueIsRequiredError("city")
	}
	if err := errors.Join(streetErr, cityErr); err != nil {
		return Address{}, err
	}

	addr.street = street
	addr.city = city
	return addr, nil
}

func (a Address) Street() string {
	return a.street
}

func (a Address) City() string {
	return a.city
}

// String renders "street, city".
func (a Address) String() string {
	return a.street + ", " + a.city
}

// Validate returns ErrAddressIsNotConstructed for a zero-value Address.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}
