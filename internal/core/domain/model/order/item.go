package order

import (
	"errors"
	"strings"

	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when validating a zero-value Item.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

const maxItemQuantity = 1000

// Item is one line of an order: a service such as "wash_and_fold" and a quantity.
type Item struct {
	service  string
	quantity int
	guard    guard.ConstructorGuard
}

func NewItem(service string, quantity int) (Item, error) {
	service = strings.TrimSpace(service)

	var serviceErr, quantityErr error
	if service == "" {
		serviceErr = errs.NewValueIsRequiredError("service")
	}
	if quantity < 1 || quantity > maxItemQuantity {
		quantityErr = errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxItemQuantity)
	}
	if err := errors.Join(serviceErr, quantityErr); err != nil {
		return Item{}, err
	}

	return Item{service: service, quantity: quantity, guard: guard.NewConstructorGuard()}, nil
}

func (i Item) Service() string {
	return i.service
}

func (i Item) Quantity() int {
	return i.quantity
}

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}
