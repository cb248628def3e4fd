package order

import (
	"errors"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order is the aggregate root of the laundry workflow. It carries the booking data
// fixed at creation (customer, items, price, address) and the lifecycle state that
// only Transition may change (status, assignee, updatedAt, cancellation reason).
//
// Order follows these invariants:
//   - id, customer and workflow are always valid
//   - price is non-negative and items are never mutated after creation
//   - the status belongs to the order's workflow or is Cancelled
//   - no rider is assigned while the order is Pending or Confirmed
//   - Delivered and Cancelled are final
type Order struct {
	// id is the immutable identifier
	id kernel.UUID

	// number is the human-facing order number, e.g. 1001 for "#1001"
	number int

	// workflow selects the status sequence
	workflow Workflow

	// status is the current lifecycle state
	status Status

	// customerID references the booking customer
	customerID kernel.UUID

	// deliveryPersonID references the rider carrying the order, nil until claimed
	deliveryPersonID *kernel.UUID

	createdAt time.Time
	updatedAt time.Time

	price   kernel.Money
	items   []Item
	address *kernel.Address

	// cancellationReason is set only by the transition into Cancelled
	cancellationReason string

	// version increases with every accepted transition and backs optimistic updates
	version int

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder books a new order in Pending status with no rider assigned.
//
// Parameters:
//   - id: unique identifier
//   - number: positive human-facing number
//   - customerID: the booking customer
//   - workflow: Full or Delivery
//   - price: non-negative amount, fixed from now on
//   - items: at least one line item
//   - address: optional pickup address
//   - at: booking time, used for createdAt and updatedAt
//
// Example:
//
//	price, _ := kernel.MoneyFromString("75.50")
//	item, _ := order.NewItem("wash_and_fold", 3)
//	o, err := order.NewOrder(kernel.NewUUID(), 1001, customerID, order.Full, price, []order.Item{item}, nil, time.Now())
func NewOrder(
	id kernel.UUID,
	number int,
	customerID kernel.UUID,
	workflow Workflow,
	price kernel.Money,
	items []Item,
	address *kernel.Address,
	at time.Time,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		createdAt:     at,
		updatedAt:     at,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setNumber(number),
		order.setCustomer(customerID),
		order.setWorkflow(workflow),
		order.setPrice(price),
		order.setItems(items),
		order.setAddress(address),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// State is the full persisted form of an order, used to rehydrate it from storage.
type State struct {
	ID                 kernel.UUID
	Number             int
	Workflow           Workflow
	Status             Status
	CustomerID         kernel.UUID
	DeliveryPersonID   *kernel.UUID
	CreatedAt          time.Time
	UpdatedAt          time.Time
	Price              kernel.Money
	Items              []Item
	Address            *kernel.Address
	CancellationReason string
	Version            int
}

// RestoreOrder rebuilds an order from storage. It validates the same rules as
// NewOrder plus the status and assignee invariants. A zero CreatedAt is accepted;
// such an order simply never falls into a reporting window.
func RestoreOrder(state State) (*Order, error) {
	order := &Order{
		createdAt:          state.CreatedAt,
		updatedAt:          state.UpdatedAt,
		cancellationReason: state.CancellationReason,
		version:            state.Version,
		isConstructed:      true,
	}

	if err := errors.Join(
		order.setID(state.ID),
		order.setNumber(state.Number),
		order.setCustomer(state.CustomerID),
		order.setWorkflow(state.Workflow),
		order.setPrice(state.Price),
		order.setItems(state.Items),
		order.setAddress(state.Address),
	); err != nil {
		return nil, err
	}

	if err := order.restoreStatus(state.Status, state.DeliveryPersonID); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-facing order number.
func (o *Order) Number() int {
	return o.number
}

// Workflow returns the status sequence the order follows.
func (o *Order) Workflow() Workflow {
	return o.workflow
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CustomerID returns the booking customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// DeliveryPersonID returns the assigned rider, nil if unassigned.
func (o *Order) DeliveryPersonID() *kernel.UUID {
	if o.deliveryPersonID == nil {
		return nil
	}
	id := *o.deliveryPersonID
	return &id
}

// IsAssignedTo reports whether riderID carries the order.
func (o *Order) IsAssignedTo(riderID kernel.UUID) bool {
	return o.deliveryPersonID != nil && o.deliveryPersonID.IsEqual(riderID)
}

// CreatedAt returns the booking time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the last accepted transition.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Price returns the amount fixed at booking.
func (o *Order) Price() kernel.Money {
	return o.price
}

// Items returns a copy of the line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Address returns the pickup address, nil when none was given.
func (o *Order) Address() *kernel.Address {
	if o.address == nil {
		return nil
	}
	addr := *o.address
	return &addr
}

// CancellationReason returns why the order was cancelled, empty otherwise.
func (o *Order) CancellationReason() string {
	return o.cancellationReason
}

// Version returns the optimistic concurrency token.
func (o *Order) Version() int {
	return o.version
}

// StepIndex returns the position of the current status in the order's workflow,
// -1 once cancelled.
func (o *Order) StepIndex() int {
	return o.workflow.StepIndex(o.status)
}

// ProgressPercent returns the progress bar width for the current status.
func (o *Order) ProgressPercent() int {
	return o.workflow.ProgressPercent(o.status)
}

// Clone returns an independent copy, so store snapshots never share state with
// aggregates being mutated by a command.
func (o *Order) Clone() *Order {
	clone := *o
	clone.items = o.Items()
	clone.deliveryPersonID = o.DeliveryPersonID()
	clone.address = o.Address()
	return &clone
}

// Transition moves the order to status `to` on behalf of `by`.
//
// Business rules:
//   - Delivered and Cancelled accept nothing (TerminalStateViolation)
//   - a rider may not act on an order carried by another rider (AlreadyAssigned)
//   - Cancelled is reachable from any other state by delivery riders and admins,
//     and by the owning customer before pickup; reason is recorded
//   - any other target must be exactly the next step of the workflow (IllegalTransition)
//   - each step is reserved to specific roles (Forbidden)
//   - a rider moving an unassigned order into PickedUp, OutForDelivery or InTransit claims it
//
// On success updatedAt becomes `at` and the version increases. On failure the
// order is untouched and a *TransitionError is returned.
//
// Example:
//
//	if err := o.Transition(order.PickedUp, rider, "", time.Now()); errors.Is(err, order.ErrAlreadyAssigned) {
//	    // another rider claimed it first
//	}
func (o *Order) Transition(to Status, by actor.Actor, reason string, at time.Time) error {
	if err := errors.Join(o.Validate(), by.Validate()); err != nil {
		return err
	}

	if o.status.IsTerminal() {
		return newTransitionError(TerminalStateViolation, o, to)
	}

	if by.Is(actor.Delivery) && o.deliveryPersonID != nil && !o.deliveryPersonID.IsEqual(by.ID()) {
		return newTransitionError(AlreadyAssigned, o, to)
	}

	if to == Cancelled {
		return o.cancel(by, reason, at)
	}

	next, ok := o.workflow.Next(o.status)
	if !ok || next != to {
		return newTransitionError(IllegalTransition, o, to)
	}

	if !mayAdvanceTo(by.Role(), to) {
		return newTransitionError(Forbidden, o, to)
	}

	// Any forward move by a rider on an unassigned order claims it.
	if by.Is(actor.Delivery) && o.deliveryPersonID == nil {
		riderID := by.ID()
		o.deliveryPersonID = &riderID
	}

	o.apply(to, at)
	return nil
}

// Cancel is Transition(Cancelled, ...).
func (o *Order) Cancel(by actor.Actor, reason string, at time.Time) error {
	return o.Transition(Cancelled, by, reason, at)
}

func (o *Order) cancel(by actor.Actor, reason string, at time.Time) error {
	switch by.Role() {
	case actor.Delivery, actor.Admin:
	case actor.Customer:
		if !o.customerID.IsEqual(by.ID()) || !o.workflow.beforePickup(o.status) {
			return newTransitionError(Forbidden, o, Cancelled)
		}
	case actor.Vendor, actor.Laundry:
		return newTransitionError(Forbidden, o, Cancelled)
	default:
		return newTransitionError(Forbidden, o, Cancelled)
	}

	if reason == "" {
		reason = fmt.Sprintf("cancelled by %s", by.Role())
	}
	o.cancellationReason = reason
	o.apply(Cancelled, at)
	return nil
}

func (o *Order) apply(to Status, at time.Time) {
	o.status = to
	o.updatedAt = at
	o.version++
}

// mayAdvanceTo lists which roles may move an order forward into each status.
func mayAdvanceTo(role actor.Role, to Status) bool {
	switch to {
	case Confirmed, Processing, ReadyForDelivery:
		return role == actor.Vendor || role == actor.Laundry || role == actor.Admin
	case PickedUp, OutForDelivery, InTransit, Delivered:
		return role == actor.Delivery || role == actor.Admin
	default:
		return false
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number int) error {
	if number <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("number is invalid", fmt.Errorf("%d is not greater than 0", number))
	}
	o.number = number
	return nil
}

func (o *Order) setCustomer(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setWorkflow(workflow Workflow) error {
	if err := workflow.Validate(); err != nil {
		return err
	}
	o.workflow = workflow
	return nil
}

func (o *Order) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("price", err)
	}
	o.price = price
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setAddress(address *kernel.Address) error {
	if address == nil {
		return nil
	}
	if err := address.Validate(); err != nil {
		return err
	}
	addr := *address
	o.address = &addr
	return nil
}

// restoreStatus checks that the stored status fits the workflow and that no rider
// is recorded before pickup.
func (o *Order) restoreStatus(status Status, deliveryPersonID *kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if status != Cancelled && !o.workflow.Contains(status) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not part of the %s workflow", status, o.workflow),
		)
	}

	if deliveryPersonID != nil {
		if err := deliveryPersonID.Validate(); err != nil {
			return err
		}
		if status == Pending || status == Confirmed {
			return errs.NewValueIsInvalidErrorWithCause(
				"status is invalid",
				fmt.Errorf("%s is not a valid status to have a delivery person", status),
			)
		}
		id := *deliveryPersonID
		o.deliveryPersonID = &id
	}

	o.status = status
	return nil
}
