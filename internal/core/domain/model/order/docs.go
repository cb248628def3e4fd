// Package order implements the order lifecycle engine of the laundry marketplace.
//
// The package includes:
//   - Status: the single status vocabulary shared by every role-specific view
//   - Workflow: the full laundry sequence and the coarse delivery sequence, with
//     StepIndex, Next and ProgressPercent
//   - DeliveryPhase: the explicit mapping of full statuses onto the delivery vocabulary
//   - Order: the aggregate root whose Transition method is the only way to change status
//   - TransitionError: the discriminated failure of a rejected transition
//
// Key business rules:
//   - forward transitions advance exactly one step; nothing is skipped
//   - Cancelled is reachable from every non-terminal state for actors with authority
//   - Delivered and Cancelled are final and keep the order for history and metrics
//   - the first rider to move an unassigned order into a claim status becomes its assignee
//     and no other rider may act on it afterwards
package order
