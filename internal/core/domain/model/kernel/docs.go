// Package kernel holds the value objects shared by the laundry domain model:
// UUID identifiers, decimal Money amounts and the Address an order is picked up from
// and returned to. Each type has a zero value that fails Validate, so values read
// from storage or requests must go through a constructor first.
package kernel
