// Package actor models who is acting on an order: a user id plus one of the
// marketplace roles (customer, delivery rider, vendor, laundry operator, admin).
package actor
