// Package services holds the domain logic that spans many orders.
//
// WorklistResolver derives each actor's active, available and history tabs from the
// shared order snapshot. MetricsAggregator and the functions next to it compute the
// completion rate, earnings and calendar-aligned weekly and monthly figures shown on
// dashboards. Everything here is a pure function of its input.
package services
