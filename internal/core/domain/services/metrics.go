package services

import (
	"math"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

const (
	// DefaultWeeks is the number of weekly buckets shown on the earnings chart.
	DefaultWeeks = 4
	// MaxWeeks bounds WeeklyBuckets.
	MaxWeeks = 52
)

// DefaultDeliveryRate is the flat payout per delivered order.
func DefaultDeliveryRate() kernel.Money {
	rate, _ := kernel.NewMoney(decimal.NewFromInt(15))
	return rate
}

// IsDelivered is the predicate used by the earnings figures.
func IsDelivered(o *order.Order) bool {
	return o.Status() == order.Delivered
}

// CompletionRate is the share of delivered orders as a rounded percentage, 0 for no orders.
func CompletionRate(orders []*order.Order) int {
	if len(orders) == 0 {
		return 0
	}
	delivered := count(orders, IsDelivered)
	return int(math.Round(float64(delivered) / float64(len(orders)) * 100))
}

// Earnings is the number of delivered orders times rate.
func Earnings(orders []*order.Order, rate kernel.Money) kernel.Money {
	return rate.Times(count(orders, IsDelivered))
}

// WindowedCount counts orders matching predicate and created at or after since.
// Orders without a createdAt never match. A nil predicate matches everything.
func WindowedCount(orders []*order.Order, predicate func(*order.Order) bool, since time.Time) int {
	return count(orders, func(o *order.Order) bool {
		created := o.CreatedAt()
		if created.IsZero() || created.Before(since) {
			return false
		}
		return predicate == nil || predicate(o)
	})
}

// WeekStart returns Sunday 00:00 of the calendar week containing t, in t's location.
func WeekStart(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// MonthStart returns the first day of t's month at 00:00, in t's location.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// WeekBucket is one bar of the weekly earnings chart.
type WeekBucket struct {
	Label         string
	Start         time.Time
	End           time.Time
	Earnings      kernel.Money
	DeliveryCount int
}

// WeeklyBuckets splits delivered orders into the numWeeks calendar weeks ending with
// the week of now, oldest first. An order is placed by updatedAt, or createdAt when
// updatedAt is missing; orders with neither are ignored. numWeeks outside 1..MaxWeeks
// falls back to DefaultWeeks.
func WeeklyBuckets(orders []*order.Order, numWeeks int, rate kernel.Money, now time.Time) []WeekBucket {
	if numWeeks < 1 || numWeeks > MaxWeeks {
		numWeeks = DefaultWeeks
	}

	current := WeekStart(now)
	buckets := make([]WeekBucket, 0, numWeeks)
	for i := numWeeks - 1; i >= 0; i-- {
		start := current.AddDate(0, 0, -7*i)
		next := start.AddDate(0, 0, 7)

		delivered := count(orders, func(o *order.Order) bool {
			at := completedAt(o)
			return IsDelivered(o) && !at.IsZero() && !at.Before(start) && at.Before(next)
		})

		buckets = append(buckets, WeekBucket{
			Label:         start.Format("Jan 2"),
			Start:         start,
			End:           next.Add(-time.Nanosecond),
			Earnings:      rate.Times(delivered),
			DeliveryCount: delivered,
		})
	}
	return buckets
}

// MetricsOptions parameterises ComputeMetrics. Zero values select the defaults.
type MetricsOptions struct {
	Rate  kernel.Money
	Weeks int
	Now   time.Time
}

// Metrics is the dashboard summary derived from an order collection.
type Metrics struct {
	CompletionRate    int
	TotalEarnings     kernel.Money
	WeeklyEarnings    kernel.Money
	MonthlyEarnings   kernel.Money
	WeeklyDeliveries  int
	MonthlyDeliveries int
	Weeks             []WeekBucket
}

// MetricsAggregator computes Metrics. It never mutates the orders it is given.
type MetricsAggregator struct{}

func NewMetricsAggregator() MetricsAggregator {
	return MetricsAggregator{}
}

// Compute derives every figure from one order snapshot.
func (MetricsAggregator) Compute(orders []*order.Order, opts MetricsOptions) Metrics {
	rate := opts.Rate
	if rate.Validate() != nil {
		rate = DefaultDeliveryRate()
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	weekly := WindowedCount(orders, IsDelivered, WeekStart(now))
	monthly := WindowedCount(orders, IsDelivered, MonthStart(now))

	return Metrics{
		CompletionRate:    CompletionRate(orders),
		TotalEarnings:     Earnings(orders, rate),
		WeeklyEarnings:    rate.Times(weekly),
		MonthlyEarnings:   rate.Times(monthly),
		WeeklyDeliveries:  weekly,
		MonthlyDeliveries: monthly,
		Weeks:             WeeklyBuckets(orders, opts.Weeks, rate, now),
	}
}

func completedAt(o *order.Order) time.Time {
	if at := o.UpdatedAt(); !at.IsZero() {
		return at
	}
	return o.CreatedAt()
}

func count(orders []*order.Order, predicate func(*order.Order) bool) int {
	n := 0
	for _, o := range orders {
		if o != nil && predicate(o) {
			n++
		}
	}
	return n
}
