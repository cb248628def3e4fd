package services_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-10-15 is a Thursday; its week starts on Sunday 2026-10-11.
var metricsNow = time.Date(2026, 10, 15, 14, 30, 0, 0, time.UTC)

func delivered(t *testing.T, at time.Time) *order.Order {
	rider := kernel.NewUUID()
	return restore(t, orderFixture{status: order.Delivered, rider: &rider, createdAt: at, updatedAt: at})
}

func withStatus(t *testing.T, status order.Status, at time.Time) *order.Order {
	return restore(t, orderFixture{status: status, createdAt: at, updatedAt: at})
}

func money(t *testing.T, v int64) kernel.Money {
	m, err := kernel.NewMoney(decimal.NewFromInt(v))
	require.NoError(t, err)
	return m
}

func TestCompletionRate(t *testing.T) {
	at := day(2026, 10, 1, 9)

	t.Run("should be zero for no orders", func(t *testing.T) {
		assert.Equal(t, 0, services.CompletionRate(nil))
	})

	t.Run("should be 100 when everything is delivered", func(t *testing.T) {
		orders := []*order.Order{delivered(t, at), delivered(t, at)}
		assert.Equal(t, 100, services.CompletionRate(orders))
	})

	t.Run("should round to the nearest percent", func(t *testing.T) {
		orders := []*order.Order{
			delivered(t, at),
			withStatus(t, order.Cancelled, at),
			withStatus(t, order.Pending, at),
		}
		assert.Equal(t, 33, services.CompletionRate(orders))
	})

	t.Run("should round two of three up", func(t *testing.T) {
		orders := []*order.Order{
			delivered(t, at),
			delivered(t, at),
			withStatus(t, order.Pending, at),
		}
		assert.Equal(t, 67, services.CompletionRate(orders))
	})
}

func TestEarnings(t *testing.T) {
	at := day(2026, 10, 1, 9)
	orders := []*order.Order{
		delivered(t, at),
		delivered(t, at),
		withStatus(t, order.Cancelled, at),
	}

	assert.Equal(t, "30.00", services.Earnings(orders, services.DefaultDeliveryRate()).String())
	assert.True(t, services.Earnings(nil, services.DefaultDeliveryRate()).IsZero())
}

func TestWeekStart(t *testing.T) {
	testCases := []struct {
		name     string
		at       time.Time
		expected time.Time
	}{
		{"thursday", metricsNow, day(2026, 10, 11, 0)},
		{"sunday midnight", day(2026, 10, 11, 0), day(2026, 10, 11, 0)},
		{"saturday night", time.Date(2026, 10, 10, 23, 59, 0, 0, time.UTC), day(2026, 10, 4, 0)},
		{"across a month", day(2026, 11, 2, 8), day(2026, 11, 1, 0)},
		{"across a year", day(2027, 1, 1, 8), day(2026, 12, 27, 0)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, services.WeekStart(tc.at))
		})
	}
}

func TestMonthStart(t *testing.T) {
	assert.Equal(t, day(2026, 10, 1, 0), services.MonthStart(metricsNow))
}

func TestWindowedCount(t *testing.T) {
	since := services.WeekStart(metricsNow)
	orders := []*order.Order{
		delivered(t, since),
		delivered(t, since.Add(-time.Minute)),
		withStatus(t, order.Pending, metricsNow),
		withStatus(t, order.Pending, time.Time{}),
	}

	assert.Equal(t, 1, services.WindowedCount(orders, services.IsDelivered, since))
	assert.Equal(t, 2, services.WindowedCount(orders, nil, since))
	assert.Equal(t, 3, services.WindowedCount(orders, nil, time.Time{}))
}

func TestWeeklyBuckets(t *testing.T) {
	rate := services.DefaultDeliveryRate()

	t.Run("should leave an empty week at zero", func(t *testing.T) {
		orders := []*order.Order{
			delivered(t, day(2026, 9, 21, 10)),
			delivered(t, day(2026, 9, 22, 10)),
			delivered(t, day(2026, 10, 6, 10)),
			delivered(t, day(2026, 10, 12, 10)),
			withStatus(t, order.Cancelled, day(2026, 10, 13, 10)),
		}

		buckets := services.WeeklyBuckets(orders, 4, rate, metricsNow)

		require.Len(t, buckets, 4)
		labels := make([]string, 0, len(buckets))
		counts := make([]int, 0, len(buckets))
		earnings := make([]string, 0, len(buckets))
		for _, b := range buckets {
			labels = append(labels, b.Label)
			counts = append(counts, b.DeliveryCount)
			earnings = append(earnings, b.Earnings.String())
		}
		assert.Equal(t, []string{"Sep 20", "Sep 27", "Oct 4", "Oct 11"}, labels)
		assert.Equal(t, []int{2, 0, 1, 1}, counts)
		assert.Equal(t, []string{"30.00", "0.00", "15.00", "15.00"}, earnings)
	})

	t.Run("should bound each bucket by one calendar week", func(t *testing.T) {
		buckets := services.WeeklyBuckets(nil, 1, rate, metricsNow)

		require.Len(t, buckets, 1)
		assert.Equal(t, day(2026, 10, 11, 0), buckets[0].Start)
		assert.Equal(t, day(2026, 10, 18, 0).Add(-time.Nanosecond), buckets[0].End)
	})

	t.Run("should fall back to the default number of weeks", func(t *testing.T) {
		assert.Len(t, services.WeeklyBuckets(nil, 0, rate, metricsNow), services.DefaultWeeks)
		assert.Len(t, services.WeeklyBuckets(nil, services.MaxWeeks+1, rate, metricsNow), services.DefaultWeeks)
		assert.Len(t, services.WeeklyBuckets(nil, services.MaxWeeks, rate, metricsNow), services.MaxWeeks)
	})

	t.Run("should place an order by createdAt when updatedAt is missing", func(t *testing.T) {
		rider := kernel.NewUUID()
		o := restore(t, orderFixture{status: order.Delivered, rider: &rider, createdAt: day(2026, 10, 12, 9)})

		buckets := services.WeeklyBuckets([]*order.Order{o}, 2, rate, metricsNow)

		assert.Equal(t, 0, buckets[0].DeliveryCount)
		assert.Equal(t, 1, buckets[1].DeliveryCount)
	})
}

func TestMetricsAggregator_Compute(t *testing.T) {
	orders := []*order.Order{
		delivered(t, day(2026, 9, 21, 10)),
		delivered(t, day(2026, 10, 2, 10)),
		delivered(t, day(2026, 10, 12, 10)),
		withStatus(t, order.Processing, day(2026, 10, 14, 10)),
	}

	t.Run("should derive every figure from one snapshot", func(t *testing.T) {
		m := services.NewMetricsAggregator().Compute(orders, services.MetricsOptions{
			Rate:  money(t, 20),
			Weeks: 4,
			Now:   metricsNow,
		})

		assert.Equal(t, 75, m.CompletionRate)
		assert.Equal(t, "60.00", m.TotalEarnings.String())
		assert.Equal(t, 1, m.WeeklyDeliveries)
		assert.Equal(t, "20.00", m.WeeklyEarnings.String())
		assert.Equal(t, 2, m.MonthlyDeliveries)
		assert.Equal(t, "40.00", m.MonthlyEarnings.String())
		assert.Len(t, m.Weeks, 4)
	})

	t.Run("should use the default rate and weeks", func(t *testing.T) {
		m := services.NewMetricsAggregator().Compute(orders, services.MetricsOptions{Now: metricsNow})

		assert.Equal(t, "45.00", m.TotalEarnings.String())
		assert.Len(t, m.Weeks, services.DefaultWeeks)
	})

	t.Run("should not mutate the orders", func(t *testing.T) {
		before := orders[3].Clone()

		services.NewMetricsAggregator().Compute(orders, services.MetricsOptions{Now: metricsNow})

		assert.Equal(t, before.Status(), orders[3].Status())
		assert.Equal(t, before.Version(), orders[3].Version())
	})
}
