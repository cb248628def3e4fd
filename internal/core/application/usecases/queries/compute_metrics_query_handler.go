package queries

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/services"
)

// MetricsDefaults are the figures used when a query leaves them open.
type MetricsDefaults struct {
	Rate  kernel.Money
	Weeks int
	Now   func() time.Time
}

// ComputeMetricsQueryHandler derives dashboard metrics from one snapshot of the
// orders in the actor's scope: customers their bookings, riders the orders they
// carried, staff every order.
//
// Example:
//
//	handler := NewComputeMetricsQueryHandler(reader, MetricsDefaults{Weeks: 4})
//	query, _ := NewComputeMetricsQuery(rider, 0, nil)
//	m, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d%% completed, %s earned this week\n", m.CompletionRate, m.WeeklyEarnings)
type ComputeMetricsQueryHandler struct {
	reader     OrderReader
	resolver   services.WorklistResolver
	aggregator services.MetricsAggregator
	defaults   MetricsDefaults
}

func NewComputeMetricsQueryHandler(reader OrderReader, defaults MetricsDefaults) ComputeMetricsQueryHandler {
	if defaults.Rate.Validate() != nil {
		defaults.Rate = services.DefaultDeliveryRate()
	}
	if defaults.Weeks < 1 || defaults.Weeks > services.MaxWeeks {
		defaults.Weeks = services.DefaultWeeks
	}
	if defaults.Now == nil {
		defaults.Now = time.Now
	}
	return ComputeMetricsQueryHandler{
		reader:     reader,
		resolver:   services.NewWorklistResolver(),
		aggregator: services.NewMetricsAggregator(),
		defaults:   defaults,
	}
}

func (h ComputeMetricsQueryHandler) Handle(ctx context.Context, query ComputeMetricsQuery) (services.Metrics, error) {
	if err := query.Validate(); err != nil {
		return services.Metrics{}, err
	}

	snapshot, err := h.reader.ListAll(ctx)
	if err != nil {
		return services.Metrics{}, err
	}

	opts := services.MetricsOptions{
		Rate:  h.defaults.Rate,
		Weeks: h.defaults.Weeks,
		Now:   h.defaults.Now(),
	}
	if rate := query.Rate(); rate != nil {
		opts.Rate = *rate
	}
	if query.Weeks() > 0 {
		opts.Weeks = query.Weeks()
	}

	by := query.By()
	return h.aggregator.Compute(h.resolver.InScope(by.Role(), by.ID(), snapshot), opts), nil
}
