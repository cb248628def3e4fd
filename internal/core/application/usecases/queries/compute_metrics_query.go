package queries

import (
	"errors"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrComputeMetricsQueryIsNotConstructed = errors.New(
	"ComputeMetricsQuery must be created via NewComputeMetricsQuery constructor",
)

// ComputeMetricsQuery asks for the dashboard figures over the actor's orders.
// Weeks 0 and a nil rate select the handler's defaults.
type ComputeMetricsQuery struct {
	by    actor.Actor
	weeks int
	rate  *kernel.Money

	guard guard.ConstructorGuard
}

func NewComputeMetricsQuery(by actor.Actor, weeks int, rate *kernel.Money) (ComputeMetricsQuery, error) {
	var weeksErr, rateErr error
	if weeks < 0 || weeks > services.MaxWeeks {
		weeksErr = errs.NewValueIsOutOfRangeError("weeks", weeks, 1, services.MaxWeeks)
	}
	if rate != nil {
		rateErr = rate.Validate()
	}
	if err := errors.Join(by.Validate(), weeksErr, rateErr); err != nil {
		return ComputeMetricsQuery{}, err
	}

	q := ComputeMetricsQuery{by: by, weeks: weeks, guard: guard.NewConstructorGuard()}
	if rate != nil {
		r := *rate
		q.rate = &r
	}
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ComputeMetricsQuery) Validate() error {
	return q.guard.Validate(ErrComputeMetricsQueryIsNotConstructed)
}

func (q ComputeMetricsQuery) By() actor.Actor {
	return q.by
}

func (q ComputeMetricsQuery) Weeks() int {
	return q.weeks
}

func (q ComputeMetricsQuery) Rate() *kernel.Money {
	return q.rate
}
