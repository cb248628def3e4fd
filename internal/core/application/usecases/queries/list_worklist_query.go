package queries

import (
	"errors"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/guard"
)

var ErrListWorklistQueryIsNotConstructed = errors.New(
	"ListWorklistQuery must be created via NewListWorklistQuery constructor",
)

// ListWorklistQuery asks for one tab of an actor's worklist.
//
// Example:
//
//	query, err := NewListWorklistQuery(rider, services.TabAvailable)
//	if err != nil {
//	    return err
//	}
//	views, err := handler.Handle(ctx, query)
type ListWorklistQuery struct {
	by  actor.Actor
	tab services.Tab

	guard guard.ConstructorGuard
}

func NewListWorklistQuery(by actor.Actor, tab services.Tab) (ListWorklistQuery, error) {
	if err := by.Validate(); err != nil {
		return ListWorklistQuery{}, err
	}
	tab, err := services.ParseTab(string(tab))
	if err != nil {
		return ListWorklistQuery{}, err
	}
	return ListWorklistQuery{by: by, tab: tab, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListWorklistQuery) Validate() error {
	return q.guard.Validate(ErrListWorklistQueryIsNotConstructed)
}

func (q ListWorklistQuery) By() actor.Actor {
	return q.by
}

func (q ListWorklistQuery) Tab() services.Tab {
	return q.tab
}
