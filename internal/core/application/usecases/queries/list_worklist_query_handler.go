package queries

import (
	"context"

	"laundry/internal/core/domain/services"
)

// ListWorklistQueryHandler resolves worklists over one snapshot of the order store.
type ListWorklistQueryHandler struct {
	reader   OrderReader
	resolver services.WorklistResolver
}

func NewListWorklistQueryHandler(reader OrderReader) ListWorklistQueryHandler {
	return ListWorklistQueryHandler{
		reader:   reader,
		resolver: services.NewWorklistResolver(),
	}
}

// Handle returns the tab's orders newest first.
func (h ListWorklistQueryHandler) Handle(ctx context.Context, query ListWorklistQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	snapshot, err := h.reader.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	by := query.By()
	orders, err := h.resolver.ListForRole(by.Role(), by.ID(), query.Tab(), snapshot)
	if err != nil {
		return nil, err
	}

	return NewOrderViews(orders), nil
}
