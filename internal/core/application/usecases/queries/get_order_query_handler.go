package queries

import (
	"context"
	"database/sql"

	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/pkg/errs"
)

// GetOrderQueryHandler reads a single order with its line items.
type GetOrderQueryHandler struct {
	db *sql.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
func NewGetOrderQueryHandler(db *sql.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when no order
// exists with the requested ID.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderDetailsResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderDetailsResponse{}, err
	}

	summary, err := h.getSummary(ctx, query.OrderID())
	if err != nil {
		return OrderDetailsResponse{}, err
	}

	itemsByOrder, err := loadOrderItems(ctx, h.db, []kernel.UUID{query.OrderID()})
	if err != nil {
		return OrderDetailsResponse{}, err
	}
	items := itemsByOrder[query.OrderID()]
	if items == nil {
		items = make([]OrderItemResponse, 0)
	}

	return OrderDetailsResponse{
		OrderSummaryResponse: summary,
		Items:                items,
	}, nil
}

func (h GetOrderQueryHandler) getSummary(ctx context.Context, orderID kernel.UUID) (OrderSummaryResponse, error) {
	rows, err := h.db.QueryContext(ctx, `
		SELECT `+orderSummaryColumns+`
		FROM orders
		WHERE id = $1
	`, orderID.String())
	if err != nil {
		return OrderSummaryResponse{}, err
	}

	summaries, err := collectOrderSummaries(rows)
	if err != nil {
		return OrderSummaryResponse{}, err
	}
	if len(summaries) == 0 {
		return OrderSummaryResponse{}, errs.NewObjectNotFoundError("orderId", orderID)
	}
	return summaries[0], nil
}
