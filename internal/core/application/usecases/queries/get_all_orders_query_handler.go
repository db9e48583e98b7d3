package queries

import (
	"context"
	"database/sql"
)

// GetAllOrdersQueryHandler reads every order, newest first.
type GetAllOrdersQueryHandler struct {
	db *sql.DB
}

// NewGetAllOrdersQueryHandler creates a handler for the administrative order list.
func NewGetAllOrdersQueryHandler(db *sql.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.QueryContext(ctx, `
		SELECT `+orderSummaryColumns+`
		FROM orders
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}

	return collectOrderSummaries(rows)
}
