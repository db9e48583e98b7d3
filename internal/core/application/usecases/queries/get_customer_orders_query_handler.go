package queries

import (
	"context"
	"database/sql"
)

// GetCustomerOrdersQueryHandler reads one customer's orders, newest first,
// with line items attached for the order-history view.
type GetCustomerOrdersQueryHandler struct {
	db *sql.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer order queries.
func NewGetCustomerOrdersQueryHandler(db *sql.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle executes the query. A customer with no orders gets an empty slice,
// not an error.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]OrderDetailsResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.QueryContext(ctx, `
		SELECT `+orderSummaryColumns+`
		FROM orders
		WHERE customer_id = $1
		ORDER BY created_at DESC
	`, query.CustomerID().String())
	if err != nil {
		return nil, err
	}

	return collectOrderDetails(ctx, h.db, rows)
}
