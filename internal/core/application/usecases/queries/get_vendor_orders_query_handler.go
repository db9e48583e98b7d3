package queries

import (
	"context"
	"database/sql"
)

// GetVendorOrdersQueryHandler reads the orders that include a vendor's
// products. An order with items from several vendors shows up for each of
// them, but only once per vendor.
type GetVendorOrdersQueryHandler struct {
	db *sql.DB
}

// NewGetVendorOrdersQueryHandler creates a handler for vendor order queries.
func NewGetVendorOrdersQueryHandler(db *sql.DB) GetVendorOrdersQueryHandler {
	return GetVendorOrdersQueryHandler{db: db}
}

// Handle executes the query, newest orders first.
func (h GetVendorOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetVendorOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.QueryContext(ctx, `
		SELECT `+orderSummaryColumns+`
		FROM orders
		WHERE id IN (
			SELECT order_id FROM order_items WHERE vendor_id = $1
		)
		ORDER BY created_at DESC
	`, query.VendorID().String())
	if err != nil {
		return nil, err
	}

	return collectOrderSummaries(rows)
}
