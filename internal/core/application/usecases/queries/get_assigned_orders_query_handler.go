package queries

import (
	"context"
	"database/sql"
)

// GetAssignedOrdersQueryHandler reads every order referencing a delivery
// partner, whatever its current status: active dispatches alongside
// delivered and cancelled ones, so a completed delivery never disappears
// from the partner's view. Line items are attached for inline display.
type GetAssignedOrdersQueryHandler struct {
	db *sql.DB
}

// NewGetAssignedOrdersQueryHandler creates a handler for partner order queries.
func NewGetAssignedOrdersQueryHandler(db *sql.DB) GetAssignedOrdersQueryHandler {
	return GetAssignedOrdersQueryHandler{db: db}
}

// Handle executes the query, newest order first.
func (h GetAssignedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAssignedOrdersQuery,
) ([]OrderDetailsResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.QueryContext(ctx, `
		SELECT `+orderSummaryColumns+`
		FROM orders
		WHERE delivery_partner_id = $1
		ORDER BY created_at DESC
	`, query.PartnerID().String())
	if err != nil {
		return nil, err
	}

	return collectOrderDetails(ctx, h.db, rows)
}
