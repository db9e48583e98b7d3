// Package queries contains read-side operations of the CQRS split.
// Query handlers bypass the aggregates and read the order tables directly
// over database/sql, returning flat response models shaped for the API.
package queries

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"freshcart/internal/core/domain/model/kernel"
)

// OrderSummaryResponse is the list-view projection of an order.
type OrderSummaryResponse struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	PartnerID  *kernel.UUID
	Status     string
	TotalPrice decimal.Decimal
	CreatedAt  sql.NullTime
	UpdatedAt  sql.NullTime
}

// OrderItemResponse is one priced line of an order detail view. UnitPrice is
// the price captured at checkout, not the current catalog price.
type OrderItemResponse struct {
	ProductID kernel.UUID
	VendorID  kernel.UUID
	Quantity  int
	UnitPrice decimal.Decimal
}

// OrderDetailsResponse is the full projection of a single order.
type OrderDetailsResponse struct {
	OrderSummaryResponse
	Items []OrderItemResponse
}

const orderSummaryColumns = `
	id,
	customer_id,
	delivery_partner_id,
	status,
	total_price,
	created_at,
	updated_at`

func scanOrderSummary(rows *sql.Rows) (OrderSummaryResponse, error) {
	var (
		summary   OrderSummaryResponse
		id        string
		customer  string
		partnerID sql.NullString
	)

	err := rows.Scan(
		&id,
		&customer,
		&partnerID,
		&summary.Status,
		&summary.TotalPrice,
		&summary.CreatedAt,
		&summary.UpdatedAt,
	)
	if err != nil {
		return OrderSummaryResponse{}, err
	}

	if summary.ID, err = kernel.UUIDFromString(id); err != nil {
		return OrderSummaryResponse{}, err
	}
	if summary.CustomerID, err = kernel.UUIDFromString(customer); err != nil {
		return OrderSummaryResponse{}, err
	}
	if partnerID.Valid {
		parsed, parseErr := kernel.UUIDFromString(partnerID.String)
		if parseErr != nil {
			return OrderSummaryResponse{}, parseErr
		}
		summary.PartnerID = &parsed
	}

	return summary, nil
}

func collectOrderSummaries(rows *sql.Rows) ([]OrderSummaryResponse, error) {
	defer rows.Close()

	summaries := make([]OrderSummaryResponse, 0)
	for rows.Next() {
		summary, err := scanOrderSummary(rows)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return summaries, nil
}

// loadOrderItems fetches the line items of a set of orders in one query,
// grouped by order ID. Orders without items map to no entry.
func loadOrderItems(ctx context.Context, db *sql.DB, orderIDs []kernel.UUID) (map[kernel.UUID][]OrderItemResponse, error) {
	if len(orderIDs) == 0 {
		return map[kernel.UUID][]OrderItemResponse{}, nil
	}

	ids := make([]string, len(orderIDs))
	for i, id := range orderIDs {
		ids[i] = id.String()
	}

	rows, err := db.QueryContext(ctx, `
		SELECT
			order_id,
			product_id,
			vendor_id,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id = ANY($1::uuid[])
		ORDER BY order_id, product_id
	`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	itemsByOrder := make(map[kernel.UUID][]OrderItemResponse)
	for rows.Next() {
		var (
			item      OrderItemResponse
			orderID   string
			productID string
			vendorID  string
		)
		if err = rows.Scan(&orderID, &productID, &vendorID, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, err
		}

		parsedOrderID, parseErr := kernel.UUIDFromString(orderID)
		if parseErr != nil {
			return nil, parseErr
		}
		if item.ProductID, err = kernel.UUIDFromString(productID); err != nil {
			return nil, err
		}
		if item.VendorID, err = kernel.UUIDFromString(vendorID); err != nil {
			return nil, err
		}
		itemsByOrder[parsedOrderID] = append(itemsByOrder[parsedOrderID], item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return itemsByOrder, nil
}

// collectOrderDetails scans a page of summaries and attaches each order's
// line items, for the list views that show products inline.
func collectOrderDetails(ctx context.Context, db *sql.DB, rows *sql.Rows) ([]OrderDetailsResponse, error) {
	summaries, err := collectOrderSummaries(rows)
	if err != nil {
		return nil, err
	}

	orderIDs := make([]kernel.UUID, len(summaries))
	for i, summary := range summaries {
		orderIDs[i] = summary.ID
	}

	itemsByOrder, err := loadOrderItems(ctx, db, orderIDs)
	if err != nil {
		return nil, err
	}

	details := make([]OrderDetailsResponse, len(summaries))
	for i, summary := range summaries {
		items := itemsByOrder[summary.ID]
		if items == nil {
			items = make([]OrderItemResponse, 0)
		}
		details[i] = OrderDetailsResponse{
			OrderSummaryResponse: summary,
			Items:                items,
		}
	}
	return details, nil
}
