package http

import (
	"time"

	"freshcart/internal/core/application/usecases/queries"
)

// CreatePartnerRequest is the body of POST /api/v1/partners.
type CreatePartnerRequest struct {
	Name         string `json:"name" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	VehicleType  string `json:"vehicle_type" validate:"required"`
	LinkedUserID string `json:"linked_user_id" validate:"omitempty,uuid"`
}

// UpdateOrderStatusRequest is the body of PATCH /api/v1/orders/:id/status
// and of the admin override PUT on the same path.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// AssignPartnerRequest is the body of POST /api/v1/orders/:id/assignment.
type AssignPartnerRequest struct {
	PartnerID string `json:"partner_id" validate:"required,uuid"`
}

// LinkUserRequest is the body of POST /api/v1/partners/:id/user-link.
type LinkUserRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}

// CreatedResponse carries the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// OrderItem is one priced line of an order response.
type OrderItem struct {
	ProductID string `json:"product_id"`
	VendorID  string `json:"vendor_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

// Order is the JSON projection of an order. TotalPrice and UnitPrice are
// decimal strings. Items is present on detail responses and on the customer
// and partner views; the flat admin and vendor listings omit it.
type Order struct {
	ID         string      `json:"id"`
	CustomerID string      `json:"customer_id"`
	PartnerID  *string     `json:"partner_id,omitempty"`
	Status     string      `json:"status"`
	TotalPrice string      `json:"total_price"`
	CreatedAt  *time.Time  `json:"created_at,omitempty"`
	UpdatedAt  *time.Time  `json:"updated_at,omitempty"`
	Items      []OrderItem `json:"items,omitempty"`
}

func toOrderResponse(summary queries.OrderSummaryResponse) Order {
	response := Order{
		ID:         summary.ID.String(),
		CustomerID: summary.CustomerID.String(),
		Status:     summary.Status,
		TotalPrice: summary.TotalPrice.String(),
	}
	if summary.PartnerID != nil {
		partnerID := summary.PartnerID.String()
		response.PartnerID = &partnerID
	}
	if summary.CreatedAt.Valid {
		createdAt := summary.CreatedAt.Time
		response.CreatedAt = &createdAt
	}
	if summary.UpdatedAt.Valid {
		updatedAt := summary.UpdatedAt.Time
		response.UpdatedAt = &updatedAt
	}
	return response
}

func toOrderDetailsResponse(details queries.OrderDetailsResponse) Order {
	response := toOrderResponse(details.OrderSummaryResponse)
	response.Items = make([]OrderItem, len(details.Items))
	for i, item := range details.Items {
		response.Items[i] = OrderItem{
			ProductID: item.ProductID.String(),
			VendorID:  item.VendorID.String(),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.String(),
		}
	}
	return response
}

func toOrderListResponse(summaries []queries.OrderSummaryResponse) []Order {
	response := make([]Order, len(summaries))
	for i, summary := range summaries {
		response[i] = toOrderResponse(summary)
	}
	return response
}

func toOrderDetailsListResponse(details []queries.OrderDetailsResponse) []Order {
	response := make([]Order, len(details))
	for i, d := range details {
		response[i] = toOrderDetailsResponse(d)
	}
	return response
}
