package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"freshcart/internal/core/domain/model/kernel"
)

// Product is a catalog snapshot used to price order line items at checkout.
type Product struct {
	ID       kernel.UUID
	VendorID kernel.UUID
	Name     string
	Price    decimal.Decimal
}

// CatalogLookup resolves catalog products during checkout.
type CatalogLookup interface {
	// ResolveProduct returns the current catalog data for the product.
	// Returns errs.ObjectNotFoundError if the product does not exist.
	ResolveProduct(ctx context.Context, productID kernel.UUID) (Product, error)
}
