// Package catalogrepo provides read access to the product catalog used to
// price order line items at checkout.
package catalogrepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/core/ports"
	"freshcart/internal/pkg/errs"
)

// ProductDTO represents the database structure of a catalog product. Catalog
// management lives outside this service; only the columns checkout needs are
// mapped here.
type ProductDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	VendorID  uuid.UUID       `gorm:"type:uuid;index"`
	Name      string          `gorm:"type:text"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for catalog products.
func (ProductDTO) TableName() string {
	return "products"
}

// GormCatalogLookup implements CatalogLookup over the products table.
type GormCatalogLookup struct {
	db *gorm.DB
}

// NewGormCatalogLookup creates a catalog lookup over the given connection.
func NewGormCatalogLookup(db *gorm.DB) *GormCatalogLookup {
	return &GormCatalogLookup{db: db}
}

// ResolveProduct returns the current catalog data for the product.
// Returns errs.ObjectNotFoundError when the product does not exist.
func (l *GormCatalogLookup) ResolveProduct(ctx context.Context, productID kernel.UUID) (ports.Product, error) {
	if err := productID.Validate(); err != nil {
		return ports.Product{}, err
	}

	var dto ProductDTO
	err := l.db.WithContext(ctx).First(&dto, "id = ?", productID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Product{}, errs.NewObjectNotFoundError("productId", productID.String())
		}
		return ports.Product{}, err
	}

	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.Product{}, err
	}
	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return ports.Product{}, err
	}

	return ports.Product{
		ID:       id,
		VendorID: vendorID,
		Name:     dto.Name,
		Price:    dto.Price,
	}, nil
}
