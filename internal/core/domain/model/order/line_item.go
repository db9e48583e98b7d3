package order

import (
	"errors"
	"fmt"

	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/pkg/errs"
	"freshcart/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created
// through the NewLineItem constructor.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is a point-in-time snapshot of one cart entry at order creation:
// the product, the vendor that owned it, the quantity, and the unit price
// the customer saw. The price is captured once and never recomputed from the
// live catalog.
//
// LineItem is an immutable value object.
type LineItem struct {
	productID kernel.UUID
	vendorID  kernel.UUID
	quantity  int
	unitPrice decimal.Decimal

	guard guard.ConstructorGuard
}

// NewLineItem creates a validated line-item snapshot.
//
// Business rules:
//   - product and vendor identifiers must be valid
//   - quantity must be positive
//   - unit price must not be negative
func NewLineItem(productID, vendorID kernel.UUID, quantity int, unitPrice decimal.Decimal) (LineItem, error) {
	item := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setVendorID(vendorID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// Validate ensures the line item was created through the constructor.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// ProductID returns the snapshotted product reference.
func (li LineItem) ProductID() kernel.UUID {
	return li.productID
}

// VendorID returns the vendor that owned the product at order time.
func (li LineItem) VendorID() kernel.UUID {
	return li.vendorID
}

// Quantity returns the ordered quantity.
func (li LineItem) Quantity() int {
	return li.quantity
}

// UnitPrice returns the price per unit captured at order time.
func (li LineItem) UnitPrice() decimal.Decimal {
	return li.unitPrice
}

// Total returns quantity * unit price for this line.
func (li LineItem) Total() decimal.Decimal {
	return li.unitPrice.Mul(decimal.NewFromInt(int64(li.quantity)))
}

func (li *LineItem) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	li.productID = productID
	return nil
}

func (li *LineItem) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}
	li.vendorID = vendorID
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	li.quantity = quantity
	return nil
}

func (li *LineItem) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%s is negative", unitPrice))
	}
	li.unitPrice = unitPrice
	return nil
}
