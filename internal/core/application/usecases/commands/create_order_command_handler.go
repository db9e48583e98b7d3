package commands

import (
	"context"
	"errors"
	"fmt"

	"freshcart/internal/core/domain/model/cart"
	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/core/domain/model/order"
	"freshcart/internal/core/ports"
	"freshcart/internal/pkg/errs"
)

// ErrEmptyCart indicates checkout was attempted with no active cart
// or a cart with no items.
var ErrEmptyCart = errors.New("empty cart")

// EmptyCartError is returned when a customer checks out without any
// cart items to order.
type EmptyCartError struct {
	CustomerID kernel.UUID
}

// NewEmptyCartError creates an EmptyCartError for the given customer.
func NewEmptyCartError(customerID kernel.UUID) *EmptyCartError {
	return &EmptyCartError{CustomerID: customerID}
}

func (e *EmptyCartError) Error() string {
	return fmt.Sprintf("%s: customer %s", ErrEmptyCart, e.CustomerID)
}

func (e *EmptyCartError) Unwrap() error {
	return ErrEmptyCart
}

// CreateOrderCommandHandler handles the business logic for checkout.
// Atomically consumes the customer's cart, snapshots catalog prices into
// line items, and creates the order in "pending" status. If anything fails
// after the cart was consumed, the cart is restored so the customer can
// retry checkout.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	cartStore  ports.CartStore
	catalog    ports.CatalogLookup
}

// NewCreateOrderCommandHandler creates a handler for checkout operations.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	cartStore ports.CartStore,
	catalog ports.CatalogLookup,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		cartStore:  cartStore,
		catalog:    catalog,
	}
}

// Handle processes the checkout command.
// Returns EmptyCartError when the customer has no cart or the cart has no
// items. Prices and vendor attribution are captured from the catalog at
// this moment and never change afterwards, even if the catalog does.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	activeCart, err := h.cartStore.Consume(ctx, cmd.CustomerID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return NewEmptyCartError(cmd.CustomerID())
		}
		return err
	}

	if activeCart.IsEmpty() {
		return NewEmptyCartError(cmd.CustomerID())
	}

	if err = h.createOrder(ctx, cmd, activeCart); err != nil {
		// Put the cart back so the customer can retry checkout.
		if restoreErr := h.cartStore.Restore(ctx, activeCart); restoreErr != nil {
			return errors.Join(err, restoreErr)
		}
		return err
	}

	return nil
}

func (h *CreateOrderCommandHandler) createOrder(
	ctx context.Context, cmd CreateOrderCommand, activeCart *cart.Cart,
) error {
	lineItems, err := h.snapshotLineItems(ctx, activeCart)
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), lineItems)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *CreateOrderCommandHandler) snapshotLineItems(
	ctx context.Context, activeCart *cart.Cart,
) ([]order.LineItem, error) {
	lineItems := make([]order.LineItem, 0, len(activeCart.Items))
	for _, item := range activeCart.Items {
		product, err := h.catalog.ResolveProduct(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}

		lineItem, err := order.NewLineItem(product.ID, product.VendorID, item.Quantity, product.Price)
		if err != nil {
			return nil, err
		}

		lineItems = append(lineItems, lineItem)
	}

	return lineItems, nil
}
