// Package cartstore implements the cart store over Redis. Carts are written
// by the storefront as JSON documents keyed by customer; checkout consumes
// them atomically with GETDEL so two concurrent checkouts of the same cart
// cannot both succeed.
package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"freshcart/internal/core/domain/model/cart"
	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/pkg/errs"
)

const keyPrefix = "cart:"

// cartDocument is the Redis JSON layout of a cart.
type cartDocument struct {
	CustomerID string             `json:"customer_id"`
	Items      []cartItemDocument `json:"items"`
}

type cartItemDocument struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// RedisCartStore implements ports.CartStore over a Redis client.
type RedisCartStore struct {
	client *redis.Client
}

// NewRedisCartStore creates a cart store over the given Redis client.
func NewRedisCartStore(client *redis.Client) *RedisCartStore {
	return &RedisCartStore{client: client}
}

// Get returns the customer's active cart without removing it.
func (s *RedisCartStore) Get(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	payload, err := s.client.Get(ctx, cartKey(customerID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errs.NewObjectNotFoundError("customerId", customerID.String())
		}
		return nil, err
	}

	return decodeCart(payload)
}

// Consume atomically fetches and removes the customer's active cart.
func (s *RedisCartStore) Consume(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	payload, err := s.client.GetDel(ctx, cartKey(customerID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errs.NewObjectNotFoundError("customerId", customerID.String())
		}
		return nil, err
	}

	return decodeCart(payload)
}

// Restore puts a consumed cart back. SetNX keeps a cart the customer started
// building in the meantime; losing the compensation write to a fresh cart is
// the right outcome there.
func (s *RedisCartStore) Restore(ctx context.Context, c *cart.Cart) error {
	if c == nil {
		return errs.NewValueIsRequiredError("cart")
	}
	if err := c.CustomerID.Validate(); err != nil {
		return err
	}

	payload, err := encodeCart(c)
	if err != nil {
		return err
	}

	return s.client.SetNX(ctx, cartKey(c.CustomerID), payload, 0).Err()
}

func cartKey(customerID kernel.UUID) string {
	return keyPrefix + customerID.String()
}

func encodeCart(c *cart.Cart) ([]byte, error) {
	doc := cartDocument{
		CustomerID: c.CustomerID.String(),
		Items:      make([]cartItemDocument, 0, len(c.Items)),
	}
	for _, item := range c.Items {
		doc.Items = append(doc.Items, cartItemDocument{
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
		})
	}
	return json.Marshal(doc)
}

func decodeCart(payload string) (*cart.Cart, error) {
	var doc cartDocument
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}

	customerID, err := kernel.UUIDFromString(doc.CustomerID)
	if err != nil {
		return nil, err
	}

	items := make([]cart.Item, 0, len(doc.Items))
	for _, item := range doc.Items {
		productID, itemErr := kernel.UUIDFromString(item.ProductID)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, cart.Item{ProductID: productID, Quantity: item.Quantity})
	}

	return &cart.Cart{CustomerID: customerID, Items: items}, nil
}
