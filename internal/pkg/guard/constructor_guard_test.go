package guard_test

import (
	"errors"
	"testing"

	"freshcart/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates the pattern the order and
// partner aggregates rely on: a zero-value struct fails validation while a
// constructor-built one passes.
func TestConstructorGuardUsageExample(t *testing.T) {
	type lineItem struct {
		quantity int
		guard    guard.ConstructorGuard
	}

	var errNotConstructed = errors.New("lineItem must be created via its constructor")

	newLineItem := func(quantity int) (lineItem, error) {
		if quantity <= 0 {
			return lineItem{}, errors.New("quantity must be positive")
		}
		return lineItem{quantity: quantity, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		item, err := newLineItem(2)

		require.NoError(t, err)
		require.NoError(t, item.guard.Validate(errNotConstructed))
		assert.Equal(t, 2, item.quantity)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var item lineItem

		err := item.guard.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newLineItem(0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity must be positive")
	})
}
