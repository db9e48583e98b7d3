package kernel_test

import (
	"testing"

	"freshcart/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// canonical form of the fixture used across the parsing tests
const customerIDText = "9f2c41aa-6b1e-4f7d-8a3b-2d9c05e17b64"

func TestNewUUID(t *testing.T) {
	t.Run("generates a valid identifier", func(t *testing.T) {
		orderID := kernel.NewUUID()

		require.NoError(t, orderID.Validate())
		assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", orderID.String())
	})

	t.Run("successive identifiers differ", func(t *testing.T) {
		orderID := kernel.NewUUID()
		partnerID := kernel.NewUUID()

		assert.False(t, orderID.IsEqual(partnerID))
		assert.NotEqual(t, orderID.String(), partnerID.String())
	})
}

func TestUUIDFromString(t *testing.T) {
	t.Run("parses canonical form", func(t *testing.T) {
		customerID, err := kernel.UUIDFromString(customerIDText)

		require.NoError(t, err)
		require.NoError(t, customerID.Validate())
		assert.Equal(t, customerIDText, customerID.String())
	})

	t.Run("normalizes alternate encodings", func(t *testing.T) {
		encodings := []string{
			"{9f2c41aa-6b1e-4f7d-8a3b-2d9c05e17b64}",
			"urn:uuid:9f2c41aa-6b1e-4f7d-8a3b-2d9c05e17b64",
			"9f2c41aa6b1e4f7d8a3b2d9c05e17b64",
		}

		for _, encoding := range encodings {
			customerID, err := kernel.UUIDFromString(encoding)
			require.NoError(t, err, "encoding: %s", encoding)
			assert.Equal(t, customerIDText, customerID.String())
		}
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		malformed := []string{
			"",
			"ORD-2024-000123",
			"9f2c41aa-6b1e-4f7d-8a3b",
			"9f2c41aa-6b1e-4f7d-8a3b-2d9c05e17b64-extra",
			"zz2c41aa-6b1e-4f7d-8a3b-2d9c05e17b64",
		}

		for _, input := range malformed {
			_, err := kernel.UUIDFromString(input)
			require.Error(t, err, "input: %s", input)
			assert.Contains(t, err.Error(), "invalid UUID format")
		}
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("round-trips through the binary form", func(t *testing.T) {
		productID := kernel.NewUUID()
		raw := productID.Bytes()

		restored, err := kernel.UUIDFromBytes(raw[:])
		require.NoError(t, err)
		assert.True(t, productID.IsEqual(restored))
	})

	t.Run("rejects a truncated slice", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x9f, 0x2c, 0x41})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})

	t.Run("rejects the nil identifier", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		require.Error(t, err)
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("constructed identifier passes", func(t *testing.T) {
		assert.NoError(t, kernel.NewUUID().Validate())
	})

	t.Run("zero value fails", func(t *testing.T) {
		var vendorID kernel.UUID

		err := vendorID.Validate()
		require.Error(t, err)
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})

	t.Run("parsed nil identifier fails", func(t *testing.T) {
		vendorID, err := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")
		require.NoError(t, err)

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, vendorID.Validate())
	})
}

func TestUUID_IsEqual(t *testing.T) {
	t.Run("same identifier parsed twice compares equal", func(t *testing.T) {
		first, err := kernel.UUIDFromString(customerIDText)
		require.NoError(t, err)
		second, err := kernel.UUIDFromString(customerIDText)
		require.NoError(t, err)

		assert.True(t, first.IsEqual(second))
		assert.True(t, second.IsEqual(first))
	})

	t.Run("zero values compare equal to each other only", func(t *testing.T) {
		var left, right kernel.UUID

		assert.True(t, left.IsEqual(right))
		assert.False(t, left.IsEqual(kernel.NewUUID()))
	})
}

func TestUUID_Bytes(t *testing.T) {
	t.Run("exposes the underlying value without sharing state", func(t *testing.T) {
		orderID := kernel.NewUUID()
		canonical := orderID.String()

		raw := orderID.Bytes()
		assert.IsType(t, uuid.UUID{}, raw)
		for i := range raw {
			raw[i] = 0xFF
		}

		assert.Equal(t, canonical, orderID.String())
		assert.NoError(t, orderID.Validate())
	})
}
