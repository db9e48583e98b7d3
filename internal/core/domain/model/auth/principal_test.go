package auth_test

import (
	"testing"

	"freshcart/internal/core/domain/model/auth"
	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrincipal(t *testing.T) {
	t.Run("creates principal with valid id and role", func(t *testing.T) {
		id := kernel.NewUUID()

		principal, err := auth.NewPrincipal(id, auth.RoleAdmin)

		require.NoError(t, err)
		require.NoError(t, principal.Validate())
		assert.True(t, principal.ID().IsEqual(id))
		assert.Equal(t, auth.RoleAdmin, principal.Role())
	})

	t.Run("rejects zero value id", func(t *testing.T) {
		var id kernel.UUID

		_, err := auth.NewPrincipal(id, auth.RoleCustomer)

		require.Error(t, err)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := auth.NewPrincipal(kernel.NewUUID(), auth.Role("superuser"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPrincipal_Validate(t *testing.T) {
	t.Run("zero value principal is invalid", func(t *testing.T) {
		var principal auth.Principal

		err := principal.Validate()

		require.Error(t, err)
		assert.Equal(t, auth.ErrPrincipalIsNotConstructed, err)
	})
}

func TestPrincipal_RoleChecks(t *testing.T) {
	id := kernel.NewUUID()

	admin, err := auth.NewPrincipal(id, auth.RoleAdmin)
	require.NoError(t, err)
	delivery, err := auth.NewPrincipal(id, auth.RoleDelivery)
	require.NoError(t, err)
	customer, err := auth.NewPrincipal(id, auth.RoleCustomer)
	require.NoError(t, err)

	assert.True(t, admin.IsAdmin())
	assert.False(t, admin.IsDeliveryPartner())
	assert.True(t, delivery.IsDeliveryPartner())
	assert.False(t, customer.IsAdmin())
	assert.False(t, customer.IsDeliveryPartner())
}
