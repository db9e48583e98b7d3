package queries_test

import (
	"testing"

	"freshcart/internal/core/application/usecases/queries"
	"freshcart/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery(t *testing.T) {
	orderID := kernel.NewUUID()
	q, err := queries.NewGetOrderQuery(orderID)
	require.NoError(t, err)
	assert.Equal(t, orderID, q.OrderID())

	_, err = queries.NewGetOrderQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewGetCustomerOrdersQuery(t *testing.T) {
	customerID := kernel.NewUUID()
	q, err := queries.NewGetCustomerOrdersQuery(customerID)
	require.NoError(t, err)
	assert.Equal(t, customerID, q.CustomerID())

	_, err = queries.NewGetCustomerOrdersQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestNewGetVendorOrdersQuery(t *testing.T) {
	vendorID := kernel.NewUUID()
	q, err := queries.NewGetVendorOrdersQuery(vendorID)
	require.NoError(t, err)
	assert.Equal(t, vendorID, q.VendorID())

	_, err = queries.NewGetVendorOrdersQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestNewGetAssignedOrdersQuery(t *testing.T) {
	partnerID := kernel.NewUUID()
	q, err := queries.NewGetAssignedOrdersQuery(partnerID)
	require.NoError(t, err)
	assert.Equal(t, partnerID, q.PartnerID())

	_, err = queries.NewGetAssignedOrdersQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestQueryValidate_NotConstructed(t *testing.T) {
	require.ErrorIs(t,
		queries.GetOrderQuery{}.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
	require.ErrorIs(t,
		queries.GetCustomerOrdersQuery{}.Validate(), queries.ErrGetCustomerOrdersQueryIsNotConstructed)
	require.ErrorIs(t,
		queries.GetVendorOrdersQuery{}.Validate(), queries.ErrGetVendorOrdersQueryIsNotConstructed)
	require.ErrorIs(t,
		queries.GetAllOrdersQuery{}.Validate(), queries.ErrGetAllOrdersQueryIsNotConstructed)
	require.ErrorIs(t,
		queries.GetAssignedOrdersQuery{}.Validate(), queries.ErrGetAssignedOrdersQueryIsNotConstructed)

	q := queries.NewGetAllOrdersQuery()
	require.NoError(t, q.Validate())
}
