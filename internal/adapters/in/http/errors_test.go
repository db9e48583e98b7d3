package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"freshcart/internal/core/application/usecases/commands"
	"freshcart/internal/core/domain/model/auth"
	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/core/domain/model/order"
	"freshcart/internal/core/domain/model/partner"
	"freshcart/internal/core/domain/services"
	"freshcart/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainErrorResponse(t *testing.T) {
	orderID := kernel.NewUUID()

	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "missing object maps to 404",
			err:      errs.NewObjectNotFoundError("orderID", orderID),
			wantCode: http.StatusNotFound,
		},
		{
			name:     "empty cart maps to 422",
			err:      commands.NewEmptyCartError(kernel.NewUUID()),
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "forbidden transition maps to 403",
			err:      services.NewForbiddenTransitionError(auth.RoleCustomer, order.Pending, order.Confirmed),
			wantCode: http.StatusForbidden,
		},
		{
			name:     "off-graph transition maps to 409",
			err:      order.NewInvalidStatusTransitionError(order.Delivered, order.Pending),
			wantCode: http.StatusConflict,
		},
		{
			name:     "already linked partner maps to 409",
			err:      partner.NewAlreadyLinkedError(kernel.NewUUID(), kernel.NewUUID()),
			wantCode: http.StatusConflict,
		},
		{
			name:     "duplicate partner phone maps to 409",
			err:      partner.NewDuplicatePhoneError("+15550100"),
			wantCode: http.StatusConflict,
		},
		{
			name:     "stale write maps to 409",
			err:      errs.NewConcurrentModificationError("orderID", orderID),
			wantCode: http.StatusConflict,
		},
		{
			name:     "out-for-delivery via status change maps to 400",
			err:      commands.ErrStatusRequiresAssignment,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "invalid value maps to 400",
			err:      errs.NewValueIsInvalidError("status"),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unclassified error maps to 500",
			err:      errors.New("connection reset"),
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			recorder := httptest.NewRecorder()
			ctx := e.NewContext(request, recorder)

			require.NoError(t, domainErrorResponse(ctx, tt.err))

			assert.Equal(t, tt.wantCode, recorder.Code)
			assert.Contains(t, recorder.Body.String(), `"code"`)
		})
	}
}
