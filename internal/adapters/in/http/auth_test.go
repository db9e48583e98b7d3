package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"freshcart/internal/core/domain/model/auth"
	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/core/domain/model/partner"
	"freshcart/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-secret"

type MockAuthPartnerRepository struct {
	mock.Mock
}

func (m *MockAuthPartnerRepository) Add(ctx context.Context, aggregate *partner.DeliveryPartner) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockAuthPartnerRepository) Update(ctx context.Context, aggregate *partner.DeliveryPartner) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockAuthPartnerRepository) Get(ctx context.Context, id kernel.UUID) (*partner.DeliveryPartner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.DeliveryPartner), args.Error(1)
}

func (m *MockAuthPartnerRepository) GetByLinkedUser(ctx context.Context, userID kernel.UUID) (*partner.DeliveryPartner, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.DeliveryPartner), args.Error(1)
}

func signToken(t *testing.T, secret, subject, role string) string {
	t.Helper()

	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Role: role,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestTokenParser_Parse(t *testing.T) {
	parser := NewTokenParser(testSecret)
	userID := kernel.NewUUID()

	t.Run("accepts a valid token", func(t *testing.T) {
		token := signToken(t, testSecret, userID.String(), "customer")

		parsedID, role, err := parser.Parse(token)

		require.NoError(t, err)
		assert.True(t, parsedID.IsEqual(userID))
		assert.Equal(t, auth.RoleCustomer, role)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		token := signToken(t, "other-secret", userID.String(), "customer")

		_, _, err := parser.Parse(token)

		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		claims := tokenClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   userID.String(),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
			Role: "customer",
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, _, parseErr := parser.Parse(token)

		require.ErrorIs(t, parseErr, ErrInvalidToken)
	})

	t.Run("rejects an unknown role claim", func(t *testing.T) {
		token := signToken(t, testSecret, userID.String(), "superuser")

		_, _, err := parser.Parse(token)

		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects a non-UUID subject", func(t *testing.T) {
		token := signToken(t, testSecret, "not-a-uuid", "customer")

		_, _, err := parser.Parse(token)

		require.ErrorIs(t, err, ErrInvalidToken)
	})
}

func invokeMiddleware(t *testing.T, authn *Authenticator, authHeader string) (*httptest.ResponseRecorder, auth.Principal) {
	t.Helper()

	e := echo.New()
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		request.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	recorder := httptest.NewRecorder()
	ctx := e.NewContext(request, recorder)

	var captured auth.Principal
	next := func(c echo.Context) error {
		principal, err := principalFrom(c)
		require.NoError(t, err)
		captured = principal
		return c.NoContent(http.StatusOK)
	}

	require.NoError(t, authn.Middleware(next)(ctx))
	return recorder, captured
}

func TestAuthenticator_Middleware(t *testing.T) {
	parser := NewTokenParser(testSecret)

	t.Run("rejects a request without a bearer token", func(t *testing.T) {
		repo := &MockAuthPartnerRepository{}
		authn := NewAuthenticator(parser, repo)

		recorder, _ := invokeMiddleware(t, authn, "")

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("builds a customer principal from the token subject", func(t *testing.T) {
		repo := &MockAuthPartnerRepository{}
		authn := NewAuthenticator(parser, repo)
		userID := kernel.NewUUID()
		token := signToken(t, testSecret, userID.String(), "customer")

		recorder, principal := invokeMiddleware(t, authn, "Bearer "+token)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.True(t, principal.ID().IsEqual(userID))
		assert.Equal(t, auth.RoleCustomer, principal.Role())
		repo.AssertNotCalled(t, "GetByLinkedUser")
	})

	t.Run("delivery principal carries the linked partner's identity", func(t *testing.T) {
		userID := kernel.NewUUID()
		linkedPartner, err := partner.NewDeliveryPartner(kernel.NewUUID(), "Sam Rivera", "+15550100", "bike")
		require.NoError(t, err)

		repo := &MockAuthPartnerRepository{}
		repo.On("GetByLinkedUser", mock.Anything, userID).Return(linkedPartner, nil)
		authn := NewAuthenticator(parser, repo)
		token := signToken(t, testSecret, userID.String(), "delivery")

		recorder, principal := invokeMiddleware(t, authn, "Bearer "+token)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.True(t, principal.ID().IsEqual(linkedPartner.ID()))
		assert.Equal(t, auth.RoleDelivery, principal.Role())
		repo.AssertExpectations(t)
	})

	t.Run("rejects a delivery user without a partner record", func(t *testing.T) {
		userID := kernel.NewUUID()

		repo := &MockAuthPartnerRepository{}
		repo.On("GetByLinkedUser", mock.Anything, userID).
			Return(nil, errs.NewObjectNotFoundError("userID", userID))
		authn := NewAuthenticator(parser, repo)
		token := signToken(t, testSecret, userID.String(), "delivery")

		recorder, _ := invokeMiddleware(t, authn, "Bearer "+token)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
		repo.AssertExpectations(t)
	})
}

func TestRequireRole(t *testing.T) {
	runWithPrincipal := func(t *testing.T, role auth.Role, gate echo.MiddlewareFunc) *httptest.ResponseRecorder {
		t.Helper()

		e := echo.New()
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		recorder := httptest.NewRecorder()
		ctx := e.NewContext(request, recorder)

		principal, err := auth.NewPrincipal(kernel.NewUUID(), role)
		require.NoError(t, err)
		ctx.Set(principalContextKey, principal)

		next := func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		}
		require.NoError(t, gate(next)(ctx))
		return recorder
	}

	t.Run("admits a matching role", func(t *testing.T) {
		recorder := runWithPrincipal(t, auth.RoleAdmin, RequireRole(auth.RoleAdmin, auth.RoleDelivery))

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("rejects a role outside the gate", func(t *testing.T) {
		recorder := runWithPrincipal(t, auth.RoleCustomer, RequireRole(auth.RoleAdmin))

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("rejects a request without a principal", func(t *testing.T) {
		e := echo.New()
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		recorder := httptest.NewRecorder()
		ctx := e.NewContext(request, recorder)

		next := func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		}
		require.NoError(t, RequireRole(auth.RoleAdmin)(next)(ctx))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}
