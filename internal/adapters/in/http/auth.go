package http

import (
	"errors"
	"net/http"
	"strings"

	"freshcart/internal/core/domain/model/auth"
	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/core/ports"
	"freshcart/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// principalContextKey is where the authenticated principal is stored on the
// Echo context for downstream handlers.
const principalContextKey = "principal"

// ErrInvalidToken is returned when a bearer token is missing, malformed,
// expired, or signed with the wrong key.
var ErrInvalidToken = errors.New("invalid token")

type tokenClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// TokenParser verifies HS256 bearer tokens and extracts the user identity
// and marketplace role from the claims.
type TokenParser struct {
	secret []byte
}

// NewTokenParser creates a parser bound to the shared signing secret.
func NewTokenParser(secret string) TokenParser {
	return TokenParser{secret: []byte(secret)}
}

// Parse verifies the token signature and returns the user ID and role
// carried in the claims. The role is validated against the known set; the
// caller must still resolve delivery users to their partner record.
func (p TokenParser) Parse(tokenString string) (kernel.UUID, auth.Role, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return p.secret, nil
	})
	if err != nil || !token.Valid {
		return kernel.UUID{}, "", ErrInvalidToken
	}

	userID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return kernel.UUID{}, "", ErrInvalidToken
	}

	role := auth.Role(claims.Role)
	if err := role.Validate(); err != nil {
		return kernel.UUID{}, "", ErrInvalidToken
	}

	return userID, role, nil
}

// Authenticator turns bearer tokens into auth.Principal values. Delivery
// users act as their partner record: the principal carries the partner's ID,
// not the user account's, so assignment checks compare like with like.
type Authenticator struct {
	parser   TokenParser
	partners ports.PartnerRepository
}

// NewAuthenticator creates an Authenticator with the given token parser and
// partner repository for resolving delivery user links.
func NewAuthenticator(parser TokenParser, partners ports.PartnerRepository) *Authenticator {
	return &Authenticator{
		parser:   parser,
		partners: partners,
	}
}

// Middleware authenticates the request and stores the principal on the
// context. Requests without a valid bearer token are rejected with 401;
// delivery users without a linked partner record are rejected with 403.
func (a *Authenticator) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			return errorResponse(ctx, http.StatusUnauthorized, "Missing bearer token")
		}

		userID, role, err := a.parser.Parse(tokenString)
		if err != nil {
			return errorResponse(ctx, http.StatusUnauthorized, "Invalid bearer token")
		}

		principalID := userID
		if role == auth.RoleDelivery {
			linkedPartner, lookupErr := a.partners.GetByLinkedUser(ctx.Request().Context(), userID)
			if lookupErr != nil {
				if errors.Is(lookupErr, errs.ErrObjectNotFound) {
					return errorResponse(ctx, http.StatusForbidden, "No delivery partner linked to this account")
				}
				return domainErrorResponse(ctx, lookupErr)
			}
			principalID = linkedPartner.ID()
		}

		principal, err := auth.NewPrincipal(principalID, role)
		if err != nil {
			return errorResponse(ctx, http.StatusUnauthorized, "Invalid bearer token")
		}

		ctx.Set(principalContextKey, principal)
		return next(ctx)
	}
}

// RequireRole restricts a route group to the given marketplace roles. It
// must run after Authenticator.Middleware.
func RequireRole(roles ...auth.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			principal, err := principalFrom(ctx)
			if err != nil {
				return errorResponse(ctx, http.StatusUnauthorized, "Missing bearer token")
			}
			for _, role := range roles {
				if principal.Role() == role {
					return next(ctx)
				}
			}
			return errorResponse(ctx, http.StatusForbidden, "Insufficient role")
		}
	}
}

func principalFrom(ctx echo.Context) (auth.Principal, error) {
	principal, ok := ctx.Get(principalContextKey).(auth.Principal)
	if !ok {
		return auth.Principal{}, ErrInvalidToken
	}
	if err := principal.Validate(); err != nil {
		return auth.Principal{}, err
	}
	return principal, nil
}
