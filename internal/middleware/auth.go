package middleware

import (
	"fmt"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"authapi/internal/apperror"
	"authapi/internal/auth"
	"authapi/internal/repository"
)

const bearerPrefix = "Bearer "

const identityKey = "identity"

// Identity is the authenticated request context. Built once by Authenticate
// and read-only downstream; discarded at request end.
type Identity struct {
	UserID        uint
	IssuedAt      time.Time
	Authenticated bool
	// RawToken is the credential exactly as presented, including the
	// Bearer prefix, which is also how session rows are keyed.
	RawToken string
}

// GetIdentity returns the identity placed on the context by Authenticate.
func GetIdentity(c echo.Context) (Identity, bool) {
	identity, ok := c.Get(identityKey).(Identity)
	return identity, ok
}

// AuthMiddleware gates requests on bearer credentials and admin membership.
type AuthMiddleware struct {
	jwt       *auth.JWTService
	tokens    repository.TokenRepository
	users     repository.UserRepository
	cookieKey string
}

// NewAuthMiddleware builds the middleware with its collaborators.
func NewAuthMiddleware(jwtService *auth.JWTService, tokens repository.TokenRepository, users repository.UserRepository, cookieKey string) *AuthMiddleware {
	return &AuthMiddleware{
		jwt:       jwtService,
		tokens:    tokens,
		users:     users,
		cookieKey: cookieKey,
	}
}

// Authenticate extracts the bearer credential from the Authorization header
// or the session cookie, checks session liveness against the token store,
// verifies the token cryptographically, and populates the request identity.
// The store is consulted before any signature work so revoked tokens are
// rejected cheaply; both checks are mandatory.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		credential := c.Request().Header.Get(echo.HeaderAuthorization)
		if credential == "" {
			if cookie, err := c.Cookie(m.cookieKey); err == nil {
				credential = cookie.Value
			}
		}

		if credential == "" {
			return apperror.NewUnauthorized(
				apperror.CodeMissingAuthorization,
				"The Authorization header and the session cookie are both missing.",
				"Authorization missing.",
			)
		}

		if !strings.HasPrefix(credential, bearerPrefix) {
			return apperror.NewUnauthorized(
				apperror.CodeInvalidAuthorizationType,
				"The credential must have the form: Bearer <token>.",
				"Invalid token type.",
			)
		}

		row, err := m.tokens.FindByToken(c.Request().Context(), credential)
		if err != nil {
			return err
		}
		if row == nil || !row.ExpiresAt.After(time.Now()) {
			return apperror.NewUnauthorized(
				apperror.CodeTokenExpired,
				"The session token has expired or has been revoked.",
				"Token expired.",
			)
		}

		claims, err := m.jwt.Verify(strings.TrimPrefix(credential, bearerPrefix))
		if err != nil {
			return apperror.NewUnauthorized(
				apperror.CodeInvalidAuthorization,
				"The token could not be verified.",
				"Invalid token.",
			)
		}

		c.Set(identityKey, Identity{
			UserID:        claims.UserID,
			IssuedAt:      claims.Timestamp,
			Authenticated: true,
			RawToken:      credential,
		})

		return next(c)
	}
}

// RequireAdmin loads the authenticated user and rejects non-admins. The
// user row is re-fetched on every request so privilege revocation takes
// effect immediately.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, ok := GetIdentity(c)
		if !ok || !identity.Authenticated {
			return apperror.NewUnauthorized(
				apperror.CodeMissingAuthorization,
				"The request has not been authenticated.",
				"Authorization missing.",
			)
		}

		user, err := m.users.FindByID(c.Request().Context(), identity.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			return apperror.NewNotFound(
				apperror.CodeUserNotFound,
				fmt.Sprintf("User with ID %d was not found in the database.", identity.UserID),
				"User not found.",
			)
		}
		if !user.IsAdmin {
			return apperror.NewForbidden(
				apperror.CodeNotEnoughPrivileges,
				"The authenticated user is not an administrator.",
				"Not enough privileges.",
			)
		}

		return next(c)
	}
}
