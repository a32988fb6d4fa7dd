package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"in.co.kisanmitra/internal/model"
)

const (
	AccessCookieName  = "access_token"
	RefreshCookieName = "refresh_token"

	accountContextKey = "account"
)

type Authenticator interface {
	Authenticate(accessToken string) (*model.Account, error)
}

// extractToken prefers the Authorization header over the cookie so API-only
// clients can override a stale cookie jar.
func extractToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	cookie, err := c.Cookie(AccessCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// RequireAuth is the gate in front of every protected route. It resolves the
// access token to a live account and attaches it to the request context, or
// rejects with 401 (or 423 when the account is locked out).
func RequireAuth(auth Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenStr := extractToken(c)
			if tokenStr == "" {
				return c.JSON(http.StatusUnauthorized, response{Message: "Access token required"})
			}
			account, err := auth.Authenticate(tokenStr)
			if err != nil {
				return fail(c, err)
			}
			c.Set(accountContextKey, account)
			return next(c)
		}
	}
}

// OptionalAuth performs the same resolution but proceeds unauthenticated on
// any failure, for routes that behave differently for anonymous callers.
func OptionalAuth(auth Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenStr := extractToken(c)
			if tokenStr != "" {
				if account, err := auth.Authenticate(tokenStr); err == nil {
					c.Set(accountContextKey, account)
				}
			}
			return next(c)
		}
	}
}

// AccountFrom returns the account the gate attached, or nil on optionally
// authenticated routes with no caller identity.
func AccountFrom(c echo.Context) *model.Account {
	account, ok := c.Get(accountContextKey).(*model.Account)
	if !ok {
		return nil
	}
	return account
}

// ViewerFrom is AccountFrom reduced to an ID, empty for anonymous callers.
func ViewerFrom(c echo.Context) model.AccountID {
	account := AccountFrom(c)
	if account == nil {
		return ""
	}
	return account.ID
}
