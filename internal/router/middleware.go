package router

import (
	"net/http"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"roomchoice/internal/auth"
	"roomchoice/internal/errors"
	"roomchoice/internal/handler"
	"roomchoice/internal/repository"
)

// ResolveUser turns the verified JWT into a fresh user record. It runs
// after the echo-jwt middleware, rejects blacklisted tokens, and re-reads
// the user from the database so role changes apply without re-login. The
// resolved user is attached to the request context for handlers and for
// RequireAdmin.
func ResolveUser(tokenStore auth.TokenStoreInterface, userRepo repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return unauthorized("invalid token")
			}
			claims, ok := token.Claims.(*auth.Claims)
			if !ok {
				return unauthorized("invalid token")
			}

			ctx := c.Request().Context()

			if claims.ID != "" {
				if blacklisted, _ := tokenStore.IsAccessTokenBlacklisted(ctx, claims.ID); blacklisted {
					return unauthorized("token has been revoked")
				}
			}

			user, err := userRepo.FindByID(ctx, claims.UserID)
			if err != nil {
				if err == gorm.ErrRecordNotFound {
					return unauthorized("token is not valid")
				}
				return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
					Message: "internal server error",
					Code:    "INTERNAL_ERROR",
				})
			}

			c.Set(handler.ContextUserKey, user)
			return next(c)
		}
	}
}

// RequireAdmin gates a route on the admin role. It must run after
// ResolveUser; handlers behind it never inspect roles themselves.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := handler.CurrentUser(c)
		if user == nil {
			return unauthorized("authentication required")
		}
		if !user.IsAdmin() {
			return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
				Message: "admin access required",
				Code:    "ADMIN_REQUIRED",
			})
		}
		return next(c)
	}
}

func unauthorized(message string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
		Message: message,
		Code:    "INVALID_TOKEN",
	})
}
