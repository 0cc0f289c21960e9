package handler

import (
	"github.com/labstack/echo/v4"

	"roomchoice/internal/model"
)

// ContextUserKey is where the identity middleware stores the resolved user.
const ContextUserKey = "current_user"

// CurrentUser returns the authenticated user attached to the request
// context, or nil outside a protected route.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(ContextUserKey).(*model.User)
	return user
}
