package tokens

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/openfactor/factorhub/directory"
	"github.com/openfactor/factorhub/lib/responses"
	"github.com/openfactor/factorhub/lib/security"
)

// AdminMiddleware : resolves the caller's group memberships from the
// directory and rejects the request unless the admin group is among them.
// Fails closed: a directory failure never lets the request through, and the
// handler behind it is never reached without a positive gate result.
func AdminMiddleware(adminGroup string, dir directory.Client) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			login, ok := c.Get("UserLogin").(string)
			if !ok || login == "" {
				return c.JSON(http.StatusUnauthorized, responses.AuthorizationError)
			}
			groups, err := dir.GroupsForUser(c.Request().Context(), login)
			if err != nil {
				c.Logger().Errorf("Error fetching group memberships for login:%s error: %v", login, err)
				return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
			}
			if !security.IsAdmin(groups, adminGroup) {
				c.Logger().Infof("Rejected non-admin caller login:%s", login)
				return c.JSON(http.StatusUnauthorized, responses.AuthorizationError)
			}
			c.Set("AdminLogin", login)
			return next(c)
		}
	}
}
