package middleware // middleware provides shared request processing for handlers

import (
	"net/http" // HTTP status codes for responses

	"github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

	"github.com/Achawin1998/tours-travel-backend/internal/model"
	"github.com/Achawin1998/tours-travel-backend/internal/utils"
)

// AccessTokenCookie is the cookie the login endpoint sets and the guards
// read. It is HTTP-only; the token is never expected in a header.
const AccessTokenCookie = "accessToken"

// Auth returns an Echo middleware that validates the access token cookie
// and injects the token's subject and role claims into the request
// context. The provided secret must match the one used when issuing
// tokens. Handlers behind this guard read the identity via
// CurrentUserID(c) and CurrentRole(c).
//
// The guard is a per-request decision with two terminal outcomes: proceed
// with identity attached, or 401. A missing cookie and an invalid token
// are reported with distinct messages so clients can tell a logged-out
// state from an expired session.
func Auth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(AccessTokenCookie)
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"success": false, "message": "you are not authorized",
				})
			}
			claims, err := utils.ParseAccessToken(secret, cookie.Value)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"success": false, "message": "token is invalid",
				})
			}
			c.Set("user_id", claims.UserID)
			c.Set("role", claims.Role)
			return next(c)
		}
	}
}

// RequireAdmin returns a middleware that only lets admin identities
// through. It assumes Auth has already stored the role in the context.
// Non-admins receive 401, matching the API's single unauthorized class
// (there is no separate 403 at the guard level).
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if role != model.RoleAdmin {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"success": false, "message": "you are not authenticated",
				})
			}
			return next(c)
		}
	}
}
