package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/inklet-dev/inklet/internal/present/rest/presenter"
)

var tracer = otel.Tracer("auth")

// HeaderAdminToken carries the shared admin secret on gated requests.
const HeaderAdminToken = "x-admin-token"

// AdminToken gates a route behind the x-admin-token header. An empty token
// leaves the route open; operators must set the secret to protect writes.
func AdminToken(token string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token == "" {
				return next(c)
			}

			_, span := tracer.Start(c.Request().Context(), "Middleware.AdminToken")
			defer span.End()

			provided := c.Request().Header.Get(HeaderAdminToken)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				span.RecordError(errors.New("admin token missing or mismatched"))
				return presenter.Unauthorized(c)
			}
			return next(c)
		}
	}
}
