package controller

import (
	"strings"
	"time"

	"protender-api/internal/entity"
	"protender-api/internal/service"

	"github.com/labstack/echo"
	"github.com/sirupsen/logrus"
)

const identityKey = "identity"

// authenticate resolves the bearer token into an identity for the handlers behind it.
func authenticate(auth service.Auth) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token := strings.TrimPrefix(header, "Bearer ")
			if token == header {
				return service.ErrInvalidToken
			}

			identity, err := auth.Authenticate(token)
			if err != nil {
				return err
			}
			c.Set(identityKey, identity)

			return next(c)
		}
	}
}

func identityFrom(c echo.Context) *entity.Identity {
	identity, _ := c.Get(identityKey).(*entity.Identity)

	return identity
}

// RequestLogger logs one line per request once the response is written.
func RequestLogger(logger *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			fields := logrus.Fields{
				"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
				"method":     c.Request().Method,
				"path":       c.Path(),
				"status":     c.Response().Status,
				"latency_ms": time.Since(start).Milliseconds(),
				"remote_ip":  c.RealIP(),
			}
			if identity := identityFrom(c); identity != nil {
				fields["user_id"] = identity.Id.String()
			}
			logger.WithFields(fields).Info("request")

			return nil
		}
	}
}
