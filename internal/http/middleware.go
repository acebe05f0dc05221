package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"tradeops/backend/internal/service"
	"tradeops/backend/pkg/logger"
	"tradeops/backend/pkg/snowflake"
)

// AuthCookieName is the fallback token cookie for browser clients.
const AuthCookieName = "tradeops_token"

// RequestIDKey is the echo context key holding the request ID.
const RequestIDKey = "request_id"

// BearerAuthMiddleware rejects requests without a valid guest bearer token.
func BearerAuthMiddleware(auth service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}

			valid, err := auth.ValidateToken(token)
			if err != nil || !valid {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
			}
			return next(c)
		}
	}
}

func extractToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	if cookie, err := c.Cookie(AuthCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return ""
}

// RequestIDMiddleware tags every request with a snowflake ID for log
// correlation.
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := strconv.FormatInt(snowflake.NextID(), 10)
			c.Set(RequestIDKey, id)
			c.Response().Header().Set(echo.HeaderXRequestID, id)
			return next(c)
		}
	}
}

// RequestLoggerMiddleware logs each request with status and duration.
func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			fields := []any{
				"module", "http",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", status,
				"duration", time.Since(start),
				"remote", c.RealIP(),
			}
			if id, ok := c.Get(RequestIDKey).(string); ok {
				fields = append(fields, "request_id", id)
			}

			switch {
			case status >= http.StatusInternalServerError:
				logger.Error("request", fields...)
			case status >= http.StatusBadRequest:
				logger.Warn("request", fields...)
			default:
				logger.Info("request", fields...)
			}
			return nil
		}
	}
}
