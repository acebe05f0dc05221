package handler

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"tradeops/backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

type rateLimitedResponse struct {
	Error             string `json:"error"`
	RetryAfterSeconds int    `json:"retry_after_seconds"`
}

// Error writes a JSON error response with the given status code.
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{Error: message})
}

// writeServiceError maps service-layer errors to HTTP responses.
func writeServiceError(c echo.Context, err error) error {
	var rateLimited *service.RateLimitedError
	if errors.As(err, &rateLimited) {
		seconds := int(math.Ceil(rateLimited.RetryAfter.Seconds()))
		if seconds < 1 {
			seconds = 1
		}
		c.Response().Header().Set("Retry-After", strconv.Itoa(seconds))
		return c.JSON(http.StatusTooManyRequests, rateLimitedResponse{
			Error:             "rate limit exceeded",
			RetryAfterSeconds: seconds,
		})
	}

	switch {
	case errors.Is(err, service.ErrUnauthorized):
		return Error(c, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, service.ErrInvalid):
		return Error(c, http.StatusUnprocessableEntity, "invalid sector name (2-50 characters)")
	case errors.Is(err, service.ErrRateLimited):
		return Error(c, http.StatusTooManyRequests, "rate limit exceeded")
	case errors.Is(err, service.ErrDataUnavailable):
		return Error(c, http.StatusBadGateway, "market data unavailable")
	default:
		return Error(c, http.StatusInternalServerError, "internal error")
	}
}
