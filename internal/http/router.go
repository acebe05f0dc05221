// Package http assembles the echo server: routes, auth gate, logging.
package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"tradeops/backend/internal/handler"
	"tradeops/backend/internal/service"
)

// NewRouter builds the server. Everything under the protected group sits
// behind the bearer-token gate; /login and the health probes do not.
func NewRouter(auth service.AuthService, analysis service.AnalysisService) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(RequestIDMiddleware())
	e.Use(RequestLoggerMiddleware())

	handler.NewRootHandler().RegisterRoutes(e)
	handler.NewAuthHandler(auth).RegisterRoutes(e)

	protected := e.Group("", BearerAuthMiddleware(auth))
	handler.NewAnalysisHandler(analysis).RegisterRoutes(protected)

	return e
}
