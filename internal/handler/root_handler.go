package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type RootHandler struct{}

type rootResponse struct {
	Message  string `json:"message"`
	Endpoint string `json:"endpoint"`
}

type healthResponse struct {
	Status string `json:"status"`
}

func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

func (h *RootHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Root)
	e.GET("/health", h.Health)
}

func (h *RootHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, rootResponse{
		Message:  "Trade Opportunities API ready",
		Endpoint: "/analyzesector?sector=pharmaceuticals",
	})
}

func (h *RootHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{Status: "ok"})
}
