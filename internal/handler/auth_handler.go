package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tradeops/backend/internal/service"
)

type AuthHandler struct {
	service service.AuthService
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/login", h.Login)
}

func (h *AuthHandler) Login(c echo.Context) error {
	username := c.QueryParam("username")
	password := c.QueryParam("password")

	token, err := h.service.Login(c.Request().Context(), username, password)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, loginResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
