package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"tradeops/backend/internal/model"
	"tradeops/backend/internal/service"
)

const timestampLayout = "2006-01-02 15:04 MST"

// defaultDebugSector keeps the diagnostic endpoint usable without params.
const defaultDebugSector = "technology"

type AnalysisHandler struct {
	service service.AnalysisService
}

type analysisResponse struct {
	Sector         string `json:"sector"`
	Report         string `json:"report"`
	Timestamp      string `json:"timestamp"`
	Status         string `json:"status"`
	RequestsUsed   int    `json:"requests_used"`
	LimitRemaining int    `json:"limit_remaining"`
}

type newsSampleResponse struct {
	Sector           string `json:"sector"`
	MarketDataSample string `json:"market_data_sample"`
}

func NewAnalysisHandler(service service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{service: service}
}

func (h *AnalysisHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/analyzesector", h.Analyze)
	g.GET("/debug/news", h.DebugNews)
}

func (h *AnalysisHandler) Analyze(c echo.Context) error {
	sector := strings.TrimSpace(c.QueryParam("sector"))

	analysis, err := h.service.Analyze(c.Request().Context(), c.RealIP(), sector)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toAnalysisResponse(analysis))
}

func (h *AnalysisHandler) DebugNews(c echo.Context) error {
	sector := strings.TrimSpace(c.QueryParam("sector"))
	if sector == "" {
		sector = defaultDebugSector
	}

	sample, err := h.service.CollectSample(c.Request().Context(), sector)
	if err != nil {
		if errors.Is(err, service.ErrDataUnavailable) {
			sample = "no recent market data available"
		} else {
			return writeServiceError(c, err)
		}
	}
	return c.JSON(http.StatusOK, newsSampleResponse{
		Sector:           sector,
		MarketDataSample: sample,
	})
}

func toAnalysisResponse(analysis model.Analysis) analysisResponse {
	return analysisResponse{
		Sector:         analysis.Sector,
		Report:         analysis.Report,
		Timestamp:      analysis.Timestamp.Format(timestampLayout),
		Status:         analysis.Status,
		RequestsUsed:   analysis.Quota.Used,
		LimitRemaining: analysis.Quota.Remaining,
	}
}
