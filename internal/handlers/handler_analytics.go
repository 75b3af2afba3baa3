package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
	"github.com/SscSPs/expense_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// analyticsHandler handles HTTP requests for aggregated views.
type analyticsHandler struct {
	analyticsService portssvc.AnalyticsSvcFacade
}

func newAnalyticsHandler(as portssvc.AnalyticsSvcFacade) *analyticsHandler {
	return &analyticsHandler{analyticsService: as}
}

// registerAnalyticsRoutes registers routes related to analytics.
func registerAnalyticsRoutes(rg *gin.RouterGroup, analyticsService portssvc.AnalyticsSvcFacade) {
	h := newAnalyticsHandler(analyticsService)

	analytics := rg.Group("/analytics")
	{
		analytics.GET("/monthly", h.getMonthlyAnalytics)
		analytics.GET("/year/:year", h.getYearSummary)
	}
}

// getMonthlyAnalytics godoc
// @Summary Get monthly analytics
// @Description Returns the month's headline total, per-dimension breakdowns, month-over-month comparison, top expenses and the effective rate
// @Tags analytics
// @Produce  json
// @Param   year query int true "Year, e.g. 2025"
// @Param   month query int true "Month 1-12"
// @Success 200 {object} dto.MonthlyAnalyticsResponse
// @Failure 400 {object} ErrorResponse "Invalid year or month"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to compute analytics"
// @Security BearerAuth
// @Router /analytics/monthly [get]
func (h *analyticsHandler) getMonthlyAnalytics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid year parameter"})
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid month parameter"})
		return
	}

	result, err := h.analyticsService.GetMonthlyAnalytics(c.Request.Context(), userID, year, month)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to compute monthly analytics", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute analytics"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthlyAnalyticsResponse(*result))
}

// getYearSummary godoc
// @Summary Get the year summary
// @Description Returns per-month totals, the year total in ARS and USD, and recurring expense groups
// @Tags analytics
// @Produce  json
// @Param   year path int true "Year, e.g. 2025"
// @Success 200 {object} dto.YearAnalyticsResponse
// @Failure 400 {object} ErrorResponse "Invalid year"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to compute year summary"
// @Security BearerAuth
// @Router /analytics/year/{year} [get]
func (h *analyticsHandler) getYearSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid year parameter"})
		return
	}

	summary, err := h.analyticsService.GetYearSummary(c.Request.Context(), userID, year)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to compute year summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute year summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToYearAnalyticsResponse(*summary))
}
