package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
	"github.com/SscSPs/expense_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// rateHandler handles HTTP requests related to exchange rate overrides.
type rateHandler struct {
	rateService portssvc.RateSvcFacade
}

// newRateHandler creates a new rateHandler.
func newRateHandler(rs portssvc.RateSvcFacade) *rateHandler {
	return &rateHandler{rateService: rs}
}

// RegisterRateRoutes registers routes related to exchange rates.
func RegisterRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvcFacade) {
	h := newRateHandler(rateService)

	rates := rg.Group("/rates")
	{
		rates.GET("", h.getRates)
		rates.PUT("", h.upsertRate)
		rates.DELETE("/:monthKey", h.deleteRate)
		rates.GET("/resolve/:monthKey", h.resolveRate)
	}
}

// getRates godoc
// @Summary Get all rate overrides
// @Description Returns the user's full month key → rate map
// @Tags rates
// @Produce  json
// @Success 200 {object} dto.RatesResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to retrieve rates"
// @Security BearerAuth
// @Router /rates [get]
func (h *rateHandler) getRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	rates, err := h.rateService.GetRates(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to get rates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve rates"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRatesResponse(rates))
}

// upsertRate godoc
// @Summary Set the rate for a month
// @Description Stores a month's ARS→USD rate override and returns the full updated map
// @Tags rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.UpsertRateRequest true "Month key and rate"
// @Success 200 {object} dto.RatesResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to store rate"
// @Security BearerAuth
// @Router /rates [put]
func (h *rateHandler) upsertRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpsertRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	rates, err := h.rateService.UpsertRate(c.Request.Context(), userID, req.MonthKey, req.Rate)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to upsert rate", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to store rate"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRatesResponse(rates))
}

// deleteRate godoc
// @Summary Remove the rate override for a month
// @Description Deletes a month's override and returns the full updated map
// @Tags rates
// @Produce  json
// @Param   monthKey path string true "Month key (YYYY-MM)"
// @Success 200 {object} dto.RatesResponse
// @Failure 400 {object} ErrorResponse "Invalid month key"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "No override for that month"
// @Failure 500 {object} ErrorResponse "Failed to delete rate"
// @Security BearerAuth
// @Router /rates/{monthKey} [delete]
func (h *rateHandler) deleteRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	rates, err := h.rateService.DeleteRate(c.Request.Context(), userID, c.Param("monthKey"))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "No override for that month"})
		default:
			logger.Error("Failed to delete rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete rate"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRatesResponse(rates))
}

// resolveRate godoc
// @Summary Resolve the effective rate for a month
// @Description Returns the month's rate after fallback: its own override, else the latest earlier one, else the default
// @Tags rates
// @Produce  json
// @Param   monthKey path string true "Month key (YYYY-MM)"
// @Success 200 {object} dto.ResolvedRateResponse
// @Failure 400 {object} ErrorResponse "Invalid month key"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to resolve rate"
// @Security BearerAuth
// @Router /rates/resolve/{monthKey} [get]
func (h *rateHandler) resolveRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	monthKey := c.Param("monthKey")
	rate, hasOverride, err := h.rateService.ResolveRate(c.Request.Context(), userID, monthKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to resolve rate", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to resolve rate"})
		return
	}

	c.JSON(http.StatusOK, dto.ResolvedRateResponse{
		MonthKey:    monthKey,
		Rate:        rate,
		HasOverride: hasOverride,
	})
}
