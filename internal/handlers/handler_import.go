package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// importHandler handles XLSX expense import and template download.
type importHandler struct {
	importService portssvc.ImportSvcFacade
}

func newImportHandler(is portssvc.ImportSvcFacade) *importHandler {
	return &importHandler{importService: is}
}

// registerImportRoutes registers routes related to bulk import.
func registerImportRoutes(rg *gin.RouterGroup, importService portssvc.ImportSvcFacade) {
	h := newImportHandler(importService)

	imp := rg.Group("/import")
	{
		imp.POST("/expenses", h.importExpenses)
		imp.GET("/template", h.downloadTemplate)
	}
}

// importExpenses godoc
// @Summary Import expenses from an XLSX file
// @Description Parses the uploaded spreadsheet and saves every valid row; invalid rows are reported with their row number
// @Tags import
// @Accept  multipart/form-data
// @Produce  json
// @Param   file formData file true "XLSX file with Date, Amount, Payment Method, Category and optional Note columns"
// @Success 200 {object} dto.ImportResultResponse
// @Failure 400 {object} ErrorResponse "Missing file or unreadable spreadsheet"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to import expenses"
// @Security BearerAuth
// @Router /import/expenses [post]
func (h *importHandler) importExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing file: " + err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to open uploaded file"})
		return
	}
	defer file.Close()

	result, err := h.importService.ImportExpenses(c.Request.Context(), userID, file)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to import expenses", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to import expenses"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// downloadTemplate godoc
// @Summary Download the import template
// @Description Returns an empty XLSX file with the expected header row
// @Tags import
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to generate template"
// @Security BearerAuth
// @Router /import/template [get]
func (h *importHandler) downloadTemplate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", `attachment; filename="expense_import_template.xlsx"`)

	if err := h.importService.GenerateTemplate(c.Request.Context(), userID, c.Writer); err != nil {
		logger.Error("Failed to generate import template", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate template"})
		return
	}
}
