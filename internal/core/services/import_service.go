package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
	"github.com/SscSPs/expense_tracker_app/internal/utils/period"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// importHeader is the expected first row of an import workbook. Matching is
// case-insensitive; the Note column is optional.
var importHeader = []string{"Date", "Amount", "Payment Method", "Category", "Note"}

// importRow is one parsed spreadsheet row, validated before submission.
type importRow struct {
	Date          string          `validate:"required,datetime=2006-01-02"`
	Amount        decimal.Decimal `validate:"required"`
	PaymentMethod string          `validate:"required"`
	Category      string          `validate:"required"`
	Note          string
}

// importService implements the ImportSvcFacade interface
type importService struct {
	BaseService
	expenses portssvc.ExpenseWriterSvc
	settings portssvc.SettingsSvcFacade
	validate *validator.Validate
}

// NewImportService creates a new import service with the provided dependencies
func NewImportService(expenses portssvc.ExpenseWriterSvc, settings portssvc.SettingsSvcFacade) portssvc.ImportSvcFacade {
	return &importService{
		expenses: expenses,
		settings: settings,
		validate: validator.New(),
	}
}

var _ portssvc.ImportSvcFacade = (*importService)(nil)

// ImportExpenses parses an XLSX workbook and creates an expense per valid
// row. The import is best-effort: a bad row is recorded and skipped, never
// aborting the rest of the file. Valid rows are persisted in one batch
// write when possible, falling back to individual submission so a failed
// write costs only its own row.
func (s *importService) ImportExpenses(ctx context.Context, userID string, r io.Reader) (*dto.ImportResultResponse, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet '%s': %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet '%s' is empty", sheet)
	}
	if err := checkHeader(rows[0]); err != nil {
		return nil, err
	}

	settings, err := s.settings.GetSettings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load labels for import: %w", err)
	}

	result := &dto.ImportResultResponse{}
	var valid []pendingImportRow
	for i, cells := range rows[1:] {
		rowNum := i + 2 // 1-based, after the header
		if isBlankRow(cells) {
			continue
		}

		row, err := s.parseRow(cells)
		if err == nil {
			err = checkLabels(settings, row.PaymentMethod, row.Category)
		}
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, dto.ImportRowError{Row: rowNum, Reason: err.Error()})
			continue
		}

		valid = append(valid, pendingImportRow{
			rowNum: rowNum,
			req: dto.CreateExpenseRequest{
				Date:          row.Date,
				Amount:        row.Amount,
				PaymentMethod: row.PaymentMethod,
				Category:      row.Category,
				Note:          row.Note,
			},
		})
	}

	s.submitRows(ctx, userID, valid, result)

	s.LogInfo(ctx, "Import completed",
		slog.String("user_id", userID),
		slog.Int("succeeded", result.Succeeded),
		slog.Int("failed", result.Failed))
	return result, nil
}

// pendingImportRow is a validated row awaiting submission, tagged with its
// spreadsheet row number for error reporting.
type pendingImportRow struct {
	rowNum int
	req    dto.CreateExpenseRequest
}

// submitRows persists validated rows, preferring a single batch write. When
// the batch fails, rows are resubmitted individually so one bad row cannot
// take the rest of the file down with it; succeeded and failed counts only
// reflect rows that actually persisted or were rejected.
func (s *importService) submitRows(ctx context.Context, userID string, valid []pendingImportRow, result *dto.ImportResultResponse) {
	if len(valid) == 0 {
		return
	}

	reqs := make([]dto.CreateExpenseRequest, len(valid))
	for i, p := range valid {
		reqs[i] = p.req
	}
	_, err := s.expenses.CreateExpenses(ctx, userID, reqs)
	if err == nil {
		result.Succeeded += len(valid)
		return
	}
	s.LogError(ctx, err, "Batch import write failed, retrying row by row",
		slog.String("user_id", userID), slog.Int("rows", len(valid)))

	for _, p := range valid {
		if _, err := s.expenses.CreateExpense(ctx, userID, p.req); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, dto.ImportRowError{Row: p.rowNum, Reason: err.Error()})
			continue
		}
		result.Succeeded++
	}
}

// GenerateTemplate writes an empty workbook holding the header row plus a
// Labels sheet listing the user's valid payment methods and categories.
func (s *importService) GenerateTemplate(ctx context.Context, userID string, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, h := range importHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to build template: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("failed to build template: %w", err)
		}
	}

	settings, err := s.settings.GetSettings(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load labels for template: %w", err)
	}
	labelsSheet := "Labels"
	if _, err := f.NewSheet(labelsSheet); err != nil {
		return fmt.Errorf("failed to build template: %w", err)
	}
	if err := f.SetCellValue(labelsSheet, "A1", "Payment Methods"); err != nil {
		return fmt.Errorf("failed to build template: %w", err)
	}
	if err := f.SetCellValue(labelsSheet, "B1", "Categories"); err != nil {
		return fmt.Errorf("failed to build template: %w", err)
	}
	for i, m := range settings.PaymentMethods {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetCellValue(labelsSheet, cell, m); err != nil {
			return fmt.Errorf("failed to build template: %w", err)
		}
	}
	for i, cat := range settings.Categories {
		cell, _ := excelize.CoordinatesToCellName(2, i+2)
		if err := f.SetCellValue(labelsSheet, cell, cat); err != nil {
			return fmt.Errorf("failed to build template: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write template: %w", err)
	}
	return nil
}

// checkLabels rejects rows naming labels the user has not configured, so a
// bad label fails its own row instead of the whole batch write.
func checkLabels(settings *domain.Settings, paymentMethod, category string) error {
	if !contains(settings.PaymentMethods, paymentMethod) {
		return fmt.Errorf("unknown payment method '%s'", paymentMethod)
	}
	if !contains(settings.Categories, category) {
		return fmt.Errorf("unknown category '%s'", category)
	}
	return nil
}

func checkHeader(cells []string) error {
	// Note is optional; the four leading columns must match.
	if len(cells) < 4 {
		return fmt.Errorf("header row has %d columns, expected at least 4", len(cells))
	}
	for i := 0; i < 4; i++ {
		if !strings.EqualFold(strings.TrimSpace(cells[i]), importHeader[i]) {
			return fmt.Errorf("unexpected header column %d: got '%s', expected '%s'", i+1, cells[i], importHeader[i])
		}
	}
	return nil
}

func isBlankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func (s *importService) parseRow(cells []string) (*importRow, error) {
	cell := func(i int) string {
		if i < len(cells) {
			return strings.TrimSpace(cells[i])
		}
		return ""
	}

	date, err := parseImportDate(cell(0))
	if err != nil {
		return nil, err
	}
	amount, err := parseImportAmount(cell(1))
	if err != nil {
		return nil, err
	}

	row := &importRow{
		Date:          date,
		Amount:        amount,
		PaymentMethod: cell(2),
		Category:      cell(3),
		Note:          cell(4),
	}
	if err := s.validate.Struct(row); err != nil {
		return nil, fmt.Errorf("invalid row: %w", err)
	}
	return row, nil
}

// importDateLayouts are tried in order against textual date cells.
var importDateLayouts = []string{"2006-01-02", "02/01/2006", "02-01-2006"}

// parseImportDate normalizes a date cell to YYYY-MM-DD. Cells formatted as
// dates in Excel arrive as serial numbers and are converted first.
func parseImportDate(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("date is required")
	}
	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return "", fmt.Errorf("invalid excel date serial '%s'", raw)
		}
		return period.FormatDay(t), nil
	}
	for _, layout := range importDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return period.FormatDay(t), nil
		}
	}
	return "", fmt.Errorf("unrecognized date '%s'", raw)
}

// parseImportAmount accepts both period and comma decimal separators.
// "1.234,56" and "1,234.56" both parse to 1234.56.
func parseImportAmount(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, fmt.Errorf("amount is required")
	}
	cleaned := strings.ReplaceAll(raw, " ", "")
	dot := strings.LastIndex(cleaned, ".")
	comma := strings.LastIndex(cleaned, ",")
	switch {
	case dot >= 0 && comma >= 0 && comma > dot:
		// Comma is the decimal separator, periods group thousands.
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	case dot >= 0 && comma >= 0:
		// Period is the decimal separator, commas group thousands.
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	case comma >= 0:
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	}
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount '%s'", raw)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("amount must be positive, got '%s'", raw)
	}
	return amount, nil
}
