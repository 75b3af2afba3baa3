package services

import (
	"context"
	"io"

	"github.com/SscSPs/expense_tracker_app/internal/dto"
)

// ImportSvcFacade defines spreadsheet import operations.
type ImportSvcFacade interface {
	// ImportExpenses parses an XLSX workbook and creates an expense per
	// valid row. Invalid rows are skipped and reported; they never abort
	// the rest of the import.
	ImportExpenses(ctx context.Context, userID string, r io.Reader) (*dto.ImportResultResponse, error)

	// GenerateTemplate writes an empty XLSX workbook with the expected
	// header row plus a reference sheet listing the user's valid labels.
	GenerateTemplate(ctx context.Context, userID string, w io.Writer) error
}
