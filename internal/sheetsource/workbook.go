package sheetsource

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/zamzamtour/umrah-voucher/internal/models"
)

// WorkbookSource reads grids from a local Excel workbook. It exists
// for offline runs against a downloaded copy of the spreadsheet.
type WorkbookSource struct {
	file   *excelize.File
	logger *zap.Logger
}

// OpenWorkbook opens an .xlsx file as a grid source.
func OpenWorkbook(path string, logger *zap.Logger) (*WorkbookSource, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	return &WorkbookSource{file: f, logger: logger}, nil
}

// NewWorkbookSource wraps an already opened workbook, for tests.
func NewWorkbookSource(f *excelize.File, logger *zap.Logger) *WorkbookSource {
	return &WorkbookSource{file: f, logger: logger}
}

// Close releases the underlying file.
func (w *WorkbookSource) Close() error {
	return w.file.Close()
}

// WorksheetTitles lists the workbook's sheet names in order.
func (w *WorkbookSource) WorksheetTitles(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return w.file.GetSheetList(), nil
}

// FetchGrid reads a whole sheet as strings.
func (w *WorkbookSource) FetchGrid(ctx context.Context, title string) (models.Grid, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := w.file.GetRows(title)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", title, err)
	}
	w.logger.Debug("read workbook sheet",
		zap.String("sheet", title),
		zap.Int("rows", len(rows)))
	return models.Grid(rows), nil
}
