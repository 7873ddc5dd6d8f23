package voucher

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/zamzamtour/umrah-voucher/internal/models"
)

// DocumentWriter renders vouchers as Excel workbooks for printing.
type DocumentWriter struct {
	logger *zap.Logger
}

// NewDocumentWriter creates a voucher document writer.
func NewDocumentWriter(logger *zap.Logger) *DocumentWriter {
	return &DocumentWriter{logger: logger}
}

const documentSheet = "Voucher"

// Write renders the voucher into a new workbook at outputPath. The
// filename stem should come from FilenameSlug.
func (w *DocumentWriter) Write(v *models.Voucher, pkgTitle, outputPath string) error {
	w.logger.Info("Writing voucher document",
		zap.String("package", pkgTitle),
		zap.String("output_path", outputPath))

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", documentSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	w.setCell(f, "A1", "Пакет")
	w.setCell(f, "B1", pkgTitle)

	row := 3
	for i := 0; i < 2; i++ {
		leg := v.Legs[i]
		if leg.Empty() {
			continue
		}
		w.setCell(f, cell("A", row), leg.City.Russian())
		w.setCell(f, cell("B", row), leg.Hotel)
		w.setCell(f, cell("C", row), leg.DateRange)
		if leg.Nights != nil {
			w.setCell(f, cell("D", row), fmt.Sprintf("%d %s", *leg.Nights, PluralNights(*leg.Nights)))
		}
		w.setCell(f, cell("E", row), leg.CheckIn)
		row++
	}

	row++
	lines := [][2]string{
		{"Трансфер", v.Transfer},
		{"Питание", v.Meal},
		{"Сервис", v.Service},
		{"Гид", v.Guide},
		{"Экскурсии", v.Excursions},
		{"Тех. контакт", v.TechContact},
	}
	for _, ln := range lines {
		w.setCell(f, cell("A", row), ln[0])
		w.setCell(f, cell("B", row), ln[1])
		row++
	}

	if fp := v.Flights; fp != nil {
		row++
		w.setCell(f, cell("A", row), "Вылет")
		w.setCell(f, cell("B", row), fp.DepartDate)
		w.setCell(f, cell("C", row), fp.DepartFlight)
		w.setCell(f, cell("D", row), fp.DepartTime1+"-"+fp.DepartTime2)
		row++
		w.setCell(f, cell("A", row), "Обратно")
		w.setCell(f, cell("B", row), fp.ReturnDate)
		w.setCell(f, cell("C", row), fp.ReturnFlight)
		w.setCell(f, cell("D", row), fp.ReturnTime1+"-"+fp.ReturnTime2)
	}

	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("save voucher document: %w", err)
	}

	w.logger.Info("Voucher document written", zap.String("output_path", outputPath))
	return nil
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

// setCell sets a cell value, logging instead of failing on a bad axis.
func (w *DocumentWriter) setCell(f *excelize.File, axis, value string) {
	if value == "" {
		return
	}
	if err := f.SetCellValue(documentSheet, axis, value); err != nil {
		w.logger.Warn("Failed to set cell value",
			zap.String("cell", axis),
			zap.Error(err))
	}
}
