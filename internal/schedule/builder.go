// Package schedule turns flight-schedule worksheets into direction-
// keyed lookup maps and assembles outbound/return pairings for a
// voucher. Two grid layouts are supported: the legacy fixed-column
// sheet and free-form rows scanned cell by cell.
package schedule

import (
	"strings"

	"go.uber.org/zap"

	"github.com/zamzamtour/umrah-voucher/internal/extract"
	"github.com/zamzamtour/umrah-voucher/internal/models"
)

// The Air Astana rotation this product runs on. KC8201/KC8202 are the
// charter forms and appear in sheets with an internal space.
const (
	codeOutJeddah        = "KC265"
	codeOutJeddahCharter = "KC8201"
	codeOutMedina        = "KC263"
	codeRetJeddah        = "KC266"
	codeRetJeddahCharter = "KC8202"
	codeRetMedina        = "KC264"
)

// bucketOf maps a normalized flight code to its direction bucket.
func bucketOf(code string) (models.Bucket, bool) {
	switch code {
	case codeOutJeddah, codeOutJeddahCharter:
		return models.OutboundJeddah, true
	case codeOutMedina:
		return models.OutboundMedina, true
	case codeRetJeddah, codeRetJeddahCharter:
		return models.ReturnJeddah, true
	case codeRetMedina:
		return models.ReturnMedina, true
	default:
		return 0, false
	}
}

// wantCodes returns the acceptable (outbound, return) codes per direction.
func wantCodes(d models.Direction) ([]string, []string) {
	switch d {
	case models.DirectionAJMA:
		return []string{codeOutJeddah, codeOutJeddahCharter}, []string{codeRetMedina}
	case models.DirectionAMJA:
		return []string{codeOutMedina}, []string{codeRetJeddah, codeRetJeddahCharter}
	case models.DirectionAJJA:
		return []string{codeOutJeddah, codeOutJeddahCharter}, []string{codeRetJeddah, codeRetJeddahCharter}
	default:
		return nil, nil
	}
}

// Fixed-column offsets of the legacy schedule layout: each direction
// block sits at known columns of one wide row.
var fixedColumns = []struct {
	bucket  models.Bucket
	code    string
	dateCol int
	codeCol int
	depCol  int
	arrCol  int
}{
	{models.OutboundJeddah, codeOutJeddah, 1, 2, 3, 4},
	{models.ReturnJeddah, codeRetJeddah, 8, 9, 10, 11},
	{models.OutboundMedina, codeOutMedina, 16, 17, 18, 19},
	{models.ReturnMedina, codeRetMedina, 21, 22, 23, 24},
}

// Charter rows carry the code with an internal space; the date sits
// one cell left of the pivot, times to the right.
var charterPivots = []struct {
	bucket  models.Bucket
	literal string
	code    string
}{
	{models.OutboundJeddah, "KC 8201", codeOutJeddahCharter},
	{models.ReturnJeddah, "KC 8202", codeRetJeddahCharter},
}

// Builder scans schedule worksheets.
type Builder struct {
	logger *zap.Logger
}

// NewBuilder creates a schedule builder.
func NewBuilder(logger *zap.Logger) *Builder {
	return &Builder{logger: logger}
}

func put(maps models.ScheduleMaps, b models.Bucket, code, date, dep, arr string) {
	d, outcome := extract.NormalizeDate(date)
	dep = extract.NormSpaces(dep)
	arr = extract.NormSpaces(arr)
	if outcome != models.Found || !extract.ValidTime(dep) || !extract.ValidTime(arr) {
		return
	}
	maps.Put(b, models.FlightSegment{Flight: code, Date: d, Departure: dep, Arrival: arr})
}

// BuildMaps scans a fixed-column schedule sheet. A row contributes to
// a bucket only when the code cell at the expected offset contains the
// expected flight code; the charter forms are found by scanning the
// row for their spaced literal and pivoting around it. Duplicate dates
// are last-write-wins.
func (b *Builder) BuildMaps(grid models.Grid) models.ScheduleMaps {
	maps := models.NewScheduleMaps()

	for r := 1; r < grid.NumRows(); r++ {
		row := grid.Row(r)
		if extract.JoinRow(row) == "" {
			continue
		}

		for _, fc := range fixedColumns {
			if strings.Contains(grid.Cell(r, fc.codeCol), fc.code) {
				put(maps, fc.bucket, fc.code, grid.Cell(r, fc.dateCol), grid.Cell(r, fc.depCol), grid.Cell(r, fc.arrCol))
			}
		}

		for _, cp := range charterPivots {
			for i, cell := range row {
				if extract.NormSpaces(cell) != cp.literal || i < 2 {
					continue
				}
				put(maps, cp.bucket, cp.code, grid.Cell(r, i-1), grid.Cell(r, i+1), grid.Cell(r, i+2))
				break
			}
		}
	}

	b.logCounts("built fixed-column schedule maps", maps)
	return maps
}

// BuildMapsSmart scans every cell of the sheet for flight-code tokens
// and routes the extracted segments through the code→bucket table. Use
// it for schedules without reliable column positions.
func (b *Builder) BuildMapsSmart(grid models.Grid) models.ScheduleMaps {
	maps := models.NewScheduleMaps()

	for r := 1; r < grid.NumRows(); r++ {
		for _, seg := range extract.Segments(grid.Row(r)) {
			if bucket, ok := bucketOf(seg.Flight); ok {
				maps.Put(bucket, seg)
			}
		}
	}

	b.logCounts("built row-scan schedule maps", maps)
	return maps
}

func (b *Builder) logCounts(msg string, maps models.ScheduleMaps) {
	if b.logger == nil {
		return
	}
	b.logger.Info(msg,
		zap.Int("ala_jed", len(maps[models.OutboundJeddah])),
		zap.Int("jed_ala", len(maps[models.ReturnJeddah])),
		zap.Int("ala_med", len(maps[models.OutboundMedina])),
		zap.Int("med_ala", len(maps[models.ReturnMedina])))
}
