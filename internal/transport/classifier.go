// Package transport classifies the ground-transport modes mentioned in
// the rows between two package markers.
package transport

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/zamzamtour/umrah-voucher/internal/extract"
	"github.com/zamzamtour/umrah-voucher/internal/models"
)

// DisplayNone is rendered when no transport evidence was found.
const DisplayNone = "—"

// Rows matching this look like the start of the next package entry and
// bound the scan range.
var nextPackageRe = regexp.MustCompile(`\d{1,2}\.\d{1,2}\s*[-–]\s*\d{1,2}\.\d{1,2}`)

// Classifier scans a bounded row range for transport evidence.
type Classifier struct {
	logger *zap.Logger
}

// NewClassifier creates a transport classifier.
func NewClassifier(logger *zap.Logger) *Classifier {
	return &Classifier{logger: logger}
}

// BoundsAfterPackage returns the row range [pkgRow+1, end] belonging to
// the package at pkgRow: it extends to the row immediately before the
// next package marker, or the end of the sheet.
func BoundsAfterPackage(grid models.Grid, pkgRow int) (int, int) {
	start := pkgRow + 1
	if start < 0 {
		start = 0
	}
	end := grid.NumRows() - 1
	for r := start; r < grid.NumRows(); r++ {
		txt := extract.Fold(grid.RowText(r))
		if txt == "" {
			continue
		}
		if nextPackageRe.MatchString(txt) && r > start+1 {
			end = r - 1
			break
		}
	}
	return start, end
}

// Classify scans rows [fromRow, toRow] and reports which transport
// modes are mentioned. Only rows carrying a rail, road or generic
// transfer keyword count as evidence. A generic transfer keyword with
// no rail or road keyword anywhere in the evidence set implies road
// transport; in practice a bare "трансфер" line is a bus leg.
func (c *Classifier) Classify(grid models.Grid, fromRow, toRow int) models.TransportInfo {
	info := models.TransportInfo{}
	transferOnly := false

	a := max(0, fromRow)
	b := min(grid.NumRows()-1, toRow)

	for r := a; r <= b; r++ {
		txt := extract.NormSpaces(grid.RowText(r))
		if txt == "" {
			continue
		}

		rail := extract.HasRail(txt)
		road := extract.HasRoad(txt)
		transfer := extract.HasTransfer(txt)
		if !rail && !road && !transfer {
			continue
		}

		info.Rail = info.Rail || rail
		info.Road = info.Road || road
		transferOnly = transferOnly || (transfer && !rail && !road)

		info.Lines = append(info.Lines, txt)
		info.Details = append(info.Details, models.TransportDetail{
			Raw:     txt,
			Route:   extract.Route(txt),
			Time:    extract.TimeIn(txt),
			HasRail: rail,
			HasRoad: road,
		})
	}

	// Transfer-only evidence means road transport.
	if !info.Rail && !info.Road && transferOnly {
		info.Road = true
	}

	info.Display = display(info.Rail, info.Road)

	if c.logger != nil {
		c.logger.Debug("classified transport range",
			zap.Int("from_row", a),
			zap.Int("to_row", b),
			zap.Int("evidence_lines", len(info.Lines)),
			zap.String("display", info.Display))
	}
	return info
}

// ClassifyAfterPackage classifies the range owned by the package at pkgRow.
func (c *Classifier) ClassifyAfterPackage(grid models.Grid, pkgRow int) models.TransportInfo {
	from, to := BoundsAfterPackage(grid, pkgRow)
	return c.Classify(grid, from, to)
}

// display lists detected modes rail-before-road.
func display(rail, road bool) string {
	var parts []string
	if rail {
		parts = append(parts, "Поезд")
	}
	if road {
		parts = append(parts, "Автобус")
	}
	if len(parts) == 0 {
		return DisplayNone
	}
	return strings.Join(parts, ", ")
}

// Summarize rebuilds a display string from previously collected details,
// for callers that kept only the detail list.
func Summarize(details []models.TransportDetail) string {
	var rail, road bool
	for _, d := range details {
		rail = rail || d.HasRail || extract.HasRail(d.Raw)
		road = road || d.HasRoad || extract.HasRoad(d.Raw)
	}
	return display(rail, road)
}

// NeedsRail reports whether any detail line mentions rail transport.
// The rendering layer keys its second-page background off this.
func NeedsRail(details []models.TransportDetail) bool {
	for _, d := range details {
		if d.HasRail || extract.HasRail(d.Raw) {
			return true
		}
	}
	return false
}
