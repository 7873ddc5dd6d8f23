package hotels

import (
	"regexp"
	"strings"

	"github.com/zamzamtour/umrah-voucher/internal/extract"
	"github.com/zamzamtour/umrah-voucher/internal/models"
)

// Hotels-config sheets are the one layout with a documented header
// row: a packages column plus nearby city/hotel/date cells.

var (
	pkgHeaderRe = regexp.MustCompile(`(?i)package|пакет`)
	nonAlnumRe  = regexp.MustCompile(`[^0-9a-zа-яё]+`)
)

// normTitle reduces a package title to a comparable form: lowercase,
// punctuation collapsed to single spaces.
func normTitle(s string) string {
	return strings.TrimSpace(nonAlnumRe.ReplaceAllString(extract.Fold(s), " "))
}

// packagesColumn locates the packages column from the header row,
// falling back to column B the way the legacy sheets are laid out.
func packagesColumn(grid models.Grid) int {
	header := grid.Row(0)
	for i, cell := range header {
		if pkgHeaderRe.MatchString(cell) {
			return i
		}
	}
	if len(header) > 1 {
		return 1
	}
	return 0
}

// configWindow bounds how far below a matched package row the city
// lines may sit.
const configWindow = 60

// ConfigForPackage extracts hotel blocks from a hotels-config sheet:
// the row whose packages cell matches the title (either direction of
// containment after normalization) anchors a window that is scanned
// for city lines. Returns nil when the package is not on the sheet.
func (r *Resolver) ConfigForPackage(grid models.Grid, pkgTitle string) []models.HotelBlock {
	if grid.NumRows() == 0 {
		return nil
	}
	want := normTitle(pkgTitle)
	if want == "" {
		return nil
	}

	col := packagesColumn(grid)
	anchor := -1
	for rr := 1; rr < grid.NumRows(); rr++ {
		have := normTitle(grid.Cell(rr, col))
		if have == "" {
			continue
		}
		if strings.Contains(have, want) || strings.Contains(want, have) {
			anchor = rr
			break
		}
	}
	if anchor < 0 {
		return nil
	}

	var blocks []models.HotelBlock
	seen := make(map[models.City]bool, 2)
	limit := min(grid.NumRows(), anchor+configWindow)
	for rr := anchor; rr < limit; rr++ {
		row := grid.Row(rr)
		city, cityCol, found := extract.DetectCity(row, 0)
		if !found || seen[city] {
			continue
		}
		hotel := extract.HotelNear(row, cityCol)
		d1, d2, ok := extract.DatePair(extract.JoinRow(row))
		if hotel == "" || !ok {
			continue
		}
		blocks = append(blocks, models.HotelBlock{
			City:      city,
			Hotel:     hotel,
			DateRange: d1 + " – " + d2,
			Nights:    nightsBetween(d1, d2),
			CheckIn:   DefaultCheckIn,
		})
		seen[city] = true
		if len(blocks) == 2 {
			break
		}
	}
	return blocks
}
