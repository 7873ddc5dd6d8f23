package schedule

import (
	"strings"

	"github.com/zamzamtour/umrah-voucher/internal/extract"
	"github.com/zamzamtour/umrah-voucher/internal/models"
)

// FlightDates is one departure/return pairing found near a package
// marker, with the row it was read from.
type FlightDates struct {
	Depart string
	Return string
	Row    int
}

const flightDatesWindow = 12

// FindFlightDates collects date pairs from the rows at and below a
// package title on a flights worksheet. Title bounds like "15.11-22.11"
// carry no year and do not form a pair, so only full rotation dates
// qualify. Duplicate pairings are dropped, first occurrence wins.
func FindFlightDates(grid models.Grid, pkgTitle string) []FlightDates {
	title := extract.Fold(extract.NormSpaces(pkgTitle))
	var out []FlightDates
	seen := make(map[string]struct{})

	for r := 0; r < grid.NumRows(); r++ {
		text := grid.RowText(r)
		if title == "" || !strings.Contains(extract.Fold(text), title) {
			continue
		}
		for rr := r; rr <= r+flightDatesWindow && rr < grid.NumRows(); rr++ {
			d1, d2, ok := extract.DatePair(grid.RowText(rr))
			if !ok {
				continue
			}
			key := d1 + "|" + d2
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, FlightDates{Depart: d1, Return: d2, Row: rr})
		}
	}
	return out
}
