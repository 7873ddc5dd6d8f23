// Package service orchestrates the extraction pipeline: worksheet
// discovery, package listing, and voucher collection, on top of a
// live grid source.
package service

import (
	"regexp"

	"github.com/zamzamtour/umrah-voucher/internal/extract"
	"github.com/zamzamtour/umrah-voucher/internal/models"
)

// A package title opens with its date span: "15.11-22.11 NIYET/7d".
var packageTitleRe = regexp.MustCompile(`^\d{1,2}\.\d{1,2}\s*[-–]\s*\d{1,2}\.\d{1,2}\s*\S`)

var monthSheetRe = regexp.MustCompile(`(?i)^(january|february|march|april|may|june|july|august|september|october|november|december)\s*(\d{4})?$`)

var flightsTitleRe = regexp.MustCompile(`(?i)flight|рейс|авиа|schedule`)

// IsMonthSheet reports whether a worksheet title is a month roster
// ("November", "December 2025"). Month sheets hold the operational
// packages and are listed first in the UI.
func IsMonthSheet(title string) bool {
	return monthSheetRe.MatchString(extract.NormSpaces(title))
}

// IsFlightsSheet reports whether a worksheet title looks like a flight
// schedule.
func IsFlightsSheet(title string) bool {
	return flightsTitleRe.MatchString(title)
}

// FindPackages locates every package marker on a worksheet. A cell
// qualifies when it opens with a dd.mm-dd.mm span followed by a name;
// repeated titles stay distinct through their row index.
func FindPackages(grid models.Grid) []models.PackageMarker {
	var markers []models.PackageMarker
	for r := 0; r < grid.NumRows(); r++ {
		for _, cell := range grid.Row(r) {
			s := extract.NormSpaces(cell)
			if packageTitleRe.MatchString(s) {
				markers = append(markers, models.PackageMarker{Title: s, Row: r})
				break
			}
		}
	}
	return markers
}
