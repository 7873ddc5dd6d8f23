// Package hotels resolves the hotel blocks belonging to a travel
// package by correlating package title dates against hotel worksheet
// rows. All heuristics are specific to the known sheet layouts and
// fail gracefully on anything else.
package hotels

import (
	"fmt"
	"regexp"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/zamzamtour/umrah-voucher/internal/extract"
	"github.com/zamzamtour/umrah-voucher/internal/models"
)

// Package titles open with their date span: "15.11-22.11 NIYET/7d".
var titleDatesRe = regexp.MustCompile(`(\d{1,2})\.(\d{1,2})\s*[-–]\s*(\d{1,2})\.(\d{1,2})`)

// cityScanCols bounds the city search: city names live in the left
// part of hotel rows, and scanning further right picks up notes.
const cityScanCols = 18

// startTolerance is the maximum start-date difference accepted when a
// hotel range is not strictly contained in the package range. The rule
// is deliberately permissive and can match an unrelated block when
// titles repeat across months; that risk is accepted.
const startTolerance = 2 * 24 * time.Hour

// nearRowWindow is how far below a package marker the in-sheet hotel
// lines may sit.
const nearRowWindow = 15

// Resolver finds hotel blocks for packages.
type Resolver struct {
	logger *zap.Logger
	year   func() int
}

// NewResolver creates a hotel block resolver. The current year is used
// to complete the year-less dates in package titles.
func NewResolver(logger *zap.Logger) *Resolver {
	return &Resolver{
		logger: logger,
		year:   func() int { return time.Now().Year() },
	}
}

// NewResolverWithYear pins the assumed title year, for tests and for
// replaying archived sheets.
func NewResolverWithYear(logger *zap.Logger, year int) *Resolver {
	return &Resolver{
		logger: logger,
		year:   func() int { return year },
	}
}

// TitleDates extracts the package's own date pair from its title,
// assuming the resolver's current year. Resolution against a hotels
// worksheet is impossible without it.
func (r *Resolver) TitleDates(pkgTitle string) (time.Time, time.Time, bool) {
	m := titleDatesRe.FindStringSubmatch(pkgTitle)
	if m == nil {
		return time.Time{}, time.Time{}, false
	}
	year := r.year()
	start, err1 := time.Parse("2/1/2006", fmt.Sprintf("%s/%s/%d", m[1], m[2], year))
	end, err2 := time.Parse("2/1/2006", fmt.Sprintf("%s/%s/%d", m[3], m[4], year))
	if err1 != nil || err2 != nil {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// BlocksForPackage scans a hotel worksheet and returns the at-most-two
// city blocks whose dates match the package title's date pair. The
// result is sorted by start date; candidates tie-break on the lowest
// row index per city.
func (r *Resolver) BlocksForPackage(grid models.Grid, pkgTitle string) []models.HotelBlock {
	pkgStart, pkgEnd, ok := r.TitleDates(pkgTitle)
	if !ok {
		if r.logger != nil {
			r.logger.Debug("package title carries no date span", zap.String("title", pkgTitle))
		}
		return nil
	}

	var candidates []models.HotelCandidate
	for rr := 0; rr < grid.NumRows(); rr++ {
		row := grid.Row(rr)
		city, cityCol, found := extract.DetectCity(row, cityScanCols)
		if !found {
			continue
		}

		hotel := extract.HotelNear(row, cityCol)
		d1, d2, ok := extract.DatePair(extract.JoinRow(row))
		if hotel == "" || !ok {
			continue
		}

		start, sok := extract.ParseDMY(d1)
		end, eok := extract.ParseDMY(d2)
		if !sok || !eok {
			continue
		}
		if !datesMatch(start, end, pkgStart, pkgEnd) {
			continue
		}

		nights := int(end.Sub(start).Hours() / 24)
		candidates = append(candidates, models.HotelCandidate{
			City:      city,
			Hotel:     hotel,
			DateRange: d1 + " – " + d2,
			Nights:    &nights,
			Row:       rr,
			Start:     start,
		})
	}

	if len(candidates) == 0 {
		return nil
	}
	return reduceCandidates(candidates)
}

// datesMatch accepts a hotel range contained within the package range,
// or one whose start differs from the package start by at most two days.
func datesMatch(hotelStart, hotelEnd, pkgStart, pkgEnd time.Time) bool {
	if !hotelStart.Before(pkgStart) && !hotelEnd.After(pkgEnd) {
		return true
	}
	diff := hotelStart.Sub(pkgStart)
	if diff < 0 {
		diff = -diff
	}
	return diff <= startTolerance
}

// reduceCandidates keeps one candidate per city (lowest row wins) and
// orders the surviving blocks by start date. Candidates are first
// ordered by city name then row, so equal start dates resolve the same
// way on every run.
func reduceCandidates(candidates []models.HotelCandidate) []models.HotelBlock {
	sort.SliceStable(candidates, func(i, j int) bool {
		ci, cj := candidates[i], candidates[j]
		if ci.City != cj.City {
			return ci.City.String() < cj.City.String()
		}
		return ci.Row < cj.Row
	})

	seen := make(map[models.City]bool, 2)
	var picked []models.HotelCandidate
	for _, c := range candidates {
		if !seen[c.City] {
			seen[c.City] = true
			picked = append(picked, c)
		}
	}

	sort.SliceStable(picked, func(i, j int) bool {
		return picked[i].Start.Before(picked[j].Start)
	})
	if len(picked) > 2 {
		picked = picked[:2]
	}

	blocks := make([]models.HotelBlock, 0, len(picked))
	for _, c := range picked {
		blocks = append(blocks, models.HotelBlock{
			City:      c.City,
			Hotel:     c.Hotel,
			DateRange: c.DateRange,
			Nights:    c.Nights,
			CheckIn:   DefaultCheckIn,
		})
	}
	return blocks
}

// BlocksNearRow collects up to two city blocks from the rows directly
// below a package marker on the package's own worksheet. Some sheets
// inline the hotel lines instead of keeping a separate hotels sheet.
func (r *Resolver) BlocksNearRow(grid models.Grid, pkgRow int) []models.HotelBlock {
	var blocks []models.HotelBlock
	seen := make(map[models.City]bool, 2)

	limit := min(grid.NumRows(), pkgRow+1+nearRowWindow)
	for rr := pkgRow + 1; rr < limit; rr++ {
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

		nights := nightsBetween(d1, d2)
		blocks = append(blocks, models.HotelBlock{
			City:      city,
			Hotel:     hotel,
			DateRange: d1 + " – " + d2,
			Nights:    nights,
			CheckIn:   DefaultCheckIn,
		})
		seen[city] = true
		if len(blocks) == 2 {
			break
		}
	}
	return blocks
}

func nightsBetween(d1, d2 string) *int {
	start, sok := extract.ParseDMY(d1)
	end, eok := extract.ParseDMY(d2)
	if !sok || !eok {
		return nil
	}
	n := int(end.Sub(start).Hours() / 24)
	if n < 0 {
		return nil
	}
	return &n
}
