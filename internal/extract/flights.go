package extract

import (
	"regexp"
	"strings"

	"github.com/zamzamtour/umrah-voucher/internal/models"
)

// Carrier code plus flight number, optionally split by a space the way
// charter rows are typed ("KC 8201").
var flightRe = regexp.MustCompile(`\b([A-Za-z]{2})\s?(\d{2,4})\b`)

// FlightCode returns the normalized flight code ("KC265") found in a
// cell, with any internal space stripped.
func FlightCode(cell string) (string, bool) {
	m := flightRe.FindStringSubmatch(NormSpaces(cell))
	if m == nil {
		return "", false
	}
	return strings.ToUpper(m[1] + m[2]), true
}

// dateLookback is how many cells left of a flight code the date is
// allowed to sit. Usually it is the immediate neighbor.
const dateLookback = 3

func cellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

func dateLeftOf(row []string, i int) string {
	for k := 1; k <= dateLookback; k++ {
		if d, o := NormalizeDate(cellAt(row, i-k)); o == models.Found {
			return d
		}
	}
	return ""
}

func safeTime(cell string) string {
	s := NormSpaces(cell)
	if timeRe.MatchString(s) {
		return s
	}
	return ""
}

// Segments extracts every flight segment present in one schedule row.
// A code only yields a segment when a date is found within the left
// lookback window and the two following cells hold valid times; the
// third following cell, if any, is taken as the route label.
func Segments(row []string) []models.FlightSegment {
	var segs []models.FlightSegment
	for i := range row {
		code, ok := FlightCode(row[i])
		if !ok {
			continue
		}
		date := dateLeftOf(row, i)
		dep := safeTime(cellAt(row, i+1))
		arr := safeTime(cellAt(row, i+2))
		if date == "" || dep == "" || arr == "" {
			continue
		}
		segs = append(segs, models.FlightSegment{
			Flight:    code,
			Date:      date,
			Departure: dep,
			Arrival:   arr,
			Route:     strings.ToUpper(NormSpaces(cellAt(row, i+3))),
		})
	}
	return segs
}
