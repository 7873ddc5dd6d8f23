package extract

import (
	"fmt"
	"regexp"
	"time"

	"github.com/zamzamtour/umrah-voucher/internal/models"
)

const dateLayout = "02/01/2006"

var (
	// dd.mm.yy, dd.mm.yyyy, dd/mm/yy, dd/mm/yyyy
	dateAnyRe = regexp.MustCompile(`\b(\d{1,2})[./](\d{1,2})[./](\d{2,4})\b`)
	// ISO yyyy-mm-dd
	dateISORe = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
	// Loose date-like token, year optional. Used for density heuristics
	// and for skipping date cells, not for normalization.
	dateLooseRe = regexp.MustCompile(`\b\d{1,2}[./-]\d{1,2}([./-]\d{2,4})?\b`)

	timeRe = regexp.MustCompile(`^\d{1,2}:\d{2}$`)
)

func expandYear(y string) string {
	if len(y) == 2 {
		return "20" + y
	}
	return y
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// NormalizeDate extracts the first date token from a cell and returns
// it as dd/mm/yyyy. The outcome distinguishes an absent token from a
// present but non-calendar one (e.g. 31/02/2025).
func NormalizeDate(cell string) (string, models.Outcome) {
	s := NormSpaces(cell)
	if m := dateAnyRe.FindStringSubmatch(s); m != nil {
		return checkDate(pad2(m[1]), pad2(m[2]), expandYear(m[3]))
	}
	if m := dateISORe.FindStringSubmatch(s); m != nil {
		return checkDate(m[3], m[2], m[1])
	}
	return "", models.NotFound
}

func checkDate(d, m, y string) (string, models.Outcome) {
	out := fmt.Sprintf("%s/%s/%s", d, m, y)
	if _, err := time.Parse(dateLayout, out); err != nil {
		return "", models.ParseError
	}
	return out, models.Found
}

// DatePair scans free text for the first two date-like tokens and
// returns them normalized in encounter order. ISO tokens are only
// consulted when fewer than two dd.mm-style tokens are present,
// matching how mixed-format rows are laid out in practice.
func DatePair(text string) (string, string, bool) {
	s := NormSpaces(text)

	if m := dateAnyRe.FindAllStringSubmatch(s, -1); len(m) >= 2 {
		d1, o1 := checkDate(pad2(m[0][1]), pad2(m[0][2]), expandYear(m[0][3]))
		d2, o2 := checkDate(pad2(m[1][1]), pad2(m[1][2]), expandYear(m[1][3]))
		if o1 == models.Found && o2 == models.Found {
			return d1, d2, true
		}
		return "", "", false
	}

	if m := dateISORe.FindAllStringSubmatch(s, -1); len(m) >= 2 {
		d1, o1 := checkDate(m[0][3], m[0][2], m[0][1])
		d2, o2 := checkDate(m[1][3], m[1][2], m[1][1])
		if o1 == models.Found && o2 == models.Found {
			return d1, d2, true
		}
	}
	return "", "", false
}

// IsDateLike reports whether the text contains anything resembling a
// date, year present or not.
func IsDateLike(text string) bool {
	return dateLooseRe.MatchString(text)
}

// ParseDMY parses a normalized dd/mm/yyyy string.
func ParseDMY(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, NormSpaces(s))
	return t, err == nil
}

// FormatDMY renders a time as dd/mm/yyyy.
func FormatDMY(t time.Time) string {
	return t.Format(dateLayout)
}

// ValidTime reports whether a cell holds exactly one hh:mm token.
func ValidTime(cell string) bool {
	return timeRe.MatchString(NormSpaces(cell))
}
