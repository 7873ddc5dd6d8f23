package voucher

import (
	"time"

	"github.com/zamzamtour/umrah-voucher/internal/extract"
	"github.com/zamzamtour/umrah-voucher/internal/models"
)

// NightsFromRange computes the stay length from a "dd/mm/yyyy – dd/mm/yyyy"
// range. It returns nil when either date is missing or malformed, or
// when the range runs backwards.
func NightsFromRange(dateRange string) *int {
	d1, d2, ok := extract.DatePair(dateRange)
	if !ok {
		return nil
	}
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

// EnsureChronological swaps the two city legs when both carry parseable
// start dates and the first leg starts after the second, then
// recomputes each leg's nights from its own range. Calling it on an
// already ordered voucher changes nothing.
func EnsureChronological(v *models.Voucher) {
	l1, l2 := v.Leg(models.Leg1), v.Leg(models.Leg2)
	if l1.Empty() || l2.Empty() {
		return
	}
	s1, ok1 := legStart(*l1)
	s2, ok2 := legStart(*l2)
	if !ok1 || !ok2 {
		return
	}
	if s1.After(s2) {
		v.SwapLegs()
	}
	v.Legs[0].Nights = NightsFromRange(v.Legs[0].DateRange)
	v.Legs[1].Nights = NightsFromRange(v.Legs[1].DateRange)
}

func legStart(l models.CityLeg) (time.Time, bool) {
	d1, _, ok := extract.DatePair(l.DateRange)
	if !ok {
		return time.Time{}, false
	}
	parsed, pok := extract.ParseDMY(d1)
	if !pok {
		return time.Time{}, false
	}
	return parsed, true
}
