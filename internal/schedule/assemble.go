package schedule

import (
	"strings"

	"github.com/zamzamtour/umrah-voucher/internal/extract"
	"github.com/zamzamtour/umrah-voucher/internal/models"
)

func display(code string) string {
	return "Рейс " + code
}

func hasCode(codes []string, code string) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}

// AssembleFromRow builds a flight plan from a single schedule row that
// carries both the outbound and the return segment of one rotation.
// Pairing both legs off one row beats two independent map lookups on
// sheets where the same date appears in several rotations.
func AssembleFromRow(grid models.Grid, depDate, retDate string, d models.Direction) (*models.FlightPlan, bool) {
	dep, o1 := extract.NormalizeDate(depDate)
	ret, o2 := extract.NormalizeDate(retDate)
	outCodes, retCodes := wantCodes(d)
	if o1 != models.Found || o2 != models.Found || outCodes == nil {
		return nil, false
	}

	for r := 0; r < grid.NumRows(); r++ {
		var out, back *models.FlightSegment
		for _, seg := range extract.Segments(grid.Row(r)) {
			seg := seg
			switch {
			case out == nil && hasCode(outCodes, seg.Flight) && seg.Date == dep:
				out = &seg
			case back == nil && hasCode(retCodes, seg.Flight) && seg.Date == ret:
				back = &seg
			}
		}
		if out != nil && back != nil {
			return &models.FlightPlan{
				DepartDate:   dep,
				DepartFlight: display(out.Flight),
				DepartTime1:  out.Departure,
				DepartTime2:  out.Arrival,
				ReturnDate:   ret,
				ReturnFlight: display(back.Flight),
				ReturnTime1:  back.Departure,
				ReturnTime2:  back.Arrival,
			}, true
		}
	}
	return nil, false
}

// Assemble builds a flight plan from the direction's bucket maps. Both
// legs must resolve; a missing date in either map fails the pairing.
func Assemble(maps models.ScheduleMaps, depDate, retDate string, d models.Direction) (*models.FlightPlan, bool) {
	dep, o1 := extract.NormalizeDate(depDate)
	ret, o2 := extract.NormalizeDate(retDate)
	outBucket, retBucket, ok := d.Buckets()
	if o1 != models.Found || o2 != models.Found || !ok {
		return nil, false
	}

	out, ok1 := maps.Lookup(outBucket, dep)
	back, ok2 := maps.Lookup(retBucket, ret)
	if !ok1 || !ok2 {
		return nil, false
	}
	return &models.FlightPlan{
		DepartDate:   dep,
		DepartFlight: display(out.Flight),
		DepartTime1:  out.Departure,
		DepartTime2:  out.Arrival,
		ReturnDate:   ret,
		ReturnFlight: display(back.Flight),
		ReturnTime1:  back.Departure,
		ReturnTime2:  back.Arrival,
	}, true
}

// InferToken deduces the direction from the schedule maps alone: if
// exactly one direction has the departure date in its outbound bucket
// and the return date in its return bucket, that direction wins.
// An ambiguous or empty match reports DirectionUnknown.
func InferToken(maps models.ScheduleMaps, depDate, retDate string) models.Direction {
	dep, o1 := extract.NormalizeDate(depDate)
	ret, o2 := extract.NormalizeDate(retDate)
	if o1 != models.Found || o2 != models.Found {
		return models.DirectionUnknown
	}

	found := models.DirectionUnknown
	for _, d := range []models.Direction{models.DirectionAJJA, models.DirectionAJMA, models.DirectionAMJA} {
		outBucket, retBucket, _ := d.Buckets()
		_, ok1 := maps.Lookup(outBucket, dep)
		_, ok2 := maps.Lookup(retBucket, ret)
		if ok1 && ok2 {
			if found != models.DirectionUnknown {
				return models.DirectionUnknown
			}
			found = d
		}
	}
	return found
}

// Airport markers recognized in free-text direction cells.
var (
	outboundMarkers = []string{"ala jed", "ala med"}
	returnMarkers   = []string{"jed ala", "med ala"}
)

func foldRoute(s string) string {
	s = extract.Fold(s)
	for _, sep := range []string{"→", "->", "—", "–", "-", "/", ","} {
		s = strings.ReplaceAll(s, sep, " ")
	}
	return extract.NormSpaces(s)
}

// DirectionFromText parses an explicit routing such as "ALA-JED / JED-ALA".
// Both an outbound and a return marker must be present.
func DirectionFromText(s string) (models.Direction, bool) {
	t := foldRoute(s)
	toJeddah := strings.Contains(t, outboundMarkers[0])
	toMedina := strings.Contains(t, outboundMarkers[1])
	fromJeddah := strings.Contains(t, returnMarkers[0])
	fromMedina := strings.Contains(t, returnMarkers[1])

	switch {
	case toJeddah && fromMedina:
		return models.DirectionAJMA, true
	case toMedina && fromJeddah:
		return models.DirectionAMJA, true
	case toJeddah && fromJeddah:
		return models.DirectionAJJA, true
	case toMedina && fromMedina:
		return models.DirectionUnknown, false
	}
	return models.DirectionUnknown, false
}

// TokenFromDirectionText is the permissive form of DirectionFromText:
// unparseable input falls back to the Jeddah round trip, the most
// common rotation.
func TokenFromDirectionText(s string) models.Direction {
	if d, ok := DirectionFromText(s); ok {
		return d
	}
	return models.DirectionAJJA
}

// TokenFromContext searches the rows around a package marker for an
// explicit routing annotation. Rows one above through five below the
// marker are considered.
func TokenFromContext(grid models.Grid, pkgRow int) models.Direction {
	lo := pkgRow - 1
	if lo < 0 {
		lo = 0
	}
	for r := lo; r <= pkgRow+5 && r < grid.NumRows(); r++ {
		if d, ok := DirectionFromText(grid.RowText(r)); ok {
			return d
		}
	}
	return models.DirectionUnknown
}
