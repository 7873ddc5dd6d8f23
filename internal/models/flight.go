package models

// Direction identifies which outbound/return airport pairing a voucher
// uses. It replaces the free-form four-letter tokens of the source
// spreadsheets with a closed set; invalid combinations (e.g. outbound
// Medina with return Medina) are unrepresentable.
type Direction uint8

const (
	DirectionUnknown Direction = iota
	DirectionAJJA              // ALA→JED / JED→ALA
	DirectionAJMA              // ALA→JED / MED→ALA
	DirectionAMJA              // ALA→MED / JED→ALA
)

// Token returns the four-letter spreadsheet token for the direction.
func (d Direction) Token() string {
	switch d {
	case DirectionAJJA:
		return "AJJA"
	case DirectionAJMA:
		return "AJMA"
	case DirectionAMJA:
		return "AMJA"
	default:
		return ""
	}
}

// Describe returns the human-readable routing, e.g. "ALA → JED / JED → ALA".
func (d Direction) Describe() string {
	switch d {
	case DirectionAJMA:
		return "ALA → JED / MED → ALA"
	case DirectionAMJA:
		return "ALA → MED / JED → ALA"
	default:
		return "ALA → JED / JED → ALA"
	}
}

// ParseDirection maps a spreadsheet token to a Direction.
func ParseDirection(token string) Direction {
	switch token {
	case "AJJA":
		return DirectionAJJA
	case "AJMA":
		return DirectionAJMA
	case "AMJA":
		return DirectionAMJA
	default:
		return DirectionUnknown
	}
}

// Bucket is one of the four direction-keyed schedule maps.
type Bucket uint8

const (
	OutboundJeddah Bucket = iota // ALA→JED: KC265, KC8201
	OutboundMedina               // ALA→MED: KC263
	ReturnJeddah                 // JED→ALA: KC266, KC8202
	ReturnMedina                 // MED→ALA: KC264
	numBuckets
)

// NumBuckets is the number of schedule buckets.
const NumBuckets = int(numBuckets)

// Buckets returns the direction's (outbound, return) bucket pair.
func (d Direction) Buckets() (Bucket, Bucket, bool) {
	switch d {
	case DirectionAJJA:
		return OutboundJeddah, ReturnJeddah, true
	case DirectionAJMA:
		return OutboundJeddah, ReturnMedina, true
	case DirectionAMJA:
		return OutboundMedina, ReturnJeddah, true
	default:
		return 0, 0, false
	}
}

// FlightSegment is one flight occurrence extracted from a schedule grid.
type FlightSegment struct {
	Flight    string `json:"flight"`    // normalized code, e.g. "KC265"
	Date      string `json:"date"`      // dd/mm/yyyy
	Departure string `json:"departure"` // hh:mm
	Arrival   string `json:"arrival"`   // hh:mm
	Route     string `json:"route,omitempty"`
}

// ScheduleMaps holds one date-keyed segment map per direction bucket,
// built once per schedule worksheet and reused across assemblies.
type ScheduleMaps [NumBuckets]map[string]FlightSegment

// NewScheduleMaps allocates empty maps for all buckets.
func NewScheduleMaps() ScheduleMaps {
	var m ScheduleMaps
	for i := range m {
		m[i] = make(map[string]FlightSegment)
	}
	return m
}

// Put records a segment for a bucket keyed by its date. A later entry
// for the same date silently overwrites the earlier one.
func (m ScheduleMaps) Put(b Bucket, seg FlightSegment) {
	if seg.Date == "" || seg.Departure == "" || seg.Arrival == "" {
		return
	}
	m[b][seg.Date] = seg
}

// Lookup returns the segment for a bucket and date.
func (m ScheduleMaps) Lookup(b Bucket, date string) (FlightSegment, bool) {
	seg, ok := m[b][date]
	return seg, ok
}

// FlightPlan is a resolved outbound/return pairing ready for rendering.
type FlightPlan struct {
	DepartDate   string `json:"depart_date"`
	DepartFlight string `json:"depart_flight"`
	DepartTime1  string `json:"depart_time1"`
	DepartTime2  string `json:"depart_time2"`
	ReturnDate   string `json:"return_date"`
	ReturnFlight string `json:"return_flight"`
	ReturnTime1  string `json:"return_time1"`
	ReturnTime2  string `json:"return_time2"`
}
