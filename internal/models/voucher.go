package models

// CityLeg is one of the at-most-two city stays within a voucher. An
// entirely zero leg (no city, no hotel) represents the absent second
// stay of a single-city package.
type CityLeg struct {
	City      City   `json:"city"`
	Hotel     string `json:"hotel"`
	DateRange string `json:"dates"`   // "dd/mm/yyyy – dd/mm/yyyy"
	CheckIn   string `json:"checkin"` // "hh:mm"
	Nights    *int   `json:"nights"`  // nil when the range is absent or malformed
}

// Empty reports whether the leg carries no data at all.
func (l CityLeg) Empty() bool {
	return l.City == CityUnknown && l.Hotel == "" && l.DateRange == ""
}

// Leg identifies one of the voucher's two city slots.
type Leg uint8

const (
	Leg1 Leg = iota
	Leg2
)

// Voucher is the assembled output record for one package, ready for
// the rendering layer. All entities are transient: a voucher is
// reconstructed per request from live spreadsheet reads.
type Voucher struct {
	Legs [2]CityLeg `json:"legs"`

	// Fixed-default service fields.
	Service     string `json:"service"`
	Meal        string `json:"meal"`
	Guide       string `json:"guide"`
	Excursions  string `json:"excursions"`
	TechContact string `json:"tech_guide"`

	// Transport metadata.
	Transfer         string            `json:"transfer"` // display string, "—" if none
	TransportDetails []TransportDetail `json:"transport_details,omitempty"`

	// Resolved flight pairing for air-travel vouchers, nil otherwise.
	Flights *FlightPlan `json:"flights,omitempty"`

	// Where the hotel blocks came from, for diagnostics.
	SourceSheet string `json:"source_sheet,omitempty"`
}

// Leg returns the requested city slot.
func (v *Voucher) Leg(l Leg) *CityLeg {
	return &v.Legs[l]
}

// SwapLegs exchanges every paired field between the two city slots.
func (v *Voucher) SwapLegs() {
	v.Legs[0], v.Legs[1] = v.Legs[1], v.Legs[0]
}
