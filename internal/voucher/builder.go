package voucher

import (
	"github.com/zamzamtour/umrah-voucher/internal/models"
)

// Builder accumulates the partial results of a voucher assembly. Every
// With method returns a new value, so intermediate states can be kept
// and branched without aliasing surprises; nothing mutates until Build.
type Builder struct {
	defaults  Defaults
	blocks    []models.HotelBlock
	transport *models.TransportInfo
	flights   *models.FlightPlan
	sheet     string
}

// NewBuilder starts an assembly with the given service-line defaults.
func NewBuilder(d Defaults) Builder {
	return Builder{defaults: d}
}

// WithBlocks sets the resolved city stays, at most two, in start-date
// order as produced by the hotel resolver.
func (b Builder) WithBlocks(blocks []models.HotelBlock) Builder {
	if len(blocks) > 2 {
		blocks = blocks[:2]
	}
	b.blocks = append([]models.HotelBlock(nil), blocks...)
	return b
}

// WithTransport attaches the ground-transport classification.
func (b Builder) WithTransport(info *models.TransportInfo) Builder {
	b.transport = info
	return b
}

// WithFlights attaches the resolved flight pairing.
func (b Builder) WithFlights(plan *models.FlightPlan) Builder {
	b.flights = plan
	return b
}

// WithSourceSheet records which worksheet the hotel blocks came from.
func (b Builder) WithSourceSheet(title string) Builder {
	b.sheet = title
	return b
}

func (b Builder) leg(i int) models.CityLeg {
	if i >= len(b.blocks) {
		return models.CityLeg{}
	}
	blk := b.blocks[i]
	checkIn := blk.CheckIn
	if checkIn == "" {
		checkIn = b.defaults.CheckIn
	}
	return models.CityLeg{
		City:      blk.City,
		Hotel:     blk.Hotel,
		DateRange: blk.DateRange,
		CheckIn:   checkIn,
		Nights:    blk.Nights,
	}
}

// Build produces the voucher. Service lines fall back to the defaults,
// the transfer display falls back to the em dash placeholder, and the
// legs are put in chronological order.
func (b Builder) Build() *models.Voucher {
	v := &models.Voucher{
		Service:     b.defaults.Service,
		Meal:        b.defaults.Meal,
		Guide:       b.defaults.Guide,
		Excursions:  b.defaults.Excursions,
		TechContact: b.defaults.TechContact,
		Transfer:    b.defaults.Transfer,
		Flights:     b.flights,
		SourceSheet: b.sheet,
	}
	v.Legs[0] = b.leg(0)
	v.Legs[1] = b.leg(1)

	if b.transport != nil {
		if b.transport.Display != "" {
			v.Transfer = b.transport.Display
		}
		v.TransportDetails = append([]models.TransportDetail(nil), b.transport.Details...)
	}

	EnsureChronological(v)
	return v
}
