package models

import "time"

// PackageMarker is a located package title on a source grid. Titles are
// only unique within one worksheet, so the row index is part of the key.
type PackageMarker struct {
	Title string `json:"title"`
	Row   int    `json:"row"`
}

// HotelCandidate is one (city, hotel, dates) tuple found while scanning
// a hotel worksheet. Several candidates may loosely match a package;
// the resolver reduces them to at most one per city.
type HotelCandidate struct {
	City      City
	Hotel     string
	DateRange string // "dd/mm/yyyy – dd/mm/yyyy"
	Nights    *int
	Row       int
	Start     time.Time
}

// HotelBlock is one resolved city stay for a package.
type HotelBlock struct {
	City      City   `json:"city"`
	Hotel     string `json:"hotel"`
	DateRange string `json:"dates"` // "dd/mm/yyyy – dd/mm/yyyy"
	Nights    *int   `json:"nights"`
	CheckIn   string `json:"checkin"`
}
