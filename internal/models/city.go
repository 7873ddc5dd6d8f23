package models

import (
	"encoding/json"
	"fmt"
)

// City is a canonical city after synonym/transliteration resolution.
// The recognized set is closed: packages visit Makkah, Madinah, or both.
type City uint8

const (
	CityUnknown City = iota
	CityMakkah
	CityMadinah
)

// String returns the canonical English spelling used on vouchers.
func (c City) String() string {
	switch c {
	case CityMakkah:
		return "Makkah"
	case CityMadinah:
		return "Madinah"
	default:
		return ""
	}
}

// MarshalJSON renders the city by its canonical English name.
func (c City) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON accepts the canonical English names and the empty string.
func (c *City) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "Makkah":
		*c = CityMakkah
	case "Madinah":
		*c = CityMadinah
	case "":
		*c = CityUnknown
	default:
		return fmt.Errorf("unknown city %q", s)
	}
	return nil
}

// Russian returns the display spelling used by the rendering layer.
func (c City) Russian() string {
	switch c {
	case CityMakkah:
		return "Мекка"
	case CityMadinah:
		return "Медина"
	default:
		return ""
	}
}
