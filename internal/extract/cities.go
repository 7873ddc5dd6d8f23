package extract

import (
	"strings"

	"github.com/zamzamtour/umrah-voucher/internal/models"
)

// Synonym sets cover the spellings seen in live sheets: English,
// common transliterations and Russian. Matching is substring-based so
// inflected forms ("медины", "Makkah hotels") still hit.
var (
	madinahNames = []string{"madinah", "medina", "madina", "медин", "медина"}
	makkahNames  = []string{"makkah", "makka", "mecca", "mekka", "макк", "мекка"}
)

// CityOf resolves a single piece of text to a canonical city.
// Madinah synonyms are checked first, matching the order the source
// sheets are usually laid out in.
func CityOf(text string) models.City {
	low := Fold(text)
	if low == "" {
		return models.CityUnknown
	}
	for _, name := range madinahNames {
		if strings.Contains(low, name) {
			return models.CityMadinah
		}
	}
	for _, name := range makkahNames {
		if strings.Contains(low, name) {
			return models.CityMakkah
		}
	}
	return models.CityUnknown
}

// DetectCity scans row cells (up to maxCols, or all when maxCols <= 0)
// and returns the first canonical city found and the column where the
// matching token occurred.
func DetectCity(row []string, maxCols int) (models.City, int, bool) {
	if maxCols <= 0 || maxCols > len(row) {
		maxCols = len(row)
	}
	for c := 0; c < maxCols; c++ {
		if city := CityOf(row[c]); city != models.CityUnknown {
			return city, c, true
		}
	}
	return models.CityUnknown, 0, false
}

// IsCityToken reports whether the text mentions any recognized city.
func IsCityToken(text string) bool {
	return CityOf(text) != models.CityUnknown
}
