package extract

import "regexp"

// Group-size markers like "Gr.10" share rows with hotel names and must
// never be mistaken for one.
var groupMarkerRe = regexp.MustCompile(`(?i)\bgr\.\s*\d+`)

// Window around the city column where the hotel name is expected.
const (
	hotelBack    = 3
	hotelForward = 8
)

// HotelNear scans the cells around cityCol and returns the first one
// that is neither a city synonym, a date-like token, nor a group-size
// marker. That cell is treated as the hotel name. When cityCol is
// negative the whole row is searched.
func HotelNear(row []string, cityCol int) string {
	if len(row) == 0 {
		return ""
	}
	start, end := 0, len(row)
	if cityCol >= 0 {
		start = max(0, cityCol-hotelBack)
		end = min(len(row), cityCol+hotelForward)
	}
	for c := start; c < end; c++ {
		val := NormSpaces(row[c])
		if val == "" {
			continue
		}
		if IsCityToken(val) {
			continue
		}
		if IsDateLike(val) {
			continue
		}
		if groupMarkerRe.MatchString(val) {
			continue
		}
		return val
	}
	return ""
}
