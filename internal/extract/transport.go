package extract

import (
	"regexp"
	"strings"
)

// \b is ASCII-only in Go regexp, so Cyrillic keywords use explicit
// non-letter boundaries instead.
var (
	railRe     = regexp.MustCompile(`(?i)\btrain\b|поезд|(^|[^\pL])жд([^\pL]|$)`)
	roadRe     = regexp.MustCompile(`(?i)\bbus(es)?\b|автобус`)
	transferRe = regexp.MustCompile(`(?i)\btransfer|трансфер`)

	routeRe      = regexp.MustCompile(`\b([A-Za-zА-Яа-я]{2,4})\s*[-–—]\s*([A-Za-zА-Яа-я]{2,4})\b`)
	timeSearchRe = regexp.MustCompile(`\b\d{1,2}:\d{2}\b`)
)

// HasRail reports a rail keyword (any supported language) in the text.
func HasRail(text string) bool {
	return railRe.MatchString(text)
}

// HasRoad reports a road keyword in the text.
func HasRoad(text string) bool {
	return roadRe.MatchString(text)
}

// HasTransfer reports the generic transfer keyword in the text. It
// marks a row as transport evidence without naming a mode.
func HasTransfer(text string) bool {
	return transferRe.MatchString(text)
}

// Route extracts an "A–B" leg from text, uppercased, or "".
func Route(text string) string {
	m := routeRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.ToUpper(m[1]) + "–" + strings.ToUpper(m[2])
}

// TimeIn returns the first hh:mm token inside the text, or "".
func TimeIn(text string) string {
	return timeSearchRe.FindString(text)
}
