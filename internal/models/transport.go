package models

// TransportDetail is one evidence line from a package's transport rows.
type TransportDetail struct {
	Raw      string `json:"raw"`
	Route    string `json:"route,omitempty"` // "JED–MED" when parseable
	Time     string `json:"time,omitempty"`  // "hh:mm" when parseable
	HasRail  bool   `json:"has_rail"`
	HasRoad  bool   `json:"has_road"`
}

// TransportInfo is the classifier output for one package's row range.
type TransportInfo struct {
	Rail    bool              `json:"rail"`
	Road    bool              `json:"road"`
	Display string            `json:"display"` // "Поезд, Автобус" …, or "—"
	Lines   []string          `json:"lines,omitempty"`
	Details []TransportDetail `json:"details,omitempty"`
}
