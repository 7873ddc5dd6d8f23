// Package voucher assembles the final voucher record from resolved
// hotel blocks, transport classification and flight pairings, and
// renders its text artifacts.
package voucher

// Defaults are the fixed service lines printed on every voucher.
// They are constant for this product but kept configurable so a
// season change does not require a rebuild.
type Defaults struct {
	Service     string
	Meal        string
	Guide       string
	Excursions  string
	TechContact string
	Transfer    string
	CheckIn     string
}

// DefaultValues returns the current season's service lines.
func DefaultValues() Defaults {
	return Defaults{
		Service:     "Виза и страховка",
		Meal:        "Завтрак и ужин",
		Guide:       "Групповой гид",
		Excursions:  "Мекка, Медина",
		TechContact: "+966 56 328 0325",
		Transfer:    "—",
		CheckIn:     "17:00",
	}
}
