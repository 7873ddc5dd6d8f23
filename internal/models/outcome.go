package models

// Outcome distinguishes "the token was absent" from "the token was
// present but unparseable" when extracting from a cell. Both degrade to
// an absent field on the voucher, but tests and diagnostics need to
// tell them apart.
type Outcome uint8

const (
	Found Outcome = iota
	NotFound
	ParseError
)

func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case NotFound:
		return "not found"
	case ParseError:
		return "parse error"
	default:
		return "unknown"
	}
}
