package ideology

import "math"

// Ideology is a discrete label on the two-axis political compass.
type Ideology string

const (
	Centrist      Ideology = "centrist"
	Liberal       Ideology = "liberal"
	Conservative  Ideology = "conservative"
	Libertarian   Ideology = "libertarian"
	Authoritarian Ideology = "authoritarian"
	Socialist     Ideology = "socialist"
	Green         Ideology = "green"
)

// Classify maps a party's economic and personal freedom scores to a label.
// The regions overlap, so the rules are checked in order and the first match
// wins. All comparisons are strict; a score exactly on a boundary falls
// through to the next rule.
func Classify(econ, personal float64) Ideology {
	switch {
	case math.Abs(econ) < 1 && math.Abs(personal) < 1:
		return Centrist
	case econ < -2 && personal > 2:
		return Liberal
	case econ > 2 && personal < -2:
		return Conservative
	case econ > 2 && personal > 2:
		return Libertarian
	case econ < -2 && personal < -2:
		return Authoritarian
	case econ < -3:
		return Socialist
	case personal > 3:
		return Green
	default:
		return Centrist
	}
}
