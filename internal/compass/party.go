package compass

import (
	"fmt"
	"strings"

	"github.com/pesikj/political-pulse-mapper/internal/ideology"
)

// PartyFromRow normalizes a stored party record. Missing freedom scores
// default to 0, which keeps the derived ideology consistent with whatever
// scores the row actually carries. It never fails.
func PartyFromRow(r PartyRow) Party {
	var econ, personal float64
	if r.EconFreedom != nil {
		econ = *r.EconFreedom
	}
	if r.PersonalFreedom != nil {
		personal = *r.PersonalFreedom
	}

	return Party{
		ID:              r.ID,
		Name:            r.Name,
		ShortName:       ShortName(r.Name),
		Type:            r.Type,
		Country:         r.Country,
		Founded:         r.Founded,
		Website:         r.Website,
		EconFreedom:     econ,
		PersonalFreedom: personal,
		Ideology:        ideology.Classify(econ, personal),
		Description:     fmt.Sprintf("%s is a %s in %s.", r.Name, r.Type, strings.ToUpper(r.Country)),
	}
}

// ShortName derives a compact display name: names of more than two
// space-separated words collapse to the first word, shorter names are kept
// whole. Only single spaces separate words; slashes and other punctuation
// stay inside their word.
func ShortName(name string) string {
	words := strings.Split(name, " ")
	if len(words) > 2 {
		return words[0]
	}
	return strings.Join(words, " ")
}
