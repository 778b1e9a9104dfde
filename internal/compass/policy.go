package compass

import (
	"encoding/json"
	"log"
)

// PolicyFromRow normalizes a stored policy-analysis row. The second return
// is false when the row must be skipped: rows without policy text or a short
// name are leftovers from failed extraction runs and never reach callers.
func PolicyFromRow(r PolicyRow) (Policy, bool) {
	if r.PolicyText == nil || *r.PolicyText == "" {
		return Policy{}, false
	}
	if r.ShortName == nil || *r.ShortName == "" {
		return Policy{}, false
	}

	impact := "medium"
	if r.Impact != nil {
		switch *r.Impact {
		case "high", "medium", "low":
			impact = *r.Impact
		}
	}

	explanation := ""
	switch {
	case r.Explanation != nil && *r.Explanation != "":
		explanation = *r.Explanation
	case r.ImpactExplanation != nil:
		explanation = *r.ImpactExplanation
	}

	return Policy{
		PolicyText:      *r.PolicyText,
		ShortName:       *r.ShortName,
		Impact:          impact,
		Categories:      decodeCategories(r.Category),
		Explanation:     explanation,
		EconFreedom:     r.EconFreedom,
		PersonalFreedom: r.PersonalFreedom,
	}, true
}

// decodeCategories parses the JSON-encoded category column. Malformed JSON
// is logged and degrades to an empty slice; the result is never nil.
func decodeCategories(raw *string) []string {
	if raw == nil || *raw == "" {
		return []string{}
	}
	var cats []string
	if err := json.Unmarshal([]byte(*raw), &cats); err != nil {
		log.Printf("failed to parse category column %q: %v", *raw, err)
		return []string{}
	}
	if cats == nil {
		return []string{}
	}
	return cats
}
