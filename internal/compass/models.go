package compass

import "github.com/pesikj/political-pulse-mapper/internal/ideology"

// Country is a distinct country derived from the party table at read time.
// Code carries the canonical country name as stored; it is not an ISO code.
type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Flag string `json:"flag,omitempty"`
}

// Party is the normalized party representation served to callers.
// Ideology and Description are derived, never stored.
type Party struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	ShortName       string            `json:"shortName"`
	Type            string            `json:"type"`
	Country         string            `json:"country"`
	Founded         *int64            `json:"founded"`
	Website         *string           `json:"website"`
	EconFreedom     float64           `json:"econFreedom"`
	PersonalFreedom float64           `json:"personalFreedom"`
	Ideology        ideology.Ideology `json:"ideology"`
	Description     string            `json:"description"`
}

// Policy is a normalized policy analysis for a party.
type Policy struct {
	PolicyText      string   `json:"policyText"`
	ShortName       string   `json:"shortName"`
	Impact          string   `json:"impact"`
	Categories      []string `json:"categories"`
	Explanation     string   `json:"explanation"`
	EconFreedom     *float64 `json:"econFreedom"`
	PersonalFreedom *float64 `json:"personalFreedom"`
}

// PartyRow is a raw party record as read from a backing store.
type PartyRow struct {
	ID              string
	Name            string
	Type            string
	Country         string
	Founded         *int64
	Website         *string
	EconFreedom     *float64
	PersonalFreedom *float64
}

// PolicyRow is a raw policy-analysis record as read from a backing store.
// Category holds a JSON-encoded array of strings; Error is non-nil when the
// upstream extraction attempt failed.
type PolicyRow struct {
	PartyID           string
	ChunkIndex        int64
	PolicyID          int64
	PolicyText        *string
	ShortName         *string
	Impact            *string
	ImpactExplanation *string
	Category          *string
	Explanation       *string
	EconFreedom       *float64
	PersonalFreedom   *float64
	Weight            *float64
	Error             *string
}
