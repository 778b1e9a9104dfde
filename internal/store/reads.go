package store

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	"github.com/pesikj/political-pulse-mapper/internal/compass"
)

// ListCountries returns the distinct countries present in the party table,
// alphabetical, each paired with its flag glyph when one is known.
func (c *SQLClient) ListCountries(ctx context.Context) ([]compass.Country, error) {
	db, err := c.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		`SELECT DISTINCT country FROM parties
		WHERE country IS NOT NULL AND country != ''
		ORDER BY country`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	countries := []compass.Country{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		countries = append(countries, compass.Country{
			Code: name,
			Name: name,
			Flag: compass.Flag(name),
		})
	}
	return countries, rows.Err()
}

// ListParties returns all parties for a country, alphabetical by name, each
// normalized through the row transform.
func (c *SQLClient) ListParties(ctx context.Context, country string) ([]compass.Party, error) {
	db, err := c.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, c.bind(
		`SELECT id, name, type, country, founded, website, econ_freedom, personal_freedom
		FROM parties WHERE country = ? ORDER BY name`), country)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanParties(rows)
}

// ListPolicies returns the policy analyses for a party ordered by
// (chunk_index, policy_id), which reflects document position in the source
// material. Failed extraction rows (non-null error, null text) are filtered
// in the query; the per-row transform applies the remaining skips.
func (c *SQLClient) ListPolicies(ctx context.Context, partyID string) ([]compass.Policy, error) {
	db, err := c.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, c.bind(
		`SELECT party_id, chunk_index, policy_id, policy_text, short_name, impact,
			impact_explanation, category, explanation, econ_freedom, personal_freedom,
			weight, error
		FROM llm_responses
		WHERE party_id = ? AND error IS NULL
			AND policy_text IS NOT NULL AND policy_text != ''
		ORDER BY chunk_index, policy_id`), partyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPolicies(rows)
}

// Stats summarizes row counts for the status command.
type Stats struct {
	Countries int
	Parties   int
	Policies  int
}

// Stats returns aggregate counts from the backing store.
func (c *SQLClient) Stats(ctx context.Context) (Stats, error) {
	db, err := c.conn()
	if err != nil {
		return Stats{}, err
	}

	var s Stats
	if err := db.QueryRowContext(ctx, "SELECT COUNT(DISTINCT country) FROM parties").Scan(&s.Countries); err != nil {
		return Stats{}, err
	}
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM parties").Scan(&s.Parties); err != nil {
		return Stats{}, err
	}
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM llm_responses").Scan(&s.Policies); err != nil {
		return Stats{}, err
	}
	return s, nil
}

func scanParties(rows *sql.Rows) ([]compass.Party, error) {
	parties := []compass.Party{}
	for rows.Next() {
		var r compass.PartyRow
		var econ, personal numeric
		if err := rows.Scan(&r.ID, &r.Name, &r.Type, &r.Country,
			&r.Founded, &r.Website, &econ, &personal); err != nil {
			return nil, err
		}
		r.EconFreedom = econ.value
		r.PersonalFreedom = personal.value
		parties = append(parties, compass.PartyFromRow(r))
	}
	return parties, rows.Err()
}

func scanPolicies(rows *sql.Rows) ([]compass.Policy, error) {
	policies := []compass.Policy{}
	for rows.Next() {
		var r compass.PolicyRow
		var econ, personal, weight numeric
		if err := rows.Scan(&r.PartyID, &r.ChunkIndex, &r.PolicyID,
			&r.PolicyText, &r.ShortName, &r.Impact, &r.ImpactExplanation,
			&r.Category, &r.Explanation, &econ, &personal, &weight, &r.Error); err != nil {
			return nil, err
		}
		r.EconFreedom = econ.value
		r.PersonalFreedom = personal.value
		r.Weight = weight.value
		if p, ok := compass.PolicyFromRow(r); ok {
			policies = append(policies, p)
		}
	}
	return policies, rows.Err()
}

// numeric scans a column that should be numeric but may arrive as text.
// Unparseable text degrades to null rather than failing the whole row.
type numeric struct {
	value *float64
}

func (n *numeric) Scan(src any) error {
	n.value = nil
	switch v := src.(type) {
	case float64:
		f := v
		n.value = &f
	case int64:
		f := float64(v)
		n.value = &f
	case []byte:
		n.parse(string(v))
	case string:
		n.parse(v)
	}
	return nil
}

func (n *numeric) parse(s string) {
	if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		n.value = &f
	}
}
