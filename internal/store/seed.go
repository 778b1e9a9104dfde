package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Dataset is the JSON seed format consumed by the import command. The
// serving surface stays read-only; importing is how the embedded artifact
// gets built in the first place.
type Dataset struct {
	Parties  []SeedParty  `json:"parties"`
	Policies []SeedPolicy `json:"policies"`
}

type SeedParty struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	Country         string   `json:"country"`
	Founded         *int64   `json:"founded"`
	Website         *string  `json:"website"`
	EconFreedom     *float64 `json:"econFreedom"`
	PersonalFreedom *float64 `json:"personalFreedom"`
}

type SeedPolicy struct {
	PartyID           string   `json:"partyId"`
	ChunkIndex        int64    `json:"chunkIndex"`
	PolicyID          int64    `json:"policyId"`
	PolicyText        *string  `json:"policyText"`
	ShortName         *string  `json:"shortName"`
	Impact            *string  `json:"impact"`
	ImpactExplanation *string  `json:"impactExplanation"`
	Categories        []string `json:"categories"`
	Explanation       *string  `json:"explanation"`
	EconFreedom       *float64 `json:"econFreedom"`
	PersonalFreedom   *float64 `json:"personalFreedom"`
	Weight            *float64 `json:"weight"`
	Error             *string  `json:"error"`
}

// Import loads a dataset into the embedded artifact, replacing rows that
// share a key. Only the sqlite dialect accepts writes.
func (c *SQLClient) Import(ctx context.Context, ds *Dataset) error {
	if c.dialect != dialectSQLite {
		return errors.New("import requires the embedded store")
	}
	db, err := c.conn()
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	for _, p := range ds.Parties {
		_, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO parties
			(id, name, type, country, founded, website, econ_freedom, personal_freedom)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, p.Name, p.Type, p.Country, p.Founded, p.Website,
			p.EconFreedom, p.PersonalFreedom)
		if err != nil {
			return fmt.Errorf("importing party %s: %w", p.ID, err)
		}
	}

	for _, p := range ds.Policies {
		var category *string
		if p.Categories != nil {
			raw, err := json.Marshal(p.Categories)
			if err != nil {
				return fmt.Errorf("encoding categories for party %s: %w", p.PartyID, err)
			}
			s := string(raw)
			category = &s
		}
		_, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO llm_responses
			(party_id, chunk_index, policy_id, policy_text, short_name, impact,
			impact_explanation, category, explanation, econ_freedom,
			personal_freedom, weight, error)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.PartyID, p.ChunkIndex, p.PolicyID, p.PolicyText, p.ShortName,
			p.Impact, p.ImpactExplanation, category, p.Explanation,
			p.EconFreedom, p.PersonalFreedom, p.Weight, p.Error)
		if err != nil {
			return fmt.Errorf("importing policy %s/%d/%d: %w", p.PartyID, p.ChunkIndex, p.PolicyID, err)
		}
	}

	return tx.Commit()
}
