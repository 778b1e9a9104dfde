package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pesikj/political-pulse-mapper/internal/compass"
)

// HTTPClient serves the read operations from an upstream instance's read
// API, falling back to a local embedded store when the request errors or
// returns a non-success status. Different deployment topology, same
// contract: the upstream already returns normalized shapes.
type HTTPClient struct {
	base     string
	client   *http.Client
	fallback Client
}

// NewHTTP returns a client over the read API at base, with fallback
// answering whenever the upstream cannot.
func NewHTTP(base string, fallback Client) *HTTPClient {
	return &HTTPClient{
		base:     strings.TrimRight(base, "/"),
		client:   &http.Client{Timeout: 10 * time.Second},
		fallback: fallback,
	}
}

func (c *HTTPClient) ListCountries(ctx context.Context) ([]compass.Country, error) {
	var out []compass.Country
	if err := c.get(ctx, "/api/countries", nil, &out); err != nil {
		log.Printf("upstream countries fetch failed, using embedded store: %v", err)
		return c.fallback.ListCountries(ctx)
	}
	if out == nil {
		out = []compass.Country{}
	}
	return out, nil
}

func (c *HTTPClient) ListParties(ctx context.Context, country string) ([]compass.Party, error) {
	var out []compass.Party
	query := url.Values{"country": {country}}
	if err := c.get(ctx, "/api/parties", query, &out); err != nil {
		log.Printf("upstream parties fetch failed, using embedded store: %v", err)
		return c.fallback.ListParties(ctx, country)
	}
	if out == nil {
		out = []compass.Party{}
	}
	return out, nil
}

func (c *HTTPClient) ListPolicies(ctx context.Context, partyID string) ([]compass.Policy, error) {
	var out []compass.Policy
	query := url.Values{"partyId": {partyID}}
	if err := c.get(ctx, "/api/policies", query, &out); err != nil {
		log.Printf("upstream policies fetch failed, using embedded store: %v", err)
		return c.fallback.ListPolicies(ctx, partyID)
	}
	if out == nil {
		out = []compass.Policy{}
	}
	return out, nil
}

// Close releases the fallback store; the HTTP side holds no resources.
func (c *HTTPClient) Close() error {
	return c.fallback.Close()
}

func (c *HTTPClient) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("upstream returned %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
