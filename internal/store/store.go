// Package store serves the three compass read operations from one of three
// interchangeable backing sources: the embedded SQLite artifact, a remote
// Postgres database, or a same-origin HTTP read API with embedded fallback.
package store

import (
	"context"
	"fmt"

	"github.com/pesikj/political-pulse-mapper/internal/compass"
)

// Kind selects the backing source. It is resolved once from configuration
// at startup, never inspected per operation.
type Kind string

const (
	KindEmbedded     Kind = "embedded"
	KindRemote       Kind = "remote"
	KindHTTPFallback Kind = "http-with-fallback"
)

// Config holds the resolved source selection.
type Config struct {
	Kind Kind
	// Path of the embedded SQLite artifact (embedded and fallback kinds).
	Path string
	// DatabaseURL of the remote Postgres store (remote kind).
	DatabaseURL string
	// UpstreamURL is the base URL of the upstream read API (fallback kind).
	UpstreamURL string
}

// Client is the uniform read contract over all backing sources. Results are
// normalized and ordered; slices are never nil. Callers own the degrade
// policy for errors.
type Client interface {
	ListCountries(ctx context.Context) ([]compass.Country, error)
	ListParties(ctx context.Context, country string) ([]compass.Party, error)
	ListPolicies(ctx context.Context, partyID string) ([]compass.Policy, error)
	Close() error
}

// Open constructs a client for the configured source. Construction is
// cheap; connections are established lazily on first read.
func Open(cfg Config) (Client, error) {
	switch cfg.Kind {
	case KindRemote:
		return NewPostgres(cfg.DatabaseURL), nil
	case KindHTTPFallback:
		return NewHTTP(cfg.UpstreamURL, NewSQLite(cfg.Path)), nil
	case KindEmbedded, "":
		return NewSQLite(cfg.Path), nil
	default:
		return nil, fmt.Errorf("unknown store kind %q", cfg.Kind)
	}
}
