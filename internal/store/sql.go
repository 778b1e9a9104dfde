package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/sync/singleflight"
	_ "modernc.org/sqlite"
)

type dialect int

const (
	dialectSQLite dialect = iota
	dialectPostgres
)

// SQLClient serves the read operations from a database/sql store, either
// the embedded SQLite artifact or a remote Postgres database. The two share
// one query text and one scan function per entity; only the placeholder
// syntax differs.
//
// The connection is established on the first read. Concurrent first readers
// share a single attempt; a failed attempt is dropped so the next call
// retries from scratch, while a successful handle is kept until Close.
type SQLClient struct {
	dialect dialect
	dsn     string
	create  bool // sqlite only: create and migrate a missing artifact

	group singleflight.Group

	mu       sync.Mutex
	db       *sql.DB
	connects int // counts open attempts, read by tests
}

// NewSQLite returns a client over the embedded artifact at path. The
// artifact must already exist; a missing file fails the first read.
func NewSQLite(path string) *SQLClient {
	return &SQLClient{dialect: dialectSQLite, dsn: path}
}

// CreateSQLite returns a sqlite client that creates and migrates the
// artifact if missing. Used by the import command and tests; the serving
// path opens with NewSQLite.
func CreateSQLite(path string) *SQLClient {
	return &SQLClient{dialect: dialectSQLite, dsn: path, create: true}
}

// NewPostgres returns a client over a remote Postgres database. The schema
// is owned by the remote side and never migrated from here.
func NewPostgres(url string) *SQLClient {
	return &SQLClient{dialect: dialectPostgres, dsn: url}
}

// Close releases the cached connection. Further reads fail; a client is not
// reusable after Close.
func (c *SQLClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	return err
}

// conn returns the cached handle, establishing it on first use. The
// singleflight group guarantees one open attempt per concurrent group of
// callers; the group forgets the key once the attempt finishes, which is
// what lets a failed attempt be retried by the next caller.
func (c *SQLClient) conn() (*sql.DB, error) {
	c.mu.Lock()
	db := c.db
	c.mu.Unlock()
	if db != nil {
		return db, nil
	}

	v, err, _ := c.group.Do("conn", func() (any, error) {
		db, err := c.open()
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.db = db
		c.mu.Unlock()
		return db, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*sql.DB), nil
}

func (c *SQLClient) open() (*sql.DB, error) {
	c.mu.Lock()
	c.connects++
	c.mu.Unlock()

	if c.dialect == dialectPostgres {
		db, err := sql.Open("pgx", c.dsn)
		if err != nil {
			return nil, fmt.Errorf("opening remote store: %w", err)
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, fmt.Errorf("connecting to remote store: %w", err)
		}
		return db, nil
	}

	if c.create {
		if err := os.MkdirAll(filepath.Dir(c.dsn), 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	} else if _, err := os.Stat(c.dsn); err != nil {
		return nil, fmt.Errorf("embedded store artifact: %w", err)
	}

	db, err := sql.Open("sqlite", c.dsn)
	if err != nil {
		return nil, fmt.Errorf("opening embedded store: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting journal mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating schema: %w", err)
	}
	return db, nil
}

// bind rewrites ? placeholders to $n for Postgres.
func (c *SQLClient) bind(query string) string {
	if c.dialect != dialectPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
