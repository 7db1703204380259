// internal/content/store.go
//
// Key-value persistence for content records.
//
// Context
// -------
// The store is deliberately dumb: Get, Put, ListBySite, and Delete over
// `(site_id, key)` rows, nothing else.  Put is a full-replace upsert with
// last-write-wins semantics — two editors saving the same section
// concurrently clobber each other silently, and that is the accepted
// behavior, not a bug to paper over here.  Ordering and default merging
// are separate concerns (internal/order, internal/section).
//
// Errors
// ------
// • ErrNotFound      — Get on an absent row; callers treat it as "no stored
//   override" and must never surface it to an end user.
// • Anything else    — backend I/O failure, returned verbatim.  The store
//   never retries.
//
// Notes
// -----
// • Oxford commas, two spaces after periods.
// • Max line length 100 columns.
package content

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/vitrineweb/vitrine/internal/metrics"
)

// ErrNotFound is returned by Get when no row exists for (siteID, key).
var ErrNotFound = errors.New("content: record not found")

// Store provides tenant-scoped access to the content_record table.  Safe
// for concurrent use; it holds only the shared *sqlx.DB pool.
type Store struct {
	db *sqlx.DB
}

// NewStore wraps the control-plane pool.
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Get fetches and decodes one record.  Absent rows yield ErrNotFound.
func (s *Store) Get(ctx context.Context, siteID uint64, key string) (*Record, error) {
	const q = "SELECT value, updated_at FROM content_record WHERE site_id = ? AND `key` = ?"

	var row struct {
		Value     []byte       `db:"value"`
		UpdatedAt sql.NullTime `db:"updated_at"`
	}
	if err := s.db.GetContext(ctx, &row, q, siteID, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rec := &Record{SiteID: siteID, Key: key}
	if row.UpdatedAt.Valid {
		rec.UpdatedAt = row.UpdatedAt.Time
	}
	if err := json.Unmarshal(row.Value, &rec.Value); err != nil {
		return nil, fmt.Errorf("content: decode %q: %w", key, err)
	}
	return rec, nil
}

// Put upserts one record, replacing any previous value wholesale.  Last
// write wins; there is no version or etag check.
func (s *Store) Put(ctx context.Context, siteID uint64, key string, value Value) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("content: encode %q: %w", key, err)
	}

	const q = `INSERT INTO content_record (site_id, ` + "`key`" + `, value)
	           VALUES (?, ?, ?)
	           ON DUPLICATE KEY UPDATE value = VALUES(value)`
	if _, err := s.db.ExecContext(ctx, q, siteID, key, raw); err != nil {
		return err
	}
	metrics.ContentPutTotal.Inc()
	return nil
}

// ListBySite returns every record for one site, decoded, in no particular
// order.  Display order is the order ledger's concern.
func (s *Store) ListBySite(ctx context.Context, siteID uint64) ([]Record, error) {
	const q = "SELECT `key`, value, updated_at FROM content_record WHERE site_id = ?"

	rows := make([]struct {
		Key       string       `db:"key"`
		Value     []byte       `db:"value"`
		UpdatedAt sql.NullTime `db:"updated_at"`
	}, 0, 16)
	if err := s.db.SelectContext(ctx, &rows, q, siteID); err != nil {
		return nil, err
	}

	out := make([]Record, 0, len(rows))
	for _, r := range rows {
		rec := Record{SiteID: siteID, Key: r.Key}
		if r.UpdatedAt.Valid {
			rec.UpdatedAt = r.UpdatedAt.Time
		}
		if err := json.Unmarshal(r.Value, &rec.Value); err != nil {
			return nil, fmt.Errorf("content: decode %q: %w", r.Key, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

// Delete removes one record.  Deleting an absent key is not an error.
func (s *Store) Delete(ctx context.Context, siteID uint64, key string) error {
	const q = "DELETE FROM content_record WHERE site_id = ? AND `key` = ?"
	_, err := s.db.ExecContext(ctx, q, siteID, key)
	return err
}
