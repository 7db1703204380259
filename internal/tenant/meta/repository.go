// internal/tenant/meta/repository.go
//
// Site-table query helpers.
//
// Context
// -------
// These functions provide read-only access to the **site** table:
//
//   - `AllActive` — admin dashboards, batch operations, boot sanity check.
//   - `ByHost`    — tenant loader on first request for a host.
//
// Both exclude suspended or deleted rows at SQL level to keep callers
// simple, and return errors verbatim so the caller can wrap or log them.
package meta

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// AllActive returns every site that is neither suspended nor deleted.
func AllActive(ctx context.Context, db *sqlx.DB) ([]Record, error) {
	const q = `
        SELECT id, host, dsn, title, locale,
               suspended_at, deleted_at, created_at, updated_at
        FROM   site
        WHERE  suspended_at IS NULL
          AND  deleted_at   IS NULL`
	var rows []Record
	if err := db.SelectContext(ctx, &rows, q); err != nil {
		return nil, err
	}
	return rows, nil
}

// ByHost fetches a single active site row.  The caller supplies a context
// so the lookup respects request deadlines.
func ByHost(ctx context.Context, db *sqlx.DB, host string) (*Record, error) {
	const q = `
        SELECT id, host, dsn, title, locale,
               suspended_at, deleted_at, created_at, updated_at
        FROM   site
        WHERE  host = ?
          AND  suspended_at IS NULL
          AND  deleted_at   IS NULL
        LIMIT  1`
	var rec Record
	if err := db.GetContext(ctx, &rec, q, host); err != nil {
		return nil, err
	}
	return &rec, nil
}
