// internal/tenant/meta/model.go
//
// `site` table row model.
//
// Context
// -------
// The `Record` struct mirrors one row in the persistent **site** table,
// capturing host routing, the tenant database DSN, display basics, and
// soft-delete flags.  It is used by the tenant loader to build the
// in-memory cache and by admin tooling that lists or edits sites.
//
// Schema reference (2025-08-14)
//
//	CREATE TABLE site (
//	    id            INT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
//	    host          VARCHAR(256)  NOT NULL UNIQUE,
//	    dsn           VARCHAR(512)  NOT NULL,
//	    title         VARCHAR(256)  NOT NULL DEFAULT '',
//	    locale        VARCHAR(16)   NOT NULL DEFAULT 'en_US',
//	    suspended_at  TIMESTAMP NULL,
//	    deleted_at    TIMESTAMP NULL,
//	    created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
//	    updated_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
//	);
//
// Notes
// -----
// • Nullable timestamps are `*time.Time`; callers must nil-check before use.
// • Either timestamp being non-NULL prevents the lazy-loader from serving
//   the site.
// • This struct contains no behaviour—pure data model for sqlx scans.
package meta

import "time"

// Record mirrors one row in the `site` table.
type Record struct {
	ID          uint64     `db:"id"`
	Host        string     `db:"host"`
	DSN         string     `db:"dsn"`
	Title       string     `db:"title"`
	Locale      string     `db:"locale"`
	SuspendedAt *time.Time `db:"suspended_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}
