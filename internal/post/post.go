// internal/post/post.go
//
// Blog posts: model and persistence.
//
// Context
// -------
// Posts live in the tenant database.  The dashboard creates drafts and
// publishes them; the public blog lists and renders published rows only.
// Slugs are derived from the title on create (slug.go) and deduplicated
// with a numeric suffix so two "Hello World" posts coexist.
//
// Schema reference (2025-08-14, tenant database)
//
//	CREATE TABLE post (
//	    id            INT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
//	    slug          VARCHAR(128)  NOT NULL UNIQUE,
//	    title         VARCHAR(256)  NOT NULL,
//	    summary       VARCHAR(512)  NOT NULL DEFAULT '',
//	    body          MEDIUMTEXT    NOT NULL,
//	    published_at  TIMESTAMP NULL,
//	    created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
//	    updated_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
//	                  ON UPDATE CURRENT_TIMESTAMP
//	);
package post

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

// ErrNotFound is returned when no post matches the slug or id.
var ErrNotFound = errors.New("post: not found")

// Record mirrors one row in the tenant `post` table.
type Record struct {
	ID          uint64     `db:"id"`
	Slug        string     `db:"slug"`
	Title       string     `db:"title"`
	Summary     string     `db:"summary"`
	Body        string     `db:"body"`
	PublishedAt *time.Time `db:"published_at"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

// Store persists posts into one tenant's database.
type Store struct {
	db *sqlx.DB
}

// NewStore wraps a tenant-scoped pool.
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Create inserts a draft with a slug derived from the title.  On slug
// collision it retries with -2, -3, ... up to a small bound.
func (s *Store) Create(ctx context.Context, title, summary, body string) (*Record, error) {
	base := MakeSlug(title)

	const q = `INSERT INTO post (slug, title, summary, body) VALUES (?, ?, ?, ?)`
	for attempt := 1; attempt <= 20; attempt++ {
		slug := base
		if attempt > 1 {
			slug = fmt.Sprintf("%s-%d", base, attempt)
		}
		res, err := s.db.ExecContext(ctx, q, slug, title, summary, body)
		if err != nil {
			if isDuplicateKey(err) {
				continue
			}
			return nil, err
		}
		id, _ := res.LastInsertId()
		return s.ByID(ctx, uint64(id))
	}
	return nil, fmt.Errorf("post: no free slug for %q", base)
}

// Update replaces title, summary, and body.  The slug is stable after
// create so published URLs never break.
func (s *Store) Update(ctx context.Context, id uint64, title, summary, body string) error {
	const q = `UPDATE post SET title = ?, summary = ?, body = ? WHERE id = ?`
	res, err := s.db.ExecContext(ctx, q, title, summary, body, id)
	if err != nil {
		return err
	}
	return affectedOrNotFound(res)
}

// Publish stamps published_at; Unpublish clears it.
func (s *Store) Publish(ctx context.Context, id uint64) error {
	const q = `UPDATE post SET published_at = CURRENT_TIMESTAMP WHERE id = ?`
	res, err := s.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	return affectedOrNotFound(res)
}

// Unpublish reverts a post to draft.
func (s *Store) Unpublish(ctx context.Context, id uint64) error {
	const q = `UPDATE post SET published_at = NULL WHERE id = ?`
	res, err := s.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	return affectedOrNotFound(res)
}

// Delete removes a post permanently.
func (s *Store) Delete(ctx context.Context, id uint64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM post WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return affectedOrNotFound(res)
}

// ByID fetches one post regardless of publication state.
func (s *Store) ByID(ctx context.Context, id uint64) (*Record, error) {
	const q = `SELECT id, slug, title, summary, body, published_at, created_at, updated_at
	             FROM post WHERE id = ?`
	var rec Record
	if err := s.db.GetContext(ctx, &rec, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// BySlug fetches one *published* post for the public blog.
func (s *Store) BySlug(ctx context.Context, slug string) (*Record, error) {
	const q = `SELECT id, slug, title, summary, body, published_at, created_at, updated_at
	             FROM post WHERE slug = ? AND published_at IS NOT NULL`
	var rec Record
	if err := s.db.GetContext(ctx, &rec, q, slug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// List returns posts newest first.  publishedOnly narrows to the public
// view; the dashboard passes false to see drafts too.
func (s *Store) List(ctx context.Context, publishedOnly bool, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 50
	}
	q := `SELECT id, slug, title, summary, body, published_at, created_at, updated_at FROM post`
	if publishedOnly {
		q += ` WHERE published_at IS NOT NULL`
	}
	q += ` ORDER BY created_at DESC LIMIT ?`

	var rows []Record
	if err := s.db.SelectContext(ctx, &rows, q, limit); err != nil {
		return nil, err
	}
	return rows, nil
}

// affectedOrNotFound maps zero affected rows to ErrNotFound.
func affectedOrNotFound(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// isDuplicateKey detects the MySQL duplicate-entry error (1062).
func isDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}
