// internal/post/post_test.go
//
// Unit-tests for post persistence using sqlmock.
//
// Run: go test ./internal/post -v

package post

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewStore(sqlx.NewDb(db, "mysql")), mock
}

func postRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "slug", "title", "summary", "body",
		"published_at", "created_at", "updated_at"})
}

func TestCreateDerivesSlug(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO post")).
		WithArgs("hello-world", "Hello World", "", "body").
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectQuery(`(?s)SELECT .+ FROM post WHERE id = \?`).
		WithArgs(uint64(5)).
		WillReturnRows(postRows().
			AddRow(5, "hello-world", "Hello World", "", "body", nil, time.Now(), time.Now()))

	rec, err := store.Create(context.Background(), "Hello World", "", "body")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if rec.Slug != "hello-world" || rec.ID != 5 {
		t.Fatalf("unexpected record: %#v", rec)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestCreateRetriesOnSlugCollision(t *testing.T) {
	store, mock := newMockStore(t)

	dup := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO post")).
		WithArgs("hello", "hello", "", "b").
		WillReturnError(dup)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO post")).
		WithArgs("hello-2", "hello", "", "b").
		WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectQuery(`(?s)SELECT .+ FROM post WHERE id = \?`).
		WithArgs(uint64(9)).
		WillReturnRows(postRows().
			AddRow(9, "hello-2", "hello", "", "b", nil, time.Now(), time.Now()))

	rec, err := store.Create(context.Background(), "hello", "", "b")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if rec.Slug != "hello-2" {
		t.Fatalf("expected deduplicated slug, got %q", rec.Slug)
	}
}

func TestBySlugOnlyPublished(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`(?s)SELECT .+ FROM post WHERE slug = \? AND published_at IS NOT NULL`).
		WithArgs("draft-post").
		WillReturnRows(postRows())

	_, err := store.BySlug(context.Background(), "draft-post")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for draft, got %v", err)
	}
}

func TestPublishNotFound(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE post SET published_at = CURRENT_TIMESTAMP")).
		WithArgs(uint64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := store.Publish(context.Background(), 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
