// internal/content/store_test.go
//
// Unit-tests for the content record store using sqlmock.
//
// Run: go test ./internal/content -v

package content

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
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

func TestGetDecodesValue(t *testing.T) {
	store, mock := newMockStore(t)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT value, updated_at FROM content_record WHERE site_id = ? AND `key` = ?",
	)).
		WithArgs(uint64(7), "section_hero_content").
		WillReturnRows(sqlmock.NewRows([]string{"value", "updated_at"}).
			AddRow([]byte(`{"title":"Welcome","items":[{"t":"a"}]}`), now))

	rec, err := store.Get(context.Background(), 7, "section_hero_content")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if rec.Value["title"] != "Welcome" {
		t.Fatalf("unexpected title: %v", rec.Value["title"])
	}
	items, ok := rec.Value["items"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("unexpected items: %#v", rec.Value["items"])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestGetAbsentRowIsNotFound(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT value, updated_at FROM content_record WHERE site_id = ? AND `key` = ?",
	)).
		WithArgs(uint64(7), "section_ghost_content").
		WillReturnRows(sqlmock.NewRows([]string{"value", "updated_at"}))

	_, err := store.Get(context.Background(), 7, "section_ghost_content")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPutUpserts(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO content_record")).
		WithArgs(uint64(7), "section_hero_content", []byte(`{"title":"X"}`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.Put(context.Background(), 7, "section_hero_content", Value{"title": "X"})
	if err != nil {
		t.Fatalf("Put error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestPutPropagatesBackendFailure(t *testing.T) {
	store, mock := newMockStore(t)

	boom := errors.New("connection reset")
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO content_record")).
		WillReturnError(boom)

	err := store.Put(context.Background(), 7, "k", Value{})
	if !errors.Is(err, boom) {
		t.Fatalf("expected backend error to propagate, got %v", err)
	}
}

func TestListBySite(t *testing.T) {
	store, mock := newMockStore(t)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT `key`, value, updated_at FROM content_record WHERE site_id = ?",
	)).
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value", "updated_at"}).
			AddRow("section_hero_content", []byte(`{"title":"A"}`), now).
			AddRow("landing_section_order", []byte(`{"order":["hero"]}`), now))

	recs, err := store.ListBySite(context.Background(), 7)
	if err != nil {
		t.Fatalf("ListBySite error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].Key != "section_hero_content" || recs[0].Value["title"] != "A" {
		t.Fatalf("unexpected first record: %#v", recs[0])
	}
}

func TestSectionKeyRoundTrip(t *testing.T) {
	key := SectionKey("faq")
	if key != "section_faq_content" {
		t.Fatalf("unexpected key: %q", key)
	}
	id, ok := SectionID(key)
	if !ok || id != "faq" {
		t.Fatalf("SectionID(%q) = %q, %v", key, id, ok)
	}
	if _, ok := SectionID("landing_section_order"); ok {
		t.Fatal("reserved key must not parse as a section key")
	}
	if _, ok := SectionID("section__content"); ok {
		t.Fatal("empty section id must not parse")
	}
}

func TestSettingsRoundTripPreservesUnknownKeys(t *testing.T) {
	store, mock := newMockStore(t)

	stored := `{"site_title":"Acme","custom_flag":true}`
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT value, updated_at FROM content_record WHERE site_id = ? AND `key` = ?",
	)).
		WithArgs(uint64(3), SettingsKey).
		WillReturnRows(sqlmock.NewRows([]string{"value", "updated_at"}).
			AddRow([]byte(stored), time.Now()))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO content_record")).
		WithArgs(uint64(3), SettingsKey, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.SaveSettings(context.Background(), 3, Settings{SiteTitle: "Acme", Tagline: "hi"})
	if err != nil {
		t.Fatalf("SaveSettings error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}
