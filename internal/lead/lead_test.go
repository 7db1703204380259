// internal/lead/lead_test.go
//
// Unit-tests for lead validation and persistence using sqlmock.
//
// Run: go test ./internal/lead -v

package lead

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/vitrineweb/vitrine/internal/ua"
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

func TestCaptureInsertsEnrichedRow(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO lead")).
		WithArgs(sqlmock.AnyArg(), "Ana", "ana@example.com", "", "Quote please",
			"Chrome", "Windows", "Desktop", false, "BR").
		WillReturnResult(sqlmock.NewResult(0, 1))

	fp := ua.Info{Browser: "Chrome", OS: "Windows", Device: "Desktop"}
	rec, err := store.Capture(context.Background(),
		Input{Name: "Ana", Email: "ana@example.com", Message: "Quote please"}, fp, "BR")
	if err != nil {
		t.Fatalf("Capture error: %v", err)
	}
	if _, err := uuid.Parse(rec.ID); err != nil {
		t.Fatalf("id is not a uuid: %q", rec.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestCaptureRejectsInvalidInput(t *testing.T) {
	store, _ := newMockStore(t)

	cases := []Input{
		{Email: "ana@example.com", Message: "hi"}, // missing name
		{Name: "Ana", Email: "not-an-email", Message: "hi"},
		{Name: "Ana", Email: "ana@example.com"}, // missing message
	}
	for _, in := range cases {
		if _, err := store.Capture(context.Background(), in, ua.Info{}, ""); err == nil {
			t.Errorf("expected validation error for %+v", in)
		}
	}
}

func TestListExcludesBotsByDefault(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`(?s)SELECT .+ FROM lead WHERE is_bot = FALSE ORDER BY created_at DESC LIMIT \?`).
		WithArgs(50).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "phone", "message",
			"ua_browser", "ua_os", "ua_device", "is_bot", "country", "created_at"}))

	if _, err := store.List(context.Background(), false, 50); err != nil {
		t.Fatalf("List error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}
