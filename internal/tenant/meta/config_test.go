// internal/tenant/meta/config_test.go
//
// Tenant cold-load path against sqlmock: every host resolution walks
// ByHost → ConfigBySite, so the column names here must match the
// provisioned schema exactly.
//
// Run: go test ./internal/tenant/meta -v

package meta

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "mysql"), mock
}

func TestConfigBySiteSelectsKeyColumn(t *testing.T) {
	db, mock := newMockDB(t)

	// The site_config table stores settings under a `key` column; the
	// query must name it explicitly or cold-loading every tenant fails.
	mock.ExpectQuery("SELECT\\s+`key`, value\\s+FROM\\s+site_config\\s+WHERE\\s+site_id = \\?").
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value"}).
			AddRow("theme", "light").
			AddRow("cta_label", "Fale conosco"))

	cfg, err := ConfigBySite(context.Background(), db, 7)
	if err != nil {
		t.Fatalf("ConfigBySite error: %v", err)
	}
	if cfg["theme"] != "light" || cfg["cta_label"] != "Fale conosco" {
		t.Fatalf("unexpected config map: %#v", cfg)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestConfigBySiteEmpty(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT\\s+`key`, value\\s+FROM\\s+site_config").
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value"}))

	cfg, err := ConfigBySite(context.Background(), db, 7)
	if err != nil {
		t.Fatalf("ConfigBySite error: %v", err)
	}
	if len(cfg) != 0 {
		t.Fatalf("expected empty map, got %#v", cfg)
	}
}
