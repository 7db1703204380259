// internal/migrate/migrate_test.go
//
// Schema/query drift checks.  The embedded DDL and the sqlx queries in
// the rest of the repo must agree on column names; a mismatch here only
// surfaces against a live database, long after unit tests pass, so the
// column names the stores rely on are pinned against the migration text.
//
// Run: go test ./internal/migrate -v

package migrate

import (
	"strings"
	"testing"
)

func readMigration(t *testing.T, path string) string {
	t.Helper()
	raw, err := migrations.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(raw)
}

func TestSiteConfigColumnsMatchTenantLoader(t *testing.T) {
	ddl := readMigration(t, "migrations/global/00001_site.sql")

	// meta.ConfigBySite selects `key`, value from site_config.
	for _, col := range []string{"`key`", "value", "site_id"} {
		if !strings.Contains(ddl, col) {
			t.Errorf("site migration lacks column %s used by the config loader", col)
		}
	}
	if strings.Contains(ddl, "\n    name ") {
		t.Errorf("site_config declares a `name` column; the loader queries `key`")
	}
}

func TestContentRecordColumnsMatchStore(t *testing.T) {
	ddl := readMigration(t, "migrations/global/00002_content_record.sql")

	// content.Store queries site_id, `key`, value, updated_at.
	for _, col := range []string{"site_id", "`key`", "value", "updated_at"} {
		if !strings.Contains(ddl, col) {
			t.Errorf("content_record migration lacks column %s used by the store", col)
		}
	}
}

func TestTenantScopeColumnsMatchStores(t *testing.T) {
	leadDDL := readMigration(t, "migrations/tenant/00001_lead.sql")
	for _, col := range []string{
		"id", "name", "email", "phone", "message",
		"ua_browser", "ua_os", "ua_device", "is_bot", "country", "created_at",
	} {
		if !strings.Contains(leadDDL, col) {
			t.Errorf("lead migration lacks column %s used by lead.Store", col)
		}
	}

	postDDL := readMigration(t, "migrations/tenant/00002_post.sql")
	for _, col := range []string{
		"slug", "title", "summary", "body", "published_at", "created_at", "updated_at",
	} {
		if !strings.Contains(postDDL, col) {
			t.Errorf("post migration lacks column %s used by post.Store", col)
		}
	}
}

func TestUnknownScopeRejected(t *testing.T) {
	if _, err := dir(Scope("nope")); err == nil {
		t.Fatal("expected an error for an unknown migration scope")
	}
}
