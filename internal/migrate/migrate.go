// internal/migrate/migrate.go
//
// Embedded schema migrations (Goose).
//
// Context
// -------
// Vitrine owns two schema scopes:
//
//   • global – the control-plane database: site, site_config, and the
//     content_record table that backs sections, the section order, and
//     the site settings document.
//   • tenant – each per-site database: lead and post.
//
// The SQL files are embedded so the binary carries its own schema; the
// cmd/migrate CLI applies them.  Goose keeps its version bookkeeping in
// the target database, so global and tenant scopes never collide.
package migrate

import (
	"context"
	"embed"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/global/*.sql migrations/tenant/*.sql
var migrations embed.FS

// Scope selects which embedded migration set to apply.
type Scope string

const (
	Global Scope = "global"
	Tenant Scope = "tenant"
)

func dir(s Scope) (string, error) {
	switch s {
	case Global, Tenant:
		return "migrations/" + string(s), nil
	default:
		return "", fmt.Errorf("unknown migration scope %q", s)
	}
}

// Up applies all pending migrations for the scope against dsn.
func Up(ctx context.Context, dsn string, scope Scope) error {
	d, err := dir(scope)
	if err != nil {
		return err
	}
	goose.SetBaseFS(migrations)

	db, err := goose.OpenDBWithDriver("mysql", dsn)
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, d); err != nil {
		return fmt.Errorf("run %s migrations: %w", scope, err)
	}
	return nil
}

// Down rolls back the most recent migration for the scope.
func Down(ctx context.Context, dsn string, scope Scope) error {
	d, err := dir(scope)
	if err != nil {
		return err
	}
	goose.SetBaseFS(migrations)

	db, err := goose.OpenDBWithDriver("mysql", dsn)
	if err != nil {
		return fmt.Errorf("open db for rollback: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}
	if err := goose.DownContext(ctx, db, d); err != nil {
		return fmt.Errorf("rollback %s migration: %w", scope, err)
	}
	return nil
}

// Status prints the migration status for the scope to stdout.
func Status(ctx context.Context, dsn string, scope Scope) error {
	d, err := dir(scope)
	if err != nil {
		return err
	}
	goose.SetBaseFS(migrations)

	db, err := goose.OpenDBWithDriver("mysql", dsn)
	if err != nil {
		return fmt.Errorf("open db for status: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}
	return goose.StatusContext(ctx, db, d)
}
