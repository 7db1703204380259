// cmd/migrate/main.go
//
// Vitrine – schema migration CLI.
//
// Usage
// -----
//
//	migrate [-scope global|tenant|all] [up|down|status]
//
// The global scope runs against the control-plane DSN from the config
// (Vault references resolved the same way cmd/web does).  The tenant
// scope connects to the control plane, walks every active site row, and
// applies the tenant migration set to each site's own DSN.  `all` runs
// global first, then tenant — the order matters because the tenant walk
// reads the site table.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/vitrineweb/vitrine/internal/config"
	"github.com/vitrineweb/vitrine/internal/database"
	"github.com/vitrineweb/vitrine/internal/migrate"
	"github.com/vitrineweb/vitrine/internal/tenant/meta"
	"github.com/vitrineweb/vitrine/internal/vault"
)

func main() {
	scope := flag.String("scope", "all", "migration scope: global, tenant, or all")
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		command = "up"
	}
	switch command {
	case "up", "down", "status":
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q (want up, down, or status)\n", command)
		os.Exit(2)
	}

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	password := cfg.Database.GlobalPassword
	if vault.IsRef(password) {
		cli, err := vault.New(ctx, log.Printf)
		if err != nil {
			log.Fatalf("vault client: %v", err)
		}
		password, err = cli.ResolveRef(ctx, password, 5*time.Minute)
		if err != nil {
			log.Fatalf("resolve db password: %v", err)
		}
	}
	globalDSN := database.WithPassword(cfg.Database.GlobalDSN, password)

	if *scope == "global" || *scope == "all" {
		if err := run(ctx, command, globalDSN, migrate.Global); err != nil {
			log.Fatalf("global %s: %v", command, err)
		}
		log.Printf("global %s done", command)
	}

	if *scope == "tenant" || *scope == "all" {
		if err := runTenants(ctx, command, globalDSN); err != nil {
			log.Fatalf("tenant %s: %v", command, err)
		}
	}
}

// run dispatches one goose command for one DSN and scope.
func run(ctx context.Context, command, dsn string, scope migrate.Scope) error {
	switch command {
	case "up":
		return migrate.Up(ctx, dsn, scope)
	case "down":
		return migrate.Down(ctx, dsn, scope)
	default:
		return migrate.Status(ctx, dsn, scope)
	}
}

// runTenants applies the tenant migration set to every active site.
func runTenants(ctx context.Context, command, globalDSN string) error {
	db, err := database.Open(ctx, globalDSN)
	if err != nil {
		return fmt.Errorf("connect global DB: %w", err)
	}
	defer db.Close()

	sites, err := meta.AllActive(ctx, db)
	if err != nil {
		return fmt.Errorf("list active sites: %w", err)
	}
	for _, s := range sites {
		if err := run(ctx, command, s.DSN, migrate.Tenant); err != nil {
			return fmt.Errorf("site %s: %w", s.Host, err)
		}
		log.Printf("tenant %s done: %s", command, s.Host)
	}
	log.Printf("%d tenant database(s) processed", len(sites))
	return nil
}
