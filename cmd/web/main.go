// cmd/web/main.go
//
// Vitrine – HTTP entry point.
//
// Boot sequence
// -------------
//
//  1. Load env vars (jail-wide file → conf/.env fallback via the config
//     loader).
//
//  2. Start daily rotating logger (tees to console when running in a TTY).
//
//  3. Load and validate config; resolve any `vault:` reference in the
//     database password through the Vault client.
//
//  4. Open global control-plane DB and log active-site count.
//
//  5. Build tenant-cache (lazy-loads each site on first hit).
//
//  6. Open the GeoIP resolver (optional; empty path disables lookups).
//
//  7. Mount Prometheus /metrics next to the site router, wrap with
//     ForceHTTPS when configured, and serve until SIGINT/SIGTERM.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vitrineweb/vitrine/internal/config"
	"github.com/vitrineweb/vitrine/internal/content"
	"github.com/vitrineweb/vitrine/internal/database"
	"github.com/vitrineweb/vitrine/internal/geo"
	"github.com/vitrineweb/vitrine/internal/logger"
	"github.com/vitrineweb/vitrine/internal/middleware"
	"github.com/vitrineweb/vitrine/internal/order"
	"github.com/vitrineweb/vitrine/internal/server"
	"github.com/vitrineweb/vitrine/internal/tenant"
	"github.com/vitrineweb/vitrine/internal/vault"
	"github.com/vitrineweb/vitrine/internal/web"
)

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zlog, err := logger.New(cfg.Paths.Root, runningInTTY())
	if err != nil {
		log.Fatalf("start logger: %v", err)
	}
	defer zlog.Sync()

	//
	// ── 1.  Secret resolution ───────────────────────────────────────────
	//
	password := cfg.Database.GlobalPassword
	if vault.IsRef(password) {
		cli, err := vault.New(ctx, zlog.Infof)
		if err != nil {
			zlog.Fatalw("vault client", "err", err)
		}
		password, err = cli.ResolveRef(ctx, password, 5*time.Minute)
		if err != nil {
			zlog.Fatalw("resolve db password", "err", err)
		}
	}
	dsn := database.WithPassword(cfg.Database.GlobalDSN, password)

	//
	// ── 2.  Global DB connect ───────────────────────────────────────────
	//
	zlog.Infow("connecting to global DB")
	globalDB, err := database.Open(ctx, dsn)
	if err != nil {
		zlog.Fatalw("connect global DB", "err", err)
	}
	defer globalDB.Close()

	// Log active-site count as an early sanity check.
	var active int
	_ = globalDB.Get(&active, `
	    SELECT COUNT(*) FROM site
	    WHERE suspended_at IS NULL AND deleted_at IS NULL`)
	zlog.Infow("global DB online", "active_sites", active)

	//
	// ── 3.  Tenant cache (lazy site loader) ─────────────────────────────
	//
	cache := tenant.New(globalDB, tenant.IdleTTL, tenant.MaxEntries, zlog)
	defer cache.Close()

	//
	// ── 4.  GeoIP resolver (optional) ───────────────────────────────────
	//
	geoRes, err := geo.Open(cfg.Geo.MMDBPath)
	if err != nil {
		zlog.Fatalw("open mmdb", "path", cfg.Geo.MMDBPath, "err", err)
	}
	defer geoRes.Close()

	//
	// ── 5.  Handlers + metrics + HTTPS enforcement ─────────────────────
	//
	store := content.NewStore(globalDB)
	handlers := &web.Handlers{
		Content: store,
		Ledger:  order.NewLedger(store),
		Geo:     geoRes,
		Log:     zlog,
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", handlers.Router(cache))

	var root http.Handler = mux
	if cfg.HTTP.ForceHTTPS {
		root = middleware.ForceHTTPS(cache, mux)
	}

	srv := server.New(cfg.HTTP.ListenAddr, root)
	zlog.Infow("listening", "addr", cfg.HTTP.ListenAddr)
	if err := server.Run(srv); err != nil {
		zlog.Fatalw("http server", "err", err)
	}
	zlog.Infow("shutdown complete")
}
