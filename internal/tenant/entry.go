// internal/tenant/entry.go
//
// Tenant cache entry and aggregate.
//
// Context
// -------
// A live Tenant aggregates everything request handlers need to serve a
// single site: its `site` row, per-site DB pool (leads and posts live
// there), and the in-memory `site_config` map.  The cache stores a
// pointer to Tenant inside `entry`, along with a `lastSeen` UnixNano
// timestamp used by the evictor for idle and LRU eviction.
//
// Notes
// -----
//   - `Close` is invoked only by the cache evictor; handlers must treat
//     Tenant as immutable after initial load.
package tenant

import (
	"github.com/jmoiron/sqlx"

	"github.com/vitrineweb/vitrine/internal/tenant/meta"
)

//
// Cache entry
//

type entry struct {
	tenant   *Tenant
	lastSeen int64 // UnixNano
}

//
// Tenant aggregate
//

// Tenant groups all per-site runtime assets needed by request handlers.
type Tenant struct {
	Meta   meta.Record       // Row from `site`
	Config map[string]string // Key-value pairs from `site_config`
	DB     *sqlx.DB          // Per-site connection pool
}

// ID returns the site primary key, which doubles as the content-store
// tenant id.
func (t *Tenant) ID() uint64 { return t.Meta.ID }

// Close is called by the cache evictor on idle or LRU eviction.
func (t *Tenant) Close() error { return t.DB.Close() }
