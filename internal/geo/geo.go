// internal/geo/geo.go
//
// IP geolocation helpers.
//
// Context
// -------
// Lead capture tags each submission with a best-effort country code so
// the dashboard can segment inquiries by market.  This wrapper isolates
// the MaxMind reader; when no database is configured every lookup simply
// returns empty strings, which callers store as-is.
//
// Notes
// -----
// • The geoip2.Reader is safe for concurrent reads, which is all we do.
// • Lookups are memoised in a small LRU; repeat submissions from the
//   same IP skip the mmdb entirely.
package geo

import (
	"net"

	"github.com/oschwald/geoip2-golang"

	"github.com/vitrineweb/vitrine/internal/cache"
)

const lookupCacheSize = 4096

// Resolver answers country/city questions about client IPs.  The zero
// value (no database) is valid and returns empty results.
type Resolver struct {
	reader *geoip2.Reader
	seen   *cache.LRU
}

// Open loads the GeoLite2 database at path.  An empty path yields a
// disabled resolver and no error.
func Open(path string) (*Resolver, error) {
	if path == "" {
		return &Resolver{}, nil
	}
	r, err := geoip2.Open(path)
	if err != nil {
		return nil, err
	}
	return &Resolver{reader: r, seen: cache.New(lookupCacheSize)}, nil
}

// Close releases the underlying reader.  Safe on a disabled resolver.
func (r *Resolver) Close() error {
	if r.reader == nil {
		return nil
	}
	return r.reader.Close()
}

// Country returns the ISO country code for ip, or "" when disabled, the
// ip is unparsable, or the database has no match.
func (r *Resolver) Country(ip string) string {
	if r.reader == nil {
		return ""
	}
	if v, ok := r.seen.Get(ip); ok {
		return v.(string)
	}
	code := ""
	if parsed := net.ParseIP(ip); parsed != nil {
		if rec, err := r.reader.Country(parsed); err == nil {
			code = rec.Country.IsoCode
		}
	}
	r.seen.Add(ip, code)
	return code
}
