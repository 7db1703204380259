// context.go stores the resolved *Tenant inside the request context so
// handlers deep in the chi tree can fetch it without re-deriving the host.
package tenant

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey struct{}

// WithTenant returns a child context carrying the tenant.
func WithTenant(ctx context.Context, t *Tenant) context.Context {
	return context.WithValue(ctx, ctxKey{}, t)
}

// FromContext returns the tenant stored by the Resolver middleware, or
// nil when the middleware has not run.
func FromContext(ctx context.Context) *Tenant {
	t, _ := ctx.Value(ctxKey{}).(*Tenant)
	return t
}

// Resolver is the host → tenant middleware.  Unknown hosts get a plain
// 404; everything else continues with the tenant in the request context.
func Resolver(cache *Cache) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ten, err := cache.Get(stripPort(r.Host))
			if err != nil {
				http.NotFound(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithTenant(r.Context(), ten)))
		})
	}
}

// stripPort removes the :port suffix from Host when present.
func stripPort(h string) string {
	if i := strings.IndexByte(h, ':'); i != -1 {
		return h[:i]
	}
	return h
}
