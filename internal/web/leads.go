// internal/web/leads.go
//
// Lead capture (public) and lead listing (admin).  Captures are enriched
// with the UA fingerprint and a best-effort GeoIP country before hitting
// the tenant database.
package web

import (
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/vitrineweb/vitrine/internal/lead"
	"github.com/vitrineweb/vitrine/internal/tenant"
	"github.com/vitrineweb/vitrine/internal/ua"
)

func (h *Handlers) captureLead(w http.ResponseWriter, r *http.Request) {
	ten := tenant.FromContext(r.Context())

	var in lead.Input
	if err := decodeBody(r, &in); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid body"})
		return
	}

	fp := ua.Parse(r.UserAgent())
	country := h.Geo.Country(clientIP(r))

	rec, err := lead.NewStore(ten.DB).Capture(r.Context(), in, fp, country)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]string{"id": rec.ID})
}

func (h *Handlers) listLeads(w http.ResponseWriter, r *http.Request) {
	ten := tenant.FromContext(r.Context())

	includeBots := r.URL.Query().Get("bots") == "true"
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	rows, err := lead.NewStore(ten.DB).List(r.Context(), includeBots, limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"leads": rows})
}

// clientIP prefers the first X-Forwarded-For hop, falling back to the
// socket address.  Geo tagging is best-effort, so a spoofed header costs
// nothing worse than a wrong country code.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if first, _, ok := strings.Cut(xff, ","); ok {
			return strings.TrimSpace(first)
		}
		return strings.TrimSpace(xff)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
