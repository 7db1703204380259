// internal/web/public.go
//
// Public landing endpoint: the site frontend fetches one document with
// the typed settings and the ordered, default-merged sections, computed
// fresh on every request.
package web

import (
	"net/http"

	"github.com/vitrineweb/vitrine/internal/tenant"
)

func (h *Handlers) getLanding(w http.ResponseWriter, r *http.Request) {
	ten := tenant.FromContext(r.Context())

	set, err := h.Content.LoadSettings(r.Context(), ten.ID())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	secs, err := h.effectiveSections(r, ten)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	title := set.SiteTitle
	if title == "" {
		title = ten.Meta.Title
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"site": map[string]any{
			"title":   title,
			"tagline": set.Tagline,
			"locale":  ten.Meta.Locale,
		},
		"sections": secs,
	})
}
