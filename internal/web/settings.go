// internal/web/settings.go
//
// Typed site-settings endpoints over the content store's well-known key.
package web

import (
	"net/http"

	"github.com/vitrineweb/vitrine/internal/content"
	"github.com/vitrineweb/vitrine/internal/tenant"
)

type settingsPayload struct {
	SiteTitle    string `json:"siteTitle"`
	Tagline      string `json:"tagline"`
	ContactEmail string `json:"contactEmail"`
	WhatsApp     string `json:"whatsapp"`
	Instagram    string `json:"instagram"`
	AnalyticsID  string `json:"analyticsId"`
}

func (h *Handlers) getSettings(w http.ResponseWriter, r *http.Request) {
	ten := tenant.FromContext(r.Context())

	set, err := h.Content.LoadSettings(r.Context(), ten.ID())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, settingsPayload{
		SiteTitle:    set.SiteTitle,
		Tagline:      set.Tagline,
		ContactEmail: set.ContactEmail,
		WhatsApp:     set.WhatsApp,
		Instagram:    set.Instagram,
		AnalyticsID:  set.AnalyticsID,
	})
}

func (h *Handlers) putSettings(w http.ResponseWriter, r *http.Request) {
	ten := tenant.FromContext(r.Context())

	var body settingsPayload
	if err := decodeBody(r, &body); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid body"})
		return
	}
	set := content.Settings{
		SiteTitle:    body.SiteTitle,
		Tagline:      body.Tagline,
		ContactEmail: body.ContactEmail,
		WhatsApp:     body.WhatsApp,
		Instagram:    body.Instagram,
		AnalyticsID:  body.AnalyticsID,
	}
	if err := h.Content.SaveSettings(r.Context(), ten.ID(), set); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, body)
}
