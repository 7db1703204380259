// internal/content/settings.go
//
// Typed accessor for the per-site settings document.
//
// Context
// -------
// Site-wide knobs (title, contact e-mail, social links, analytics id) are
// stored as one content record under the reserved `site_settings` key.
// This accessor folds that document into a typed struct keyed by
// well-known constants, so callers never scan a settings array or poke
// at raw maps.  Fields missing from the stored document keep their zero
// value; unknown stored keys survive round-trips untouched because Save
// writes over the decoded document, not a fresh one.
//
// Notes
// -----
// • Oxford commas, two spaces after periods.
package content

import (
	"context"
	"errors"
)

// Well-known settings field names inside the `site_settings` document.
const (
	settingSiteTitle    = "site_title"
	settingTagline      = "tagline"
	settingContactEmail = "contact_email"
	settingWhatsApp     = "whatsapp"
	settingInstagram    = "instagram"
	settingAnalyticsID  = "analytics_id"
)

// Settings is the typed view over the `site_settings` record.
type Settings struct {
	SiteTitle    string
	Tagline      string
	ContactEmail string
	WhatsApp     string
	Instagram    string
	AnalyticsID  string
}

// LoadSettings reads and types the settings record.  A site that never
// saved settings gets the zero Settings, not an error.
func (s *Store) LoadSettings(ctx context.Context, siteID uint64) (Settings, error) {
	rec, err := s.Get(ctx, siteID, SettingsKey)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Settings{}, nil
		}
		return Settings{}, err
	}
	return settingsFromValue(rec.Value), nil
}

// SaveSettings writes the typed struct back over the stored document,
// preserving any keys this accessor does not model.
func (s *Store) SaveSettings(ctx context.Context, siteID uint64, set Settings) error {
	base := Value{}
	if rec, err := s.Get(ctx, siteID, SettingsKey); err == nil {
		base = rec.Value
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}

	base[settingSiteTitle] = set.SiteTitle
	base[settingTagline] = set.Tagline
	base[settingContactEmail] = set.ContactEmail
	base[settingWhatsApp] = set.WhatsApp
	base[settingInstagram] = set.Instagram
	base[settingAnalyticsID] = set.AnalyticsID

	return s.Put(ctx, siteID, SettingsKey, base)
}

func settingsFromValue(v Value) Settings {
	str := func(key string) string {
		s, _ := v[key].(string)
		return s
	}
	return Settings{
		SiteTitle:    str(settingSiteTitle),
		Tagline:      str(settingTagline),
		ContactEmail: str(settingContactEmail),
		WhatsApp:     str(settingWhatsApp),
		Instagram:    str(settingInstagram),
		AnalyticsID:  str(settingAnalyticsID),
	}
}
