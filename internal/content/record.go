// internal/content/record.go
//
// `content_record` table row model.
//
// Context
// -------
// Every editable blob on a tenant's site — section content, the landing
// section order, the typed site settings — lives as one row in the
// control-plane **content_record** table, keyed by `(site_id, key)`.  The
// value column is an opaque JSON document; its shape is defined by the
// section type's default template, never by the store.
//
// Schema reference (2025-08-14)
//
//	CREATE TABLE content_record (
//	    site_id     INT UNSIGNED  NOT NULL,
//	    `key`       VARCHAR(128)  NOT NULL,
//	    value       MEDIUMTEXT    NOT NULL,
//	    updated_at  TIMESTAMP     NOT NULL DEFAULT CURRENT_TIMESTAMP
//	                              ON UPDATE CURRENT_TIMESTAMP,
//	    PRIMARY KEY (site_id, `key`)
//	);
//
// Notes
// -----
// • `Record` carries the *decoded* value; raw JSON never leaves this package.
// • Rows are never deleted implicitly — only Delete removes one.
// • Oxford commas, two spaces after periods.
package content

import "time"

// Value is one decoded content document: string keys over heterogeneous
// JSON values (strings, numbers, booleans, nested maps, []any of maps).
type Value = map[string]any

// Record mirrors one row in the `content_record` table, value decoded.
type Record struct {
	SiteID    uint64
	Key       string
	Value     Value
	UpdatedAt time.Time
}

// Reserved keys used by callers of the store.  Section content rows use
// SectionKey(id); the remaining constants each name a single row per site.
const (
	// OrderKey holds the landing-page section order (JSON array of ids).
	OrderKey = "landing_section_order"

	// SettingsKey holds the typed site settings document.
	SettingsKey = "site_settings"
)

// SectionKey returns the record key for one landing-page section.
func SectionKey(sectionID string) string {
	return "section_" + sectionID + "_content"
}

// SectionID extracts the section id from a record key produced by
// SectionKey.  The second return is false for any other key shape.
func SectionID(key string) (string, bool) {
	const prefix, suffix = "section_", "_content"
	if len(key) <= len(prefix)+len(suffix) {
		return "", false
	}
	if key[:len(prefix)] != prefix || key[len(key)-len(suffix):] != suffix {
		return "", false
	}
	return key[len(prefix) : len(key)-len(suffix)], true
}
