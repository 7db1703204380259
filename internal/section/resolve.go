// internal/section/resolve.go
//
// Default-merge resolver and effective-section assembly.
//
// Context
// -------
// A stored section record holds only what the editor touched.  The
// effective content a page renders is the type's default template with
// the stored keys layered on top.  The merge is **shallow** and total:
//
//   - every key in the default template appears in the result,
//   - any key also present in the stored value is overridden wholesale,
//     including nested maps — there is no recursive field merge,
//   - stored-only keys (user-added items, legacy fields) pass through.
//
// A stored nested map is treated as the editor's complete answer for
// that key; new default sub-fields do not appear under it.  Callers that
// want deep defaults merge explicitly.
//
// Effective sections are recomputed on every read and never cached
// server-side; the stored record plus the registry is the whole truth.
package section

import (
	"github.com/vitrineweb/vitrine/internal/content"
	"github.com/vitrineweb/vitrine/internal/metrics"
	"github.com/vitrineweb/vitrine/internal/order"
)

// Effective is one render-ready section: id, merged content, and its
// position in the display order.  Derived, never persisted.
type Effective struct {
	ID         string        `json:"id"`
	Content    content.Value `json:"content"`
	OrderIndex int           `json:"orderIndex"`
}

// Resolve merges a stored value over the type's default template.  It is
// total: an unregistered type yields the stored value unchanged, and a
// nil stored value yields the defaults (or an empty map when neither
// side has anything to say).
func Resolve(sectionType string, stored content.Value) content.Value {
	metrics.SectionResolveTotal.Inc()

	tpl, ok := Lookup(sectionType)
	if !ok {
		if stored == nil {
			return content.Value{}
		}
		return cloneValue(stored)
	}

	out := tpl // Lookup already cloned.
	for k, v := range stored {
		out[k] = cloneAny(v)
	}
	return out
}

// ResolveAll turns a site's section records plus its saved order into
// the ordered slice of effective sections.  Record keys that are not
// section keys (settings, the order ledger itself) are skipped.  The
// section id doubles as the section type for template lookup.
func ResolveAll(records []content.Record, savedOrder []string) []Effective {
	stored := make(map[string]content.Value, len(records))
	ids := make([]string, 0, len(records))
	for _, rec := range records {
		id, ok := content.SectionID(rec.Key)
		if !ok {
			continue
		}
		stored[id] = rec.Value
		ids = append(ids, id)
	}

	ordered := order.Apply(ids, savedOrder)

	out := make([]Effective, len(ordered))
	for i, id := range ordered {
		out[i] = Effective{
			ID:         id,
			Content:    Resolve(id, stored[id]),
			OrderIndex: i,
		}
	}
	return out
}
