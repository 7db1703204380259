// internal/order/ledger.go
//
// Persistence for the landing-section order.
//
// The saved order is one content record per site under the reserved
// `landing_section_order` key, value `{"order": ["hero", "faq", ...]}`.
// The array is wrapped in an object rather than stored bare so the record
// store keeps a single map-shaped value type for every key; only Get and
// Set know about the envelope.
// A site that never reordered has no record at all; Get maps that to an
// empty slice so callers fall back to natural order via Apply.
package order

import (
	"context"
	"errors"

	"github.com/vitrineweb/vitrine/internal/content"
)

// Ledger reads and writes the saved section order for one site.
type Ledger struct {
	store *content.Store
}

// NewLedger wraps the content store.
func NewLedger(store *content.Store) *Ledger {
	return &Ledger{store: store}
}

// Get returns the saved order, or an empty slice when never saved.
func (l *Ledger) Get(ctx context.Context, siteID uint64) ([]string, error) {
	rec, err := l.store.Get(ctx, siteID, content.OrderKey)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	raw, _ := rec.Value["order"].([]any)
	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		if id, ok := v.(string); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// Set replaces the saved order wholesale.
func (l *Ledger) Set(ctx context.Context, siteID uint64, ids []string) error {
	list := make([]any, len(ids))
	for i, id := range ids {
		list[i] = id
	}
	return l.store.Put(ctx, siteID, content.OrderKey, content.Value{"order": list})
}
