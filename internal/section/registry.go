// internal/section/registry.go
//
// Default-template registry for section types.
//
// Context
// -------
// A **section type** ("hero", "faq", ...) defines the starting shape of
// one landing-page block: its default copy, its repeating items, and its
// style knobs.  Templates register here once at startup — the built-ins
// in defaults.go do it from init() — and are treated as immutable from
// then on: Lookup hands out deep clones so no caller can corrupt the
// template a later merge depends on.
//
// Adding a section type is registry-only; the store, the resolver, and
// the order ledger never change.
//
// Notes
// -----
// • Duplicate registration overwrites, mirroring how rarely it should
//   happen outside tests.
// • Oxford commas, two spaces after periods.
package section

import (
	"sync"

	"github.com/vitrineweb/vitrine/internal/content"
)

var (
	mu       sync.RWMutex
	registry = map[string]content.Value{}
)

// Register installs the default template for a section type.  The
// template is cloned on the way in, so the caller's map stays theirs.
func Register(sectionType string, template content.Value) {
	mu.Lock()
	registry[sectionType] = cloneValue(template)
	mu.Unlock()
}

// Lookup returns a clone of the default template, or nil and false for
// an unregistered type.
func Lookup(sectionType string) (content.Value, bool) {
	mu.RLock()
	defer mu.RUnlock()
	tpl, ok := registry[sectionType]
	if !ok {
		return nil, false
	}
	return cloneValue(tpl), true
}

// Types returns the registered type ids, unordered.  Useful for admin
// listings and tests.
func Types() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(registry))
	for id := range registry {
		out = append(out, id)
	}
	return out
}

// cloneValue deep-copies the map/list/scalar tree of a template.
func cloneValue(v content.Value) content.Value {
	out := make(content.Value, len(v))
	for k, val := range v {
		out[k] = cloneAny(val)
	}
	return out
}

func cloneAny(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneValue(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneAny(e)
		}
		return out
	default:
		return t
	}
}
