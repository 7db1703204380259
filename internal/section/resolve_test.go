// internal/section/resolve_test.go
//
// Unit-tests for the default-merge resolver and effective-section
// assembly.  Merge properties are checked against throwaway types
// registered per test, not the built-ins, so the suite stays stable when
// default copy changes.
//
// Run: go test ./internal/section -v

package section

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vitrineweb/vitrine/internal/content"
)

func TestResolveBackfillsDefaults(t *testing.T) {
	Register("t-backfill", content.Value{"title": "A", "items": []any{}})

	got := Resolve("t-backfill", content.Value{"items": []any{map[string]any{"t": "X"}}})
	want := content.Value{"title": "A", "items": []any{map[string]any{"t": "X"}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Resolve mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveOverrideProperty(t *testing.T) {
	def := content.Value{"a": "d1", "b": "d2", "c": "d3"}
	Register("t-override", def)

	stored := content.Value{"b": "s2", "extra": float64(7)}
	got := Resolve("t-override", stored)

	// Every stored key wins; every default-only key survives.
	for k, v := range stored {
		if diff := cmp.Diff(v, got[k]); diff != "" {
			t.Errorf("stored key %q overridden (-want +got):\n%s", k, diff)
		}
	}
	for _, k := range []string{"a", "c"} {
		if got[k] != def[k] {
			t.Errorf("default key %q = %v, want %v", k, got[k], def[k])
		}
	}
}

func TestResolveIsShallow(t *testing.T) {
	Register("t-shallow", content.Value{
		"style": map[string]any{"bg": "#fff", "align": "center"},
	})

	got := Resolve("t-shallow", content.Value{"style": map[string]any{"bg": "#000"}})

	// The stored nested map replaces the default wholesale; "align" from
	// the default must not leak in.
	want := content.Value{"style": map[string]any{"bg": "#000"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("shallow merge violated (-want +got):\n%s", diff)
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	Register("t-idem", content.Value{"title": "A", "n": float64(1)})

	once := Resolve("t-idem", content.Value{"title": "B"})
	twice := Resolve("t-idem", once)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("second resolve changed the value (-want +got):\n%s", diff)
	}
}

func TestResolveUnknownTypePassesStoredThrough(t *testing.T) {
	stored := content.Value{"anything": "goes"}
	if diff := cmp.Diff(stored, Resolve("t-unregistered", stored)); diff != "" {
		t.Fatalf("unknown type altered stored value:\n%s", diff)
	}
	if diff := cmp.Diff(content.Value{}, Resolve("t-unregistered", nil)); diff != "" {
		t.Fatalf("unknown type with nil stored should be empty map:\n%s", diff)
	}
}

func TestResolveDoesNotMutateInputs(t *testing.T) {
	Register("t-pure", content.Value{"items": []any{map[string]any{"t": "d"}}})

	stored := content.Value{"items": []any{map[string]any{"t": "s"}}}
	got := Resolve("t-pure", stored)

	got["items"].([]any)[0].(map[string]any)["t"] = "mutated"
	if stored["items"].([]any)[0].(map[string]any)["t"] != "s" {
		t.Fatal("mutating the result leaked into the stored value")
	}

	tpl, _ := Lookup("t-pure")
	if tpl["items"].([]any)[0].(map[string]any)["t"] != "d" {
		t.Fatal("mutating the result leaked into the registered template")
	}
}

func TestResolveAllOrdersAndMerges(t *testing.T) {
	Register("t-ra-hero", content.Value{"title": "Hero"})
	Register("t-ra-faq", content.Value{"title": "FAQ"})

	records := []content.Record{
		{Key: content.SectionKey("t-ra-hero"), Value: content.Value{}},
		{Key: content.SectionKey("t-ra-faq"), Value: content.Value{"title": "Perguntas"}},
		{Key: content.OrderKey, Value: content.Value{"order": []any{}}},
		{Key: content.SettingsKey, Value: content.Value{}},
	}

	got := ResolveAll(records, []string{"t-ra-faq", "ghost", "t-ra-hero"})

	if len(got) != 2 {
		t.Fatalf("expected 2 sections, got %d: %#v", len(got), got)
	}
	if got[0].ID != "t-ra-faq" || got[1].ID != "t-ra-hero" {
		t.Fatalf("unexpected order: %q, %q", got[0].ID, got[1].ID)
	}
	if got[0].OrderIndex != 0 || got[1].OrderIndex != 1 {
		t.Fatalf("bad order indices: %d, %d", got[0].OrderIndex, got[1].OrderIndex)
	}
	if got[0].Content["title"] != "Perguntas" {
		t.Fatalf("stored override lost: %v", got[0].Content["title"])
	}
	if got[1].Content["title"] != "Hero" {
		t.Fatalf("default not applied: %v", got[1].Content["title"])
	}
}

func TestBuiltinTypesRegistered(t *testing.T) {
	for _, id := range []string{"hero", "features", "steps", "faq", "testimonials", "contact"} {
		if _, ok := Lookup(id); !ok {
			t.Errorf("built-in section type %q not registered", id)
		}
	}
}
