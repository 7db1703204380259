// internal/web/sections.go
//
// Page-builder endpoints: effective sections, content saves, scoped field
// edits, list items, and ordering.
//
// Context
// -------
// Reads follow the one canonical flow: list all records, read the saved
// order, resolve defaults per section, respond.  Nothing here is cached;
// the store plus the registry is the whole truth.
//
// Scoped edits (PATCH field, item operations) resolve the section first
// and mutate the *effective* document, so a path may address a list that
// only the default template provides.  The merged result is saved back
// as the stored value — idempotent under re-resolution.
//
// Saves are full replaces with last-write-wins semantics.  Two editors on
// the same section clobber each other silently; that tradeoff is part of
// the storage contract, and these handlers do not add locking on top.
package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vitrineweb/vitrine/internal/content"
	"github.com/vitrineweb/vitrine/internal/fieldpath"
	"github.com/vitrineweb/vitrine/internal/order"
	"github.com/vitrineweb/vitrine/internal/section"
	"github.com/vitrineweb/vitrine/internal/tenant"
)

// effectiveSections runs the canonical read flow for one tenant.
func (h *Handlers) effectiveSections(r *http.Request, ten *tenant.Tenant) ([]section.Effective, error) {
	records, err := h.Content.ListBySite(r.Context(), ten.ID())
	if err != nil {
		return nil, err
	}
	saved, err := h.Ledger.Get(r.Context(), ten.ID())
	if err != nil {
		return nil, err
	}
	return section.ResolveAll(records, saved), nil
}

func (h *Handlers) getSections(w http.ResponseWriter, r *http.Request) {
	ten := tenant.FromContext(r.Context())
	secs, err := h.effectiveSections(r, ten)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"sections": secs})
}

func (h *Handlers) putSection(w http.ResponseWriter, r *http.Request) {
	ten := tenant.FromContext(r.Context())
	id := chi.URLParam(r, "id")

	var value content.Value
	if err := decodeBody(r, &value); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid body"})
		return
	}
	if err := h.Content.Put(r.Context(), ten.ID(), content.SectionKey(id), value); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, section.Effective{ID: id, Content: section.Resolve(id, value)})
}

func (h *Handlers) deleteSection(w http.ResponseWriter, r *http.Request) {
	ten := tenant.FromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.Content.Delete(r.Context(), ten.ID(), content.SectionKey(id)); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// editSection loads the effective document for one section, applies fn,
// and saves the result.  Absent records start from the default template.
func (h *Handlers) editSection(w http.ResponseWriter, r *http.Request,
	fn func(content.Value) (content.Value, error)) {

	ten := tenant.FromContext(r.Context())
	id := chi.URLParam(r, "id")

	var stored content.Value
	rec, err := h.Content.Get(r.Context(), ten.ID(), content.SectionKey(id))
	switch {
	case err == nil:
		stored = rec.Value
	case errors.Is(err, content.ErrNotFound):
		// no override yet; defaults alone
	default:
		h.writeError(w, r, err)
		return
	}

	updated, err := fn(section.Resolve(id, stored))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Content.Put(r.Context(), ten.ID(), content.SectionKey(id), updated); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, section.Effective{ID: id, Content: updated})
}

func (h *Handlers) patchSectionField(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Path  string `json:"path"`
		Value any    `json:"value"`
	}
	if err := decodeBody(r, &body); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid body"})
		return
	}
	h.editSection(w, r, func(v content.Value) (content.Value, error) {
		return fieldpath.Set(v, body.Path, body.Value)
	})
}

func (h *Handlers) appendSectionItem(w http.ResponseWriter, r *http.Request) {
	var body struct {
		List string         `json:"list"`
		Item map[string]any `json:"item"`
	}
	if err := decodeBody(r, &body); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid body"})
		return
	}
	if body.List == "" {
		body.List = "items"
	}
	h.editSection(w, r, func(v content.Value) (content.Value, error) {
		return fieldpath.AppendItem(v, body.List, body.Item)
	})
}

func (h *Handlers) removeSectionItem(w http.ResponseWriter, r *http.Request) {
	idx, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid index"})
		return
	}
	list := r.URL.Query().Get("list")
	if list == "" {
		list = "items"
	}
	h.editSection(w, r, func(v content.Value) (content.Value, error) {
		return fieldpath.RemoveItem(v, list, idx)
	})
}

func (h *Handlers) putOrder(w http.ResponseWriter, r *http.Request) {
	ten := tenant.FromContext(r.Context())

	var body struct {
		Order []string `json:"order"`
	}
	if err := decodeBody(r, &body); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid body"})
		return
	}
	if err := h.Ledger.Set(r.Context(), ten.ID(), body.Order); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"order": body.Order})
}

func (h *Handlers) moveSection(w http.ResponseWriter, r *http.Request) {
	ten := tenant.FromContext(r.Context())
	id := chi.URLParam(r, "id")

	var body struct {
		To int `json:"to"`
	}
	if err := decodeBody(r, &body); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid body"})
		return
	}

	// Move operates on the *current effective* sequence, so sections that
	// were never ordered still participate, then the full result is saved.
	secs, err := h.effectiveSections(r, ten)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	ids := make([]string, len(secs))
	for i, s := range secs {
		ids[i] = s.ID
	}

	next := order.Move(ids, id, body.To)
	if err := h.Ledger.Set(r.Context(), ten.ID(), next); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"order": next})
}
