// internal/web/posts.go
//
// Blog post endpoints: public listing/rendering plus the admin CRUD and
// publish lifecycle.  All rows live in the tenant database.
package web

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vitrineweb/vitrine/internal/post"
	"github.com/vitrineweb/vitrine/internal/tenant"
)

type postInput struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Body    string `json:"body"`
}

func (h *Handlers) listPublishedPosts(w http.ResponseWriter, r *http.Request) {
	h.listPosts(w, r, true)
}

func (h *Handlers) listAllPosts(w http.ResponseWriter, r *http.Request) {
	h.listPosts(w, r, false)
}

func (h *Handlers) listPosts(w http.ResponseWriter, r *http.Request, publishedOnly bool) {
	ten := tenant.FromContext(r.Context())

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	rows, err := post.NewStore(ten.DB).List(r.Context(), publishedOnly, limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"posts": rows})
}

func (h *Handlers) getPublishedPost(w http.ResponseWriter, r *http.Request) {
	ten := tenant.FromContext(r.Context())

	rec, err := post.NewStore(ten.DB).BySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, rec)
}

func (h *Handlers) createPost(w http.ResponseWriter, r *http.Request) {
	ten := tenant.FromContext(r.Context())

	var in postInput
	if err := decodeBody(r, &in); err != nil || in.Title == "" {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "title is required"})
		return
	}
	rec, err := post.NewStore(ten.DB).Create(r.Context(), in.Title, in.Summary, in.Body)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, rec)
}

func (h *Handlers) updatePost(w http.ResponseWriter, r *http.Request) {
	ten := tenant.FromContext(r.Context())

	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	var in postInput
	if err := decodeBody(r, &in); err != nil || in.Title == "" {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "title is required"})
		return
	}
	if err := post.NewStore(ten.DB).Update(r.Context(), id, in.Title, in.Summary, in.Body); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) publishPost(w http.ResponseWriter, r *http.Request) {
	h.postLifecycle(w, r, (*post.Store).Publish)
}

func (h *Handlers) unpublishPost(w http.ResponseWriter, r *http.Request) {
	h.postLifecycle(w, r, (*post.Store).Unpublish)
}

func (h *Handlers) deletePost(w http.ResponseWriter, r *http.Request) {
	h.postLifecycle(w, r, (*post.Store).Delete)
}

func (h *Handlers) postLifecycle(w http.ResponseWriter, r *http.Request,
	op func(*post.Store, context.Context, uint64) error) {

	ten := tenant.FromContext(r.Context())

	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	if err := op(post.NewStore(ten.DB), r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
