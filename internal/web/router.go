// internal/web/router.go
//
// HTTP surface: admin API plus the public landing/blog endpoints.
//
// Context
// -------
// One chi router serves every tenant; the tenant Resolver middleware maps
// Host → *tenant.Tenant before any handler runs, so handlers read their
// tenant from the request context and never touch the cache directly.
//
// Route map
// ---------
//	GET    /healthz                          liveness probe
//	GET    /landing                          ordered effective sections (public)
//	GET    /blog                             published posts (public)
//	GET    /blog/{slug}                      one published post (public)
//	POST   /leads                            lead capture (public)
//
//	GET    /api/sections                     ordered effective sections
//	PUT    /api/sections/{id}                replace section content
//	DELETE /api/sections/{id}                remove section record
//	PATCH  /api/sections/{id}/field          path-addressed field set
//	POST   /api/sections/{id}/items          append list item
//	DELETE /api/sections/{id}/items/{index}  remove list item
//	PUT    /api/sections/order               replace saved order
//	POST   /api/sections/{id}/move           move one section
//	GET    /api/settings                     typed site settings
//	PUT    /api/settings                     save site settings
//	GET    /api/leads                        captured leads, newest first
//	GET    /api/posts                        posts incl. drafts
//	POST   /api/posts                        create draft
//	PUT    /api/posts/{id}                   update title/summary/body
//	POST   /api/posts/{id}/publish           publish
//	POST   /api/posts/{id}/unpublish         back to draft
//	DELETE /api/posts/{id}                   delete
//
// Admin authentication is a deployment concern (reverse proxy or a future
// session layer); this router scopes everything to the resolved tenant
// and nothing more.
package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/vitrineweb/vitrine/internal/content"
	"github.com/vitrineweb/vitrine/internal/geo"
	"github.com/vitrineweb/vitrine/internal/middleware"
	"github.com/vitrineweb/vitrine/internal/order"
	"github.com/vitrineweb/vitrine/internal/tenant"
)

// Handlers bundles the shared collaborators every request needs.
type Handlers struct {
	Content *content.Store
	Ledger  *order.Ledger
	Geo     *geo.Resolver
	Log     *zap.SugaredLogger
}

// Router assembles the full HTTP handler for the given tenant cache.
func (h *Handlers) Router(cache *tenant.Cache) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Security)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(tenant.Resolver(cache))

		// Public surface.
		r.Get("/landing", h.getLanding)
		r.Get("/blog", h.listPublishedPosts)
		r.Get("/blog/{slug}", h.getPublishedPost)
		r.Post("/leads", h.captureLead)

		// Admin API.
		r.Route("/api", func(r chi.Router) {
			r.Get("/sections", h.getSections)
			r.Put("/sections/order", h.putOrder)
			r.Put("/sections/{id}", h.putSection)
			r.Delete("/sections/{id}", h.deleteSection)
			r.Patch("/sections/{id}/field", h.patchSectionField)
			r.Post("/sections/{id}/items", h.appendSectionItem)
			r.Delete("/sections/{id}/items/{index}", h.removeSectionItem)
			r.Post("/sections/{id}/move", h.moveSection)

			r.Get("/settings", h.getSettings)
			r.Put("/settings", h.putSettings)

			r.Get("/leads", h.listLeads)

			r.Get("/posts", h.listAllPosts)
			r.Post("/posts", h.createPost)
			r.Put("/posts/{id}", h.updatePost)
			r.Post("/posts/{id}/publish", h.publishPost)
			r.Post("/posts/{id}/unpublish", h.unpublishPost)
			r.Delete("/posts/{id}", h.deletePost)
		})
	})

	return r
}
