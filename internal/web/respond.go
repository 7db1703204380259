// internal/web/respond.go
//
// JSON response and error-mapping helpers shared by all handlers.
//
// Error policy
// ------------
//	content.ErrNotFound / post.ErrNotFound → 404
//	fieldpath.ErrInvalidPath               → 400 (caller bug, say so)
//	validator.ValidationErrors             → 422
//	anything else                          → 500, logged, body kept vague
package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/vitrineweb/vitrine/internal/content"
	"github.com/vitrineweb/vitrine/internal/fieldpath"
	"github.com/vitrineweb/vitrine/internal/post"
)

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Log.Errorw("response encode failed", "err", err)
	}
}

func (h *Handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, content.ErrNotFound), errors.Is(err, post.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, fieldpath.ErrInvalidPath):
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case isValidationError(err):
		h.writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	default:
		h.Log.Errorw("request failed",
			"method", r.Method, "path", r.URL.Path, "err", err)
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func isValidationError(err error) bool {
	var ve validator.ValidationErrors
	return errors.As(err, &ve)
}

// decodeBody strictly decodes a JSON request body into dst.
func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
