// internal/web/handlers_test.go
//
// Handler-level tests using httptest + sqlmock.  The tenant resolver is
// bypassed: a stub middleware injects a fixed tenant so the handlers can
// be exercised without a live cache.
//
// Run: go test ./internal/web -v

package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/vitrineweb/vitrine/internal/content"
	"github.com/vitrineweb/vitrine/internal/order"
	"github.com/vitrineweb/vitrine/internal/tenant"
	"github.com/vitrineweb/vitrine/internal/tenant/meta"
)

const testSiteID = uint64(7)

func newTestHandlers(t *testing.T) (*Handlers, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	store := content.NewStore(sqlx.NewDb(db, "mysql"))
	return &Handlers{
		Content: store,
		Ledger:  order.NewLedger(store),
		Log:     zap.NewNop().Sugar(),
	}, mock
}

// injectTenant wraps next with a fixed tenant, standing in for the
// resolver middleware.
func injectTenant(next http.Handler) http.Handler {
	ten := &tenant.Tenant{Meta: meta.Record{ID: testSiteID, Host: "acme.test"}}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(tenant.WithTenant(r.Context(), ten)))
	})
}

func TestGetSectionsAppliesSavedOrder(t *testing.T) {
	h, mock := newTestHandlers(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT `key`, value, updated_at FROM content_record WHERE site_id = ?",
	)).
		WithArgs(testSiteID).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value", "updated_at"}).
			AddRow("section_hero_content", []byte(`{"title":"Big"}`), nil).
			AddRow("section_faq_content", []byte(`{}`), nil).
			AddRow("site_settings", []byte(`{"site_title":"Acme"}`), nil))

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT value, updated_at FROM content_record WHERE site_id = ? AND `key` = ?",
	)).
		WithArgs(testSiteID, content.OrderKey).
		WillReturnRows(sqlmock.NewRows([]string{"value", "updated_at"}).
			AddRow([]byte(`{"order":["faq","hero"]}`), nil))

	router := chi.NewRouter()
	router.With(injectTenant).Get("/api/sections", h.getSections)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/sections", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var body struct {
		Sections []struct {
			ID      string         `json:"id"`
			Content map[string]any `json:"content"`
		} `json:"sections"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Sections) != 2 {
		t.Fatalf("got %d sections, want 2 (settings must be skipped)", len(body.Sections))
	}
	if body.Sections[0].ID != "faq" || body.Sections[1].ID != "hero" {
		t.Fatalf("order = [%s %s], want [faq hero]",
			body.Sections[0].ID, body.Sections[1].ID)
	}
	if body.Sections[1].Content["title"] != "Big" {
		t.Fatalf("hero title = %v, want stored override", body.Sections[1].Content["title"])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestPatchSectionFieldOnFreshSection(t *testing.T) {
	h, mock := newTestHandlers(t)

	// "banner" has no registered template and no stored row, so the edit
	// starts from an empty document.
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT value, updated_at FROM content_record WHERE site_id = ? AND `key` = ?",
	)).
		WithArgs(testSiteID, "section_banner_content").
		WillReturnRows(sqlmock.NewRows([]string{"value", "updated_at"}))

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO content_record")).
		WithArgs(testSiteID, "section_banner_content", []byte(`{"title":"Hi"}`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	router := chi.NewRouter()
	router.With(injectTenant).Patch("/api/sections/{id}/field", h.patchSectionField)

	req := httptest.NewRequest(http.MethodPatch, "/api/sections/banner/field",
		strings.NewReader(`{"path":"title","value":"Hi"}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rr.Code, rr.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestPatchSectionFieldRejectsDeepPath(t *testing.T) {
	h, mock := newTestHandlers(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT value, updated_at FROM content_record WHERE site_id = ? AND `key` = ?",
	)).
		WithArgs(testSiteID, "section_banner_content").
		WillReturnRows(sqlmock.NewRows([]string{"value", "updated_at"}))

	router := chi.NewRouter()
	router.With(injectTenant).Patch("/api/sections/{id}/field", h.patchSectionField)

	req := httptest.NewRequest(http.MethodPatch, "/api/sections/banner/field",
		strings.NewReader(`{"path":"a.b","value":1}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for a two-segment path", rr.Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestPutOrderPersistsLedger(t *testing.T) {
	h, mock := newTestHandlers(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO content_record")).
		WithArgs(testSiteID, content.OrderKey, []byte(`{"order":["faq","hero"]}`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	router := chi.NewRouter()
	router.With(injectTenant).Put("/api/sections/order", h.putOrder)

	req := httptest.NewRequest(http.MethodPut, "/api/sections/order",
		strings.NewReader(`{"order":["faq","hero"]}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rr.Code, rr.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestWriteErrorMapping(t *testing.T) {
	h, _ := newTestHandlers(t)

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", content.ErrNotFound, http.StatusNotFound},
		{"backend failure", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			h.writeError(rr, httptest.NewRequest(http.MethodGet, "/x", nil), tc.err)
			if rr.Code != tc.want {
				t.Fatalf("status = %d, want %d", rr.Code, tc.want)
			}
			if tc.want == http.StatusInternalServerError &&
				strings.Contains(rr.Body.String(), "boom") {
				t.Fatalf("internal error detail leaked to client: %s", rr.Body.String())
			}
		})
	}
}

func TestClientIPPrefersForwardedFor(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/leads", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	if got := clientIP(req); got != "203.0.113.9" {
		t.Fatalf("clientIP = %q, want first forwarded hop", got)
	}

	req.Header.Del("X-Forwarded-For")
	if got := clientIP(req); got != "10.0.0.1" {
		t.Fatalf("clientIP = %q, want remote host without port", got)
	}
}
