// internal/lead/lead.go
//
// Lead capture: model, validation, and persistence.
//
// Context
// -------
// The public contact section posts here.  Each submission is validated,
// stamped with a UUID, enriched with a UA fingerprint and a best-effort
// country code, and written to the tenant database's `lead` table.  The
// dashboard lists newest first.
//
// Schema reference (2025-08-14, tenant database)
//
//	CREATE TABLE lead (
//	    id          CHAR(36)     PRIMARY KEY,
//	    name        VARCHAR(256) NOT NULL,
//	    email       VARCHAR(256) NOT NULL,
//	    phone       VARCHAR(64)  NOT NULL DEFAULT '',
//	    message     TEXT         NOT NULL,
//	    ua_browser  VARCHAR(64)  NOT NULL DEFAULT '',
//	    ua_os       VARCHAR(64)  NOT NULL DEFAULT '',
//	    ua_device   VARCHAR(16)  NOT NULL DEFAULT '',
//	    is_bot      TINYINT(1)   NOT NULL DEFAULT 0,
//	    country     VARCHAR(2)   NOT NULL DEFAULT '',
//	    created_at  TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP
//	);
//
// Notes
// -----
// • Bot submissions are stored, flagged, and filtered in the dashboard
//   query rather than dropped — ops asked to keep them for tuning.
package lead

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/vitrineweb/vitrine/internal/metrics"
	"github.com/vitrineweb/vitrine/internal/ua"
)

//
// Model
//

// Record mirrors one row in the tenant `lead` table.
type Record struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Phone     string    `db:"phone"`
	Message   string    `db:"message"`
	UABrowser string    `db:"ua_browser"`
	UAOS      string    `db:"ua_os"`
	UADevice  string    `db:"ua_device"`
	IsBot     bool      `db:"is_bot"`
	Country   string    `db:"country"`
	CreatedAt time.Time `db:"created_at"`
}

// Input is what the public form submits.  Validated before capture.
type Input struct {
	Name    string `json:"name" validate:"required,max=256"`
	Email   string `json:"email" validate:"required,email,max=256"`
	Phone   string `json:"phone" validate:"max=64"`
	Message string `json:"message" validate:"required,max=10000"`
}

var v = validator.New()

// Validate returns the first validation error for the submitted input.
func (in Input) Validate() error { return v.Struct(in) }

//
// Store
//

// Store persists leads into one tenant's database.
type Store struct {
	db *sqlx.DB
}

// NewStore wraps a tenant-scoped pool.
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Capture validates the input, enriches it with the UA fingerprint and
// country, and inserts the row.  The stored record is returned so the
// handler can echo its id.
func (s *Store) Capture(ctx context.Context, in Input, fp ua.Info, country string) (*Record, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	rec := &Record{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Message:   in.Message,
		UABrowser: fp.Browser,
		UAOS:      fp.OS,
		UADevice:  fp.Device,
		IsBot:     fp.IsBot,
		Country:   country,
	}

	const q = `INSERT INTO lead
	        (id, name, email, phone, message, ua_browser, ua_os, ua_device, is_bot, country)
	    VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, q,
		rec.ID, rec.Name, rec.Email, rec.Phone, rec.Message,
		rec.UABrowser, rec.UAOS, rec.UADevice, rec.IsBot, rec.Country)
	if err != nil {
		return nil, err
	}

	metrics.LeadCaptureTotal.Inc()
	return rec, nil
}

// List returns leads newest first.  Bot rows are excluded unless
// includeBots is set.
func (s *Store) List(ctx context.Context, includeBots bool, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 100
	}

	q := `SELECT id, name, email, phone, message,
	             ua_browser, ua_os, ua_device, is_bot, country, created_at
	        FROM lead`
	if !includeBots {
		q += ` WHERE is_bot = FALSE`
	}
	q += ` ORDER BY created_at DESC LIMIT ?`

	var rows []Record
	if err := s.db.SelectContext(ctx, &rows, q, limit); err != nil {
		return nil, err
	}
	return rows, nil
}
