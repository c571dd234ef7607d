// internal/app/features/submit/handler.go

// Package submit implements the contact-form intake endpoint: parse
// and normalize the payload, append a row to the store, and send a
// notification email to the configured recipient.
package submit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/formhub/formhub/internal/app/system/mailer"
	"github.com/formhub/formhub/internal/app/system/timefmt"
	"github.com/formhub/formhub/internal/app/system/timeouts"
	"github.com/formhub/formhub/internal/domain/models"
	"go.uber.org/zap"
)

// RowStore appends one submission as an ordered row. Implemented by
// the Mongo-backed submissions store; tests substitute an in-memory
// fake.
type RowStore interface {
	AppendRow(ctx context.Context, columns []string) error
}

// MailSender delivers one notification email. Implemented by the SMTP
// mailer; tests substitute an in-memory fake.
type MailSender interface {
	Send(e mailer.Email) error
}

// Config holds the immutable notification settings loaded at startup.
type Config struct {
	NotifyTo      string // fixed recipient of every notification
	SubjectPrefix string // "from <first> <last>" is appended per submission
}

// Handler handles submission intake requests.
type Handler struct {
	Store RowStore
	Mail  MailSender
	Cfg   Config
	Log   *zap.Logger
}

// NewHandler constructs a submit Handler.
func NewHandler(store RowStore, sender MailSender, cfg Config, logger *zap.Logger) *Handler {
	return &Handler{
		Store: store,
		Mail:  sender,
		Cfg:   cfg,
		Log:   logger,
	}
}

// submissionRequest is the JSON body posted by the form client.
type submissionRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Comment   string `json:"comment"`
	Timestamp string `json:"timestamp"` // ISO-8601
}

// statusResponse is the JSON envelope for every answer. The transport
// status is always 200; failures are signaled in Status only, which is
// what existing form clients expect.
type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ServeStatus handles GET /.
//
// Always 200 and
//
//	{ "status":"ok", "message":"Contact form handler is active" }
func (h *Handler) ServeStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, statusResponse{
		Status:  "ok",
		Message: "Contact form handler is active",
	})
}

// ServeSubmit handles POST /.
//
// The pipeline is three sequential side effects: parse, persist,
// notify. A parse failure stops before any side effect. A store
// failure stops before the notification. A notification failure leaves
// the stored row in place; nothing is rolled back or retried.
func (h *Handler) ServeSubmit(w http.ResponseWriter, r *http.Request) {
	var req submissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Log.Warn("malformed submission body", zap.Error(err))
		h.fail(w, fmt.Errorf("malformed request body: %w", err))
		return
	}

	if err := req.validate(); err != nil {
		h.Log.Warn("invalid submission", zap.Error(err))
		h.fail(w, err)
		return
	}

	sub, err := req.normalize()
	if err != nil {
		h.Log.Warn("invalid submission timestamp",
			zap.Error(err),
			zap.String("timestamp", req.Timestamp))
		h.fail(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short)
	defer cancel()

	if err := h.Store.AppendRow(ctx, sub.Columns()); err != nil {
		h.Log.Error("row append failed",
			zap.Error(err),
			zap.String("email", sub.Email))
		h.fail(w, err)
		return
	}

	email := mailer.BuildSubmissionEmail(h.Cfg.SubjectPrefix, mailer.SubmissionEmailData{
		FirstName:   sub.FirstName,
		LastName:    sub.LastName,
		Email:       sub.Email,
		Phone:       sub.Phone,
		Comment:     sub.Comment,
		SubmittedAt: sub.Timestamp,
	})
	email.To = h.Cfg.NotifyTo

	if err := h.Mail.Send(email); err != nil {
		// The row is already stored; the failure is reported to the
		// caller but the record stays.
		h.Log.Error("notification send failed",
			zap.Error(err),
			zap.String("to", h.Cfg.NotifyTo))
		h.fail(w, err)
		return
	}

	writeJSON(w, statusResponse{
		Status:  "success",
		Message: "Form submitted successfully",
	})
}

// validate performs presence checks only. Email format is not
// enforced; see the design notes.
func (r submissionRequest) validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"firstName", r.FirstName},
		{"lastName", r.LastName},
		{"email", r.Email},
		{"comment", r.Comment},
		{"timestamp", r.Timestamp},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("missing required field %q", f.name)
		}
	}
	return nil
}

// normalize applies the phone default and renders the timestamp for
// display. The same display string goes into the stored row and the
// email footer.
func (r submissionRequest) normalize() (models.Submission, error) {
	t, err := timefmt.Parse(r.Timestamp)
	if err != nil {
		return models.Submission{}, fmt.Errorf("invalid timestamp %q: %w", r.Timestamp, err)
	}

	phone := strings.TrimSpace(r.Phone)
	if phone == "" {
		phone = models.PhoneNotProvided
	}

	return models.Submission{
		Timestamp: timefmt.Display(t),
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     phone,
		Comment:   r.Comment,
	}, nil
}

// fail answers with the error envelope. The transport status stays 200.
func (h *Handler) fail(w http.ResponseWriter, err error) {
	writeJSON(w, statusResponse{
		Status:  "error",
		Message: err.Error(),
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
