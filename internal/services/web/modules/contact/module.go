// Package contact serves the contact form endpoint that bridges the landing
// page to the email provider.
package contact

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"mime"
	"net/http"

	"github.com/trueluxconstruction/landing/internal/platform/timeouts"
	"github.com/trueluxconstruction/landing/internal/services/contact"
	module "github.com/trueluxconstruction/landing/internal/services/web/module"
	apperrors "github.com/trueluxconstruction/landing/internal/services/web/platform/errors"
	"github.com/trueluxconstruction/landing/internal/services/web/platform/httpx"
	"github.com/trueluxconstruction/landing/internal/services/web/platform/pagerender"
	"github.com/trueluxconstruction/landing/internal/services/web/routepath"
	"github.com/trueluxconstruction/landing/internal/services/web/templates"
)

const (
	maxBodyBytes = 64 << 10
	allowMethods = "POST, OPTIONS"
	// SentEvent is the HX-Trigger event fired after a successful submission.
	SentEvent = "contact-sent"
)

// Submitter accepts contact submissions.
type Submitter interface {
	Submit(ctx context.Context, submission contact.Submission) error
	Configured() bool
}

// Config wires the contact module.
type Config struct {
	Service Submitter
	// DevMode exposes failure details in responses.
	DevMode bool
	Logger  *slog.Logger
	CORS    httpx.CORSPolicy
}

// Module provides the contact API routes.
type Module struct {
	config Config
}

// New returns the contact module.
func New(config Config) Module {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.CORS.AllowMethods == nil {
		config.CORS.AllowMethods = []string{http.MethodPost, http.MethodOptions}
	}
	if config.CORS.AllowHeaders == nil {
		config.CORS.AllowHeaders = []string{"Content-Type", "HX-Request", "HX-Target", "HX-Current-URL", "HX-Trigger"}
	}
	return Module{config: config}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "contact" }

// Healthy reports whether submissions can reach the email provider.
func (m Module) Healthy() bool {
	return m.config.Service != nil && m.config.Service.Configured()
}

// Mount returns the API route mount.
func (m Module) Mount() (module.Mount, error) {
	if m.config.Service == nil {
		return module.Mount{}, errors.New("contact service is required")
	}
	mux := http.NewServeMux()
	mux.HandleFunc("POST "+routepath.Contact, m.handleSubmit)
	mux.HandleFunc("OPTIONS "+routepath.Contact, handlePreflight)
	mux.HandleFunc(routepath.Contact, httpx.MethodNotAllowed(allowMethods))
	return module.Mount{
		Prefix:  routepath.APIPrefix,
		Handler: httpx.Chain(mux, httpx.CORS(m.config.CORS)),
	}, nil
}

func handlePreflight(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteNoContent(w)
}

func (m Module) handleSubmit(w http.ResponseWriter, r *http.Request) {
	submission, err := decodeSubmission(w, r)
	if err != nil {
		m.config.Logger.WarnContext(r.Context(), "decode contact submission",
			"error", err, "request_id", httpx.RequestIDFrom(r))
		m.writeResult(w, r, contact.Result{
			Reason:  contact.ReasonMissingField,
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.EmailRequest)
	defer cancel()
	m.writeResult(w, r, contact.ResultOf(m.config.Service.Submit(ctx, submission)))
}

func (m Module) writeResult(w http.ResponseWriter, r *http.Request, result contact.Result) {
	if httpx.IsHTMXRequest(r) {
		m.writeFragment(w, r, result)
		return
	}
	if result.OK() {
		_ = httpx.WriteJSON(w, http.StatusOK, contact.Response{Success: true, Message: result.Message})
		return
	}
	body := contact.Response{
		Error:  result.Message,
		Reason: string(result.Reason),
		Fields: result.Fields,
	}
	if m.config.DevMode {
		body.Details = result.Details
	}
	_ = httpx.WriteJSON(w, StatusFor(result.Reason), body)
}

// writeFragment answers HTMX requests with 200 so the status fragment is
// always swapped in; the reason travels in the markup.
func (m Module) writeFragment(w http.ResponseWriter, r *http.Request, result contact.Result) {
	if result.OK() {
		w.Header().Set("HX-Trigger", SentEvent)
	}
	loc := pagerender.Localizer(w, r)
	component := templates.ContactStatus(loc, result, m.config.DevMode)
	if err := pagerender.WriteComponent(w, r, http.StatusOK, component); err != nil {
		m.config.Logger.ErrorContext(r.Context(), "render contact status", "error", err, "request_id", httpx.RequestIDFrom(r))
		httpx.WriteError(w, err)
	}
}

// StatusFor maps a failure reason to its HTTP status.
func StatusFor(reason contact.Reason) int {
	return apperrors.HTTPStatus(apperrors.E(kindFor(reason), string(reason)))
}

func kindFor(reason contact.Reason) apperrors.Kind {
	switch reason {
	case contact.ReasonMissingField:
		return apperrors.KindInvalidInput
	case contact.ReasonUnavailable:
		return apperrors.KindUnavailable
	case contact.ReasonRejected, contact.ReasonTransport:
		return apperrors.KindUpstream
	default:
		return apperrors.KindUnknown
	}
}

func decodeSubmission(w http.ResponseWriter, r *http.Request) (contact.Submission, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var submission contact.Submission
		if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
			return contact.Submission{}, err
		}
		return submission, nil
	}
	if err := r.ParseForm(); err != nil {
		return contact.Submission{}, err
	}
	return contact.SubmissionFromForm(r.PostForm), nil
}
