package contact

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/trueluxconstruction/landing/internal/services/contact/storage"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "github.com/trueluxconstruction/landing/internal/services/contact"

const (
	unconfiguredMessage = "Email service not configured. Please set RESEND_API_KEY in the service environment."
	unsupportedMessage  = "Please configure Resend API key. See README for setup instructions."
)

// Sender delivers one notification email.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Config wires a Service.
type Config struct {
	// Sender is nil when no provider credentials are configured.
	Sender     Sender
	Addressing Addressing
	// Provider names the configured email service; only "resend" sends.
	Provider string
	// Store records submissions when set.
	Store  storage.SubmissionStore
	Logger *slog.Logger
	Now    func() time.Time
}

// Service validates submissions and forwards them to the email provider.
type Service struct {
	sender     Sender
	addressing Addressing
	provider   string
	store      storage.SubmissionStore
	logger     *slog.Logger
	now        func() time.Time
}

// NewService builds a Service from cfg.
func NewService(cfg Config) *Service {
	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))
	if provider == "" {
		provider = ProviderResend
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		sender:     cfg.Sender,
		addressing: cfg.Addressing,
		provider:   provider,
		store:      cfg.Store,
		logger:     logger.With(slog.String("component", "contact")),
		now:        now,
	}
}

// ProviderResend is the only supported email provider.
const ProviderResend = "resend"

// Configured reports whether submissions can be delivered.
func (s *Service) Configured() bool {
	return s != nil && s.provider == ProviderResend && s.sender != nil
}

// Submit validates and forwards one submission. Failures are *Error values.
func (s *Service) Submit(ctx context.Context, submission Submission) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "contact.Submit")
	defer span.End()

	submission = submission.Normalized()
	id := uuid.NewString()
	span.SetAttributes(attribute.String("contact.submission_id", id))

	err := s.submit(ctx, submission)
	if err != nil {
		contactErr := AsError(err)
		span.SetAttributes(attribute.String("contact.reason", string(contactErr.Reason)))
		span.RecordError(err)
		span.SetStatus(codes.Error, string(contactErr.Reason))
		s.logFailure(ctx, id, contactErr)
		err = contactErr
	} else {
		s.logger.InfoContext(ctx, "contact submission sent", slog.String("submission_id", id))
	}
	s.record(ctx, id, submission, err)
	return err
}

func (s *Service) submit(ctx context.Context, submission Submission) error {
	if err := Validate(submission); err != nil {
		return err
	}
	if s.provider != ProviderResend {
		return Unavailable(unsupportedMessage)
	}
	if s.sender == nil {
		return Unavailable(unconfiguredMessage)
	}
	msg, err := ComposeMessage(ctx, s.addressing, submission)
	if err != nil {
		return err
	}
	return s.sender.Send(ctx, msg)
}

func (s *Service) logFailure(ctx context.Context, id string, err *Error) {
	attrs := []any{
		slog.String("submission_id", id),
		slog.String("reason", string(err.Reason)),
	}
	switch err.Reason {
	case ReasonMissingField:
		s.logger.InfoContext(ctx, "contact submission rejected", append(attrs, slog.String("fields", strings.Join(err.Fields, ",")))...)
	case ReasonUnavailable:
		s.logger.ErrorContext(ctx, "contact email provider not configured", append(attrs, slog.String("provider", s.provider))...)
	default:
		s.logger.ErrorContext(ctx, "contact email send failed", append(attrs, slog.Int("status", err.Status), slog.String("error", err.Detail()))...)
	}
}

func (s *Service) record(ctx context.Context, id string, submission Submission, err error) {
	if s.store == nil {
		return
	}
	record := storage.SubmissionRecord{
		ID:          id,
		Name:        submission.Name,
		Email:       submission.Email,
		Phone:       submission.Phone,
		Location:    submission.Location,
		ProjectType: submission.ProjectType,
		Timeline:    submission.Timeline,
		Description: submission.Description,
		Outcome:     storage.OutcomeSent,
		CreatedAt:   s.now().UTC(),
	}
	if err != nil {
		contactErr := AsError(err)
		record.Outcome = storage.OutcomeFailed
		record.Reason = string(contactErr.Reason)
		record.LastError = contactErr.Detail()
	}
	if recordErr := s.store.RecordSubmission(context.WithoutCancel(ctx), record); recordErr != nil {
		s.logger.WarnContext(ctx, "record contact submission", slog.String("submission_id", id), slog.String("error", recordErr.Error()))
	}
}
