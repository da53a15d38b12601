package contact

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/trueluxconstruction/landing/internal/services/contact/storage"
)

type fakeSender struct {
	mu   sync.Mutex
	sent []Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, msg Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, msg)
	return f.err
}

func (f *fakeSender) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

type fakeStore struct {
	mu      sync.Mutex
	records []storage.SubmissionRecord
	err     error
}

func (f *fakeStore) RecordSubmission(_ context.Context, record storage.SubmissionRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, record)
	return f.err
}

func (f *fakeStore) ListSubmissions(context.Context, int) ([]storage.SubmissionRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]storage.SubmissionRecord(nil), f.records...), nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestServiceSubmitSends(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{}
	store := &fakeStore{}
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	svc := NewService(Config{Sender: sender, Store: store, Logger: discardLogger(), Now: func() time.Time { return now }})

	s := validSubmission()
	s.Name = "  Ana Ruiz  "
	if err := svc.Submit(context.Background(), s); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if sender.calls() != 1 {
		t.Fatalf("sender calls = %d, want 1", sender.calls())
	}
	if sender.sent[0].Subject != "New Consultation Request from Ana Ruiz" {
		t.Fatalf("Subject = %q", sender.sent[0].Subject)
	}
	if len(store.records) != 1 {
		t.Fatalf("records = %d, want 1", len(store.records))
	}
	record := store.records[0]
	if record.Outcome != storage.OutcomeSent || record.ID == "" || !record.CreatedAt.Equal(now) {
		t.Fatalf("record = %+v", record)
	}
}

func TestServiceSubmitFailures(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		cfg        Config
		submission Submission
		wantReason Reason
		wantMsg    string
		wantSends  int
	}{
		"missing description": {
			cfg:        Config{Sender: &fakeSender{}},
			submission: Submission{Name: "Ana", Email: "a@example.com", Phone: "1", Location: "X"},
			wantReason: ReasonMissingField,
			wantMsg:    "Missing required fields",
		},
		"no sender configured": {
			cfg:        Config{},
			submission: validSubmission(),
			wantReason: ReasonUnavailable,
			wantMsg:    unconfiguredMessage,
		},
		"unsupported provider": {
			cfg:        Config{Sender: &fakeSender{}, Provider: "smtp"},
			submission: validSubmission(),
			wantReason: ReasonUnavailable,
			wantMsg:    unsupportedMessage,
		},
		"provider rejects": {
			cfg:        Config{Sender: &fakeSender{err: Rejected(403, "domain not verified")}},
			submission: validSubmission(),
			wantReason: ReasonRejected,
			wantMsg:    sendFailedMessage,
			wantSends:  1,
		},
		"transport failure": {
			cfg:        Config{Sender: &fakeSender{err: Transport(errors.New("connection reset"))}},
			submission: validSubmission(),
			wantReason: ReasonTransport,
			wantMsg:    sendFailedMessage,
			wantSends:  1,
		},
		"unclassified sender error": {
			cfg:        Config{Sender: &fakeSender{err: errors.New("weird")}},
			submission: validSubmission(),
			wantReason: ReasonRejected,
			wantMsg:    sendFailedMessage,
			wantSends:  1,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			store := &fakeStore{}
			cfg := tc.cfg
			cfg.Store = store
			cfg.Logger = discardLogger()
			svc := NewService(cfg)

			err := svc.Submit(context.Background(), tc.submission)
			var contactErr *Error
			if !errors.As(err, &contactErr) {
				t.Fatalf("Submit() error = %v, want *Error", err)
			}
			if contactErr.Reason != tc.wantReason {
				t.Fatalf("reason = %q, want %q", contactErr.Reason, tc.wantReason)
			}
			if contactErr.Message != tc.wantMsg {
				t.Fatalf("message = %q, want %q", contactErr.Message, tc.wantMsg)
			}
			if sender, ok := cfg.Sender.(*fakeSender); ok && sender.calls() != tc.wantSends {
				t.Fatalf("sender calls = %d, want %d", sender.calls(), tc.wantSends)
			}
			if len(store.records) != 1 {
				t.Fatalf("records = %d, want 1", len(store.records))
			}
			if got := store.records[0]; got.Outcome != storage.OutcomeFailed || got.Reason != string(tc.wantReason) {
				t.Fatalf("record = %+v", got)
			}
		})
	}
}

func TestServiceStoreErrorDoesNotFailSubmission(t *testing.T) {
	t.Parallel()

	svc := NewService(Config{
		Sender: &fakeSender{},
		Store:  &fakeStore{err: errors.New("disk full")},
		Logger: discardLogger(),
	})
	if err := svc.Submit(context.Background(), validSubmission()); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
}

func TestServiceConfigured(t *testing.T) {
	t.Parallel()

	if NewService(Config{}).Configured() {
		t.Fatal("service without sender reported configured")
	}
	if NewService(Config{Sender: &fakeSender{}, Provider: "postmark"}).Configured() {
		t.Fatal("service with unsupported provider reported configured")
	}
	if !NewService(Config{Sender: &fakeSender{}, Provider: " Resend "}).Configured() {
		t.Fatal("resend service not configured")
	}
	var nilService *Service
	if nilService.Configured() {
		t.Fatal("nil service reported configured")
	}
}
