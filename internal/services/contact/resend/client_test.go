package resend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/trueluxconstruction/landing/internal/services/contact"
)

func TestNewRequiresAPIKey(t *testing.T) {
	t.Parallel()

	if _, err := New(Config{APIKey: " "}); err == nil {
		t.Fatal("expected error for empty api key")
	}
}

func TestSendPostsEmail(t *testing.T) {
	t.Parallel()

	var got sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/emails" {
			t.Errorf("path = %q, want /emails", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer re_test" {
			t.Errorf("Authorization = %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		_, _ = w.Write([]byte(`{"id":"email-1"}`))
	}))
	t.Cleanup(srv.Close)

	client, err := New(Config{APIKey: "re_test", BaseURL: srv.URL + "/", HTTPClient: srv.Client()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	msg := contact.Message{
		From:    "Site <site@example.com>",
		To:      []string{"owner@example.com"},
		ReplyTo: "ana@example.com",
		Subject: "New Consultation Request from Ana",
		HTML:    "<p>hi</p>",
	}
	if err := client.Send(context.Background(), msg); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if got.From != msg.From || got.ReplyTo != msg.ReplyTo || got.Subject != msg.Subject || got.HTML != msg.HTML {
		t.Fatalf("request = %+v", got)
	}
	if len(got.To) != 1 || got.To[0] != "owner@example.com" {
		t.Fatalf("to = %v", got.To)
	}
}

func TestSendClassifiesProviderFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"name":"validation_error","message":"domain is not verified"}`))
	}))
	t.Cleanup(srv.Close)

	client, err := New(Config{APIKey: "re_test", BaseURL: srv.URL, HTTPClient: srv.Client()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	err = client.Send(context.Background(), contact.Message{To: []string{"x@example.com"}})
	var contactErr *contact.Error
	if !errors.As(err, &contactErr) {
		t.Fatalf("Send() error = %v, want *contact.Error", err)
	}
	if contactErr.Reason != contact.ReasonRejected || contactErr.Status != http.StatusForbidden {
		t.Fatalf("error = %+v", contactErr)
	}
	if contactErr.Detail() != "domain is not verified" {
		t.Fatalf("Detail() = %q", contactErr.Detail())
	}
}

func TestSendClassifiesTransportFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	base := srv.URL
	srv.Close()

	client, err := New(Config{APIKey: "re_test", BaseURL: base})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	err = client.Send(context.Background(), contact.Message{})
	var contactErr *contact.Error
	if !errors.As(err, &contactErr) || contactErr.Reason != contact.ReasonTransport {
		t.Fatalf("Send() error = %v, want transport error", err)
	}
}
