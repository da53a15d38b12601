package contact

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseReason(t *testing.T) {
	t.Parallel()

	for _, reason := range []Reason{ReasonMissingField, ReasonUnavailable, ReasonRejected, ReasonTransport} {
		got, ok := ParseReason(" " + string(reason) + " ")
		if !ok || got != reason {
			t.Fatalf("ParseReason(%q) = %q, %v", reason, got, ok)
		}
	}
	if _, ok := ParseReason("teapot"); ok {
		t.Fatal("ParseReason accepted unknown reason")
	}
}

func TestRejectedKeepsProviderMessageAsCause(t *testing.T) {
	t.Parallel()

	err := Rejected(422, "Invalid `to` field")
	if err.Message != sendFailedMessage {
		t.Fatalf("Message = %q, want %q", err.Message, sendFailedMessage)
	}
	if err.Detail() != "Invalid `to` field" {
		t.Fatalf("Detail() = %q", err.Detail())
	}
	if err.Status != 422 {
		t.Fatalf("Status = %d, want 422", err.Status)
	}

	blank := Rejected(500, "  ")
	if blank.Detail() != "Failed to send email" {
		t.Fatalf("blank Detail() = %q", blank.Detail())
	}
}

func TestAsErrorWrapsUnclassifiedErrors(t *testing.T) {
	t.Parallel()

	classified := Unavailable("nope")
	if got := AsError(fmt.Errorf("wrapped: %w", classified)); got != classified {
		t.Fatalf("AsError() = %v, want original *Error", got)
	}

	plain := errors.New("boom")
	got := AsError(plain)
	if got.Reason != ReasonRejected {
		t.Fatalf("Reason = %q, want %q", got.Reason, ReasonRejected)
	}
	if !errors.Is(got, plain) {
		t.Fatal("AsError() lost the cause")
	}
	if AsError(nil) != nil {
		t.Fatal("AsError(nil) != nil")
	}
}

func TestResultOf(t *testing.T) {
	t.Parallel()

	if r := ResultOf(nil); !r.OK() || r.Message != "Email sent successfully" {
		t.Fatalf("ResultOf(nil) = %+v", r)
	}

	r := ResultOf(MissingFields(FieldName, FieldDescription))
	if r.OK() {
		t.Fatal("missing fields result reported OK")
	}
	if r.Reason != ReasonMissingField || r.Message != "Missing required fields" {
		t.Fatalf("ResultOf(missing) = %+v", r)
	}
	if r.Details != "missing: name, description" {
		t.Fatalf("Details = %q", r.Details)
	}
	if len(r.Fields) != 2 {
		t.Fatalf("Fields = %v", r.Fields)
	}

	transport := ResultOf(Transport(errors.New("dial tcp: refused")))
	if transport.Reason != ReasonTransport || transport.Details != "dial tcp: refused" {
		t.Fatalf("ResultOf(transport) = %+v", transport)
	}
}
