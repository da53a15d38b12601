package contact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/trueluxconstruction/landing/internal/services/contact"
)

type fakeSubmitter struct {
	mu         sync.Mutex
	err        error
	configured bool
	got        []contact.Submission
}

func (f *fakeSubmitter) Submit(ctx context.Context, s contact.Submission) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("submit called without deadline")
	}
	f.got = append(f.got, s)
	return f.err
}

func (f *fakeSubmitter) Configured() bool { return f.configured }

const validJSON = `{"name":"Ana Ruiz","email":"ana@example.com","phone":"555-0100","location":"Austin, TX","project-type":"Kitchen","description":"Remodel"}`

func serve(t *testing.T, m Module, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	mount, err := m.Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)
	return rr
}

func jsonRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder) contact.Response {
	t.Helper()
	var resp contact.Response
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response %q: %v", rr.Body.String(), err)
	}
	return resp
}

func TestSubmitJSONSuccess(t *testing.T) {
	t.Parallel()

	svc := &fakeSubmitter{configured: true}
	rr := serve(t, New(Config{Service: svc}), jsonRequest(validJSON))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	resp := decodeResponse(t, rr)
	if !resp.Success || resp.Message != "Email sent successfully" {
		t.Fatalf("response = %+v", resp)
	}
	if len(svc.got) != 1 || svc.got[0].ProjectType != "Kitchen" {
		t.Fatalf("submissions = %+v", svc.got)
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("Access-Control-Allow-Origin = %q, want *", got)
	}
}

func TestSubmitFormEncoded(t *testing.T) {
	t.Parallel()

	svc := &fakeSubmitter{configured: true}
	form := url.Values{
		"name":         {"Ana"},
		"email":        {"ana@example.com"},
		"phone":        {"1"},
		"location":     {"X"},
		"project-type": {"Deck"},
		"description":  {"Build a deck"},
	}
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	if rr := serve(t, New(Config{Service: svc}), req); rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if len(svc.got) != 1 || svc.got[0].ProjectType != "Deck" || svc.got[0].Description != "Build a deck" {
		t.Fatalf("submissions = %+v", svc.got)
	}
}

func TestSubmitFailures(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err         error
		devMode     bool
		wantStatus  int
		wantReason  contact.Reason
		wantDetails string
	}{
		"missing field": {
			err:        contact.MissingFields("description"),
			wantStatus: http.StatusBadRequest,
			wantReason: contact.ReasonMissingField,
		},
		"unavailable": {
			err:        contact.Unavailable("Email service not configured"),
			wantStatus: http.StatusServiceUnavailable,
			wantReason: contact.ReasonUnavailable,
		},
		"rejected hides details": {
			err:        contact.Rejected(http.StatusForbidden, "domain not verified"),
			wantStatus: http.StatusBadGateway,
			wantReason: contact.ReasonRejected,
		},
		"rejected in dev mode": {
			err:         contact.Rejected(http.StatusForbidden, "domain not verified"),
			devMode:     true,
			wantStatus:  http.StatusBadGateway,
			wantReason:  contact.ReasonRejected,
			wantDetails: "domain not verified",
		},
		"transport": {
			err:        contact.Transport(errors.New("connection reset")),
			wantStatus: http.StatusBadGateway,
			wantReason: contact.ReasonTransport,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			m := New(Config{Service: &fakeSubmitter{err: tc.err}, DevMode: tc.devMode})
			rr := serve(t, m, jsonRequest(validJSON))
			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
			resp := decodeResponse(t, rr)
			if resp.Reason != string(tc.wantReason) || resp.Error == "" {
				t.Fatalf("response = %+v", resp)
			}
			if resp.Details != tc.wantDetails {
				t.Fatalf("details = %q, want %q", resp.Details, tc.wantDetails)
			}
		})
	}
}

func TestSubmitMissingFieldListsFields(t *testing.T) {
	t.Parallel()

	m := New(Config{Service: &fakeSubmitter{err: contact.MissingFields("name", "description")}})
	resp := decodeResponse(t, serve(t, m, jsonRequest(`{}`)))
	if strings.Join(resp.Fields, ",") != "name,description" {
		t.Fatalf("fields = %v", resp.Fields)
	}
}

func TestSubmitInvalidJSON(t *testing.T) {
	t.Parallel()

	svc := &fakeSubmitter{}
	rr := serve(t, New(Config{Service: svc}), jsonRequest(`{"name":`))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	if len(svc.got) != 0 {
		t.Fatal("invalid body reached the service")
	}
	if resp := decodeResponse(t, rr); resp.Reason != string(contact.ReasonMissingField) {
		t.Fatalf("reason = %q", resp.Reason)
	}
}

func TestSubmitHTMXRendersFragment(t *testing.T) {
	t.Parallel()

	req := jsonRequest(validJSON)
	req.Header.Set("HX-Request", "true")
	rr := serve(t, New(Config{Service: &fakeSubmitter{}}), req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("HX-Trigger"); got != SentEvent {
		t.Fatalf("HX-Trigger = %q, want %q", got, SentEvent)
	}
	if !strings.Contains(rr.Body.String(), `data-reason="success"`) {
		t.Fatalf("body = %s", rr.Body.String())
	}
}

func TestSubmitHTMXFailureIsSwappable(t *testing.T) {
	t.Parallel()

	req := jsonRequest(validJSON)
	req.Header.Set("HX-Request", "true")
	rr := serve(t, New(Config{Service: &fakeSubmitter{err: contact.Rejected(500, "boom")}}), req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if rr.Header().Get("HX-Trigger") != "" {
		t.Fatal("failure fired the sent event")
	}
	body := rr.Body.String()
	if !strings.Contains(body, `data-reason="upstream_rejected"`) || strings.Contains(body, "boom") {
		t.Fatalf("body = %s", body)
	}
}

func TestPreflightAndMethods(t *testing.T) {
	t.Parallel()

	m := New(Config{Service: &fakeSubmitter{}})

	rr := serve(t, m, httptest.NewRequest(http.MethodOptions, "/api/contact", nil))
	if rr.Code != http.StatusNoContent || rr.Body.Len() != 0 {
		t.Fatalf("OPTIONS = %d %q", rr.Code, rr.Body.String())
	}
	if got := rr.Header().Get("Access-Control-Allow-Methods"); got != "POST, OPTIONS" {
		t.Fatalf("Access-Control-Allow-Methods = %q", got)
	}
	if got := rr.Header().Get("Access-Control-Allow-Headers"); !strings.Contains(got, "Content-Type") {
		t.Fatalf("Access-Control-Allow-Headers = %q", got)
	}

	rr = serve(t, m, httptest.NewRequest(http.MethodGet, "/api/contact", nil))
	if rr.Code != http.StatusMethodNotAllowed || rr.Header().Get("Allow") != "POST, OPTIONS" {
		t.Fatalf("GET = %d allow %q", rr.Code, rr.Header().Get("Allow"))
	}
}

func TestStatusFor(t *testing.T) {
	t.Parallel()

	tests := map[contact.Reason]int{
		contact.ReasonMissingField: http.StatusBadRequest,
		contact.ReasonUnavailable:  http.StatusServiceUnavailable,
		contact.ReasonRejected:     http.StatusBadGateway,
		contact.ReasonTransport:    http.StatusBadGateway,
		"other":                    http.StatusInternalServerError,
	}
	for reason, want := range tests {
		if got := StatusFor(reason); got != want {
			t.Fatalf("StatusFor(%q) = %d, want %d", reason, got, want)
		}
	}
}

func TestMountRequiresService(t *testing.T) {
	t.Parallel()

	if _, err := New(Config{}).Mount(); err == nil {
		t.Fatal("expected error without service")
	}
	if New(Config{Service: &fakeSubmitter{configured: true}}).Healthy() != true {
		t.Fatal("Healthy() = false, want true")
	}
}
