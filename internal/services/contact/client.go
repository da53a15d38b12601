package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// EndpointPath is the fixed path of the contact endpoint.
const EndpointPath = "/api/contact"

const defaultFailureMessage = "Failed to send message"

// Response is the JSON body returned by the contact endpoint.
type Response struct {
	Success bool     `json:"success,omitempty"`
	Message string   `json:"message,omitempty"`
	Error   string   `json:"error,omitempty"`
	Reason  string   `json:"reason,omitempty"`
	Details string   `json:"details,omitempty"`
	Fields  []string `json:"fields,omitempty"`
}

// Client submits the contact form to the landing service the way the page
// does: one JSON POST, no retry.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient returns a client for baseURL (scheme and host, optionally a path
// prefix). A nil httpClient uses http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("base url is required")
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{endpoint: baseURL + EndpointPath, http: httpClient}, nil
}

// Submit posts s and classifies the response. Submissions with missing
// required fields are classified locally and never sent.
func (c *Client) Submit(ctx context.Context, s Submission) Result {
	if err := Validate(s); err != nil {
		return ResultOf(err)
	}
	body, err := json.Marshal(wireSubmission(s))
	if err != nil {
		return Failure(ReasonTransport, fmt.Sprintf("encode submission: %v", err))
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Failure(ReasonTransport, fmt.Sprintf("build request: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		result := Failure(ReasonTransport, defaultFailureMessage)
		result.Details = err.Error()
		return result
	}
	defer resp.Body.Close()
	return classifyResponse(resp.StatusCode, resp.Body)
}

func classifyResponse(status int, body io.Reader) Result {
	var payload Response
	decodeErr := json.NewDecoder(io.LimitReader(body, 1<<20)).Decode(&payload)

	if status >= 200 && status < 300 {
		if decodeErr == nil && !payload.Success {
			return Failure(ReasonRejected, firstNonEmpty(payload.Error, defaultFailureMessage))
		}
		result := Success()
		if payload.Message != "" {
			result.Message = payload.Message
		}
		return result
	}

	reason, ok := ParseReason(payload.Reason)
	if !ok {
		reason = reasonForStatus(status)
	}
	return Result{
		Reason:  reason,
		Message: firstNonEmpty(payload.Details, payload.Error, defaultFailureMessage),
		Details: payload.Details,
		Fields:  payload.Fields,
	}
}

func reasonForStatus(status int) Reason {
	switch status {
	case http.StatusBadRequest:
		return ReasonMissingField
	case http.StatusServiceUnavailable:
		return ReasonUnavailable
	default:
		return ReasonRejected
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

type wirePayload struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
	ProjectType string `json:"project-type,omitempty"`
	Timeline    string `json:"timeline,omitempty"`
	Description string `json:"description"`
}

// wireSubmission matches the field names the page form posts.
func wireSubmission(s Submission) wirePayload {
	return wirePayload{
		Name:        s.Name,
		Email:       s.Email,
		Phone:       s.Phone,
		Location:    s.Location,
		ProjectType: s.ProjectType,
		Timeline:    s.Timeline,
		Description: s.Description,
	}
}
