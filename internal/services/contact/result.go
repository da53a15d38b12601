package contact

import (
	"errors"
	"fmt"
	"strings"
)

// Reason classifies a failed submission.
type Reason string

const (
	// ReasonMissingField means one or more required fields were empty.
	ReasonMissingField Reason = "missing_required_field"
	// ReasonUnavailable means the email provider is not configured.
	ReasonUnavailable Reason = "upstream_unavailable"
	// ReasonRejected means the email provider answered with a failure status.
	ReasonRejected Reason = "upstream_rejected"
	// ReasonTransport means the request never got an answer.
	ReasonTransport Reason = "transport_error"
)

// ParseReason returns the known reason for raw, or false.
func ParseReason(raw string) (Reason, bool) {
	switch reason := Reason(strings.TrimSpace(raw)); reason {
	case ReasonMissingField, ReasonUnavailable, ReasonRejected, ReasonTransport:
		return reason, true
	default:
		return "", false
	}
}

// Error is a classified submission failure.
type Error struct {
	Reason Reason
	// Message is safe to show to the person filling the form.
	Message string
	// Fields lists missing required fields for ReasonMissingField.
	Fields []string
	// Status is the provider's HTTP status for ReasonRejected.
	Status int
	Cause  error
}

// Error implements error.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Detail returns the most specific description of the failure, used as the
// response "details" field in development mode.
func (e *Error) Detail() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	if len(e.Fields) > 0 {
		return "missing: " + strings.Join(e.Fields, ", ")
	}
	return e.Message
}

const (
	missingFieldsMessage = "Missing required fields"
	sendFailedMessage    = "Failed to send email. Please try again later."
)

// MissingFields reports required fields that were left empty.
func MissingFields(fields ...string) *Error {
	return &Error{Reason: ReasonMissingField, Message: missingFieldsMessage, Fields: fields}
}

// Unavailable reports a missing or unsupported provider configuration.
func Unavailable(message string) *Error {
	return &Error{Reason: ReasonUnavailable, Message: message}
}

// Rejected reports a provider failure status. providerMessage is the
// provider's own description and is kept as the cause.
func Rejected(status int, providerMessage string) *Error {
	providerMessage = strings.TrimSpace(providerMessage)
	if providerMessage == "" {
		providerMessage = "Failed to send email"
	}
	return &Error{
		Reason:  ReasonRejected,
		Message: sendFailedMessage,
		Status:  status,
		Cause:   errors.New(providerMessage),
	}
}

// Transport reports a request that failed before a response arrived.
func Transport(cause error) *Error {
	return &Error{Reason: ReasonTransport, Message: sendFailedMessage, Cause: cause}
}

// AsError extracts a classified failure from err. Unclassified errors are
// treated as provider rejections.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var contactErr *Error
	if errors.As(err, &contactErr) {
		return contactErr
	}
	return &Error{Reason: ReasonRejected, Message: sendFailedMessage, Cause: err}
}

// Result is the outcome the page shows after a submission.
type Result struct {
	Reason  Reason
	Message string
	Details string
	Fields  []string
}

// OK reports a successful submission.
func (r Result) OK() bool {
	return r.Reason == ""
}

// Success is the result of a delivered submission.
func Success() Result {
	return Result{Message: "Email sent successfully"}
}

// Failure builds a failed result.
func Failure(reason Reason, message string) Result {
	return Result{Reason: reason, Message: message}
}

// ResultOf classifies err into a Result.
func ResultOf(err error) Result {
	if err == nil {
		return Success()
	}
	contactErr := AsError(err)
	return Result{
		Reason:  contactErr.Reason,
		Message: contactErr.Message,
		Details: contactErr.Detail(),
		Fields:  append([]string(nil), contactErr.Fields...),
	}
}
