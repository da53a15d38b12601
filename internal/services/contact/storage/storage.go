// Package storage defines persistence contracts for contact submissions.
package storage

import (
	"context"
	"time"
)

// Outcome values recorded for each submission.
const (
	OutcomeSent   = "sent"
	OutcomeFailed = "failed"
)

// SubmissionRecord is one processed contact submission.
type SubmissionRecord struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	Location    string
	ProjectType string
	Timeline    string
	Description string
	Outcome     string
	Reason      string
	LastError   string
	CreatedAt   time.Time
}

// SubmissionStore persists submissions and their outcomes.
type SubmissionStore interface {
	RecordSubmission(ctx context.Context, record SubmissionRecord) error
	ListSubmissions(ctx context.Context, limit int) ([]SubmissionRecord, error)
}
