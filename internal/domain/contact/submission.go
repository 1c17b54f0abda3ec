// Package contact holds contact-form submissions from the public site.
package contact

import (
	"context"
	"time"
)

// Status tracks how far an operator has gotten with a submission.
type Status string

const (
	StatusNew       Status = "new"
	StatusRead      Status = "read"
	StatusResponded Status = "responded"
)

// IsValid returns true if the status is one of the known states
func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusRead, StatusResponded:
		return true
	default:
		return false
	}
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// Submission is one contact-form message.
type Submission struct {
	ID        uint
	Name      string
	Email     string
	Phone     string
	Subject   string
	Message   string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Repository stores contact submissions.
type Repository interface {
	// Create stores a new submission and returns it with its ID set
	Create(ctx context.Context, submission *Submission) (*Submission, error)

	// List returns up to limit submissions, newest first
	List(ctx context.Context, limit int) ([]Submission, error)

	// UpdateStatus moves a submission to a new status
	UpdateStatus(ctx context.Context, id uint, status Status) error
}
