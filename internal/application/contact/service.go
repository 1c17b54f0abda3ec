// Package contact holds the application service for contact-form
// submissions.
package contact

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/helenrojas261991-debug/home-services-florida/internal/domain/contact"
	"github.com/helenrojas261991-debug/home-services-florida/internal/domain/shared"
)

// SubmissionDTO is the wire shape of a contact submission.
type SubmissionDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func submissionToDTO(s *contact.Submission) *SubmissionDTO {
	return &SubmissionDTO{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Phone:     s.Phone,
		Subject:   s.Subject,
		Message:   s.Message,
		Status:    s.Status.String(),
		CreatedAt: s.CreatedAt,
	}
}

// SubmitInput is a new contact-form message.
type SubmitInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// Service accepts public submissions and serves the admin inbox.
type Service struct {
	submissions contact.Repository
	logger      *zap.Logger
}

// NewService creates a new contact Service
func NewService(submissions contact.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{submissions: submissions, logger: logger}
}

// Submit stores a new submission in status "new"
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*SubmissionDTO, error) {
	if input.Name == "" || input.Email == "" || input.Message == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Name, email and message are required")
	}

	submission, err := s.submissions.Create(ctx, &contact.Submission{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Subject: input.Subject,
		Message: input.Message,
		Status:  contact.StatusNew,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("contact submission received", zap.Uint("id", submission.ID))
	return submissionToDTO(submission), nil
}

// List returns up to limit submissions, newest first
func (s *Service) List(ctx context.Context, limit int) ([]SubmissionDTO, error) {
	submissions, err := s.submissions.List(ctx, limit)
	if err != nil {
		return nil, err
	}

	dtos := make([]SubmissionDTO, len(submissions))
	for i := range submissions {
		dtos[i] = *submissionToDTO(&submissions[i])
	}
	return dtos, nil
}

// UpdateStatus moves a submission to a new status
func (s *Service) UpdateStatus(ctx context.Context, id uint, status string) error {
	parsed := contact.Status(status)
	if !parsed.IsValid() {
		return shared.NewDomainError("INVALID_INPUT", "Invalid submission status")
	}
	return s.submissions.UpdateStatus(ctx, id, parsed)
}
