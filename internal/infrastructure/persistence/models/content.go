package models

import (
	"encoding/json"
	"time"

	"github.com/helenrojas261991-debug/home-services-florida/internal/domain/contact"
	"github.com/helenrojas261991-debug/home-services-florida/internal/domain/content"
)

// ContentModel is the persistence model for content.Entry.
type ContentModel struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"`
	Key           string    `gorm:"type:varchar(128);not null;uniqueIndex"`
	TitleEn       string    `gorm:"type:text"`
	TitleEs       string    `gorm:"type:text"`
	DescriptionEn string    `gorm:"type:text"`
	DescriptionEs string    `gorm:"type:text"`
	ImageURL      string    `gorm:"type:text"`
	VideoURL      string    `gorm:"type:text"`
	MetadataJSON  string    `gorm:"column:metadata;type:text"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ContentModel) TableName() string {
	return "content"
}

// ToDomain converts the persistence model to a domain Entry
func (m *ContentModel) ToDomain() *content.Entry {
	entry := &content.Entry{
		ID:            m.ID,
		Key:           m.Key,
		TitleEn:       m.TitleEn,
		TitleEs:       m.TitleEs,
		DescriptionEn: m.DescriptionEn,
		DescriptionEs: m.DescriptionEs,
		ImageURL:      m.ImageURL,
		VideoURL:      m.VideoURL,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}

	if m.MetadataJSON != "" {
		var metadata map[string]any
		if err := json.Unmarshal([]byte(m.MetadataJSON), &metadata); err == nil {
			entry.Metadata = metadata
		}
	}

	return entry
}

// ContactSubmissionModel is the persistence model for contact.Submission.
type ContactSubmissionModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(320);not null"`
	Phone     string    `gorm:"type:varchar(20)"`
	Subject   string    `gorm:"type:varchar(255)"`
	Message   string    `gorm:"type:text;not null"`
	Status    string    `gorm:"type:varchar(20);not null;default:'new'"`
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ContactSubmissionModel) TableName() string {
	return "contact_submissions"
}

// ToDomain converts the persistence model to a domain Submission
func (m *ContactSubmissionModel) ToDomain() *contact.Submission {
	return &contact.Submission{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Subject:   m.Subject,
		Message:   m.Message,
		Status:    contact.Status(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomain populates the persistence model from a domain Submission
func (m *ContactSubmissionModel) FromDomain(s *contact.Submission) {
	m.Name = s.Name
	m.Email = s.Email
	m.Phone = s.Phone
	m.Subject = s.Subject
	m.Message = s.Message
	m.Status = s.Status.String()
}
