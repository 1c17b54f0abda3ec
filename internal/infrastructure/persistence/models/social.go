package models

import (
	"time"

	"github.com/helenrojas261991-debug/home-services-florida/internal/domain/social"
)

// CredentialModel is the persistence model for social.Credential.
type CredentialModel struct {
	ID                         uint       `gorm:"primaryKey;autoIncrement"`
	Service                    string     `gorm:"type:varchar(50);not null;uniqueIndex"`
	AccessToken                string     `gorm:"type:text"`
	RefreshToken               string     `gorm:"type:text"`
	BusinessID                 string     `gorm:"type:varchar(128)"`
	InstagramBusinessAccountID string     `gorm:"type:varchar(128)"`
	GoogleLocationName         string     `gorm:"type:varchar(255)"`
	LastSyncedAt               *time.Time `gorm:""`
	IsActive                   bool       `gorm:"not null;default:true"`
	CreatedAt                  time.Time  `gorm:"not null"`
	UpdatedAt                  time.Time  `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CredentialModel) TableName() string {
	return "integration_settings"
}

// ToDomain converts the persistence model to a domain Credential
func (m *CredentialModel) ToDomain() *social.Credential {
	return &social.Credential{
		ID:                         m.ID,
		Service:                    social.Service(m.Service),
		AccessToken:                m.AccessToken,
		RefreshToken:               m.RefreshToken,
		BusinessID:                 m.BusinessID,
		InstagramBusinessAccountID: m.InstagramBusinessAccountID,
		GoogleLocationName:         m.GoogleLocationName,
		LastSyncedAt:               m.LastSyncedAt,
		IsActive:                   m.IsActive,
		CreatedAt:                  m.CreatedAt,
		UpdatedAt:                  m.UpdatedAt,
	}
}

// ReviewModel is the persistence model for social.Review.
type ReviewModel struct {
	ID              uint       `gorm:"primaryKey;autoIncrement"`
	ExternalID      string     `gorm:"column:google_review_id;type:varchar(128);not null;uniqueIndex"`
	AuthorName      string     `gorm:"type:varchar(255);not null"`
	AuthorPhotoURL  string     `gorm:"type:text"`
	Rating          int        `gorm:"not null"`
	Comment         string     `gorm:"type:text"`
	ReplyComment    string     `gorm:"type:text"`
	ReplyTime       *time.Time `gorm:""`
	ReviewedAt      time.Time  `gorm:"not null;index"`
	ReviewUpdatedAt time.Time  `gorm:"not null"`
	CreatedAt       time.Time  `gorm:"not null"`
	UpdatedAt       time.Time  `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ReviewModel) TableName() string {
	return "google_reviews"
}

// ToDomain converts the persistence model to a domain Review
func (m *ReviewModel) ToDomain() *social.Review {
	return &social.Review{
		ID:              m.ID,
		ExternalID:      m.ExternalID,
		AuthorName:      m.AuthorName,
		AuthorPhotoURL:  m.AuthorPhotoURL,
		Rating:          m.Rating,
		Comment:         m.Comment,
		ReplyComment:    m.ReplyComment,
		ReplyTime:       m.ReplyTime,
		ReviewedAt:      m.ReviewedAt,
		ReviewUpdatedAt: m.ReviewUpdatedAt,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// FromDomain populates the persistence model from a domain Review
func (m *ReviewModel) FromDomain(r *social.Review) {
	m.ExternalID = r.ExternalID
	m.AuthorName = r.AuthorName
	m.AuthorPhotoURL = r.AuthorPhotoURL
	m.Rating = r.Rating
	m.Comment = r.Comment
	m.ReplyComment = r.ReplyComment
	m.ReplyTime = r.ReplyTime
	m.ReviewedAt = r.ReviewedAt
	m.ReviewUpdatedAt = r.ReviewUpdatedAt
}

// PostModel is the persistence model for social.Post.
type PostModel struct {
	ID           uint       `gorm:"primaryKey;autoIncrement"`
	ExternalID   string     `gorm:"column:instagram_id;type:varchar(128);not null;uniqueIndex"`
	Caption      string     `gorm:"type:text"`
	MediaType    string     `gorm:"type:varchar(50);not null"`
	MediaURL     string     `gorm:"type:text;not null"`
	Permalink    string     `gorm:"type:text"`
	PostedAt     *time.Time `gorm:"index"`
	LikeCount    int        `gorm:"not null;default:0"`
	CommentCount int        `gorm:"not null;default:0"`
	CreatedAt    time.Time  `gorm:"not null"`
	UpdatedAt    time.Time  `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PostModel) TableName() string {
	return "instagram_posts"
}

// ToDomain converts the persistence model to a domain Post
func (m *PostModel) ToDomain() *social.Post {
	return &social.Post{
		ID:           m.ID,
		ExternalID:   m.ExternalID,
		Caption:      m.Caption,
		MediaType:    social.MediaType(m.MediaType),
		MediaURL:     m.MediaURL,
		Permalink:    m.Permalink,
		PostedAt:     m.PostedAt,
		LikeCount:    m.LikeCount,
		CommentCount: m.CommentCount,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromDomain populates the persistence model from a domain Post
func (m *PostModel) FromDomain(p *social.Post) {
	m.ExternalID = p.ExternalID
	m.Caption = p.Caption
	m.MediaType = p.MediaType.String()
	m.MediaURL = p.MediaURL
	m.Permalink = p.Permalink
	m.PostedAt = p.PostedAt
	m.LikeCount = p.LikeCount
	m.CommentCount = p.CommentCount
}
