package social

import (
	"time"

	"github.com/helenrojas261991-debug/home-services-florida/internal/domain/social"
)

// SettingsDTO is the sanitized admin view of a credential. Tokens never
// leave the server; only their presence is reported.
type SettingsDTO struct {
	Service                    string     `json:"service"`
	IsActive                   bool       `json:"isActive"`
	HasAccessToken             bool       `json:"hasAccessToken"`
	HasRefreshToken            bool       `json:"hasRefreshToken"`
	GoogleLocationName         string     `json:"googleLocationName,omitempty"`
	InstagramBusinessAccountID string     `json:"instagramBusinessAccountId,omitempty"`
	LastSyncedAt               *time.Time `json:"lastSyncedAt,omitempty"`
}

func settingsFromCredential(cred *social.Credential) *SettingsDTO {
	return &SettingsDTO{
		Service:                    cred.Service.String(),
		IsActive:                   cred.IsActive,
		HasAccessToken:             cred.AccessToken != "",
		HasRefreshToken:            cred.RefreshToken != "",
		GoogleLocationName:         cred.GoogleLocationName,
		InstagramBusinessAccountID: cred.InstagramBusinessAccountID,
		LastSyncedAt:               cred.LastSyncedAt,
	}
}

// ReviewDTO is the public shape of a cached review.
type ReviewDTO struct {
	ID             uint       `json:"id"`
	GoogleReviewID string     `json:"googleReviewId"`
	AuthorName     string     `json:"authorName"`
	AuthorPhotoURL string     `json:"authorPhotoUrl,omitempty"`
	Rating         int        `json:"rating"`
	Comment        string     `json:"comment"`
	ReplyComment   string     `json:"replyComment,omitempty"`
	ReplyTime      *time.Time `json:"replyTime,omitempty"`
	ReviewedAt     time.Time  `json:"reviewedAt"`
}

func reviewToDTO(r social.Review) ReviewDTO {
	return ReviewDTO{
		ID:             r.ID,
		GoogleReviewID: r.ExternalID,
		AuthorName:     r.AuthorName,
		AuthorPhotoURL: r.AuthorPhotoURL,
		Rating:         r.Rating,
		Comment:        r.Comment,
		ReplyComment:   r.ReplyComment,
		ReplyTime:      r.ReplyTime,
		ReviewedAt:     r.ReviewedAt,
	}
}

// ReviewsFeed is the public review listing with its aggregates.
type ReviewsFeed struct {
	Reviews            []ReviewDTO `json:"reviews"`
	AverageRating      float64     `json:"averageRating"`
	RatingDistribution map[int]int `json:"ratingDistribution"`
}

// PostDTO is the public shape of a cached Instagram post.
type PostDTO struct {
	ID           uint       `json:"id"`
	InstagramID  string     `json:"instagramId"`
	Caption      string     `json:"caption,omitempty"`
	MediaType    string     `json:"mediaType"`
	MediaURL     string     `json:"mediaUrl"`
	Permalink    string     `json:"permalink,omitempty"`
	PostedAt     *time.Time `json:"postedAt,omitempty"`
	LikeCount    int        `json:"likeCount"`
	CommentCount int        `json:"commentCount"`
}

func postToDTO(p social.Post) PostDTO {
	return PostDTO{
		ID:           p.ID,
		InstagramID:  p.ExternalID,
		Caption:      p.Caption,
		MediaType:    p.MediaType.String(),
		MediaURL:     p.MediaURL,
		Permalink:    p.Permalink,
		PostedAt:     p.PostedAt,
		LikeCount:    p.LikeCount,
		CommentCount: p.CommentCount,
	}
}

// ConfigureGoogleInput configures the Google Business integration.
type ConfigureGoogleInput struct {
	AccessToken  string
	RefreshToken string
	LocationName string
}

// ConfigureInstagramInput configures the Instagram integration. When
// BusinessAccountID is empty it is resolved from the token.
type ConfigureInstagramInput struct {
	AccessToken       string
	RefreshToken      string
	BusinessAccountID string
}
