package connector

import (
	"time"

	"github.com/helenrojas261991-debug/home-services-florida/internal/domain/social"
)

type instagramProfile struct {
	ID                string `json:"id"`
	Username          string `json:"username"`
	Name              string `json:"name"`
	Biography         string `json:"biography"`
	Website           string `json:"website"`
	ProfilePictureURL string `json:"profile_picture_url"`
}

type instagramMediaListResponse struct {
	Data []instagramMediaPayload `json:"data"`
}

type instagramMediaPayload struct {
	ID            string `json:"id"`
	Caption       string `json:"caption"`
	MediaType     string `json:"media_type"`
	MediaURL      string `json:"media_url"`
	Permalink     string `json:"permalink"`
	Timestamp     string `json:"timestamp"`
	LikeCount     int    `json:"like_count"`
	CommentsCount int    `json:"comments_count"`
}

func (p instagramMediaPayload) toDomain() social.Post {
	post := social.Post{
		ExternalID:   p.ID,
		Caption:      p.Caption,
		MediaType:    social.MediaType(p.MediaType),
		MediaURL:     p.MediaURL,
		Permalink:    p.Permalink,
		LikeCount:    p.LikeCount,
		CommentCount: p.CommentsCount,
	}

	if p.Timestamp != "" {
		if postedAt, ok := parseInstagramTime(p.Timestamp); ok {
			post.PostedAt = &postedAt
		}
	}

	return post
}

// parseInstagramTime accepts both RFC3339 and the Graph API's colonless
// offset form ("2025-05-01T10:00:00+0000").
func parseInstagramTime(value string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05-0700"} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// instagramMediaDetail is the single-media lookup used to resolve URLs for
// video and carousel posts whose listing omits media_url.
type instagramMediaDetail struct {
	MediaURL  string   `json:"media_url"`
	VideoData []string `json:"video_data"`
}

type instagramRefreshResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}
