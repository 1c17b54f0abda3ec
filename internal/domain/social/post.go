package social

import "time"

// MediaType is the Instagram media kind of a post.
type MediaType string

const (
	MediaTypeImage    MediaType = "IMAGE"
	MediaTypeVideo    MediaType = "VIDEO"
	MediaTypeCarousel MediaType = "CAROUSEL_ALBUM"
)

// IsValid returns true if the media type is one Instagram reports
func (t MediaType) IsValid() bool {
	switch t {
	case MediaTypeImage, MediaTypeVideo, MediaTypeCarousel:
		return true
	default:
		return false
	}
}

// NeedsResolvedURL returns true for media kinds whose listing payload may
// omit the media URL. Image posts always carry theirs.
func (t MediaType) NeedsResolvedURL() bool {
	return t == MediaTypeVideo || t == MediaTypeCarousel
}

// String returns the string representation of MediaType
func (t MediaType) String() string {
	return string(t)
}

// Post is a normalized Instagram media post cached locally.
// ExternalID is the media identifier assigned by Instagram and is the
// upsert key.
type Post struct {
	ID         uint
	ExternalID string
	Caption    string
	MediaType  MediaType
	// MediaURL is the Instagram CDN URL of the media, resolved separately
	// for video and carousel posts when the listing omits it
	MediaURL  string
	Permalink string
	// PostedAt is the publish time reported by Instagram
	PostedAt     *time.Time
	LikeCount    int
	CommentCount int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
