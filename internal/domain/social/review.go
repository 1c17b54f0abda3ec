package social

import (
	"time"

	"github.com/shopspring/decimal"
)

// Review is a normalized Google Business Profile review cached locally.
// ExternalID is the review identifier assigned by Google and is the upsert key.
type Review struct {
	ID             uint
	ExternalID     string
	AuthorName     string
	AuthorPhotoURL string
	// Rating is the star rating normalized to 1..5; 0 means the upstream
	// value was not recognized
	Rating       int
	Comment      string
	ReplyComment string
	ReplyTime    *time.Time
	// ReviewedAt is when the review was written on Google
	ReviewedAt time.Time
	// ReviewUpdatedAt is when the review last changed on Google
	ReviewUpdatedAt time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// AverageRating returns the mean star rating rounded to one decimal place.
// An empty slice yields 0.
func AverageRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}

	avg := decimal.NewFromInt(int64(sum)).
		Div(decimal.NewFromInt(int64(len(reviews)))).
		Round(1)
	f, _ := avg.Float64()
	return f
}

// RatingDistribution returns a histogram over star values. All five buckets
// are always present, defaulting to 0. Reviews with an unrecognized rating
// (normalized to 0) fall outside the 1..5 buckets and are not counted.
func RatingDistribution(reviews []Review) map[int]int {
	distribution := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}

	for _, r := range reviews {
		if r.Rating >= 1 && r.Rating <= 5 {
			distribution[r.Rating]++
		}
	}

	return distribution
}
