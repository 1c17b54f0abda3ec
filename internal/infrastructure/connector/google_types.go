package connector

import (
	"time"

	"github.com/helenrojas261991-debug/home-services-florida/internal/domain/social"
)

// googleAccountsResponse is the wire shape of GET /accounts. Accounts is a
// pointer so a response that omits the field entirely can be told apart
// from one carrying an empty array; token validation needs the field to be
// present, not populated.
type googleAccountsResponse struct {
	Accounts *[]googleAccount `json:"accounts"`
}

type googleAccount struct {
	Name        string `json:"name"`
	AccountID   string `json:"accountId"`
	AccountName string `json:"accountName"`
}

type googleLocationsResponse struct {
	Locations []googleLocationPayload `json:"locations"`
}

type googleLocationPayload struct {
	Name              string `json:"name"`
	DisplayName       string `json:"displayName"`
	PrimaryPhone      string `json:"primaryPhone"`
	PrimaryWebsiteURL string `json:"primaryWebsiteUrl"`
}

func (p googleLocationPayload) toDomain() social.GoogleLocation {
	return social.GoogleLocation{
		Name:              p.Name,
		DisplayName:       p.DisplayName,
		PrimaryPhone:      p.PrimaryPhone,
		PrimaryWebsiteURL: p.PrimaryWebsiteURL,
	}
}

type googleReviewsResponse struct {
	Reviews []googleReviewPayload `json:"reviews"`
}

type googleReviewPayload struct {
	Name        string               `json:"name"`
	ReviewID    string               `json:"reviewId"`
	Reviewer    googleReviewer       `json:"reviewer"`
	ReviewReply *googleReviewReply   `json:"reviewReply,omitempty"`
	StarRating  string               `json:"starRating"`
	Comment     string               `json:"comment"`
	CreateTime  time.Time            `json:"createTime"`
	UpdateTime  time.Time            `json:"updateTime"`
}

type googleReviewer struct {
	DisplayName     string `json:"displayName"`
	ProfilePhotoURL string `json:"profilePhotoUrl"`
}

type googleReviewReply struct {
	Comment    string    `json:"comment"`
	UpdateTime time.Time `json:"updateTime"`
}

// starRatingValues maps the API's star enum to its numeric value. Anything
// unrecognized maps to 0 and is excluded from rating aggregates.
var starRatingValues = map[string]int{
	"ONE":   1,
	"TWO":   2,
	"THREE": 3,
	"FOUR":  4,
	"FIVE":  5,
}

// StarRatingValue converts the API star enum to a number, 0 when unknown
func StarRatingValue(rating string) int {
	return starRatingValues[rating]
}

func (p googleReviewPayload) toDomain() social.Review {
	review := social.Review{
		ExternalID:      p.ReviewID,
		AuthorName:      p.Reviewer.DisplayName,
		AuthorPhotoURL:  p.Reviewer.ProfilePhotoURL,
		Rating:          StarRatingValue(p.StarRating),
		Comment:         p.Comment,
		ReviewedAt:      p.CreateTime,
		ReviewUpdatedAt: p.UpdateTime,
	}

	if p.ReviewReply != nil {
		review.ReplyComment = p.ReviewReply.Comment
		replyTime := p.ReviewReply.UpdateTime
		review.ReplyTime = &replyTime
	}

	return review
}
