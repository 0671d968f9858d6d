package response

import (
	"strconv"
	"time"

	"review-listing/internal/data/entity"
)

type ReviewResponse struct {
	ID       uint      `json:"id"`
	PostedOn time.Time `json:"posted_on"`
	Rating   int       `json:"rating"`
	Username string    `json:"username"`
	Title    string    `json:"title"`
	Comments string    `json:"comments,omitempty"`
}

// Path is the page URL of the review
func (r ReviewResponse) Path() string {
	return "/reviews/" + strconv.FormatUint(uint64(r.ID), 10)
}

type ReviewStats struct {
	AverageRating float64        `json:"average_rating"`
	ReviewCount   int64          `json:"review_count"`
	Histogram     []RatingBucket `json:"histogram"`
}

// RatingBucket counts the reviews with one rating. Histograms list them in
// ascending rating order.
type RatingBucket struct {
	Rating int   `json:"rating"`
	Count  int64 `json:"count"`
}

// Helper converter
func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:       review.ID,
		PostedOn: review.PostedOn,
		Rating:   review.Rating,
		Username: review.Username,
		Title:    review.Title,
		Comments: review.Comments,
	}
}

func ReviewsToResponse(reviews []*entity.Review) []ReviewResponse {
	out := make([]ReviewResponse, len(reviews))
	for i, review := range reviews {
		out[i] = ReviewToResponse(review)
	}
	return out
}
