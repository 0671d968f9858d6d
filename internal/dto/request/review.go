package request

import "strings"

type CreateReviewRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Title    string `json:"title" validate:"required,max=255"`
	Rating   int    `json:"rating" validate:"required,min=1"`
	Comments string `json:"comments,omitempty" validate:"max=5000"`
}

type UpdateReviewRequest struct {
	Rating   *int    `json:"rating,omitempty" validate:"omitempty,min=1"`
	Title    *string `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Comments *string `json:"comments,omitempty" validate:"omitempty,max=5000"`
}

// Normalize trims surrounding whitespace so that blank values fail "required"
func (r *CreateReviewRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Title = strings.TrimSpace(r.Title)
	r.Comments = strings.TrimSpace(r.Comments)
}

// Normalize trims the provided text fields
func (r *UpdateReviewRequest) Normalize() {
	trimPtr(r.Title)
	trimPtr(r.Comments)
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}

// ListReviewsRequest filters and sorts the paginated listing
type ListReviewsRequest struct {
	PaginatedRequest
	MinRating int    `json:"min_rating" validate:"min=0"`
	Username  string `json:"username" validate:"max=64"`
	Query     string `json:"q" validate:"max=255"`
	Sort      string `json:"sort" validate:"omitempty,oneof=posted_on rating"`
	Order     string `json:"order" validate:"omitempty,oneof=asc desc"`
}
