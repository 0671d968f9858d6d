package wire

import (
	"review-listing/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler) {
	r.Route("/api/reviews", func(r chi.Router) {
		// GET /api/reviews - Filtered, paginated listing
		r.Get("/", reviewHandler.ListReviews)

		// GET /api/reviews/top - Newest reviews above the rating threshold
		r.Get("/top", reviewHandler.ListTopReviews)

		// GET /api/reviews/stats - Average rating and histogram
		r.Get("/stats", reviewHandler.GetReviewStats)

		r.Post("/", reviewHandler.CreateReview)
		r.Get("/{id}", reviewHandler.GetReview)
		r.Put("/{id}", reviewHandler.UpdateReview)
		r.Delete("/{id}", reviewHandler.DeleteReview)
	})
}
