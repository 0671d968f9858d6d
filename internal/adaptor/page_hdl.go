package adaptor

import (
	"net/http"

	"review-listing/internal/usecase"
	"review-listing/internal/view"
	"review-listing/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// PageHandler serves the server-rendered review pages
type PageHandler struct {
	templateController
	service usecase.ReviewService
	cfg     utils.ReviewConfig
}

func NewPageHandler(service usecase.ReviewService, views *view.Manager, config *utils.Config, log *zap.Logger) *PageHandler {
	site := config.App.Name
	h := &PageHandler{
		service: service,
		cfg:     config.Review,
	}
	h.templateController = templateController{
		views:  views,
		layout: DefaultLayout,
		log:    log.With(zap.String("handler", "page")),
		vars: func(r *http.Request, content *view.View) map[string]any {
			vars := map[string]any{"site": site}
			if title, ok := content.Get("title"); ok {
				vars["title"] = title
			}
			return vars
		},
	}
	return h
}

// Index lists the top reviews, GET /reviews
func (h *PageHandler) Index(r *http.Request) (*view.View, error) {
	reviews, err := h.service.ListTopReviews(r.Context())
	if err != nil {
		return nil, err
	}

	stats, err := h.service.GetReviewStats(r.Context())
	if err != nil {
		return nil, err
	}

	return view.New("reviews/index").
		Set("title", "Top reviews").
		Set("reviews", reviews).
		Set("stats", stats).
		Set("min_rating", h.cfg.MinRating).
		Set("max_rating", h.cfg.MaxRating), nil
}

// Show renders one review, GET /reviews/{id}
func (h *PageHandler) Show(r *http.Request) (*view.View, error) {
	review, err := h.service.GetReview(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return nil, err
	}

	return view.New("reviews/show").
		Set("title", review.Title).
		Set("review", review).
		Set("max_rating", h.cfg.MaxRating), nil
}

// NotFound renders the error page for unknown routes
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.renderError(w, r, http.StatusNotFound, errRouteNotFound)
}
