package adaptor

import (
	"review-listing/internal/usecase"
	"review-listing/internal/view"
	"review-listing/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Review *ReviewHandler
	Page   *PageHandler
}

func NewHandler(service *usecase.Service, views *view.Manager, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Review: NewReviewHandler(service.Review, log),
		Page:   NewPageHandler(service.Review, views, config, log),
	}
}
