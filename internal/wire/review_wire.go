package wire

import (
	"review-platform/internal/adaptor"
	"review-platform/pkg/middleware"
	"review-platform/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireReview configures the review routes nested under a title. Reads
// are public; creating takes any authenticated user, while updates and
// deletes are checked against the author/moderator/admin rule in the
// service layer.
func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler, tokens token.Manager, log *zap.Logger) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/v1/titles/{title_id}/reviews", reviewHandler.ListReviews)
	r.Get("/api/v1/titles/{title_id}/reviews/{review_id}", reviewHandler.GetReview)

	// ==================== PROTECTED ROUTES ====================
	r.With(middleware.Authenticate(tokens, log)).Group(func(r chi.Router) {
		r.Post("/api/v1/titles/{title_id}/reviews", reviewHandler.CreateReview)
		r.Patch("/api/v1/titles/{title_id}/reviews/{review_id}", reviewHandler.UpdateReview)
		r.Delete("/api/v1/titles/{title_id}/reviews/{review_id}", reviewHandler.DeleteReview)
	})
}
