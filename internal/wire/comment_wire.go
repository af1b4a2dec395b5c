package wire

import (
	"review-platform/internal/adaptor"
	"review-platform/pkg/middleware"
	"review-platform/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireComment configures the comment routes nested under a review.
// Same access model as reviews.
func wireComment(r chi.Router, commentHandler *adaptor.CommentHandler, tokens token.Manager, log *zap.Logger) {
	base := "/api/v1/titles/{title_id}/reviews/{review_id}/comments"

	// ==================== PUBLIC ROUTES ====================
	r.Get(base, commentHandler.ListComments)
	r.Get(base+"/{comment_id}", commentHandler.GetComment)

	// ==================== PROTECTED ROUTES ====================
	r.With(middleware.Authenticate(tokens, log)).Group(func(r chi.Router) {
		r.Post(base, commentHandler.CreateComment)
		r.Patch(base+"/{comment_id}", commentHandler.UpdateComment)
		r.Delete(base+"/{comment_id}", commentHandler.DeleteComment)
	})
}
