package wire

import (
	"review-platform/internal/adaptor"
	"review-platform/pkg/middleware"
	"review-platform/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireCategory configures category routes: reads are public, writes are
// admin-only
func wireCategory(r chi.Router, categoryHandler *adaptor.CategoryHandler, tokens token.Manager, log *zap.Logger) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/v1/categories", categoryHandler.ListCategories)

	// ==================== ADMIN ROUTES ====================
	r.With(
		middleware.Authenticate(tokens, log),
		middleware.Admin(log),
	).Group(func(r chi.Router) {
		r.Post("/api/v1/categories", categoryHandler.CreateCategory)
		r.Delete("/api/v1/categories/{slug}", categoryHandler.DeleteCategory)
	})
}
