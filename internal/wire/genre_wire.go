package wire

import (
	"review-platform/internal/adaptor"
	"review-platform/pkg/middleware"
	"review-platform/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireGenre configures genre routes: reads are public, writes are
// admin-only
func wireGenre(r chi.Router, genreHandler *adaptor.GenreHandler, tokens token.Manager, log *zap.Logger) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/v1/genres", genreHandler.ListGenres)

	// ==================== ADMIN ROUTES ====================
	r.With(
		middleware.Authenticate(tokens, log),
		middleware.Admin(log),
	).Group(func(r chi.Router) {
		r.Post("/api/v1/genres", genreHandler.CreateGenre)
		r.Delete("/api/v1/genres/{slug}", genreHandler.DeleteGenre)
	})
}
