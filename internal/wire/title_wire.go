package wire

import (
	"review-platform/internal/adaptor"
	"review-platform/pkg/middleware"
	"review-platform/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireTitle configures title routes: reads are public, writes are
// admin-only
func wireTitle(r chi.Router, titleHandler *adaptor.TitleHandler, tokens token.Manager, log *zap.Logger) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/v1/titles", titleHandler.ListTitles)
	r.Get("/api/v1/titles/{title_id}", titleHandler.GetTitle)

	// ==================== ADMIN ROUTES ====================
	r.With(
		middleware.Authenticate(tokens, log),
		middleware.Admin(log),
	).Group(func(r chi.Router) {
		r.Post("/api/v1/titles", titleHandler.CreateTitle)
		r.Patch("/api/v1/titles/{title_id}", titleHandler.UpdateTitle)
		r.Delete("/api/v1/titles/{title_id}", titleHandler.DeleteTitle)
	})
}
