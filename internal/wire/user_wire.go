package wire

import (
	"review-platform/internal/adaptor"
	"review-platform/pkg/middleware"
	"review-platform/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireUser configures user management routes with role-based access control
func wireUser(r chi.Router, userHandler *adaptor.UserHandler, tokens token.Manager, log *zap.Logger) {
	// ==================== SELF-SERVICE ROUTES ====================
	// The static /users/me segment wins over /users/{username}, so "me"
	// never resolves as a username lookup.
	r.With(middleware.Authenticate(tokens, log)).Group(func(r chi.Router) {
		r.Get("/api/v1/users/me", userHandler.GetMe)
		r.Patch("/api/v1/users/me", userHandler.UpdateMe)
	})

	// ==================== ADMIN ROUTES ====================
	// Registered on the shared routing tree so unsupported methods answer
	// 405 before the auth middleware runs.
	r.With(
		middleware.Authenticate(tokens, log),
		middleware.Admin(log),
	).Group(func(r chi.Router) {
		r.Get("/api/v1/users", userHandler.ListUsers)
		r.Post("/api/v1/users", userHandler.CreateUser)
		r.Get("/api/v1/users/{username}", userHandler.GetUser)
		r.Patch("/api/v1/users/{username}", userHandler.UpdateUser)
		r.Delete("/api/v1/users/{username}", userHandler.DeleteUser)
	})
}
