package wire

import (
	"review-platform/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireAuth configures the public signup / token endpoints
func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	r.Post("/api/v1/auth/signup", authHandler.SignUp)
	r.Post("/api/v1/auth/token", authHandler.Token)
}
