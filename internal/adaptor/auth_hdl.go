package adaptor

import (
	"encoding/json"
	"net/http"

	"review-platform/internal/dto/request"
	"review-platform/internal/usecase"
	"review-platform/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// SignUp handles POST /api/v1/auth/signup (public)
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req request.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	resp, err := h.service.SignUp(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "sign up")
		return
	}

	// Signup answers 200, not 201: re-requesting a code for an existing
	// account goes through the same endpoint.
	utils.ResponseSuccess(w, resp)
}

// Token handles POST /api/v1/auth/token (public)
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req request.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	resp, err := h.service.Token(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "issue token")
		return
	}

	utils.ResponseSuccess(w, resp)
}
