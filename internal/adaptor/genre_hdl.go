package adaptor

import (
	"encoding/json"
	"net/http"

	"review-platform/internal/dto/request"
	"review-platform/internal/usecase"
	"review-platform/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type GenreHandler struct {
	service usecase.GenreService
	log     *zap.Logger
}

func NewGenreHandler(service usecase.GenreService, log *zap.Logger) *GenreHandler {
	return &GenreHandler{
		service: service,
		log:     log.With(zap.String("handler", "genre")),
	}
}

// ListGenres handles GET /api/v1/genres (public)
func (h *GenreHandler) ListGenres(w http.ResponseWriter, r *http.Request) {
	page := request.PaginationFromQuery(r)
	search := r.URL.Query().Get("search")

	genres, err := h.service.List(r.Context(), search, r.URL.Path, page)
	if err != nil {
		writeServiceError(w, h.log, err, "list genres")
		return
	}

	utils.ResponseSuccess(w, genres)
}

// CreateGenre handles POST /api/v1/genres (admin)
func (h *GenreHandler) CreateGenre(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGenreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	genre, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create genre")
		return
	}

	utils.ResponseCreated(w, genre)
}

// DeleteGenre handles DELETE /api/v1/genres/{slug} (admin)
func (h *GenreHandler) DeleteGenre(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	if err := h.service.DeleteBySlug(r.Context(), slug); err != nil {
		writeServiceError(w, h.log, err, "delete genre")
		return
	}

	utils.ResponseNoContent(w)
}
