package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"review-platform/internal/data/repository"
	"review-platform/internal/dto/request"
	"review-platform/internal/usecase"
	"review-platform/pkg/utils"

	"go.uber.org/zap"
)

type TitleHandler struct {
	service usecase.TitleService
	log     *zap.Logger
}

func NewTitleHandler(service usecase.TitleService, log *zap.Logger) *TitleHandler {
	return &TitleHandler{
		service: service,
		log:     log.With(zap.String("handler", "title")),
	}
}

// ListTitles handles GET /api/v1/titles (public).
// Filters: ?category=<slug>&genre=<slug>&name=<substring>&year=<n>,
// all combinable.
func (h *TitleHandler) ListTitles(w http.ResponseWriter, r *http.Request) {
	page := request.PaginationFromQuery(r)
	query := r.URL.Query()

	filter := repository.TitleFilter{
		CategorySlug: query.Get("category"),
		GenreSlug:    query.Get("genre"),
		Name:         query.Get("name"),
	}
	if raw := query.Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid year filter")
			return
		}
		filter.Year = &year
	}

	titles, err := h.service.List(r.Context(), filter, r.URL.Path, page)
	if err != nil {
		writeServiceError(w, h.log, err, "list titles")
		return
	}

	utils.ResponseSuccess(w, titles)
}

// GetTitle handles GET /api/v1/titles/{title_id} (public)
func (h *TitleHandler) GetTitle(w http.ResponseWriter, r *http.Request) {
	titleID, ok := idParam(r, "title_id")
	if !ok {
		utils.ResponseNotFound(w, "Not found.")
		return
	}

	title, err := h.service.Get(r.Context(), titleID)
	if err != nil {
		writeServiceError(w, h.log, err, "get title")
		return
	}

	utils.ResponseSuccess(w, title)
}

// CreateTitle handles POST /api/v1/titles (admin)
func (h *TitleHandler) CreateTitle(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTitleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	title, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create title")
		return
	}

	utils.ResponseCreated(w, title)
}

// UpdateTitle handles PATCH /api/v1/titles/{title_id} (admin)
func (h *TitleHandler) UpdateTitle(w http.ResponseWriter, r *http.Request) {
	titleID, ok := idParam(r, "title_id")
	if !ok {
		utils.ResponseNotFound(w, "Not found.")
		return
	}

	var req request.UpdateTitleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	title, err := h.service.Update(r.Context(), titleID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update title")
		return
	}

	utils.ResponseSuccess(w, title)
}

// DeleteTitle handles DELETE /api/v1/titles/{title_id} (admin)
func (h *TitleHandler) DeleteTitle(w http.ResponseWriter, r *http.Request) {
	titleID, ok := idParam(r, "title_id")
	if !ok {
		utils.ResponseNotFound(w, "Not found.")
		return
	}

	if err := h.service.Delete(r.Context(), titleID); err != nil {
		writeServiceError(w, h.log, err, "delete title")
		return
	}

	utils.ResponseNoContent(w)
}
