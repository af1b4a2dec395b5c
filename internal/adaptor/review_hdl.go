package adaptor

import (
	"encoding/json"
	"net/http"

	"review-platform/internal/dto/request"
	"review-platform/internal/usecase"
	"review-platform/pkg/utils"

	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// ListReviews handles GET /api/v1/titles/{title_id}/reviews (public)
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	titleID, ok := idParam(r, "title_id")
	if !ok {
		utils.ResponseNotFound(w, "Not found.")
		return
	}

	page := request.PaginationFromQuery(r)

	reviews, err := h.service.ListByTitle(r.Context(), titleID, r.URL.Path, page)
	if err != nil {
		writeServiceError(w, h.log, err, "list reviews")
		return
	}

	utils.ResponseSuccess(w, reviews)
}

// GetReview handles GET /api/v1/titles/{title_id}/reviews/{review_id} (public)
func (h *ReviewHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	titleID, ok := idParam(r, "title_id")
	if !ok {
		utils.ResponseNotFound(w, "Not found.")
		return
	}
	reviewID, ok := idParam(r, "review_id")
	if !ok {
		utils.ResponseNotFound(w, "Not found.")
		return
	}

	review, err := h.service.Get(r.Context(), titleID, reviewID)
	if err != nil {
		writeServiceError(w, h.log, err, "get review")
		return
	}

	utils.ResponseSuccess(w, review)
}

// CreateReview handles POST /api/v1/titles/{title_id}/reviews (authenticated)
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication credentials were not provided.")
		return
	}

	titleID, ok := idParam(r, "title_id")
	if !ok {
		utils.ResponseNotFound(w, "Not found.")
		return
	}

	var req request.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	review, err := h.service.Create(r.Context(), titleID, actor, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create review")
		return
	}

	utils.ResponseCreated(w, review)
}

// UpdateReview handles PATCH /api/v1/titles/{title_id}/reviews/{review_id}
// (author, moderator, or admin)
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication credentials were not provided.")
		return
	}

	titleID, ok := idParam(r, "title_id")
	if !ok {
		utils.ResponseNotFound(w, "Not found.")
		return
	}
	reviewID, ok := idParam(r, "review_id")
	if !ok {
		utils.ResponseNotFound(w, "Not found.")
		return
	}

	var req request.UpdateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	review, err := h.service.Update(r.Context(), titleID, reviewID, actor, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update review")
		return
	}

	utils.ResponseSuccess(w, review)
}

// DeleteReview handles DELETE /api/v1/titles/{title_id}/reviews/{review_id}
// (author, moderator, or admin)
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication credentials were not provided.")
		return
	}

	titleID, ok := idParam(r, "title_id")
	if !ok {
		utils.ResponseNotFound(w, "Not found.")
		return
	}
	reviewID, ok := idParam(r, "review_id")
	if !ok {
		utils.ResponseNotFound(w, "Not found.")
		return
	}

	if err := h.service.Delete(r.Context(), titleID, reviewID, actor); err != nil {
		writeServiceError(w, h.log, err, "delete review")
		return
	}

	utils.ResponseNoContent(w)
}
