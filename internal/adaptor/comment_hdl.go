package adaptor

import (
	"encoding/json"
	"net/http"

	"review-platform/internal/dto/request"
	"review-platform/internal/usecase"
	"review-platform/pkg/utils"

	"go.uber.org/zap"
)

type CommentHandler struct {
	service usecase.CommentService
	log     *zap.Logger
}

func NewCommentHandler(service usecase.CommentService, log *zap.Logger) *CommentHandler {
	return &CommentHandler{
		service: service,
		log:     log.With(zap.String("handler", "comment")),
	}
}

// commentScope pulls the three nested ids out of the URL. Any malformed
// id is answered as 404 by the caller.
func commentScope(r *http.Request) (titleID, reviewID int64, ok bool) {
	titleID, ok = idParam(r, "title_id")
	if !ok {
		return 0, 0, false
	}
	reviewID, ok = idParam(r, "review_id")
	if !ok {
		return 0, 0, false
	}
	return titleID, reviewID, true
}

// ListComments handles GET /api/v1/titles/{title_id}/reviews/{review_id}/comments (public)
func (h *CommentHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	titleID, reviewID, ok := commentScope(r)
	if !ok {
		utils.ResponseNotFound(w, "Not found.")
		return
	}

	page := request.PaginationFromQuery(r)

	comments, err := h.service.ListByReview(r.Context(), titleID, reviewID, r.URL.Path, page)
	if err != nil {
		writeServiceError(w, h.log, err, "list comments")
		return
	}

	utils.ResponseSuccess(w, comments)
}

// GetComment handles GET .../comments/{comment_id} (public)
func (h *CommentHandler) GetComment(w http.ResponseWriter, r *http.Request) {
	titleID, reviewID, ok := commentScope(r)
	if !ok {
		utils.ResponseNotFound(w, "Not found.")
		return
	}
	commentID, ok := idParam(r, "comment_id")
	if !ok {
		utils.ResponseNotFound(w, "Not found.")
		return
	}

	comment, err := h.service.Get(r.Context(), titleID, reviewID, commentID)
	if err != nil {
		writeServiceError(w, h.log, err, "get comment")
		return
	}

	utils.ResponseSuccess(w, comment)
}

// CreateComment handles POST .../comments (authenticated)
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication credentials were not provided.")
		return
	}

	titleID, reviewID, ok := commentScope(r)
	if !ok {
		utils.ResponseNotFound(w, "Not found.")
		return
	}

	var req request.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	comment, err := h.service.Create(r.Context(), titleID, reviewID, actor, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create comment")
		return
	}

	utils.ResponseCreated(w, comment)
}

// UpdateComment handles PATCH .../comments/{comment_id}
// (author, moderator, or admin)
func (h *CommentHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication credentials were not provided.")
		return
	}

	titleID, reviewID, ok := commentScope(r)
	if !ok {
		utils.ResponseNotFound(w, "Not found.")
		return
	}
	commentID, ok := idParam(r, "comment_id")
	if !ok {
		utils.ResponseNotFound(w, "Not found.")
		return
	}

	var req request.UpdateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	comment, err := h.service.Update(r.Context(), titleID, reviewID, commentID, actor, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update comment")
		return
	}

	utils.ResponseSuccess(w, comment)
}

// DeleteComment handles DELETE .../comments/{comment_id}
// (author, moderator, or admin)
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication credentials were not provided.")
		return
	}

	titleID, reviewID, ok := commentScope(r)
	if !ok {
		utils.ResponseNotFound(w, "Not found.")
		return
	}
	commentID, ok := idParam(r, "comment_id")
	if !ok {
		utils.ResponseNotFound(w, "Not found.")
		return
	}

	if err := h.service.Delete(r.Context(), titleID, reviewID, commentID, actor); err != nil {
		writeServiceError(w, h.log, err, "delete comment")
		return
	}

	utils.ResponseNoContent(w)
}
