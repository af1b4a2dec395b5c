package adaptor

import (
	"errors"
	"net/http"
	"strconv"

	"review-platform/internal/usecase"
	"review-platform/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// writeServiceError maps usecase errors onto the wire. Services signal
// expected outcomes with sentinels and ValidationError; anything else is
// a 500 and the detail stays out of the response body.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var vErr *usecase.ValidationError

	switch {
	case errors.As(err, &vErr):
		log.Warn(operation+" rejected",
			zap.Any("fields", vErr.Fields))
		utils.ResponseValidationError(w, vErr.Fields)

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" target missing", zap.Error(err))
		utils.ResponseNotFound(w, "Not found.")

	case errors.Is(err, usecase.ErrForbidden):
		log.Warn(operation+" forbidden", zap.Error(err))
		utils.ResponseForbidden(w, "You do not have permission to perform this action.")

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// idParam reads a numeric chi URL parameter. A malformed id means the
// resource cannot exist, so the caller should answer 404, not 400.
func idParam(r *http.Request, name string) (int64, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// actorFromContext rebuilds the authenticated caller placed in the
// request context by the Authenticate middleware.
func actorFromContext(r *http.Request) (usecase.Actor, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return usecase.Actor{}, false
	}
	username, _ := utils.GetUsernameFromContext(r.Context())
	role, _ := utils.GetRoleFromContext(r.Context())

	return usecase.Actor{ID: userID, Username: username, Role: role}, true
}
