package utils

import (
	"encoding/json"
	"net/http"
)

// DetailResponse mirrors the error body shape the API promises to clients:
// {"detail": "..."} for everything but field validation failures.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// ResponseJSON writes any payload with the given status code.
func ResponseJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusOK, data)
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusCreated, data)
}

// returns 204 No Content
func ResponseNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// ------------- Error responses -------------

// returns 400 Bad Request with a detail message
func ResponseBadRequest(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusBadRequest, DetailResponse{Detail: message})
}

// returns 400 Bad Request with per-field messages:
// {"score": ["Must be between 1 and 10"]}
func ResponseValidationError(w http.ResponseWriter, fields map[string][]string) {
	ResponseJSON(w, http.StatusBadRequest, fields)
}

// returns 401 Unauthorized
func ResponseUnauthorized(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusUnauthorized, DetailResponse{Detail: message})
}

// returns 403 Forbidden
func ResponseForbidden(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusForbidden, DetailResponse{Detail: message})
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusNotFound, DetailResponse{Detail: message})
}

// returns 405 Method Not Allowed
func ResponseMethodNotAllowed(w http.ResponseWriter, method string) {
	ResponseJSON(w, http.StatusMethodNotAllowed,
		DetailResponse{Detail: "Method \"" + method + "\" not allowed."})
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusInternalServerError, DetailResponse{Detail: message})
}
