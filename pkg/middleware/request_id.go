package middleware

import (
	"net/http"

	"review-platform/pkg/utils"

	"github.com/google/uuid"
)

// RequestIDHeader carries the correlation id between client, proxies and
// the log stream.
const RequestIDHeader = "X-Request-ID"

// RequestID ensures each request has a correlation id: reuse the incoming
// header when present, otherwise mint a UUID. The id is stored in the
// request context and echoed back on the response.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			ctx := utils.SetRequestIDContext(r.Context(), requestID)
			w.Header().Set(RequestIDHeader, requestID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
