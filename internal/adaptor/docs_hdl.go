package adaptor

import (
	"net/http"
	"os"
	"path/filepath"

	"review-platform/pkg/utils"

	"go.uber.org/zap"
)

// DocsHandler serves the ReDoc page and the OpenAPI document it loads,
// both read from the configured static directory.
type DocsHandler struct {
	staticDir string
	log       *zap.Logger
}

func NewDocsHandler(staticDir string, log *zap.Logger) *DocsHandler {
	return &DocsHandler{
		staticDir: staticDir,
		log:       log.With(zap.String("handler", "docs")),
	}
}

// Redoc handles GET /redoc/
func (h *DocsHandler) Redoc(w http.ResponseWriter, r *http.Request) {
	page, err := os.ReadFile(filepath.Join(h.staticDir, "redoc.html"))
	if err != nil {
		h.log.Error("Failed to read docs page", zap.Error(err))
		utils.ResponseInternalError(w, "Documentation is unavailable")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	// no-cache so doc edits show up without a restart cycle
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	w.Write(page)
}

// OpenAPISchema handles GET /redoc/openapi.yaml
func (h *DocsHandler) OpenAPISchema(w http.ResponseWriter, r *http.Request) {
	schema, err := os.ReadFile(filepath.Join(h.staticDir, "openapi.yaml"))
	if err != nil {
		h.log.Error("Failed to read OpenAPI schema", zap.Error(err))
		utils.ResponseInternalError(w, "Documentation is unavailable")
		return
	}

	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	w.Write(schema)
}
