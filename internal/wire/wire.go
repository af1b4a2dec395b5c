package wire

import (
	"net/http"

	"review-platform/internal/adaptor"
	"review-platform/internal/data/repository"
	"review-platform/internal/usecase"
	"review-platform/pkg/middleware"
	"review-platform/pkg/token"
	"review-platform/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface.
type App struct {
	Router *chi.Mux
}

// Wiring assembles services, handlers, and routes.
func Wiring(repo *repository.Repository, tokens token.Manager, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, tokens, config, logger)
	handler := adaptor.NewHandler(service, config.App.StaticDir, logger)

	router := setupRouter(handler, tokens, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, tokens token.Manager, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	// The write verb for every resource is PATCH; a PUT (or any other
	// unmapped verb) on a known path answers 405 with a detail body.
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		utils.ResponseMethodNotAllowed(w, req.Method)
	})
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		utils.ResponseNotFound(w, "Not found.")
	})

	// Apply routes
	wireAuth(r, handler.Auth)
	wireUser(r, handler.User, tokens, logger)
	wireCategory(r, handler.Category, tokens, logger)
	wireGenre(r, handler.Genre, tokens, logger)
	wireTitle(r, handler.Title, tokens, logger)
	wireReview(r, handler.Review, tokens, logger)
	wireComment(r, handler.Comment, tokens, logger)

	// API docs
	r.Get("/redoc/", handler.Docs.Redoc)
	r.Get("/redoc/openapi.yaml", handler.Docs.OpenAPISchema)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
