package usecase

import (
	"context"

	"review-platform/internal/data/entity"
	"review-platform/internal/data/repository"
	"review-platform/internal/dto/request"
	"review-platform/internal/dto/response"
	"review-platform/pkg/utils"

	"go.uber.org/zap"
)

type GenreService interface {
	List(ctx context.Context, search, path string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.GenreResponse], error)
	Create(ctx context.Context, req *request.CreateGenreRequest) (*response.GenreResponse, error)
	DeleteBySlug(ctx context.Context, slug string) error
}

type genreService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewGenreService(repo *repository.Repository, log *zap.Logger) GenreService {
	return &genreService{
		repo: repo,
		log:  log.With(zap.String("service", "genre")),
	}
}

func (s *genreService) List(ctx context.Context, search, path string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.GenreResponse], error) {
	genres, err := s.repo.Genre.List(ctx, search, page.Limit(), page.Offset())
	if err != nil {
		s.log.Error("Failed to list genres", zap.Error(err))
		return nil, err
	}

	total, err := s.repo.Genre.Count(ctx, search)
	if err != nil {
		return nil, err
	}

	results := make([]response.GenreResponse, len(genres))
	for i, genre := range genres {
		results[i] = response.GenreToResponse(genre)
	}

	return response.NewPaginatedResponse(results, path, page.Page, page.PageSize, total), nil
}

func (s *genreService) Create(ctx context.Context, req *request.CreateGenreRequest) (*response.GenreResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create genre validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}
	if slug == "" {
		return nil, FieldError("slug", "Could not derive a slug from the name.")
	}

	if existing, err := s.repo.Genre.FindBySlug(ctx, slug); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, FieldError("slug", "A genre with this slug already exists.")
	}

	genre := &entity.Genre{
		Name: req.Name,
		Slug: slug,
	}

	if err := s.repo.Genre.Create(ctx, genre); err != nil {
		s.log.Error("Failed to create genre",
			zap.Error(err),
			zap.String("slug", slug))
		return nil, err
	}

	s.log.Info("Genre created",
		zap.Int64("genre_id", genre.ID),
		zap.String("slug", genre.Slug))

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *genreService) DeleteBySlug(ctx context.Context, slug string) error {
	genre, err := s.repo.Genre.FindBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if genre == nil {
		return NotFoundf("genre %s", slug)
	}

	if err := s.repo.Genre.DeleteBySlug(ctx, slug); err != nil {
		s.log.Error("Failed to delete genre",
			zap.Error(err),
			zap.String("slug", slug))
		return err
	}

	return nil
}
