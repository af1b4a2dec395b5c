package usecase

import (
	"context"
	"time"

	"review-platform/internal/data/entity"
	"review-platform/internal/data/repository"
	"review-platform/internal/dto/request"
	"review-platform/internal/dto/response"
	"review-platform/pkg/utils"

	"go.uber.org/zap"
)

type TitleService interface {
	List(ctx context.Context, filter repository.TitleFilter, path string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.TitleResponse], error)
	Get(ctx context.Context, titleID int64) (*response.TitleResponse, error)
	Create(ctx context.Context, req *request.CreateTitleRequest) (*response.TitleResponse, error)
	Update(ctx context.Context, titleID int64, req *request.UpdateTitleRequest) (*response.TitleResponse, error)
	Delete(ctx context.Context, titleID int64) error
}

type titleService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTitleService(repo *repository.Repository, log *zap.Logger) TitleService {
	return &titleService{
		repo: repo,
		log:  log.With(zap.String("service", "title")),
	}
}

func (s *titleService) List(ctx context.Context, filter repository.TitleFilter, path string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.TitleResponse], error) {
	titles, err := s.repo.Title.List(ctx, filter, page.Limit(), page.Offset())
	if err != nil {
		s.log.Error("Failed to list titles", zap.Error(err))
		return nil, err
	}

	total, err := s.repo.Title.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	results := make([]response.TitleResponse, len(titles))
	for i, title := range titles {
		resp, err := s.buildTitleResponse(ctx, title)
		if err != nil {
			return nil, err
		}
		results[i] = *resp
	}

	return response.NewPaginatedResponse(results, path, page.Page, page.PageSize, total), nil
}

func (s *titleService) Get(ctx context.Context, titleID int64) (*response.TitleResponse, error) {
	title, err := s.repo.Title.FindByID(ctx, titleID)
	if err != nil {
		return nil, err
	}
	if title == nil {
		return nil, NotFoundf("title %d", titleID)
	}

	return s.buildTitleResponse(ctx, title)
}

func (s *titleService) Create(ctx context.Context, req *request.CreateTitleRequest) (*response.TitleResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create title validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}

	if req.Year > time.Now().Year() {
		return nil, FieldError("year", "Year must be between 0 and the current year.")
	}

	category, err := s.repo.Category.FindBySlug(ctx, req.Category)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, FieldError("category", "Unknown category slug.")
	}

	genres, err := s.resolveGenres(ctx, req.Genre)
	if err != nil {
		return nil, err
	}

	title := &entity.Title{
		Name:        req.Name,
		Year:        req.Year,
		Description: req.Description,
		CategoryID:  &category.ID,
	}

	if err := s.repo.Title.Create(ctx, title); err != nil {
		s.log.Error("Failed to create title",
			zap.Error(err),
			zap.String("name", req.Name))
		return nil, err
	}

	for _, genre := range genres {
		if err := s.repo.TitleGenre.Add(ctx, title.ID, genre.ID); err != nil {
			return nil, err
		}
	}

	s.log.Info("Title created",
		zap.Int64("title_id", title.ID),
		zap.String("name", title.Name),
		zap.Int("genres", len(genres)))

	return s.buildTitleResponse(ctx, title)
}

func (s *titleService) Update(ctx context.Context, titleID int64, req *request.UpdateTitleRequest) (*response.TitleResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update title validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}
	// omitempty skips empty slices, so an explicit "genre": [] gets here;
	// a title always carries at least one genre.
	if req.Genre != nil && len(req.Genre) == 0 {
		return nil, FieldError("genre", "This list may not be empty.")
	}

	title, err := s.repo.Title.FindByID(ctx, titleID)
	if err != nil {
		return nil, err
	}
	if title == nil {
		return nil, NotFoundf("title %d", titleID)
	}

	if req.Name != nil {
		title.Name = *req.Name
	}
	if req.Year != nil {
		if *req.Year > time.Now().Year() {
			return nil, FieldError("year", "Year must be between 0 and the current year.")
		}
		title.Year = *req.Year
	}
	if req.Description != nil {
		title.Description = req.Description
	}
	if req.Category != nil {
		category, err := s.repo.Category.FindBySlug(ctx, *req.Category)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, FieldError("category", "Unknown category slug.")
		}
		title.CategoryID = &category.ID
	}

	if err := s.repo.Title.Update(ctx, title); err != nil {
		s.log.Error("Failed to update title",
			zap.Error(err),
			zap.Int64("title_id", titleID))
		return nil, err
	}

	if req.Genre != nil {
		genres, err := s.resolveGenres(ctx, req.Genre)
		if err != nil {
			return nil, err
		}

		genreIDs := make([]int64, len(genres))
		for i, genre := range genres {
			genreIDs[i] = genre.ID
		}

		if err := s.repo.TitleGenre.ReplaceForTitle(ctx, titleID, genreIDs); err != nil {
			return nil, err
		}
	}

	s.log.Info("Title updated", zap.Int64("title_id", titleID))

	return s.buildTitleResponse(ctx, title)
}

func (s *titleService) Delete(ctx context.Context, titleID int64) error {
	title, err := s.repo.Title.FindByID(ctx, titleID)
	if err != nil {
		return err
	}
	if title == nil {
		return NotFoundf("title %d", titleID)
	}

	if err := s.repo.Title.Delete(ctx, titleID); err != nil {
		s.log.Error("Failed to delete title",
			zap.Error(err),
			zap.Int64("title_id", titleID))
		return err
	}

	return nil
}

// ==================== HELPER METHODS ====================

func (s *titleService) resolveGenres(ctx context.Context, slugs []string) ([]*entity.Genre, error) {
	genres, err := s.repo.Genre.FindBySlugs(ctx, slugs)
	if err != nil {
		return nil, err
	}

	found := make(map[string]bool, len(genres))
	for _, genre := range genres {
		found[genre.Slug] = true
	}
	for _, slug := range slugs {
		if !found[slug] {
			return nil, FieldError("genre", "Unknown genre slug: "+slug)
		}
	}

	return genres, nil
}

func (s *titleService) buildTitleResponse(ctx context.Context, title *entity.Title) (*response.TitleResponse, error) {
	var category *entity.Category
	if title.CategoryID != nil {
		var err error
		category, err = s.repo.Category.FindByID(ctx, *title.CategoryID)
		if err != nil {
			return nil, err
		}
	}

	genres, err := s.repo.Genre.FindByTitleID(ctx, title.ID)
	if err != nil {
		return nil, err
	}

	resp := response.TitleToResponse(title, category, genres)
	return &resp, nil
}
