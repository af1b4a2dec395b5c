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

type CategoryService interface {
	List(ctx context.Context, search, path string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.CategoryResponse], error)
	Create(ctx context.Context, req *request.CreateCategoryRequest) (*response.CategoryResponse, error)
	DeleteBySlug(ctx context.Context, slug string) error
}

type categoryService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCategoryService(repo *repository.Repository, log *zap.Logger) CategoryService {
	return &categoryService{
		repo: repo,
		log:  log.With(zap.String("service", "category")),
	}
}

func (s *categoryService) List(ctx context.Context, search, path string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.CategoryResponse], error) {
	categories, err := s.repo.Category.List(ctx, search, page.Limit(), page.Offset())
	if err != nil {
		s.log.Error("Failed to list categories", zap.Error(err))
		return nil, err
	}

	total, err := s.repo.Category.Count(ctx, search)
	if err != nil {
		return nil, err
	}

	results := make([]response.CategoryResponse, len(categories))
	for i, category := range categories {
		results[i] = response.CategoryToResponse(category)
	}

	return response.NewPaginatedResponse(results, path, page.Page, page.PageSize, total), nil
}

func (s *categoryService) Create(ctx context.Context, req *request.CreateCategoryRequest) (*response.CategoryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create category validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}
	if slug == "" {
		return nil, FieldError("slug", "Could not derive a slug from the name.")
	}

	if existing, err := s.repo.Category.FindBySlug(ctx, slug); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, FieldError("slug", "A category with this slug already exists.")
	}

	category := &entity.Category{
		Name: req.Name,
		Slug: slug,
	}

	if err := s.repo.Category.Create(ctx, category); err != nil {
		s.log.Error("Failed to create category",
			zap.Error(err),
			zap.String("slug", slug))
		return nil, err
	}

	s.log.Info("Category created",
		zap.Int64("category_id", category.ID),
		zap.String("slug", category.Slug))

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *categoryService) DeleteBySlug(ctx context.Context, slug string) error {
	category, err := s.repo.Category.FindBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if category == nil {
		return NotFoundf("category %s", slug)
	}

	if err := s.repo.Category.DeleteBySlug(ctx, slug); err != nil {
		s.log.Error("Failed to delete category",
			zap.Error(err),
			zap.String("slug", slug))
		return err
	}

	return nil
}
