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

type ReviewService interface {
	ListByTitle(ctx context.Context, titleID int64, path string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error)
	Get(ctx context.Context, titleID, reviewID int64) (*response.ReviewResponse, error)
	Create(ctx context.Context, titleID int64, actor Actor, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	Update(ctx context.Context, titleID, reviewID int64, actor Actor, req *request.UpdateReviewRequest) (*response.ReviewResponse, error)
	Delete(ctx context.Context, titleID, reviewID int64, actor Actor) error
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) ListByTitle(ctx context.Context, titleID int64, path string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	if _, err := s.requireTitle(ctx, titleID); err != nil {
		return nil, err
	}

	reviews, err := s.repo.Review.FindByTitleID(ctx, titleID, page.Limit(), page.Offset())
	if err != nil {
		s.log.Error("Failed to list reviews",
			zap.Error(err),
			zap.Int64("title_id", titleID))
		return nil, err
	}

	total, err := s.repo.Review.CountByTitleID(ctx, titleID)
	if err != nil {
		return nil, err
	}

	results := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		results[i] = response.ReviewToResponse(review, s.authorUsername(ctx, review.AuthorID))
	}

	return response.NewPaginatedResponse(results, path, page.Page, page.PageSize, total), nil
}

func (s *reviewService) Get(ctx context.Context, titleID, reviewID int64) (*response.ReviewResponse, error) {
	review, err := s.requireReview(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	resp := response.ReviewToResponse(review, s.authorUsername(ctx, review.AuthorID))
	return &resp, nil
}

func (s *reviewService) Create(ctx context.Context, titleID int64, actor Actor, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}

	if _, err := s.requireTitle(ctx, titleID); err != nil {
		return nil, err
	}

	// One review per user per title
	existing, err := s.repo.Review.FindByAuthorAndTitle(ctx, actor.ID, titleID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, FieldError("title", "You have already reviewed this title.")
	}

	review := &entity.Review{
		TitleID:  titleID,
		AuthorID: actor.ID,
		Text:     req.Text,
		Score:    req.Score,
		PubDate:  time.Now(),
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.Int64("title_id", titleID),
			zap.Int64("author_id", actor.ID))
		return nil, err
	}

	s.log.Info("Review created",
		zap.Int64("review_id", review.ID),
		zap.Int64("title_id", titleID),
		zap.Int64("author_id", actor.ID),
		zap.Int("score", req.Score))

	resp := response.ReviewToResponse(review, actor.Username)
	return &resp, nil
}

func (s *reviewService) Update(ctx context.Context, titleID, reviewID int64, actor Actor, req *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update review validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}

	review, err := s.requireReview(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	if !CanModifyContent(actor, review.AuthorID) {
		return nil, ErrForbidden
	}

	if req.Text != nil {
		review.Text = *req.Text
	}
	if req.Score != nil {
		review.Score = *req.Score
	}

	if err := s.repo.Review.Update(ctx, review); err != nil {
		s.log.Error("Failed to update review",
			zap.Error(err),
			zap.Int64("review_id", reviewID))
		return nil, err
	}

	s.log.Info("Review updated",
		zap.Int64("review_id", reviewID),
		zap.Int64("actor_id", actor.ID))

	resp := response.ReviewToResponse(review, s.authorUsername(ctx, review.AuthorID))
	return &resp, nil
}

func (s *reviewService) Delete(ctx context.Context, titleID, reviewID int64, actor Actor) error {
	review, err := s.requireReview(ctx, titleID, reviewID)
	if err != nil {
		return err
	}

	if !CanModifyContent(actor, review.AuthorID) {
		return ErrForbidden
	}

	if err := s.repo.Review.Delete(ctx, reviewID); err != nil {
		s.log.Error("Failed to delete review",
			zap.Error(err),
			zap.Int64("review_id", reviewID))
		return err
	}

	s.log.Info("Review deleted",
		zap.Int64("review_id", reviewID),
		zap.Int64("actor_id", actor.ID))

	return nil
}

// ==================== HELPER METHODS ====================

func (s *reviewService) requireTitle(ctx context.Context, titleID int64) (*entity.Title, error) {
	title, err := s.repo.Title.FindByID(ctx, titleID)
	if err != nil {
		return nil, err
	}
	if title == nil {
		return nil, NotFoundf("title %d", titleID)
	}
	return title, nil
}

// requireReview resolves a review within its title scope: a review id
// under the wrong title is a 404.
func (s *reviewService) requireReview(ctx context.Context, titleID, reviewID int64) (*entity.Review, error) {
	if _, err := s.requireTitle(ctx, titleID); err != nil {
		return nil, err
	}

	review, err := s.repo.Review.FindByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review == nil || review.TitleID != titleID {
		return nil, NotFoundf("review %d for title %d", reviewID, titleID)
	}

	return review, nil
}

func (s *reviewService) authorUsername(ctx context.Context, authorID int64) string {
	user, err := s.repo.User.FindByID(ctx, authorID)
	if err != nil || user == nil {
		return ""
	}
	return user.Username
}
