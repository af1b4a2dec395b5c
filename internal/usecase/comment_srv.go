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

type CommentService interface {
	ListByReview(ctx context.Context, titleID, reviewID int64, path string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.CommentResponse], error)
	Get(ctx context.Context, titleID, reviewID, commentID int64) (*response.CommentResponse, error)
	Create(ctx context.Context, titleID, reviewID int64, actor Actor, req *request.CreateCommentRequest) (*response.CommentResponse, error)
	Update(ctx context.Context, titleID, reviewID, commentID int64, actor Actor, req *request.UpdateCommentRequest) (*response.CommentResponse, error)
	Delete(ctx context.Context, titleID, reviewID, commentID int64, actor Actor) error
}

type commentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCommentService(repo *repository.Repository, log *zap.Logger) CommentService {
	return &commentService{
		repo: repo,
		log:  log.With(zap.String("service", "comment")),
	}
}

func (s *commentService) ListByReview(ctx context.Context, titleID, reviewID int64, path string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.CommentResponse], error) {
	if _, err := s.requireReview(ctx, titleID, reviewID); err != nil {
		return nil, err
	}

	comments, err := s.repo.Comment.FindByReviewID(ctx, reviewID, page.Limit(), page.Offset())
	if err != nil {
		s.log.Error("Failed to list comments",
			zap.Error(err),
			zap.Int64("review_id", reviewID))
		return nil, err
	}

	total, err := s.repo.Comment.CountByReviewID(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	results := make([]response.CommentResponse, len(comments))
	for i, comment := range comments {
		results[i] = response.CommentToResponse(comment, s.authorUsername(ctx, comment.AuthorID))
	}

	return response.NewPaginatedResponse(results, path, page.Page, page.PageSize, total), nil
}

func (s *commentService) Get(ctx context.Context, titleID, reviewID, commentID int64) (*response.CommentResponse, error) {
	comment, err := s.requireComment(ctx, titleID, reviewID, commentID)
	if err != nil {
		return nil, err
	}

	resp := response.CommentToResponse(comment, s.authorUsername(ctx, comment.AuthorID))
	return &resp, nil
}

func (s *commentService) Create(ctx context.Context, titleID, reviewID int64, actor Actor, req *request.CreateCommentRequest) (*response.CommentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create comment validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}

	if _, err := s.requireReview(ctx, titleID, reviewID); err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		ReviewID: reviewID,
		AuthorID: actor.ID,
		Text:     req.Text,
		PubDate:  time.Now(),
	}

	if err := s.repo.Comment.Create(ctx, comment); err != nil {
		s.log.Error("Failed to create comment",
			zap.Error(err),
			zap.Int64("review_id", reviewID),
			zap.Int64("author_id", actor.ID))
		return nil, err
	}

	s.log.Info("Comment created",
		zap.Int64("comment_id", comment.ID),
		zap.Int64("review_id", reviewID),
		zap.Int64("author_id", actor.ID))

	resp := response.CommentToResponse(comment, actor.Username)
	return &resp, nil
}

func (s *commentService) Update(ctx context.Context, titleID, reviewID, commentID int64, actor Actor, req *request.UpdateCommentRequest) (*response.CommentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update comment validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}

	comment, err := s.requireComment(ctx, titleID, reviewID, commentID)
	if err != nil {
		return nil, err
	}

	if !CanModifyContent(actor, comment.AuthorID) {
		return nil, ErrForbidden
	}

	if req.Text != nil {
		comment.Text = *req.Text
	}

	if err := s.repo.Comment.Update(ctx, comment); err != nil {
		s.log.Error("Failed to update comment",
			zap.Error(err),
			zap.Int64("comment_id", commentID))
		return nil, err
	}

	s.log.Info("Comment updated",
		zap.Int64("comment_id", commentID),
		zap.Int64("actor_id", actor.ID))

	resp := response.CommentToResponse(comment, s.authorUsername(ctx, comment.AuthorID))
	return &resp, nil
}

func (s *commentService) Delete(ctx context.Context, titleID, reviewID, commentID int64, actor Actor) error {
	comment, err := s.requireComment(ctx, titleID, reviewID, commentID)
	if err != nil {
		return err
	}

	if !CanModifyContent(actor, comment.AuthorID) {
		return ErrForbidden
	}

	if err := s.repo.Comment.Delete(ctx, commentID); err != nil {
		s.log.Error("Failed to delete comment",
			zap.Error(err),
			zap.Int64("comment_id", commentID))
		return err
	}

	s.log.Info("Comment deleted",
		zap.Int64("comment_id", commentID),
		zap.Int64("actor_id", actor.ID))

	return nil
}

// ==================== HELPER METHODS ====================

func (s *commentService) requireReview(ctx context.Context, titleID, reviewID int64) (*entity.Review, error) {
	title, err := s.repo.Title.FindByID(ctx, titleID)
	if err != nil {
		return nil, err
	}
	if title == nil {
		return nil, NotFoundf("title %d", titleID)
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

func (s *commentService) requireComment(ctx context.Context, titleID, reviewID, commentID int64) (*entity.Comment, error) {
	if _, err := s.requireReview(ctx, titleID, reviewID); err != nil {
		return nil, err
	}

	comment, err := s.repo.Comment.FindByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil || comment.ReviewID != reviewID {
		return nil, NotFoundf("comment %d for review %d", commentID, reviewID)
	}

	return comment, nil
}

func (s *commentService) authorUsername(ctx context.Context, authorID int64) string {
	user, err := s.repo.User.FindByID(ctx, authorID)
	if err != nil || user == nil {
		return ""
	}
	return user.Username
}
