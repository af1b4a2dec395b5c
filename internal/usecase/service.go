package usecase

import (
	"review-platform/internal/data/repository"
	"review-platform/pkg/token"
	"review-platform/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	User     UserService
	Category CategoryService
	Genre    GenreService
	Title    TitleService
	Review   ReviewService
	Comment  CommentService
}

func NewService(repo *repository.Repository, tokens token.Manager, config *utils.Config, logger *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo, tokens, config, logger),
		User:     NewUserService(repo, logger),
		Category: NewCategoryService(repo, logger),
		Genre:    NewGenreService(repo, logger),
		Title:    NewTitleService(repo, logger),
		Review:   NewReviewService(repo, logger),
		Comment:  NewCommentService(repo, logger),
	}
}
