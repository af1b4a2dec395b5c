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

type UserService interface {
	// Admin surface
	List(ctx context.Context, search, path string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	Create(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error)
	GetByUsername(ctx context.Context, username string) (*response.UserResponse, error)
	UpdateByUsername(ctx context.Context, username string, req *request.UpdateUserRequest) (*response.UserResponse, error)
	DeleteByUsername(ctx context.Context, username string) error

	// /users/me
	GetSelf(ctx context.Context, actor Actor) (*response.UserResponse, error)
	UpdateSelf(ctx context.Context, actor Actor, req *request.UpdateSelfRequest) (*response.UserResponse, error)
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) List(ctx context.Context, search, path string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	users, err := s.repo.User.List(ctx, search, page.Limit(), page.Offset())
	if err != nil {
		s.log.Error("Failed to list users", zap.Error(err), zap.String("search", search))
		return nil, err
	}

	total, err := s.repo.User.Count(ctx, search)
	if err != nil {
		return nil, err
	}

	results := make([]response.UserResponse, len(users))
	for i, user := range users {
		results[i] = response.UserToResponse(user)
	}

	return response.NewPaginatedResponse(results, path, page.Page, page.PageSize, total), nil
}

func (s *userService) Create(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create user validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}

	if existing, err := s.repo.User.FindByUsername(ctx, req.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, FieldError("username", "This username is already taken.")
	}

	if existing, err := s.repo.User.FindByEmail(ctx, req.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, FieldError("email", "A user with this email already exists.")
	}

	role := entity.RoleUser
	if req.Role != nil {
		role = entity.UserRole(*req.Role)
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		Role:      role,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("username", req.Username))
		return nil, err
	}

	s.log.Info("User created",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NotFoundf("user %s", username)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) UpdateByUsername(ctx context.Context, username string, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update user validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}

	user, err := s.repo.User.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NotFoundf("user %s", username)
	}

	if err := s.applyUserPatch(ctx, user, req.Username, req.Email); err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = req.FirstName
	}
	if req.LastName != nil {
		user.LastName = req.LastName
	}
	if req.Bio != nil {
		user.Bio = req.Bio
	}
	if req.Role != nil {
		user.Role = entity.UserRole(*req.Role)
	}

	user.UpdatedAt = time.Now()
	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to update user",
			zap.Error(err),
			zap.String("username", username))
		return nil, err
	}

	s.log.Info("User updated",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) DeleteByUsername(ctx context.Context, username string) error {
	user, err := s.repo.User.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if user == nil {
		return NotFoundf("user %s", username)
	}

	if err := s.repo.User.Delete(ctx, user.ID); err != nil {
		s.log.Error("Failed to delete user",
			zap.Error(err),
			zap.String("username", username))
		return err
	}

	return nil
}

func (s *userService) GetSelf(ctx context.Context, actor Actor) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NotFoundf("user %d", actor.ID)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) UpdateSelf(ctx context.Context, actor Actor, req *request.UpdateSelfRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update self validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}

	user, err := s.repo.User.FindByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NotFoundf("user %d", actor.ID)
	}

	if err := s.applyUserPatch(ctx, user, req.Username, req.Email); err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = req.FirstName
	}
	if req.LastName != nil {
		user.LastName = req.LastName
	}
	if req.Bio != nil {
		user.Bio = req.Bio
	}

	user.UpdatedAt = time.Now()
	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to update own profile",
			zap.Error(err),
			zap.Int64("user_id", actor.ID))
		return nil, err
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

// applyUserPatch moves username/email changes onto the entity after
// checking uniqueness against other accounts.
func (s *userService) applyUserPatch(ctx context.Context, user *entity.User, username, email *string) error {
	if username != nil && *username != user.Username {
		existing, err := s.repo.User.FindByUsername(ctx, *username)
		if err != nil {
			return err
		}
		if existing != nil {
			return FieldError("username", "This username is already taken.")
		}
		user.Username = *username
	}

	if email != nil && *email != user.Email {
		existing, err := s.repo.User.FindByEmail(ctx, *email)
		if err != nil {
			return err
		}
		if existing != nil {
			return FieldError("email", "A user with this email already exists.")
		}
		user.Email = *email
	}

	return nil
}
