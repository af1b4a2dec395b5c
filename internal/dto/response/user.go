package response

import (
	"review-platform/internal/data/entity"
)

type UserResponse struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio"`
	Role      string `json:"role"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		Username:  user.Username,
		Email:     user.Email,
		FirstName: derefString(user.FirstName),
		LastName:  derefString(user.LastName),
		Bio:       derefString(user.Bio),
		Role:      string(user.Role),
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
