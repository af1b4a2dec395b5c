package usecase

import (
	"review-platform/internal/data/entity"
)

// Actor is the authenticated caller as seen by the services, built by the
// handlers from the token claims.
type Actor struct {
	ID       int64
	Username string
	Role     string
}

func (a Actor) IsAdmin() bool {
	return a.Role == string(entity.RoleAdmin)
}

func (a Actor) IsModerator() bool {
	return a.Role == string(entity.RoleModerator)
}

// CanModifyContent: reviews and comments may be changed by their author,
// a moderator, or an admin.
func CanModifyContent(actor Actor, authorID int64) bool {
	return actor.ID == authorID || actor.IsModerator() || actor.IsAdmin()
}
