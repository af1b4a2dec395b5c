package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanModifyContent(t *testing.T) {
	const authorID int64 = 7

	tests := []struct {
		name  string
		actor Actor
		want  bool
	}{
		{"author may edit own content", Actor{ID: authorID, Role: "user"}, true},
		{"other user may not", Actor{ID: 8, Role: "user"}, false},
		{"moderator may edit anyone's", Actor{ID: 8, Role: "moderator"}, true},
		{"admin may edit anyone's", Actor{ID: 8, Role: "admin"}, true},
		{"unknown role falls back to author check", Actor{ID: 8, Role: "superuser"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanModifyContent(tt.actor, authorID))
		})
	}
}

func TestActorRoleHelpers(t *testing.T) {
	assert.True(t, Actor{Role: "admin"}.IsAdmin())
	assert.False(t, Actor{Role: "admin"}.IsModerator())
	assert.True(t, Actor{Role: "moderator"}.IsModerator())
	assert.False(t, Actor{Role: "user"}.IsAdmin())
}
