package usecase

import (
	"context"
	"errors"
	"testing"

	"review-platform/internal/data/entity"
	"review-platform/internal/data/repository"
	"review-platform/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Stubs embed the repository interface and override only what the test
// path touches; an unexpected call panics on the nil embed.

type stubTitleRepo struct {
	repository.TitleRepository
	titles map[int64]*entity.Title
}

func (s *stubTitleRepo) FindByID(_ context.Context, id int64) (*entity.Title, error) {
	return s.titles[id], nil
}

type stubReviewRepo struct {
	repository.ReviewRepository
	reviews  map[int64]*entity.Review
	byAuthor map[int64]*entity.Review // keyed by author id
	created  *entity.Review
	deleted  []int64
}

func (s *stubReviewRepo) FindByID(_ context.Context, id int64) (*entity.Review, error) {
	return s.reviews[id], nil
}

func (s *stubReviewRepo) FindByAuthorAndTitle(_ context.Context, authorID, titleID int64) (*entity.Review, error) {
	r := s.byAuthor[authorID]
	if r == nil || r.TitleID != titleID {
		return nil, nil
	}
	return r, nil
}

func (s *stubReviewRepo) Create(_ context.Context, review *entity.Review) error {
	review.ID = 100
	s.created = review
	return nil
}

func (s *stubReviewRepo) Update(_ context.Context, review *entity.Review) error {
	s.reviews[review.ID] = review
	return nil
}

func (s *stubReviewRepo) Delete(_ context.Context, id int64) error {
	s.deleted = append(s.deleted, id)
	return nil
}

type stubUserRepo struct {
	repository.UserRepository
	users map[int64]*entity.User
}

func (s *stubUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	return s.users[id], nil
}

func newReviewFixture() (*reviewService, *stubReviewRepo) {
	title := &entity.Title{ID: 14, Name: "Dune", Year: 1984}
	author := &entity.User{Base: entity.Base{ID: 7}, Username: "nemo", Role: entity.RoleUser}

	reviewRepo := &stubReviewRepo{
		reviews: map[int64]*entity.Review{
			2: {ID: 2, TitleID: 14, AuthorID: 7, Text: "good", Score: 8},
		},
		byAuthor: map[int64]*entity.Review{
			7: {ID: 2, TitleID: 14, AuthorID: 7},
		},
	}

	repo := &repository.Repository{
		Title:  &stubTitleRepo{titles: map[int64]*entity.Title{14: title}},
		Review: reviewRepo,
		User:   &stubUserRepo{users: map[int64]*entity.User{7: author}},
	}

	svc := NewReviewService(repo, zap.NewNop()).(*reviewService)
	return svc, reviewRepo
}

func TestReviewCreate_Success(t *testing.T) {
	svc, reviewRepo := newReviewFixture()

	actor := Actor{ID: 9, Username: "fresh", Role: "user"}
	resp, err := svc.Create(context.Background(), 14, actor, &request.CreateReviewRequest{
		Text: "solid", Score: 9,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, "fresh", resp.Author)
	require.NotNil(t, reviewRepo.created)
	assert.Equal(t, int64(9), reviewRepo.created.AuthorID)
	assert.False(t, reviewRepo.created.PubDate.IsZero())
}

func TestReviewCreate_SecondReviewRejected(t *testing.T) {
	svc, _ := newReviewFixture()

	actor := Actor{ID: 7, Username: "nemo", Role: "user"}
	_, err := svc.Create(context.Background(), 14, actor, &request.CreateReviewRequest{
		Text: "again", Score: 5,
	})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields["title"], "You have already reviewed this title.")
}

func TestReviewCreate_ScoreOutOfRange(t *testing.T) {
	svc, _ := newReviewFixture()

	actor := Actor{ID: 9, Role: "user"}
	_, err := svc.Create(context.Background(), 14, actor, &request.CreateReviewRequest{
		Text: "x", Score: 11,
	})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "score")
}

func TestReviewCreate_MissingTitle(t *testing.T) {
	svc, _ := newReviewFixture()

	_, err := svc.Create(context.Background(), 99, Actor{ID: 9, Role: "user"}, &request.CreateReviewRequest{
		Text: "x", Score: 5,
	})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestReviewUpdate_PermissionMatrix(t *testing.T) {
	text := "edited"

	tests := []struct {
		name      string
		actor     Actor
		forbidden bool
	}{
		{"author may edit", Actor{ID: 7, Username: "nemo", Role: "user"}, false},
		{"stranger may not", Actor{ID: 9, Username: "other", Role: "user"}, true},
		{"moderator may edit", Actor{ID: 9, Username: "mod", Role: "moderator"}, false},
		{"admin may edit", Actor{ID: 9, Username: "root", Role: "admin"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newReviewFixture()

			_, err := svc.Update(context.Background(), 14, 2, tt.actor, &request.UpdateReviewRequest{Text: &text})
			if tt.forbidden {
				assert.True(t, errors.Is(err, ErrForbidden))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReviewDelete_WrongTitleScopeIs404(t *testing.T) {
	svc, reviewRepo := newReviewFixture()
	// second title exists, but review 2 belongs to title 14
	svc.repo.Title.(*stubTitleRepo).titles[15] = &entity.Title{ID: 15, Name: "Other"}

	err := svc.Delete(context.Background(), 15, 2, Actor{ID: 1, Role: "admin"})
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Empty(t, reviewRepo.deleted)
}

func TestReviewDelete_ModeratorDeletesAnyones(t *testing.T) {
	svc, reviewRepo := newReviewFixture()

	err := svc.Delete(context.Background(), 14, 2, Actor{ID: 9, Username: "mod", Role: "moderator"})
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, reviewRepo.deleted)
}
