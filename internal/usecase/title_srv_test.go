package usecase

import (
	"context"
	"testing"

	"review-platform/internal/data/entity"
	"review-platform/internal/data/repository"
	"review-platform/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubTitleWriteRepo struct {
	repository.TitleRepository
	titles  map[int64]*entity.Title
	updated []*entity.Title
}

func (s *stubTitleWriteRepo) FindByID(_ context.Context, id int64) (*entity.Title, error) {
	return s.titles[id], nil
}

func (s *stubTitleWriteRepo) Update(_ context.Context, title *entity.Title) error {
	s.updated = append(s.updated, title)
	return nil
}

type stubGenreReadRepo struct {
	repository.GenreRepository
	byTitle map[int64][]*entity.Genre
}

func (s *stubGenreReadRepo) FindByTitleID(_ context.Context, titleID int64) ([]*entity.Genre, error) {
	return s.byTitle[titleID], nil
}

func newTitleFixture() (*titleService, *stubTitleWriteRepo) {
	titleRepo := &stubTitleWriteRepo{
		titles: map[int64]*entity.Title{
			14: {ID: 14, Name: "Dune", Year: 1984},
		},
	}
	repo := &repository.Repository{
		Title: titleRepo,
		Genre: &stubGenreReadRepo{byTitle: map[int64][]*entity.Genre{
			14: {{ID: 3, Name: "Sci-Fi", Slug: "sci-fi"}},
		}},
	}

	svc := NewTitleService(repo, zap.NewNop()).(*titleService)
	return svc, titleRepo
}

func TestTitleUpdate_EmptyGenreListRejected(t *testing.T) {
	svc, titleRepo := newTitleFixture()

	_, err := svc.Update(context.Background(), 14, &request.UpdateTitleRequest{
		Genre: []string{},
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"This list may not be empty."}, verr.Fields["genre"])
	assert.Empty(t, titleRepo.updated, "nothing should be written")
}

func TestTitleUpdate_OmittedGenreKeepsExisting(t *testing.T) {
	svc, titleRepo := newTitleFixture()

	name := "Dune Messiah"
	// Genre left nil: the title's genre set must not be touched, so the
	// nil TitleGenre repository embed would panic if it were.
	_, err := svc.Update(context.Background(), 14, &request.UpdateTitleRequest{
		Name: &name,
	})
	require.NoError(t, err)

	require.Len(t, titleRepo.updated, 1)
	assert.Equal(t, "Dune Messiah", titleRepo.updated[0].Name)
}
