package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"review-platform/internal/dto/request"
	"review-platform/internal/dto/response"
	"review-platform/internal/usecase"
	"review-platform/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubReviewService scripts service outcomes per method.
type stubReviewService struct {
	listResp   *response.PaginatedResponse[response.ReviewResponse]
	createResp *response.ReviewResponse
	err        error

	gotTitleID int64
	gotActor   usecase.Actor
}

func (s *stubReviewService) ListByTitle(_ context.Context, titleID int64, _ string, _ *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	s.gotTitleID = titleID
	return s.listResp, s.err
}

func (s *stubReviewService) Get(_ context.Context, _, _ int64) (*response.ReviewResponse, error) {
	return s.createResp, s.err
}

func (s *stubReviewService) Create(_ context.Context, titleID int64, actor usecase.Actor, _ *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	s.gotTitleID = titleID
	s.gotActor = actor
	return s.createResp, s.err
}

func (s *stubReviewService) Update(_ context.Context, _, _ int64, actor usecase.Actor, _ *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	s.gotActor = actor
	return s.createResp, s.err
}

func (s *stubReviewService) Delete(_ context.Context, _, _ int64, actor usecase.Actor) error {
	s.gotActor = actor
	return s.err
}

func newReviewRouter(svc usecase.ReviewService) *chi.Mux {
	h := NewReviewHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/titles/{title_id}/reviews", h.ListReviews)
	r.Post("/titles/{title_id}/reviews", h.CreateReview)
	r.Patch("/titles/{title_id}/reviews/{review_id}", h.UpdateReview)
	r.Delete("/titles/{title_id}/reviews/{review_id}", h.DeleteReview)
	return r
}

func asAuthenticated(r *http.Request, id int64, username, role string) *http.Request {
	ctx := utils.SetUserContext(r.Context(), id, username, role)
	return r.WithContext(ctx)
}

func TestCreateReview_Success(t *testing.T) {
	svc := &stubReviewService{
		createResp: &response.ReviewResponse{
			ID: 1, Text: "great", Author: "nemo", Score: 9, PubDate: time.Now(),
		},
	}
	router := newReviewRouter(svc)

	req := httptest.NewRequest("POST", "/titles/14/reviews",
		strings.NewReader(`{"text":"great","score":9}`))
	req = asAuthenticated(req, 5, "nemo", "user")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(14), svc.gotTitleID)
	assert.Equal(t, int64(5), svc.gotActor.ID)

	var body response.ReviewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "nemo", body.Author)
	assert.Equal(t, 9, body.Score)
}

func TestCreateReview_NoIdentity(t *testing.T) {
	router := newReviewRouter(&stubReviewService{})

	req := httptest.NewRequest("POST", "/titles/14/reviews",
		strings.NewReader(`{"text":"great","score":9}`))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateReview_ValidationErrorBody(t *testing.T) {
	svc := &stubReviewService{
		err: &usecase.ValidationError{Fields: map[string][]string{
			"score": {"Must be less than or equal to 10"},
		}},
	}
	router := newReviewRouter(svc)

	req := httptest.NewRequest("POST", "/titles/14/reviews",
		strings.NewReader(`{"text":"great","score":11}`))
	req = asAuthenticated(req, 5, "nemo", "user")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"Must be less than or equal to 10"}, body["score"])
}

func TestUpdateReview_ForbiddenMapsTo403(t *testing.T) {
	svc := &stubReviewService{err: usecase.ErrForbidden}
	router := newReviewRouter(svc)

	req := httptest.NewRequest("PATCH", "/titles/14/reviews/2",
		strings.NewReader(`{"text":"mine now"}`))
	req = asAuthenticated(req, 8, "other", "user")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDeleteReview_NotFoundMapsTo404(t *testing.T) {
	svc := &stubReviewService{err: usecase.NotFoundf("review 2 for title 14")}
	router := newReviewRouter(svc)

	req := httptest.NewRequest("DELETE", "/titles/14/reviews/2", nil)
	req = asAuthenticated(req, 8, "admin", "admin")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListReviews_BadTitleIDIs404(t *testing.T) {
	router := newReviewRouter(&stubReviewService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/titles/fourteen/reviews", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListReviews_EnvelopePassthrough(t *testing.T) {
	next := "/titles/14/reviews?page=2&page_size=10"
	svc := &stubReviewService{
		listResp: &response.PaginatedResponse[response.ReviewResponse]{
			Count: 12, Next: &next,
			Results: []response.ReviewResponse{{ID: 1, Author: "nemo", Score: 7}},
		},
	}
	router := newReviewRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/titles/14/reviews", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Count    int64             `json:"count"`
		Next     *string           `json:"next"`
		Previous *string           `json:"previous"`
		Results  []json.RawMessage `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(12), body.Count)
	require.NotNil(t, body.Next)
	assert.Nil(t, body.Previous)
	assert.Len(t, body.Results, 1)
}
