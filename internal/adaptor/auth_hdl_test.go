package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"review-platform/internal/dto/request"
	"review-platform/internal/dto/response"
	"review-platform/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubAuthService struct {
	signUpResp *response.SignUpResponse
	tokenResp  *response.TokenResponse
	err        error

	gotSignUp *request.SignUpRequest
}

func (s *stubAuthService) SignUp(_ context.Context, req *request.SignUpRequest) (*response.SignUpResponse, error) {
	s.gotSignUp = req
	return s.signUpResp, s.err
}

func (s *stubAuthService) Token(_ context.Context, _ *request.TokenRequest) (*response.TokenResponse, error) {
	return s.tokenResp, s.err
}

func TestSignUp_EchoesIdentity(t *testing.T) {
	svc := &stubAuthService{
		signUpResp: &response.SignUpResponse{Email: "nemo@example.com", Username: "nemo"},
	}
	h := NewAuthHandler(svc, zap.NewNop())

	req := httptest.NewRequest("POST", "/api/v1/auth/signup",
		strings.NewReader(`{"email":"nemo@example.com","username":"nemo"}`))
	rec := httptest.NewRecorder()
	h.SignUp(rec, req)

	// 200, not 201: the endpoint doubles as "send me a new code"
	assert.Equal(t, http.StatusOK, rec.Code)

	var body response.SignUpResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "nemo", body.Username)
	require.NotNil(t, svc.gotSignUp)
	assert.Equal(t, "nemo@example.com", svc.gotSignUp.Email)
}

func TestSignUp_MalformedBody(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, zap.NewNop())

	req := httptest.NewRequest("POST", "/api/v1/auth/signup", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	h.SignUp(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestToken_UnknownUserIs404(t *testing.T) {
	svc := &stubAuthService{err: usecase.NotFoundf("user ghost")}
	h := NewAuthHandler(svc, zap.NewNop())

	req := httptest.NewRequest("POST", "/api/v1/auth/token",
		strings.NewReader(`{"username":"ghost","confirmation_code":"123456"}`))
	rec := httptest.NewRecorder()
	h.Token(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestToken_BadCodeIs400(t *testing.T) {
	svc := &stubAuthService{
		err: usecase.FieldError("confirmation_code", "Invalid confirmation code."),
	}
	h := NewAuthHandler(svc, zap.NewNop())

	req := httptest.NewRequest("POST", "/api/v1/auth/token",
		strings.NewReader(`{"username":"nemo","confirmation_code":"000000"}`))
	rec := httptest.NewRecorder()
	h.Token(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"Invalid confirmation code."}, body["confirmation_code"])
}

func TestToken_Issued(t *testing.T) {
	svc := &stubAuthService{tokenResp: &response.TokenResponse{Token: "jwt-value"}}
	h := NewAuthHandler(svc, zap.NewNop())

	req := httptest.NewRequest("POST", "/api/v1/auth/token",
		strings.NewReader(`{"username":"nemo","confirmation_code":"123456"}`))
	rec := httptest.NewRecorder()
	h.Token(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"token":"jwt-value"}`, rec.Body.String())
}
