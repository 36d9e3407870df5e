package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/blogrest/blog_backend/internal/apperrors"
	"github.com/blogrest/blog_backend/internal/core/domain"
	portssvc "github.com/blogrest/blog_backend/internal/core/ports/services"
	"github.com/blogrest/blog_backend/internal/dto"
	"github.com/blogrest/blog_backend/internal/handlers"
	"github.com/blogrest/blog_backend/internal/platform/config"
	"github.com/blogrest/blog_backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testAccessSecret  = "access-secret-for-tests"
	testRefreshSecret = "refresh-secret-for-tests"
	testIssuer        = "blog-backend-test"
)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*portssvc.TokenPair, error) {
	args := m.Called(ctx, email, password)
	var tokens *portssvc.TokenPair
	if args.Get(0) != nil {
		tokens = args.Get(0).(*portssvc.TokenPair)
	}
	return tokens, args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockAuthService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}

// --- Stub UserService (backs the access gate) ---
type stubUserService struct {
	user *domain.User
	err  error
}

func (s *stubUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func (s *stubUserService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	return nil, nil
}

func (s *stubUserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	return nil, apperrors.ErrNotFound
}

func (s *stubUserService) DeleteUser(ctx context.Context, userID string) error {
	return apperrors.ErrNotFound
}

// --- Stub Post/Comment services (routes must register, not respond) ---
type stubPostService struct{}

func (stubPostService) CreatePost(ctx context.Context, authorID string, req dto.CreatePostRequest) (*domain.Post, error) {
	return nil, apperrors.ErrNotFound
}
func (stubPostService) GetPostByID(ctx context.Context, postID string) (*domain.Post, error) {
	return nil, apperrors.ErrNotFound
}
func (stubPostService) ListPosts(ctx context.Context, authorID string, limit, offset int) ([]domain.Post, error) {
	return nil, nil
}

type stubCommentService struct{}

func (stubCommentService) CreateComment(ctx context.Context, author string, req dto.CreateCommentRequest) (*domain.Comment, error) {
	return nil, apperrors.ErrNotFound
}
func (stubCommentService) GetCommentByID(ctx context.Context, commentID string) (*domain.Comment, error) {
	return nil, apperrors.ErrNotFound
}
func (stubCommentService) ListComments(ctx context.Context, limit, offset int) ([]domain.Comment, error) {
	return nil, nil
}
func (stubCommentService) ListCommentsByPost(ctx context.Context, postID string) ([]domain.Comment, error) {
	return nil, nil
}
func (stubCommentService) UpdateComment(ctx context.Context, commentID string, req dto.UpdateCommentRequest) (*domain.Comment, error) {
	return nil, apperrors.ErrNotFound
}
func (stubCommentService) DeleteComment(ctx context.Context, commentID string) error {
	return apperrors.ErrNotFound
}

func testRouter(t *testing.T, auth portssvc.AuthSvcFacade, users portssvc.UserSvcFacade) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := &config.Config{
		IsProduction:               true,
		JWTSecret:                  testAccessSecret,
		JWTExpiryDuration:          15 * time.Minute,
		JWTIssuer:                  testIssuer,
		RefreshTokenSecret:         testRefreshSecret,
		RefreshTokenExpiryDuration: 7 * 24 * time.Hour,
	}
	handlers.RegisterRoutes(r, cfg, &portssvc.ServiceContainer{
		Auth:    auth,
		User:    users,
		Post:    stubPostService{},
		Comment: stubCommentService{},
	})
	return r
}

func postJSON(r *gin.Engine, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterEndpoint_Success(t *testing.T) {
	mockAuth := new(MockAuthService)
	user := &domain.User{UserID: "user-1", Username: "alice", Email: "alice@x.com"}
	mockAuth.On("Register", mock.Anything, mock.MatchedBy(func(req dto.RegisterRequest) bool {
		return req.Username == "alice" && req.Email == "alice@x.com"
	})).Return(user, nil)

	r := testRouter(t, mockAuth, &stubUserService{})
	w := postJSON(r, "/auth/register", dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@x.com",
		Password: "pw1pw1",
	}, nil)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp dto.RegisterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "User registered successfully", resp.Message)
	assert.Equal(t, "user-1", resp.User.UserID)
	// The password hash never leaves the server.
	assert.NotContains(t, w.Body.String(), "password")
	mockAuth.AssertExpectations(t)
}

func TestRegisterEndpoint_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		body map[string]string
	}{
		{"missing username", map[string]string{"email": "a@x.com", "password": "pw1pw1"}},
		{"missing email", map[string]string{"username": "alice", "password": "pw1pw1"}},
		{"bad email", map[string]string{"username": "alice", "email": "nope", "password": "pw1pw1"}},
		{"short password", map[string]string{"username": "alice", "email": "a@x.com", "password": "pw1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAuth := new(MockAuthService)
			r := testRouter(t, mockAuth, &stubUserService{})

			w := postJSON(r, "/auth/register", tt.body, nil)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error":"Invalid request body"}`, w.Body.String())
			mockAuth.AssertNotCalled(t, "Register")
		})
	}
}

func TestRegisterEndpoint_Duplicate(t *testing.T) {
	mockAuth := new(MockAuthService)
	mockAuth.On("Register", mock.Anything, mock.Anything).Return(nil, apperrors.ErrDuplicate)

	r := testRouter(t, mockAuth, &stubUserService{})
	w := postJSON(r, "/auth/register", dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@x.com",
		Password: "pw1pw1",
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Username or email already exists!"}`, w.Body.String())
}

func TestRegisterEndpoint_InternalErrorNotLeaked(t *testing.T) {
	mockAuth := new(MockAuthService)
	mockAuth.On("Register", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	r := testRouter(t, mockAuth, &stubUserService{})
	w := postJSON(r, "/auth/register", dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@x.com",
		Password: "pw1pw1",
	}, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Registration failed"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}

func TestLoginEndpoint_Success(t *testing.T) {
	mockAuth := new(MockAuthService)
	mockAuth.On("Login", mock.Anything, "alice@x.com", "pw1pw1").Return(&portssvc.TokenPair{
		AccessToken:  "access-jwt",
		RefreshToken: "refresh-jwt",
	}, nil)

	r := testRouter(t, mockAuth, &stubUserService{})
	w := postJSON(r, "/auth/login", dto.LoginRequest{Email: "alice@x.com", Password: "pw1pw1"}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Login successful", resp.Message)
	assert.Equal(t, "access-jwt", resp.AccessToken)
	assert.Equal(t, "refresh-jwt", resp.RefreshToken)
}

func TestLoginEndpoint_InvalidCredentials(t *testing.T) {
	mockAuth := new(MockAuthService)
	mockAuth.On("Login", mock.Anything, mock.Anything, mock.Anything).Return(nil, apperrors.ErrUnauthorized)

	r := testRouter(t, mockAuth, &stubUserService{})
	w := postJSON(r, "/auth/login", dto.LoginRequest{Email: "alice@x.com", Password: "wrong"}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, w.Body.String())
}

func TestLogoutEndpoint_RequiresAuth(t *testing.T) {
	mockAuth := new(MockAuthService)
	r := testRouter(t, mockAuth, &stubUserService{})

	w := postJSON(r, "/auth/logout", nil, nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Not authorized"}`, w.Body.String())
	mockAuth.AssertNotCalled(t, "Logout")
}

func TestLogoutEndpoint_Success(t *testing.T) {
	user := &domain.User{UserID: "user-1", Username: "alice", Email: "alice@x.com"}
	mockAuth := new(MockAuthService)
	mockAuth.On("Logout", mock.Anything, "user-1").Return(nil)

	r := testRouter(t, mockAuth, &stubUserService{user: user})
	token, err := utils.GenerateJWT("user-1", testAccessSecret, time.Minute, testIssuer)
	require.NoError(t, err)

	w := postJSON(r, "/auth/logout", nil, map[string]string{"Authorization": "Bearer " + token})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Logged out successfully"}`, w.Body.String())
	mockAuth.AssertExpectations(t)
}

func TestRefreshEndpoint_MissingToken(t *testing.T) {
	mockAuth := new(MockAuthService)
	r := testRouter(t, mockAuth, &stubUserService{})

	for _, body := range []any{nil, map[string]string{}, map[string]string{"refreshToken": ""}} {
		w := postJSON(r, "/auth/refresh-token", body, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Refresh token required"}`, w.Body.String())
	}
	mockAuth.AssertNotCalled(t, "RefreshAccessToken")
}

func TestRefreshEndpoint_InvalidOrExpired(t *testing.T) {
	mockAuth := new(MockAuthService)
	mockAuth.On("RefreshAccessToken", mock.Anything, "bad-token").Return("", apperrors.ErrUnauthorized)

	r := testRouter(t, mockAuth, &stubUserService{})
	w := postJSON(r, "/auth/refresh-token", dto.RefreshTokenRequest{RefreshToken: "bad-token"}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid or expired refresh token"}`, w.Body.String())
}

func TestRefreshEndpoint_StoredMismatch(t *testing.T) {
	mockAuth := new(MockAuthService)
	mockAuth.On("RefreshAccessToken", mock.Anything, "stale-token").Return("", apperrors.ErrInvalidRefreshToken)

	r := testRouter(t, mockAuth, &stubUserService{})
	w := postJSON(r, "/auth/refresh-token", dto.RefreshTokenRequest{RefreshToken: "stale-token"}, nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Invalid refresh token"}`, w.Body.String())
}

func TestRefreshEndpoint_Success(t *testing.T) {
	mockAuth := new(MockAuthService)
	mockAuth.On("RefreshAccessToken", mock.Anything, "good-token").Return("new-access-jwt", nil)

	r := testRouter(t, mockAuth, &stubUserService{})
	w := postJSON(r, "/auth/refresh-token", dto.RefreshTokenRequest{RefreshToken: "good-token"}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"accessToken":"new-access-jwt"}`, w.Body.String())
}

func TestHealthEndpoint(t *testing.T) {
	r := testRouter(t, new(MockAuthService), &stubUserService{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProtectedRoutes_RejectAnonymous(t *testing.T) {
	r := testRouter(t, new(MockAuthService), &stubUserService{})

	for _, path := range []string{"/user", "/post", "/comment"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code, path)
		assert.JSONEq(t, `{"error":"Not authorized"}`, w.Body.String(), path)
	}
}
