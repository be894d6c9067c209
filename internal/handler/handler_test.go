package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rw-be-svc/internal/models"
	"rw-be-svc/internal/models/response"
	"rw-be-svc/internal/service"
	"rw-be-svc/internal/service/mocks"
	"rw-be-svc/internal/storage"
	"rw-be-svc/pkg/logger"
	"rw-be-svc/pkg/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	router       *gin.Engine
	auth         *mocks.AuthService
	oauth        *mocks.OAuthService
	users        *mocks.UserService
	profiles     *mocks.ProfileService
	complaints   *mocks.ComplaintService
	votes        *mocks.VoteService
	comments     *mocks.CommentService
	transactions *mocks.TransactionService
}

var testUsers = map[string]*models.User{
	"admin-token": {ID: 1, Username: "buah", Role: models.RoleAdmin},
	"rt-token":    {ID: 2, Username: "farhan", Role: models.RoleRT},
	"warga-token": {ID: 3, Username: "mmm", Role: models.RoleWarga},
}

func newTestServer(t *testing.T, enforceAdmin bool) *testServer {
	t.Helper()

	s := &testServer{
		router:       gin.New(),
		auth:         new(mocks.AuthService),
		oauth:        new(mocks.OAuthService),
		users:        new(mocks.UserService),
		profiles:     new(mocks.ProfileService),
		complaints:   new(mocks.ComplaintService),
		votes:        new(mocks.VoteService),
		comments:     new(mocks.CommentService),
		transactions: new(mocks.TransactionService),
	}
	for token, user := range testUsers {
		s.auth.On("Authenticate", mock.Anything, token).Return(user, nil).Maybe()
	}

	err := SetupRoutes(s.router, Dependencies{
		AuthService:        s.auth,
		OAuthService:       s.oauth,
		UserService:        s.users,
		ProfileService:     s.profiles,
		ComplaintService:   s.complaints,
		VoteService:        s.votes,
		CommentService:     s.comments,
		TransactionService: s.transactions,
		Logger:             logger.NewNopLogger(),
		EnforceAdminRoutes: enforceAdmin,
	})
	require.NoError(t, err)
	return s
}

func (s *testServer) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) utils.APIResponse {
	t.Helper()
	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrUsernameTaken, http.StatusConflict},
		{service.ErrInvalidVoteType, http.StatusBadRequest},
		{fmt.Errorf("import: %w", service.ErrSheetNotFound), http.StatusBadRequest},
		{storage.ErrNotAnImage, http.StatusBadRequest},
		{service.ErrInvalidCredentials, http.StatusUnauthorized},
		{service.ErrCommentForbidden, http.StatusForbidden},
		{service.ErrComplaintNotFound, http.StatusNotFound},
		{service.ErrOAuthDisabled, http.StatusServiceUnavailable},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

func TestHealthCheck(t *testing.T) {
	s := newTestServer(t, true)

	w := s.do(http.MethodGet, "/api/v1/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestRegister(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		s := newTestServer(t, true)
		s.auth.On("Register", mock.Anything, mock.MatchedBy(func(in service.NewUserInput) bool {
			return in.Username == "budi" && in.Role == models.RoleWarga
		})).Return(&response.AuthResponse{
			User:  &response.UserResponse{ID: 7, Username: "budi"},
			Token: "signed",
		}, nil).Once()

		w := s.do(http.MethodPost, "/api/v1/auth/register", "", gin.H{
			"username": "budi", "password": "rahasia123", "name": "Budi", "role": "warga",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		resp := decode(t, w)
		assert.True(t, resp.Success)
		assert.Equal(t, "Registrasi berhasil", resp.Message)
		s.auth.AssertExpectations(t)
	})

	t.Run("username taken", func(t *testing.T) {
		s := newTestServer(t, true)
		s.auth.On("Register", mock.Anything, mock.Anything).Return(nil, service.ErrUsernameTaken).Once()

		w := s.do(http.MethodPost, "/api/v1/auth/register", "", gin.H{"username": "buah", "password": "rahasia123", "name": "Buah"})

		assert.Equal(t, http.StatusConflict, w.Code)
		resp := decode(t, w)
		assert.False(t, resp.Success)
		assert.Equal(t, service.ErrUsernameTaken.Error(), resp.Message)
	})

	t.Run("malformed body", func(t *testing.T) {
		s := newTestServer(t, true)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		s.auth.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})
}

func TestLogin_InvalidCredentials(t *testing.T) {
	s := newTestServer(t, true)
	s.auth.On("Login", mock.Anything, "buah", "wrong").Return(nil, service.ErrInvalidCredentials).Once()

	w := s.do(http.MethodPost, "/api/v1/auth/login", "", gin.H{"username": "buah", "password": "wrong"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVerify(t *testing.T) {
	s := newTestServer(t, true)

	w := s.do(http.MethodGet, "/api/v1/auth/verify", "rt-token", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"farhan"`)

	w = s.do(http.MethodGet, "/api/v1/auth/verify", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGoogleLogin(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		s := newTestServer(t, true)
		s.oauth.On("Enabled").Return(false)

		w := s.do(http.MethodGet, "/api/v1/auth/google", "", nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("redirects with state cookie", func(t *testing.T) {
		s := newTestServer(t, true)
		s.oauth.On("Enabled").Return(true)
		s.oauth.On("AuthCodeURL", mock.AnythingOfType("string")).Return("https://accounts.google.com/o/oauth2/auth?state=x")

		w := s.do(http.MethodGet, "/api/v1/auth/google", "", nil)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "https://accounts.google.com/o/oauth2/auth?state=x", w.Header().Get("Location"))
		assert.Contains(t, w.Header().Get("Set-Cookie"), oauthStateCookie+"=")
	})
}

func TestGoogleCallback(t *testing.T) {
	t.Run("state mismatch", func(t *testing.T) {
		s := newTestServer(t, true)
		s.oauth.On("Enabled").Return(true)
		s.oauth.On("FrontendRedirect", "", service.ErrOAuthExchange).Return("http://front/login?error=authentication_failed")

		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/callback?code=abc&state=forged", nil)
		req.AddCookie(&http.Cookie{Name: oauthStateCookie, Value: "expected"})
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "http://front/login?error=authentication_failed", w.Header().Get("Location"))
		s.oauth.AssertNotCalled(t, "HandleCallback", mock.Anything, mock.Anything)
	})

	t.Run("token issued", func(t *testing.T) {
		s := newTestServer(t, true)
		s.oauth.On("Enabled").Return(true)
		s.oauth.On("HandleCallback", mock.Anything, "abc").Return("signed", nil).Once()
		s.oauth.On("FrontendRedirect", "signed", nil).Return("http://front/login?token=signed")

		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/callback?code=abc&state=expected", nil)
		req.AddCookie(&http.Cookie{Name: oauthStateCookie, Value: "expected"})
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "http://front/login?token=signed", w.Header().Get("Location"))
	})
}

func TestCreateComplaint(t *testing.T) {
	photo := []byte("\x89PNG\r\n\x1a\nnot-really")

	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)
	require.NoError(t, form.WriteField("title", "Lampu jalan mati"))
	require.NoError(t, form.WriteField("description", "Sudah tiga hari"))
	require.NoError(t, form.WriteField("rt_number", "01"))
	part, err := form.CreateFormFile("photo", "lampu.png")
	require.NoError(t, err)
	_, err = part.Write(photo)
	require.NoError(t, err)
	require.NoError(t, form.Close())

	s := newTestServer(t, true)
	s.complaints.On("CreateComplaint", mock.Anything, mock.MatchedBy(func(in service.CreateComplaintInput) bool {
		return in.Title == "Lampu jalan mati" && in.CreatedBy == 3 && bytes.Equal(in.Photo, photo)
	})).Return(&models.Complaint{ID: 11, Title: "Lampu jalan mati", Status: models.DefaultComplaintStatus}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/complaints", body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Authorization", "Bearer warga-token")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	s.complaints.AssertExpectations(t)
}

func TestCreateComplaint_RequiresLogin(t *testing.T) {
	s := newTestServer(t, true)

	w := s.do(http.MethodPost, "/api/v1/complaints", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListComplaints(t *testing.T) {
	t.Run("anonymous mine filter", func(t *testing.T) {
		s := newTestServer(t, true)
		s.complaints.On("ListComplaints", mock.Anything, service.ListComplaintsInput{Filter: "me"}).
			Return(nil, service.ErrFilterRequiresLogin).Once()

		w := s.do(http.MethodGet, "/api/v1/complaints?filter=me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("empty list", func(t *testing.T) {
		s := newTestServer(t, true)
		s.complaints.On("ListComplaints", mock.Anything, mock.MatchedBy(func(in service.ListComplaintsInput) bool {
			return in.CallerID != nil && *in.CallerID == 3
		})).Return(nil, nil).Once()

		w := s.do(http.MethodGet, "/api/v1/complaints", "warga-token", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"data":[]`)
	})
}

func TestUpdateComplaintStatus(t *testing.T) {
	t.Run("warga forbidden", func(t *testing.T) {
		s := newTestServer(t, true)

		w := s.do(http.MethodPatch, "/api/v1/complaints/5/status", "warga-token", gin.H{"status": "selesai"})

		assert.Equal(t, http.StatusForbidden, w.Code)
		s.complaints.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rt allowed", func(t *testing.T) {
		s := newTestServer(t, true)
		s.complaints.On("UpdateStatus", mock.Anything, uint(5), "selesai").Return(nil).Once()

		w := s.do(http.MethodPatch, "/api/v1/complaints/5/status", "rt-token", gin.H{"status": "selesai"})

		assert.Equal(t, http.StatusOK, w.Code)
		s.complaints.AssertExpectations(t)
	})

	t.Run("blank status", func(t *testing.T) {
		s := newTestServer(t, true)

		w := s.do(http.MethodPatch, "/api/v1/complaints/5/status", "admin-token", gin.H{"status": "   "})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, service.ErrStatusRequired.Error(), decode(t, w).Message)
	})

	t.Run("missing complaint", func(t *testing.T) {
		s := newTestServer(t, true)
		s.complaints.On("UpdateStatus", mock.Anything, uint(99), "selesai").Return(service.ErrComplaintNotFound).Once()

		w := s.do(http.MethodPatch, "/api/v1/complaints/99/status", "admin-token", gin.H{"status": "selesai"})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestVote(t *testing.T) {
	upvote := models.VoteUp

	s := newTestServer(t, true)
	s.votes.On("CastVote", mock.Anything, uint(5), uint(3), "upvote").Return(&response.VoteResponse{
		Message:  "Vote recorded successfully",
		UserVote: &upvote,
		Upvotes:  1,
	}, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/complaints/5/vote", "warga-token", gin.H{"voteType": "upvote"})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "Vote recorded successfully", resp.Message)
	assert.Contains(t, w.Body.String(), `"upvotes":1`)
	assert.Contains(t, w.Body.String(), `"userVote":"upvote"`)

	w = s.do(http.MethodPost, "/api/v1/complaints/5/vote", "warga-token", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/api/v1/complaints/5/vote", "warga-token", gin.H{"vote_type": "upvote"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	s.votes.AssertNumberOfCalls(t, "CastVote", 1)
}

func TestComments(t *testing.T) {
	t.Run("blank comment", func(t *testing.T) {
		s := newTestServer(t, true)

		w := s.do(http.MethodPost, "/api/v1/complaints/5/comments", "warga-token", gin.H{"content": "  "})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, service.ErrEmptyComment.Error(), decode(t, w).Message)
	})

	t.Run("list is public", func(t *testing.T) {
		s := newTestServer(t, true)
		s.comments.On("ListComments", mock.Anything, uint(5)).Return(nil, nil).Once()

		w := s.do(http.MethodGet, "/api/v1/complaints/5/comments", "", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"data":[]`)
	})

	t.Run("delete forbidden", func(t *testing.T) {
		s := newTestServer(t, true)
		s.comments.On("DeleteComment", mock.Anything, uint(8), uint(3), models.RoleWarga).Return(service.ErrCommentForbidden).Once()

		w := s.do(http.MethodDelete, "/api/v1/complaints/comments/8", "warga-token", nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestUserRoutes(t *testing.T) {
	t.Run("warga forbidden", func(t *testing.T) {
		s := newTestServer(t, true)

		w := s.do(http.MethodGet, "/api/v1/user", "warga-token", nil)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = s.do(http.MethodGet, "/api/v1/user", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("open when not enforced", func(t *testing.T) {
		s := newTestServer(t, false)
		s.users.On("ListUsers", mock.Anything).Return([]*response.UserResponse{{ID: 1, Username: "buah"}}, nil).Once()

		w := s.do(http.MethodGet, "/api/v1/user", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("export", func(t *testing.T) {
		s := newTestServer(t, true)
		s.users.On("ExportUsers", mock.Anything).Return(bytes.NewBufferString("PK-fake-xlsx"), nil).Once()

		w := s.do(http.MethodGet, "/api/v1/user/export-users", "admin-token", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment; filename=")
		assert.Equal(t, "PK-fake-xlsx", w.Body.String())
	})

	t.Run("import without file", func(t *testing.T) {
		s := newTestServer(t, true)

		w := s.do(http.MethodPost, "/api/v1/user/import-users", "admin-token", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, service.ErrFileRequired.Error(), decode(t, w).Message)
	})

	t.Run("update role", func(t *testing.T) {
		s := newTestServer(t, true)
		s.users.On("UpdateUser", mock.Anything, uint(3), mock.MatchedBy(func(in service.UpdateUserInput) bool {
			return in.Role != nil && *in.Role == models.RoleRT && in.RTNumber != nil && *in.RTNumber == "02"
		})).Return(&response.UserResponse{ID: 3, Username: "mmm"}, nil).Once()

		w := s.do(http.MethodPut, "/api/v1/user/3", "admin-token", gin.H{"role": "rt", "rt_number": "02"})

		assert.Equal(t, http.StatusOK, w.Code)
		s.users.AssertExpectations(t)
	})

	t.Run("delete missing", func(t *testing.T) {
		s := newTestServer(t, true)
		s.users.On("DeleteUser", mock.Anything, uint(42)).Return(service.ErrUserNotFound).Once()

		w := s.do(http.MethodDelete, "/api/v1/user/42", "admin-token", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTransactions(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		s := newTestServer(t, true)
		s.transactions.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(in service.CreateTransactionInput) bool {
			return in.Type == "income" && in.Amount == 50000 && in.CreatedBy == 3
		})).Return(&models.Transaction{ID: 1, Type: models.TransactionIncome, Amount: 50000}, nil).Once()

		w := s.do(http.MethodPost, "/api/v1/transactions", "warga-token", gin.H{
			"type": "income", "amount": 50000, "category": "Iuran",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		s.transactions.AssertExpectations(t)
	})

	t.Run("invalid month", func(t *testing.T) {
		s := newTestServer(t, true)
		s.transactions.On("GetSummary", mock.Anything, mock.Anything, mock.Anything, "").Return(nil, service.ErrInvalidMonth).Once()

		w := s.do(http.MethodGet, "/api/v1/transactions/summary?month=13", "warga-token", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("requires login", func(t *testing.T) {
		s := newTestServer(t, true)

		w := s.do(http.MethodGet, "/api/v1/transactions", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestUnexpectedErrorIs500(t *testing.T) {
	s := newTestServer(t, true)
	s.complaints.On("GetComplaintDetail", mock.Anything, uint(5), (*uint)(nil)).Return(nil, errors.New("db down")).Once()

	w := s.do(http.MethodGet, "/api/v1/complaints/5", "", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to get complaint", decode(t, w).Message)
}
