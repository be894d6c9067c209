package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"rw-be-svc/internal/config"
	"rw-be-svc/internal/models"
	"rw-be-svc/internal/models/response"
	"rw-be-svc/pkg/logger"
)

// emailAuthService signs tokens only for known emails
type emailAuthService struct {
	tokens map[string]string
}

func (s *emailAuthService) Register(ctx context.Context, input NewUserInput) (*response.AuthResponse, error) {
	return nil, nil
}

func (s *emailAuthService) Login(ctx context.Context, username, password string) (*response.AuthResponse, error) {
	return nil, nil
}

func (s *emailAuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	return nil, ErrUnauthenticated
}

func (s *emailAuthService) IssueTokenForEmail(ctx context.Context, email string) (string, error) {
	if token, ok := s.tokens[email]; ok {
		return token, nil
	}
	return "", ErrEmailNotRegistered
}

func newGoogleStub(t *testing.T, email string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil || r.Form.Get("code") != "good-code" {
			http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "google-access",
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer google-access" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"email":          email,
			"verified_email": true,
			"name":           "Budi",
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestOAuthService(srv *httptest.Server, authService AuthService) *oauthService {
	svc := NewOAuthService(config.OAuthConfig{
		GoogleClientID:     "client",
		GoogleClientSecret: "secret",
		GoogleRedirectURL:  "http://localhost:8080/api/v1/auth/google/callback",
		FrontendURL:        "http://localhost:5173/",
	}, authService, logger.NewNopLogger()).(*oauthService)
	svc.conf.Endpoint = oauth2.Endpoint{
		AuthURL:   srv.URL + "/auth",
		TokenURL:  srv.URL + "/token",
		AuthStyle: oauth2.AuthStyleInParams,
	}
	svc.userInfoURL = srv.URL + "/userinfo"
	return svc
}

func TestOAuthService_HandleCallback(t *testing.T) {
	ctx := context.Background()

	t.Run("registered email", func(t *testing.T) {
		srv := newGoogleStub(t, "budi@example.com")
		svc := newTestOAuthService(srv, &emailAuthService{tokens: map[string]string{"budi@example.com": "jwt-budi"}})

		token, err := svc.HandleCallback(ctx, "good-code")

		require.NoError(t, err)
		assert.Equal(t, "jwt-budi", token)
		assert.Equal(t, "http://localhost:5173/login?token=jwt-budi", svc.FrontendRedirect(token, nil))
	})

	t.Run("unregistered email", func(t *testing.T) {
		srv := newGoogleStub(t, "stranger@example.com")
		svc := newTestOAuthService(srv, &emailAuthService{})

		_, err := svc.HandleCallback(ctx, "good-code")

		assert.ErrorIs(t, err, ErrEmailNotRegistered)
		assert.Equal(t, "http://localhost:5173/login?error=unauthorized", svc.FrontendRedirect("", err))
	})

	t.Run("rejected code", func(t *testing.T) {
		srv := newGoogleStub(t, "budi@example.com")
		svc := newTestOAuthService(srv, &emailAuthService{})

		_, err := svc.HandleCallback(ctx, "bad-code")

		assert.ErrorIs(t, err, ErrOAuthExchange)
		assert.Equal(t, "http://localhost:5173/login?error=authentication_failed", svc.FrontendRedirect("", err))
	})
}

func TestOAuthService_Disabled(t *testing.T) {
	svc := NewOAuthService(config.OAuthConfig{}, &emailAuthService{}, logger.NewNopLogger())

	assert.False(t, svc.Enabled())
	_, err := svc.HandleCallback(context.Background(), "code")
	assert.ErrorIs(t, err, ErrOAuthDisabled)
}

func TestOAuthService_AuthCodeURL(t *testing.T) {
	srv := newGoogleStub(t, "budi@example.com")
	svc := newTestOAuthService(srv, &emailAuthService{})

	parsed, err := url.Parse(svc.AuthCodeURL("state-123"))
	require.NoError(t, err)
	assert.Equal(t, "state-123", parsed.Query().Get("state"))
	assert.Equal(t, "client", parsed.Query().Get("client_id"))
	assert.Contains(t, parsed.Query().Get("scope"), "email")
}
