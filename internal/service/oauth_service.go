package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"rw-be-svc/internal/config"
	"rw-be-svc/pkg/logger"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// OAuthService interface defines the Google sign-in flow
type OAuthService interface {
	Enabled() bool
	AuthCodeURL(state string) string
	HandleCallback(ctx context.Context, code string) (string, error)
	FrontendRedirect(token string, callbackErr error) string
}

// oauthService implements OAuthService interface
type oauthService struct {
	conf        *oauth2.Config
	userInfoURL string
	frontendURL string
	authService AuthService
	logger      *logger.Logger
}

type googleUserInfo struct {
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
}

// NewOAuthService creates a Google sign-in service
func NewOAuthService(cfg config.OAuthConfig, authService AuthService, logger *logger.Logger) OAuthService {
	return &oauthService{
		conf: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"profile", "email"},
			Endpoint:     google.Endpoint,
		},
		userInfoURL: googleUserInfoURL,
		frontendURL: strings.TrimSuffix(cfg.FrontendURL, "/"),
		authService: authService,
		logger:      logger,
	}
}

// Enabled reports whether client credentials are configured
func (s *oauthService) Enabled() bool {
	return s.conf.ClientID != "" && s.conf.ClientSecret != ""
}

// AuthCodeURL returns the consent page URL
func (s *oauthService) AuthCodeURL(state string) string {
	return s.conf.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// HandleCallback exchanges the code, reads the Google profile and signs a
// token for the account registered with that email. Only existing accounts can sign in.
func (s *oauthService) HandleCallback(ctx context.Context, code string) (string, error) {
	if !s.Enabled() {
		return "", ErrOAuthDisabled
	}

	tok, err := s.conf.Exchange(ctx, code)
	if err != nil {
		s.logger.WithError(err).Warn("Google code exchange failed")
		return "", ErrOAuthExchange
	}

	info, err := s.fetchUserInfo(ctx, tok)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to fetch Google profile")
		return "", ErrOAuthExchange
	}
	if info.Email == "" {
		return "", ErrOAuthExchange
	}

	token, err := s.authService.IssueTokenForEmail(ctx, info.Email)
	if err != nil {
		s.logger.WithError(err).WithField("email", info.Email).Warn("Google sign-in rejected")
		return "", err
	}

	s.logger.WithField("email", info.Email).Info("Google sign-in succeeded")
	return token, nil
}

// FrontendRedirect builds the front-end login URL carrying the token or an error code
func (s *oauthService) FrontendRedirect(token string, callbackErr error) string {
	q := url.Values{}
	switch {
	case callbackErr == nil:
		q.Set("token", token)
	case errors.Is(callbackErr, ErrEmailNotRegistered):
		q.Set("error", "unauthorized")
	case errors.Is(callbackErr, ErrTokenGeneration):
		q.Set("error", "token_generation_failed")
	default:
		q.Set("error", "authentication_failed")
	}
	return s.frontendURL + "/login?" + q.Encode()
}

func (s *oauthService) fetchUserInfo(ctx context.Context, tok *oauth2.Token) (*googleUserInfo, error) {
	client := s.conf.Client(ctx, tok)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.userInfoURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo returned status %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode userinfo: %w", err)
	}
	return &info, nil
}
