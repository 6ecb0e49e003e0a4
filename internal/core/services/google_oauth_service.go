package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/petcarehq/petcare-backend/internal/core/domain"
	"github.com/petcarehq/petcare-backend/internal/platform/config"
	"github.com/petcarehq/petcare-backend/internal/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// GoogleOAuthService drives the Google sign-in flow for dashboard operators.
type GoogleOAuthService struct {
	cfg          *config.Config
	oauth2Config *oauth2.Config
}

func NewGoogleOAuthService(cfg *config.Config) *GoogleOAuthService {
	return &GoogleOAuthService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

// Enabled reports whether the OAuth client is configured.
func (s *GoogleOAuthService) Enabled() bool {
	return s.cfg.GoogleClientID != "" && s.cfg.GoogleClientSecret != ""
}

// GenerateStateString creates the CSRF token for the OAuth redirect.
func (s *GoogleOAuthService) GenerateStateString() (string, error) {
	state, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		return "", fmt.Errorf("failed to generate oauth state: %w", err)
	}
	return state, nil
}

// LoginURL returns the Google consent page URL for the given state.
func (s *GoogleOAuthService) LoginURL(state string) string {
	return s.oauth2Config.AuthCodeURL(state)
}

// ExchangeCode trades the authorization code for an OAuth token.
func (s *GoogleOAuthService) ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code: %w", err)
	}
	return token, nil
}

// UserInfo fetches the signed-in user's profile from Google.
func (s *GoogleOAuthService) UserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error) {
	client := s.oauth2Config.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, fmt.Errorf("failed to get user info from google: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google userinfo returned status %s", resp.Status)
	}

	var info domain.GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode google user info: %w", err)
	}
	return &info, nil
}

// ValidateIDToken verifies a Google ID token and returns its payload.
func (s *GoogleOAuthService) ValidateIDToken(ctx context.Context, idToken string) (*idtoken.Payload, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, fmt.Errorf("google client ID is not configured")
	}
	payload, err := idtoken.Validate(ctx, idToken, s.cfg.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("google ID token validation failed: %w", err)
	}
	return payload, nil
}
