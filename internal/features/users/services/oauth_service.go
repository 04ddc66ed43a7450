package users_services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
	"golang.org/x/oauth2/google"

	"chathub-backend/internal/config"
	users_dto "chathub-backend/internal/features/users/dto"
	users_enums "chathub-backend/internal/features/users/enums"
	users_models "chathub-backend/internal/features/users/models"
)

const oauthRequestTimeout = 15 * time.Second

func (s *UserService) HandleGitHubOAuth(
	code, redirectUri string,
) (*users_dto.OAuthCallbackResponseDTO, error) {
	return s.handleGitHubOAuthWithEndpoint(
		code,
		redirectUri,
		github.Endpoint,
		"https://api.github.com/user",
	)
}

func (s *UserService) HandleGoogleOAuth(
	code, redirectUri string,
) (*users_dto.OAuthCallbackResponseDTO, error) {
	return s.handleGoogleOAuthWithEndpoint(
		code,
		redirectUri,
		google.Endpoint,
		"https://www.googleapis.com/oauth2/v2/userinfo",
	)
}

// HandleGitHubOAuthWithMockEndpoint is used by tests to point the flow at
// a local mock server instead of github.com.
func (s *UserService) HandleGitHubOAuthWithMockEndpoint(
	code, redirectUri string,
	endpoint oauth2.Endpoint,
	userAPIURL string,
) (*users_dto.OAuthCallbackResponseDTO, error) {
	return s.handleGitHubOAuthWithEndpoint(code, redirectUri, endpoint, userAPIURL)
}

func (s *UserService) handleGitHubOAuthWithEndpoint(
	code, redirectUri string,
	endpoint oauth2.Endpoint,
	userAPIURL string,
) (*users_dto.OAuthCallbackResponseDTO, error) {
	cfg := config.GetEnv()
	if cfg.GitHubClientID == "" || cfg.GitHubClientSecret == "" {
		return nil, errors.New("github oauth is not configured")
	}

	oauthConfig := &oauth2.Config{
		ClientID:     cfg.GitHubClientID,
		ClientSecret: cfg.GitHubClientSecret,
		Endpoint:     endpoint,
		RedirectURL:  redirectUri,
		Scopes:       []string{"user:email"},
	}

	userInfo, err := fetchOAuthUserInfo(oauthConfig, code, userAPIURL)
	if err != nil {
		return nil, err
	}

	email := userInfo["email"]
	if email == "" {
		return nil, errors.New("github account has no public email")
	}

	name := userInfo["name"]
	if name == "" {
		name = userInfo["login"]
	}

	return s.signInOrSignUpOAuthUser(email, name)
}

func (s *UserService) handleGoogleOAuthWithEndpoint(
	code, redirectUri string,
	endpoint oauth2.Endpoint,
	userAPIURL string,
) (*users_dto.OAuthCallbackResponseDTO, error) {
	cfg := config.GetEnv()
	if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" {
		return nil, errors.New("google oauth is not configured")
	}

	oauthConfig := &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		Endpoint:     endpoint,
		RedirectURL:  redirectUri,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
	}

	userInfo, err := fetchOAuthUserInfo(oauthConfig, code, userAPIURL)
	if err != nil {
		return nil, err
	}

	email := userInfo["email"]
	if email == "" {
		return nil, errors.New("google account has no email")
	}

	return s.signInOrSignUpOAuthUser(email, userInfo["name"])
}

func fetchOAuthUserInfo(
	oauthConfig *oauth2.Config,
	code string,
	userAPIURL string,
) (map[string]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), oauthRequestTimeout)
	defer cancel()

	token, err := oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code: %w", err)
	}

	client := oauthConfig.Client(ctx, token)
	resp, err := client.Get(userAPIURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user info: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("user info request failed with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read user info response: %w", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse user info response: %w", err)
	}

	userInfo := make(map[string]string, len(raw))
	for key, value := range raw {
		if str, ok := value.(string); ok {
			userInfo[key] = str
		}
	}

	return userInfo, nil
}

func (s *UserService) signInOrSignUpOAuthUser(
	email, name string,
) (*users_dto.OAuthCallbackResponseDTO, error) {
	user, err := s.userRepository.GetUserByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	isNewUser := false

	if user == nil {
		user = &users_models.User{
			ID:                   uuid.New(),
			Email:                email,
			Name:                 name,
			HashedPassword:       nil,
			PasswordCreationTime: time.Now().UTC(),
			Role:                 users_enums.UserRoleMember,
			Status:               users_enums.UserStatusActive,
			CreatedAt:            time.Now().UTC(),
		}

		if err := s.userRepository.CreateUser(user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}

		isNewUser = true

		s.auditLogWriter.WriteAuditLog(
			fmt.Sprintf("User registered via OAuth: %s", email),
			&user.ID,
			nil,
		)

		if err := s.notifySignUpListeners(user.ID, user.Name); err != nil {
			return nil, err
		}
	}

	if user.Status == users_enums.UserStatusInvited {
		if err := s.userRepository.UpdateUserStatus(user.ID, users_enums.UserStatusActive); err != nil {
			return nil, fmt.Errorf("failed to activate invited user: %w", err)
		}
	} else if !user.IsActiveUser() {
		return nil, errors.New("user account is deactivated")
	}

	tokenResponse, err := s.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	return &users_dto.OAuthCallbackResponseDTO{
		UserID:    user.ID,
		Email:     user.Email,
		Token:     tokenResponse.Token,
		IsNewUser: isNewUser,
	}, nil
}
