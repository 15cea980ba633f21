package services

import (
	"context"

	"go.uber.org/zap"

	"shoe-store/models"
	"shoe-store/repositories"
	"shoe-store/utils"
)

// AuthService proxies registration to the upstream and mints the local
// session token from the returned user. Credentials are never stored or
// hashed here; the upstream owns them.
type AuthService struct {
	users  *repositories.UserRepository
	logger *zap.Logger
}

func NewAuthService(users *repositories.UserRepository, logger *zap.Logger) *AuthService {
	return &AuthService{users: users, logger: logger}
}

// Register creates the account upstream and returns the upstream response
// together with a session token for the new identity.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.RegisterResponse, string, error) {
	resp, err := s.users.Register(ctx, req)
	if err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateToken(resp.User.ID, resp.User.Email, resp.User.Rol)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("customer registered", zap.Int("user_id", resp.User.ID))
	return resp, token, nil
}

// CheckAuth forwards the upstream session check.
func (s *AuthService) CheckAuth(ctx context.Context, cookies string) error {
	return s.users.CheckAuth(ctx, cookies)
}
