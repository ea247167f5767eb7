package service

import (
	"context"
	"errors"
	"strings"

	"star-gestao-backend/internal/domain"
	"star-gestao-backend/internal/logger"
	"star-gestao-backend/internal/repository"
	"star-gestao-backend/internal/security"
)

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (*domain.LoginResult, error) {
	logger.EnterMethod("authService.Login", "usuario", username)

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Warn("Login attempt for unknown user", "usuario", username)
			return nil, ErrInvalidCredentials
		}
		logger.ExitMethodWithError("authService.Login", err, "usuario", username)
		return nil, err
	}

	if !security.CheckPassword(user.PasswordHash, password) {
		logger.Warn("Login attempt with wrong password", "usuario", username)
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		logger.ExitMethodWithError("authService.Login", err, "usuario", username)
		return nil, err
	}

	logger.ExitMethod("authService.Login", "userID", user.ID)
	return &domain.LoginResult{Success: true, Token: token, User: user.Username}, nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (int32, error) {
	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		return 0, ErrInvalidToken
	}
	if claims.Type != security.TokenTypeAccess {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}
