package services

import (
	"context"
	"errors"

	"github.com/kdanquah/regportal/internal/app/models/dto"
	"github.com/kdanquah/regportal/internal/pkg/apperrors"
	"github.com/kdanquah/regportal/internal/pkg/auth"
	"github.com/kdanquah/regportal/internal/pkg/logger"
)

// AuthService defines the interface for admin authentication
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	ValidateToken(tokenString string) (*auth.Claims, error)
}

type authServiceImpl struct {
	admins AdminStore
	jwt    *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(admins AdminStore, jwt *auth.JWTService) AuthService {
	return &authServiceImpl{
		admins: admins,
		jwt:    jwt,
	}
}

// Login verifies admin credentials and issues an access token. Unknown
// usernames and wrong passwords are indistinguishable to the caller.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	admin, err := s.admins.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrAdminNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(admin.PasswordHash, req.Password) {
		logger.Warn().Str("username", req.Username).Msg("Failed login attempt")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwt.GenerateToken(admin)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("username", admin.Username).Msg("Admin logged in")
	return &dto.LoginResponse{
		AccessToken: token,
		ExpiresIn:   expiresIn,
		TokenType:   "Bearer",
	}, nil
}

// ValidateToken parses and verifies an access token.
func (s *authServiceImpl) ValidateToken(tokenString string) (*auth.Claims, error) {
	claims, err := s.jwt.ValidateToken(tokenString)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrTokenInvalid
	}
	return claims, nil
}
