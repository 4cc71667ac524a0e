package services

import (
	"context"

	"github.com/swapnilk/acadesk/internal/app/models"
	"github.com/swapnilk/acadesk/internal/app/models/dto"
	"github.com/swapnilk/acadesk/internal/app/repositories"
	"github.com/swapnilk/acadesk/internal/pkg/apperrors"
	"github.com/swapnilk/acadesk/internal/pkg/auth"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (string, *models.User, error)
}

type authServiceImpl struct {
	userRepo   *repositories.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo *repositories.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login checks the credentials and returns a signed token with the
// authenticated user. An unknown email and a wrong password produce
// the same failure, so the response never reveals which part was
// wrong.
func (s *authServiceImpl) Login(ctx context.Context, req dto.LoginRequest) (string, *models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return "", nil, err
	}
	if user == nil || !auth.CheckPassword(user.Password, req.Password) {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}
