package services

import (
	"context"
	"time"

	"content-service/internal/application/command"
	"content-service/internal/application/interfaces"
	"content-service/internal/application/mapper"
	"content-service/internal/domain/repositories"
	"content-service/internal/infrastructure"
)

type AuthService struct {
	userRepo   repositories.UserRepository
	jwtService *infrastructure.JWTService
	refreshTTL time.Duration
}

func NewAuthService(
	userRepo repositories.UserRepository,
	jwtService *infrastructure.JWTService,
	refreshTTL time.Duration,
) interfaces.AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		refreshTTL: refreshTTL,
	}
}

func (s *AuthService) Login(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, loginCommand.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, interfaces.ErrInvalidCredentials
	}

	if err := user.CheckPassword(loginCommand.Password); err != nil {
		return nil, interfaces.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.Id)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtService.GenerateRefreshToken(user.Id, s.refreshTTL)
	if err != nil {
		return nil, err
	}

	return &command.LoginUserCommandResult{
		Token:        token,
		RefreshToken: refreshToken,
		User:         mapper.NewUserResultFromEntity(user),
	}, nil
}
