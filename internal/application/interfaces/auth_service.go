package interfaces

import (
	"context"
	"errors"

	"content-service/internal/application/command"
)

// ErrInvalidCredentials is returned for an unknown email or a wrong
// password alike, so login responses cannot distinguish the two.
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService interface {
	Login(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error)
}
