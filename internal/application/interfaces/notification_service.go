package interfaces

import (
	"context"

	"github.com/google/uuid"

	"content-service/internal/application/command"
	"content-service/internal/application/query"
)

type NotificationService interface {
	ListForUser(ctx context.Context, userID uuid.UUID) (*query.NotificationQueryListResult, error)
	Create(ctx context.Context, createCommand *command.CreateNotificationCommand) (*command.CreateNotificationCommandResult, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}
