package repositories

import (
	"context"

	"github.com/google/uuid"

	"content-service/internal/domain/entities"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *entities.ValidatedNotification) (*entities.Notification, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Notification, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
	// MarkAllRead sets the read flag and stamps the read time for every
	// notification belonging to userID, regardless of current state.
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}
