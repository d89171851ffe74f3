package command

import (
	"github.com/google/uuid"

	"content-service/internal/application/common"
)

type CreateNotificationCommand struct {
	UserID  uuid.UUID `json:"user_id"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
}

type CreateNotificationCommandResult struct {
	Result *common.NotificationResult `json:"result"`
}
