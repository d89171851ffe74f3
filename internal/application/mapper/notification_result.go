package mapper

import (
	"content-service/internal/application/common"
	"content-service/internal/domain/entities"
)

func NewNotificationResultFromEntity(notification *entities.Notification) *common.NotificationResult {
	return &common.NotificationResult{
		Id:        notification.Id,
		CreatedAt: notification.CreatedAt,
		Title:     notification.Title,
		Message:   notification.Message,
		IsRead:    notification.IsRead,
		ReadAt:    notification.ReadAt,
	}
}

func NewNotificationResultsFromEntities(notifications []*entities.Notification) []*common.NotificationResult {
	results := make([]*common.NotificationResult, 0, len(notifications))
	for _, notification := range notifications {
		results = append(results, NewNotificationResultFromEntity(notification))
	}
	return results
}
