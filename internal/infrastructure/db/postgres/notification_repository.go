package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"content-service/internal/domain/entities"
	"content-service/internal/domain/repositories"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) repositories.NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, notification *entities.ValidatedNotification) (*entities.Notification, error) {
	entity := notification.GetNotification()

	model := NotificationModel{
		Id:        entity.Id,
		CreatedAt: entity.CreatedAt,
		UserID:    entity.UserID,
		Title:     entity.Title,
		Message:   entity.Message,
		IsRead:    entity.IsRead,
		ReadAt:    entity.ReadAt,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return nil, err
	}

	return r.mapToEntity(&model), nil
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Notification, error) {
	var models []NotificationModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	notifications := make([]*entities.Notification, 0, len(models))
	for i := range models {
		notifications = append(notifications, r.mapToEntity(&models[i]))
	}
	return notifications, nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&NotificationModel{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": time.Now(),
		}).Error
}

func (r *NotificationRepository) mapToEntity(model *NotificationModel) *entities.Notification {
	return &entities.Notification{
		Id:        model.Id,
		CreatedAt: model.CreatedAt,
		UserID:    model.UserID,
		Title:     model.Title,
		Message:   model.Message,
		IsRead:    model.IsRead,
		ReadAt:    model.ReadAt,
	}
}
