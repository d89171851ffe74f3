package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"content-service/internal/application/command"
	"content-service/internal/application/interfaces"
	"content-service/internal/application/mapper"
	"content-service/internal/application/query"
	"content-service/internal/domain/entities"
	"content-service/internal/domain/repositories"
	"content-service/internal/infrastructure"
	"content-service/internal/infrastructure/realtime"
	"content-service/internal/messaging"
)

type NotificationService struct {
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
	redisService     *infrastructure.RedisService
	pusherService    *realtime.PusherService
	mailer           *infrastructure.Mailer
	events           *messaging.Publisher
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
	redisService *infrastructure.RedisService,
	pusherService *realtime.PusherService,
	mailer *infrastructure.Mailer,
	events *messaging.Publisher,
) interfaces.NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		redisService:     redisService,
		pusherService:    pusherService,
		mailer:           mailer,
		events:           events,
	}
}

func (s *NotificationService) ListForUser(ctx context.Context, userID uuid.UUID) (*query.NotificationQueryListResult, error) {
	notifications, err := s.notificationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	unread, hit := s.redisService.GetUnreadCount(ctx, userID)
	if !hit {
		unread, err = s.notificationRepo.CountUnread(ctx, userID)
		if err != nil {
			return nil, err
		}
		if err := s.redisService.SetUnreadCount(ctx, userID, unread); err != nil {
			log.Printf("Failed to cache unread count: %v", err)
		}
	}

	return &query.NotificationQueryListResult{
		Result:      mapper.NewNotificationResultsFromEntities(notifications),
		UnreadCount: unread,
	}, nil
}

func (s *NotificationService) Create(ctx context.Context, createCommand *command.CreateNotificationCommand) (*command.CreateNotificationCommandResult, error) {
	notification := entities.NewNotification(createCommand.UserID, createCommand.Title, createCommand.Message)
	validated, err := entities.NewValidatedNotification(notification)
	if err != nil {
		return nil, err
	}

	created, err := s.notificationRepo.Create(ctx, validated)
	if err != nil {
		return nil, err
	}

	if err := s.redisService.InvalidateUnreadCount(ctx, created.UserID); err != nil {
		log.Printf("Failed to invalidate unread count: %v", err)
	}

	result := mapper.NewNotificationResultFromEntity(created)

	// Side channels are fire-and-forget: a delivery failure never fails
	// the request that created the notification.
	if err := s.pusherService.NotifyUser(created.UserID, result); err != nil {
		log.Printf("Failed to push notification %s: %v", created.Id, err)
	}
	if err := s.events.PublishNotificationCreated(result); err != nil {
		log.Printf("Failed to publish notification event: %v", err)
	}
	s.emailNotification(ctx, created)

	return &command.CreateNotificationCommandResult{Result: result}, nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	if err := s.notificationRepo.MarkAllRead(ctx, userID); err != nil {
		return err
	}

	if err := s.redisService.InvalidateUnreadCount(ctx, userID); err != nil {
		log.Printf("Failed to invalidate unread count: %v", err)
	}
	return nil
}

func (s *NotificationService) emailNotification(ctx context.Context, notification *entities.Notification) {
	if !s.mailer.Enabled() {
		return
	}

	user, err := s.userRepo.FindById(ctx, notification.UserID)
	if err != nil || user == nil {
		log.Printf("Cannot resolve recipient %s for email: %v", notification.UserID, err)
		return
	}

	if err := s.mailer.SendNotification(user.Email, notification.Title, notification.Message); err != nil {
		log.Printf("Failed to email notification %s: %v", notification.Id, err)
	}
}
