package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	Id        uuid.UUID
	CreatedAt time.Time
	UserID    uuid.UUID
	Title     string
	Message   string
	IsRead    bool
	ReadAt    *time.Time
}

func NewNotification(userID uuid.UUID, title, message string) *Notification {
	return &Notification{
		Id:        uuid.New(),
		CreatedAt: time.Now(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		IsRead:    false,
	}
}

func (n *Notification) validate() error {
	if n.UserID == uuid.Nil {
		return errors.New("user id must not be empty")
	}
	if n.Message == "" {
		return errors.New("message must not be empty")
	}
	return nil
}
