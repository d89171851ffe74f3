package postgres

import (
	"time"

	"github.com/google/uuid"
)

type GalleryImageModel struct {
	Id        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Title     string
	ImageURL  string `gorm:"not null"`
	Category  string `gorm:"index"`
	IsActive  bool   `gorm:"index;default:true"`
}

func (GalleryImageModel) TableName() string {
	return "gallery_images"
}

type SliderImageModel struct {
	Id           uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Title        string
	ImageURL     string `gorm:"not null"`
	DisplayOrder int    `gorm:"index;default:0"`
	IsActive     bool   `gorm:"index;default:true"`
}

func (SliderImageModel) TableName() string {
	return "slider_images"
}

type NotificationModel struct {
	Id        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time
	UserID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Title     string
	Message   string `gorm:"not null"`
	IsRead    bool   `gorm:"default:false"`
	ReadAt    *time.Time
}

func (NotificationModel) TableName() string {
	return "notifications"
}
