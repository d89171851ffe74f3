package common

import (
	"time"

	"github.com/google/uuid"
)

type SliderImageResult struct {
	Id           uuid.UUID `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Title        string    `json:"title"`
	ImageURL     string    `json:"image_url"`
	DisplayOrder int       `json:"display_order"`
}
