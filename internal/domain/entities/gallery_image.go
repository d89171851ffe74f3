package entities

import (
	"time"

	"github.com/google/uuid"
)

// GalleryImage is a public content record. Only records with IsActive set
// are visible on the public read endpoints.
type GalleryImage struct {
	Id        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
	Title     string
	ImageURL  string
	Category  string
	IsActive  bool
}
