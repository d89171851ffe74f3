package entities

import (
	"time"

	"github.com/google/uuid"
)

// SliderImage is a home-page slider record. DisplayOrder is the primary
// sort key on the public endpoint, lower values first.
type SliderImage struct {
	Id           uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Title        string
	ImageURL     string
	DisplayOrder int
	IsActive     bool
}
