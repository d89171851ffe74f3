package repositories

import (
	"context"

	"content-service/internal/domain/entities"
)

type GalleryRepository interface {
	// ListActive returns active gallery images, newest first. An empty
	// category means no category filter.
	ListActive(ctx context.Context, category string) ([]*entities.GalleryImage, error)
}
