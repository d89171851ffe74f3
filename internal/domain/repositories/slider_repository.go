package repositories

import (
	"context"

	"content-service/internal/domain/entities"
)

type SliderRepository interface {
	// ListActive returns active slider images ordered by display order
	// ascending, then newest first.
	ListActive(ctx context.Context) ([]*entities.SliderImage, error)
}
