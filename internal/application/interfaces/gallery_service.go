package interfaces

import (
	"context"

	"content-service/internal/application/query"
)

type GalleryService interface {
	ListActive(ctx context.Context, category string) (*query.GalleryQueryListResult, error)
}
