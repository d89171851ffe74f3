package services

import (
	"context"

	"content-service/internal/application/interfaces"
	"content-service/internal/application/mapper"
	"content-service/internal/application/query"
	"content-service/internal/domain/repositories"
)

type GalleryService struct {
	galleryRepo repositories.GalleryRepository
}

func NewGalleryService(galleryRepo repositories.GalleryRepository) interfaces.GalleryService {
	return &GalleryService{galleryRepo: galleryRepo}
}

func (s *GalleryService) ListActive(ctx context.Context, category string) (*query.GalleryQueryListResult, error) {
	images, err := s.galleryRepo.ListActive(ctx, category)
	if err != nil {
		return nil, err
	}

	return &query.GalleryQueryListResult{
		Result: mapper.NewGalleryImageResultsFromEntities(images),
	}, nil
}
