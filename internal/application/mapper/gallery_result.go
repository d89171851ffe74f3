package mapper

import (
	"content-service/internal/application/common"
	"content-service/internal/domain/entities"
)

func NewGalleryImageResultFromEntity(image *entities.GalleryImage) *common.GalleryImageResult {
	return &common.GalleryImageResult{
		Id:        image.Id,
		CreatedAt: image.CreatedAt,
		Title:     image.Title,
		ImageURL:  image.ImageURL,
		Category:  image.Category,
	}
}

func NewGalleryImageResultsFromEntities(images []*entities.GalleryImage) []*common.GalleryImageResult {
	results := make([]*common.GalleryImageResult, 0, len(images))
	for _, image := range images {
		results = append(results, NewGalleryImageResultFromEntity(image))
	}
	return results
}
