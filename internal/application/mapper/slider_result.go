package mapper

import (
	"content-service/internal/application/common"
	"content-service/internal/domain/entities"
)

func NewSliderImageResultFromEntity(image *entities.SliderImage) *common.SliderImageResult {
	return &common.SliderImageResult{
		Id:           image.Id,
		CreatedAt:    image.CreatedAt,
		Title:        image.Title,
		ImageURL:     image.ImageURL,
		DisplayOrder: image.DisplayOrder,
	}
}

func NewSliderImageResultsFromEntities(images []*entities.SliderImage) []*common.SliderImageResult {
	results := make([]*common.SliderImageResult, 0, len(images))
	for _, image := range images {
		results = append(results, NewSliderImageResultFromEntity(image))
	}
	return results
}
