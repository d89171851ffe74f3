package services

import (
	"context"

	"content-service/internal/application/interfaces"
	"content-service/internal/application/mapper"
	"content-service/internal/application/query"
	"content-service/internal/domain/repositories"
)

type SliderService struct {
	sliderRepo repositories.SliderRepository
}

func NewSliderService(sliderRepo repositories.SliderRepository) interfaces.SliderService {
	return &SliderService{sliderRepo: sliderRepo}
}

func (s *SliderService) ListActive(ctx context.Context) (*query.SliderQueryListResult, error) {
	images, err := s.sliderRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	return &query.SliderQueryListResult{
		Result: mapper.NewSliderImageResultsFromEntities(images),
	}, nil
}
