package postgres

import (
	"context"

	"gorm.io/gorm"

	"content-service/internal/domain/entities"
	"content-service/internal/domain/repositories"
)

type SliderRepository struct {
	db *gorm.DB
}

func NewSliderRepository(db *gorm.DB) repositories.SliderRepository {
	return &SliderRepository{db: db}
}

func (r *SliderRepository) ListActive(ctx context.Context) ([]*entities.SliderImage, error) {
	var models []SliderImageModel
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("display_order ASC").
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	images := make([]*entities.SliderImage, 0, len(models))
	for i := range models {
		images = append(images, r.mapToEntity(&models[i]))
	}
	return images, nil
}

func (r *SliderRepository) mapToEntity(model *SliderImageModel) *entities.SliderImage {
	return &entities.SliderImage{
		Id:           model.Id,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
		Title:        model.Title,
		ImageURL:     model.ImageURL,
		DisplayOrder: model.DisplayOrder,
		IsActive:     model.IsActive,
	}
}
