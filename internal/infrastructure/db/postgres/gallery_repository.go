package postgres

import (
	"context"

	"gorm.io/gorm"

	"content-service/internal/domain/entities"
	"content-service/internal/domain/repositories"
)

type GalleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) repositories.GalleryRepository {
	return &GalleryRepository{db: db}
}

func (r *GalleryRepository) ListActive(ctx context.Context, category string) ([]*entities.GalleryImage, error) {
	query := r.db.WithContext(ctx).Where("is_active = ?", true)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var models []GalleryImageModel
	if err := query.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	images := make([]*entities.GalleryImage, 0, len(models))
	for i := range models {
		images = append(images, r.mapToEntity(&models[i]))
	}
	return images, nil
}

func (r *GalleryRepository) mapToEntity(model *GalleryImageModel) *entities.GalleryImage {
	return &entities.GalleryImage{
		Id:        model.Id,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
		Title:     model.Title,
		ImageURL:  model.ImageURL,
		Category:  model.Category,
		IsActive:  model.IsActive,
	}
}
