package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliderRepositoryListActiveOrdering(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSliderRepository(db)

	base := time.Now().Add(-time.Hour)
	seed := []SliderImageModel{
		{Id: uuid.New(), CreatedAt: base, ImageURL: "second.jpg", DisplayOrder: 2, IsActive: true},
		{Id: uuid.New(), CreatedAt: base, ImageURL: "first.jpg", DisplayOrder: 1, IsActive: true},
		{Id: uuid.New(), CreatedAt: base.Add(time.Minute), ImageURL: "first-newer.jpg", DisplayOrder: 1, IsActive: true},
		{Id: uuid.New(), CreatedAt: base, ImageURL: "hidden.jpg", DisplayOrder: 0, IsActive: false},
	}
	require.NoError(t, db.Create(&seed).Error)

	images, err := repo.ListActive(context.Background())
	require.NoError(t, err)

	require.Len(t, images, 3)
	// Primary key: display order ascending. Ties broken newest first.
	assert.Equal(t, "first-newer.jpg", images[0].ImageURL)
	assert.Equal(t, "first.jpg", images[1].ImageURL)
	assert.Equal(t, "second.jpg", images[2].ImageURL)
}
