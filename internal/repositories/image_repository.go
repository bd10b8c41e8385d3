package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"placemark/internal/models/db_models"
)

// ImageRepository persists image metadata only. Blob-store content
// and the owning POI's list are the image workflow's responsibility.
type ImageRepository interface {
	Create(ctx context.Context, image *db_models.Image) (uuid.UUID, error)
	DeleteById(ctx context.Context, id uuid.UUID) error

	FindById(ctx context.Context, id string) (*db_models.Image, error)
	ListByPoi(ctx context.Context, poiID uuid.UUID) ([]db_models.Image, error)
}

type imageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{db: db}
}

func (r *imageRepository) Create(ctx context.Context, image *db_models.Image) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(image).Error; err != nil {
		return uuid.Nil, err
	}
	return image.ID, nil
}

func (r *imageRepository) DeleteById(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Image{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *imageRepository) FindById(ctx context.Context, id string) (*db_models.Image, error) {
	var image db_models.Image
	err := r.db.WithContext(ctx).First(&image, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &image, nil
}

func (r *imageRepository) ListByPoi(ctx context.Context, poiID uuid.UUID) ([]db_models.Image, error) {
	var images []db_models.Image
	err := r.db.WithContext(ctx).
		Where("poi_id = ?", poiID).
		Order("created_at ASC").
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}
