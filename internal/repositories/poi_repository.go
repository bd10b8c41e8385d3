package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"placemark/internal/models/db_models"
)

type POIRepository interface {
	Create(ctx context.Context, poi *db_models.POI) (uuid.UUID, error)
	Update(ctx context.Context, poi *db_models.POI) error
	Delete(ctx context.Context, id uuid.UUID) error

	GetByIDWithImages(ctx context.Context, id string) (*db_models.POI, error)
	ListByUser(ctx context.Context, userID string, categoryID *uuid.UUID) ([]db_models.POI, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]db_models.POI, error)
	List(ctx context.Context) ([]db_models.POI, error)
}

type poiRepository struct {
	db *gorm.DB
}

func NewPOIRepository(db *gorm.DB) POIRepository {
	return &poiRepository{db: db}
}

func (r *poiRepository) Create(ctx context.Context, poi *db_models.POI) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(poi).Error; err != nil {
		return uuid.Nil, err
	}
	return poi.ID, nil
}

func (r *poiRepository) Update(ctx context.Context, poi *db_models.POI) error {
	result := r.db.WithContext(ctx).Save(poi)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *poiRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.POI{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

// GetByIDWithImages resolves the POI together with its owner and its
// image list in upload order. Returns nil, nil when no row matches.
func (r *poiRepository) GetByIDWithImages(ctx context.Context, id string) (*db_models.POI, error) {
	var poi db_models.POI
	err := r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("User").
		Preload("Category").
		First(&poi, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &poi, nil
}

func (r *poiRepository) ListByUser(ctx context.Context, userID string, categoryID *uuid.UUID) ([]db_models.POI, error) {
	var pois []db_models.POI

	query := r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Category").
		Where("user_id = ?", userID)

	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	if err := query.Find(&pois).Error; err != nil {
		return nil, err
	}
	return pois, nil
}

func (r *poiRepository) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]db_models.POI, error) {
	var pois []db_models.POI
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Find(&pois).Error
	if err != nil {
		return nil, err
	}
	return pois, nil
}

func (r *poiRepository) List(ctx context.Context) ([]db_models.POI, error) {
	var pois []db_models.POI
	err := r.db.WithContext(ctx).
		Preload("Category").
		Find(&pois).Error
	if err != nil {
		return nil, err
	}
	return pois, nil
}
