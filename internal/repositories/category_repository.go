package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"placemark/internal/models/db_models"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *db_models.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error

	FindById(ctx context.Context, id string) (*db_models.Category, error)
	FindByName(ctx context.Context, name string) (*db_models.Category, error)
	List(ctx context.Context) ([]db_models.Category, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (c *categoryRepository) Create(ctx context.Context, category *db_models.Category) error {
	return c.db.WithContext(ctx).Create(category).Error
}

func (c *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := c.db.WithContext(ctx).Delete(&db_models.Category{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (c *categoryRepository) DeleteAll(ctx context.Context) error {
	return c.db.WithContext(ctx).Where("1 = 1").Delete(&db_models.Category{}).Error
}

func (c *categoryRepository) FindById(ctx context.Context, id string) (*db_models.Category, error) {
	var category db_models.Category
	err := c.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// FindByName matches case-insensitively so that duplicate checks
// reject names differing only by case.
func (c *categoryRepository) FindByName(ctx context.Context, name string) (*db_models.Category, error) {
	var category db_models.Category
	err := c.db.WithContext(ctx).First(&category, "LOWER(name) = LOWER(?)", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (c *categoryRepository) List(ctx context.Context) ([]db_models.Category, error) {
	var categories []db_models.Category
	if err := c.db.WithContext(ctx).Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
