package services

import (
	"context"
	"log"
	"strings"

	"placemark/internal/models/db_models"
	"placemark/internal/models/response_models"
	"placemark/internal/repositories"
	"placemark/pkg/utils"
)

type CategoryServiceInterface interface {
	CreateCategory(ctx context.Context, name string) (*response_models.CategoryResponse, error)
	ListCategories(ctx context.Context) ([]response_models.CategoryResponse, error)
	DeleteCategory(ctx context.Context, nameOrAll string) (response_models.CascadeReport, error)
}

type CategoryService struct {
	categoryRepo repositories.CategoryRepository
	poiRepo      repositories.POIRepository
	poiService   POIServiceInterface
}

func NewCategoryService(
	categoryRepo repositories.CategoryRepository,
	poiRepo repositories.POIRepository,
	poiService POIServiceInterface,
) CategoryServiceInterface {
	return &CategoryService{
		categoryRepo: categoryRepo,
		poiRepo:      poiRepo,
		poiService:   poiService,
	}
}

// CreateCategory stores the name upper-cased and rejects duplicates
// that differ only by case. Uniqueness is checked here only, never at
// delete time.
func (c *CategoryService) CreateCategory(ctx context.Context, name string) (*response_models.CategoryResponse, error) {
	name = strings.ToUpper(strings.TrimSpace(name))

	existing, err := c.categoryRepo.FindByName(ctx, name)
	if err != nil {
		log.Printf("Error checking category %q: %v", name, err)
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrCategoryExists
	}

	category := &db_models.Category{Name: name}
	if err := c.categoryRepo.Create(ctx, category); err != nil {
		log.Printf("Error creating category %q: %v", name, err)
		return nil, utils.ErrDatabaseError
	}

	return &response_models.CategoryResponse{
		ID:   category.ID.String(),
		Name: category.Name,
	}, nil
}

func (c *CategoryService) ListCategories(ctx context.Context) ([]response_models.CategoryResponse, error) {
	categories, err := c.categoryRepo.List(ctx)
	if err != nil {
		log.Printf("Error listing categories: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, response_models.CategoryResponse{
			ID:   category.ID.String(),
			Name: category.Name,
		})
	}
	return responses, nil
}

// DeleteCategory cascades through every POI referencing the target
// categories before removing the category rows. The "all" sentinel
// selects every category; POIs with no category reference are left
// alone either way. Per-POI failures go into the report and the
// cascade keeps moving.
func (c *CategoryService) DeleteCategory(ctx context.Context, nameOrAll string) (response_models.CascadeReport, error) {
	var report response_models.CascadeReport

	deleteAll := strings.EqualFold(nameOrAll, AllCategories)

	var targets []db_models.Category
	if deleteAll {
		all, err := c.categoryRepo.List(ctx)
		if err != nil {
			log.Printf("Error listing categories: %v", err)
			return report, utils.ErrDatabaseError
		}
		targets = all
	} else {
		category, err := c.categoryRepo.FindByName(ctx, nameOrAll)
		if err != nil {
			log.Printf("Error fetching category %q: %v", nameOrAll, err)
			return report, utils.ErrDatabaseError
		}
		if category == nil {
			return report, utils.ErrCategoryNotFound
		}
		targets = []db_models.Category{*category}
	}

	for _, category := range targets {
		pois, err := c.poiRepo.ListByCategory(ctx, category.ID)
		if err != nil {
			log.Printf("Error listing POIs of category %s: %v", category.ID, err)
			report.AddFailure("category", category.ID.String(), err)
			continue
		}

		for _, poi := range pois {
			poiReport, err := c.poiService.DeletePoi(ctx, poi.ID)
			report.Merge(poiReport)
			if err != nil {
				log.Printf("Error cascading POI %s of category %s: %v", poi.ID, category.ID, err)
				report.AddFailure("poi", poi.ID.String(), err)
			}
		}
	}

	if deleteAll {
		if err := c.categoryRepo.DeleteAll(ctx); err != nil {
			log.Printf("Error deleting all categories: %v", err)
			return report, utils.ErrDatabaseError
		}
		report.CategoriesDeleted += len(targets)
	} else {
		if err := c.categoryRepo.Delete(ctx, targets[0].ID); err != nil {
			log.Printf("Error deleting category %s: %v", targets[0].ID, err)
			return report, utils.ErrDatabaseError
		}
		report.CategoriesDeleted++
	}

	return report, nil
}
