package category_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"placemark/internal/repositories"
	"placemark/internal/services"
)

var Module = fx.Provide(
	provideCategoryRepo, provideCategoryService)

func provideCategoryRepo(db *gorm.DB) repositories.CategoryRepository {
	return repositories.NewCategoryRepository(db)
}

func provideCategoryService(
	categoryRepo repositories.CategoryRepository,
	poiRepo repositories.POIRepository,
	poiService services.POIServiceInterface,
) services.CategoryServiceInterface {
	return services.NewCategoryService(categoryRepo, poiRepo, poiService)
}
