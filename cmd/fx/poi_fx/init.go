package poi_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"placemark/internal/repositories"
	"placemark/internal/services"
)

var Module = fx.Provide(
	providePoiRepo, providePoiService)

func providePoiRepo(db *gorm.DB) repositories.POIRepository {
	return repositories.NewPOIRepository(db)
}

func providePoiService(
	poiRepo repositories.POIRepository,
	userRepo repositories.UserRepository,
	categoryRepo repositories.CategoryRepository,
	imageService services.ImageServiceInterface,
) services.POIServiceInterface {
	return services.NewPOIService(poiRepo, userRepo, categoryRepo, imageService)
}
