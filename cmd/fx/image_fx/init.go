package image_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"placemark/internal/repositories"
	"placemark/internal/services"
	"placemark/pkg/blobstore"
)

var Module = fx.Provide(
	provideImageRepo, provideImageService)

func provideImageRepo(db *gorm.DB) repositories.ImageRepository {
	return repositories.NewImageRepository(db)
}

func provideImageService(
	imageRepo repositories.ImageRepository,
	poiRepo repositories.POIRepository,
	blobs blobstore.Store,
) services.ImageServiceInterface {
	return services.NewImageService(imageRepo, poiRepo, blobs)
}
