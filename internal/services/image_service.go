package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"placemark/internal/models/db_models"
	"placemark/internal/models/response_models"
	"placemark/internal/repositories"
	"placemark/pkg/blobstore"
	"placemark/pkg/utils"
)

type ImageServiceInterface interface {
	UploadImage(ctx context.Context, data []byte, contentType string, poiID uuid.UUID) (*response_models.ImageResponse, error)
	DeleteImage(ctx context.Context, imageID uuid.UUID) error
	ListImages(ctx context.Context, poiID uuid.UUID) ([]response_models.ImageResponse, error)
}

type ImageService struct {
	imageRepo repositories.ImageRepository
	poiRepo   repositories.POIRepository
	blobs     blobstore.Store
}

func NewImageService(
	imageRepo repositories.ImageRepository,
	poiRepo repositories.POIRepository,
	blobs blobstore.Store,
) ImageServiceInterface {
	return &ImageService{
		imageRepo: imageRepo,
		poiRepo:   poiRepo,
		blobs:     blobs,
	}
}

// UploadImage stores the bytes in the blob store and records the
// image against its POI. An empty payload is legal and silently
// skipped, returning (nil, nil).
func (s *ImageService) UploadImage(ctx context.Context, data []byte, contentType string, poiID uuid.UUID) (*response_models.ImageResponse, error) {
	if len(data) == 0 {
		return nil, nil
	}

	poi, err := s.poiRepo.GetByIDWithImages(ctx, poiID.String())
	if err != nil {
		log.Printf("Error fetching POI %s: %v", poiID, err)
		return nil, utils.ErrDatabaseError
	}
	if poi == nil {
		return nil, utils.ErrPoiNotFound
	}

	obj, err := s.blobs.Put(ctx, data, contentType)
	if err != nil {
		log.Printf("Error uploading image for POI %s: %v", poiID, err)
		return nil, err
	}

	image := &db_models.Image{
		PublicID: obj.Handle,
		URL:      obj.URL,
		POIID:    poiID,
	}
	if _, err := s.imageRepo.Create(ctx, image); err != nil {
		// The blob is already stored: a failure here strands it as an
		// orphan. Logged and accepted, there is no compensating delete.
		log.Printf("Error recording image %s for POI %s, blob orphaned: %v", obj.Handle, poiID, err)
		return nil, utils.ErrDatabaseError
	}

	return &response_models.ImageResponse{
		ID:       image.ID.String(),
		PublicID: image.PublicID,
		URL:      image.URL,
		PoiID:    image.POIID.String(),
	}, nil
}

// DeleteImage removes the record first and the blob second. Once the
// record is gone no reference can resolve to it; a blob left behind
// by a failed removal is unreachable garbage, which beats a dangling
// reference.
func (s *ImageService) DeleteImage(ctx context.Context, imageID uuid.UUID) error {
	image, err := s.imageRepo.FindById(ctx, imageID.String())
	if err != nil {
		log.Printf("Error fetching image %s: %v", imageID, err)
		return utils.ErrDatabaseError
	}
	if image == nil {
		return utils.ErrImageNotFound
	}

	if err := s.imageRepo.DeleteById(ctx, imageID); err != nil {
		log.Printf("Error deleting image record %s: %v", imageID, err)
		return utils.ErrDatabaseError
	}

	if err := s.blobs.Remove(ctx, image.PublicID); err != nil {
		log.Printf("Error removing blob %s for image %s: %v", image.PublicID, imageID, err)
	}

	return nil
}

func (s *ImageService) ListImages(ctx context.Context, poiID uuid.UUID) ([]response_models.ImageResponse, error) {
	images, err := s.imageRepo.ListByPoi(ctx, poiID)
	if err != nil {
		log.Printf("Error listing images for POI %s: %v", poiID, err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ImageResponse, 0, len(images))
	for _, image := range images {
		responses = append(responses, response_models.ImageResponse{
			ID:       image.ID.String(),
			PublicID: image.PublicID,
			URL:      image.URL,
			PoiID:    image.POIID.String(),
		})
	}
	return responses, nil
}
