package services

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"placemark/internal/models/db_models"
	"placemark/internal/models/request_models"
	"placemark/internal/models/response_models"
	"placemark/internal/repositories"
	"placemark/pkg/utils"
)

// AllCategories is the sentinel filter value meaning "no category filter".
const AllCategories = "all"

type POIServiceInterface interface {
	CreatePoi(ctx context.Context, req request_models.CreatePoiRequest, userID uuid.UUID) (*response_models.POI, error)
	UpdatePoi(ctx context.Context, poiID uuid.UUID, req request_models.UpdatePoiRequest) error
	DeletePoi(ctx context.Context, poiID uuid.UUID) (response_models.CascadeReport, error)

	GetPoiById(ctx context.Context, id string) (*response_models.POI, error)
	ListPois(ctx context.Context, userID string, categoryFilter string) ([]response_models.POI, error)
}

type PoiService struct {
	poiRepo      repositories.POIRepository
	userRepo     repositories.UserRepository
	categoryRepo repositories.CategoryRepository
	imageService ImageServiceInterface
}

func NewPOIService(
	poiRepo repositories.POIRepository,
	userRepo repositories.UserRepository,
	categoryRepo repositories.CategoryRepository,
	imageService ImageServiceInterface,
) POIServiceInterface {
	return &PoiService{
		poiRepo:      poiRepo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		imageService: imageService,
	}
}

// CreatePoi creates the POI, bumps the owner's POI count and folds in
// the optional initial image upload. The count is mutated here and in
// DeletePoi only, never at the handler layer.
func (p *PoiService) CreatePoi(ctx context.Context, req request_models.CreatePoiRequest, userID uuid.UUID) (*response_models.POI, error) {
	user, err := p.userRepo.FindById(ctx, userID.String())
	if err != nil {
		log.Printf("Error fetching user %s: %v", userID, err)
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrAccountNotFound
	}

	category, err := p.categoryRepo.FindByName(ctx, req.Category)
	if err != nil {
		log.Printf("Error fetching category %q: %v", req.Category, err)
		return nil, utils.ErrDatabaseError
	}
	if category == nil {
		return nil, utils.ErrCategoryNotFound
	}

	newPoi := &db_models.POI{
		Name:        req.Name,
		Description: req.Description,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		UserID:      user.ID,
		CategoryID:  &category.ID,
	}
	if _, err := p.poiRepo.Create(ctx, newPoi); err != nil {
		log.Printf("Error creating POI: %v", err)
		return nil, utils.ErrDatabaseError
	}

	user.NumOfPoi++
	if err := p.userRepo.Update(ctx, user); err != nil {
		log.Printf("Error incrementing POI count for user %s: %v", user.ID, err)
		return nil, utils.ErrDatabaseError
	}

	var images []response_models.ImageResponse
	uploaded, err := p.imageService.UploadImage(ctx, req.Image, req.ImageContentType, newPoi.ID)
	if err != nil {
		// The POI itself exists and the count is consistent with it.
		log.Printf("Error uploading initial image for POI %s: %v", newPoi.ID, err)
		return nil, err
	}
	if uploaded != nil {
		images = append(images, *uploaded)
	}

	return &response_models.POI{
		ID:          newPoi.ID.String(),
		Name:        newPoi.Name,
		Description: newPoi.Description,
		Latitude:    newPoi.Latitude,
		Longitude:   newPoi.Longitude,
		Category:    category.Name,
		UserID:      user.ID.String(),
		Images:      images,
	}, nil
}

func (p *PoiService) UpdatePoi(ctx context.Context, poiID uuid.UUID, req request_models.UpdatePoiRequest) error {
	existing, err := p.poiRepo.GetByIDWithImages(ctx, poiID.String())
	if err != nil {
		log.Printf("Error fetching POI %s: %v", poiID, err)
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrPoiNotFound
	}

	category, err := p.categoryRepo.FindByName(ctx, req.Category)
	if err != nil {
		log.Printf("Error fetching category %q: %v", req.Category, err)
		return utils.ErrDatabaseError
	}
	if category == nil {
		return utils.ErrCategoryNotFound
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.Latitude = req.Latitude
	existing.Longitude = req.Longitude
	existing.CategoryID = &category.ID
	existing.Category = nil

	if err := p.poiRepo.Update(ctx, existing); err != nil {
		log.Printf("Error updating POI %s: %v", poiID, err)
		return utils.ErrDatabaseError
	}
	return nil
}

// DeletePoi cascades: the owner's POI count is decremented exactly
// once, every image is deleted from both stores, then the POI row
// goes. Image failures do not abort the remaining images or the POI
// delete; they are collected into the report.
func (p *PoiService) DeletePoi(ctx context.Context, poiID uuid.UUID) (response_models.CascadeReport, error) {
	var report response_models.CascadeReport

	poi, err := p.poiRepo.GetByIDWithImages(ctx, poiID.String())
	if err != nil {
		log.Printf("Error fetching POI %s: %v", poiID, err)
		return report, utils.ErrDatabaseError
	}
	if poi == nil {
		return report, utils.ErrPoiNotFound
	}

	owner, err := p.userRepo.FindById(ctx, poi.UserID.String())
	if err != nil {
		log.Printf("Error fetching owner %s of POI %s: %v", poi.UserID, poiID, err)
		return report, utils.ErrDatabaseError
	}
	if owner != nil {
		owner.NumOfPoi--
		if err := p.userRepo.Update(ctx, owner); err != nil {
			log.Printf("Error decrementing POI count for user %s: %v", owner.ID, err)
			return report, utils.ErrDatabaseError
		}
	}

	for _, image := range poi.Images {
		if err := p.imageService.DeleteImage(ctx, image.ID); err != nil {
			log.Printf("Error deleting image %s of POI %s: %v", image.ID, poiID, err)
			report.AddFailure("image", image.ID.String(), err)
			continue
		}
		report.ImagesDeleted++
	}

	if err := p.poiRepo.Delete(ctx, poiID); err != nil {
		log.Printf("Error deleting POI %s: %v", poiID, err)
		return report, utils.ErrDatabaseError
	}
	report.PoisDeleted++

	return report, nil
}

func (p *PoiService) GetPoiById(ctx context.Context, id string) (*response_models.POI, error) {
	poi, err := p.poiRepo.GetByIDWithImages(ctx, id)
	if err != nil {
		log.Printf("Error fetching POI %s: %v", id, err)
		return nil, utils.ErrDatabaseError
	}
	if poi == nil {
		return nil, utils.ErrPoiNotFound
	}

	resp := toPoiResponse(poi)
	return &resp, nil
}

// ListPois returns the user's POIs, optionally narrowed to one
// category. The "all" sentinel (or an empty filter) means no filter.
func (p *PoiService) ListPois(ctx context.Context, userID string, categoryFilter string) ([]response_models.POI, error) {
	var categoryID *uuid.UUID

	if categoryFilter != "" && !strings.EqualFold(categoryFilter, AllCategories) {
		category, err := p.categoryRepo.FindByName(ctx, categoryFilter)
		if err != nil {
			log.Printf("Error fetching category %q: %v", categoryFilter, err)
			return nil, utils.ErrDatabaseError
		}
		if category == nil {
			return nil, utils.ErrCategoryNotFound
		}
		categoryID = &category.ID
	}

	pois, err := p.poiRepo.ListByUser(ctx, userID, categoryID)
	if err != nil {
		log.Printf("Error listing POIs for user %s: %v", userID, err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.POI, 0, len(pois))
	for i := range pois {
		responses = append(responses, toPoiResponse(&pois[i]))
	}
	return responses, nil
}

func toPoiResponse(poi *db_models.POI) response_models.POI {
	images := make([]response_models.ImageResponse, 0, len(poi.Images))
	for _, image := range poi.Images {
		images = append(images, response_models.ImageResponse{
			ID:       image.ID.String(),
			PublicID: image.PublicID,
			URL:      image.URL,
			PoiID:    image.POIID.String(),
		})
	}

	resp := response_models.POI{
		ID:          poi.ID.String(),
		Name:        poi.Name,
		Description: poi.Description,
		Latitude:    poi.Latitude,
		Longitude:   poi.Longitude,
		UserID:      poi.UserID.String(),
		Images:      images,
	}
	if poi.Category != nil {
		resp.Category = poi.Category.Name
	}
	return resp
}
