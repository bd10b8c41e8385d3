package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"placemark/internal/services"
	"placemark/pkg/utils"
)

type ImageController struct {
	imageService services.ImageServiceInterface
}

func NewImageController(imageService services.ImageServiceInterface) *ImageController {
	return &ImageController{
		imageService: imageService,
	}
}

// UploadImage adds one image to a POI's gallery. An empty or missing
// file part is a legal no-op.
func (i *ImageController) UploadImage(c *gin.Context) {
	poiID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid POI ID")
		return
	}

	data, contentType, _ := readImagePart(c)

	image, err := i.imageService.UploadImage(c.Request.Context(), data, contentType, poiID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if image == nil {
		utils.RespondSuccess(c, nil, "No image payload, nothing uploaded")
		return
	}
	utils.RespondSuccess(c, image, "Image uploaded successfully")
}

func (i *ImageController) ListImages(c *gin.Context) {
	poiID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid POI ID")
		return
	}

	images, err := i.imageService.ListImages(c.Request.Context(), poiID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, images, "Images fetched successfully")
}

func (i *ImageController) DeleteImage(c *gin.Context) {
	imageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid image ID")
		return
	}

	if err := i.imageService.DeleteImage(c.Request.Context(), imageID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Image deleted successfully")
}
