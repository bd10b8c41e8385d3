package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"placemark/internal/models/request_models"
	"placemark/internal/services"
	"placemark/pkg/utils"
)

type POIController struct {
	poiService services.POIServiceInterface
}

func NewPOIController(poiService services.POIServiceInterface) *POIController {
	return &POIController{
		poiService: poiService,
	}
}

// CreatePoi accepts a multipart form so the initial image upload can
// ride along with the POI fields. A missing image part is fine.
func (p *POIController) CreatePoi(c *gin.Context) {
	var req request_models.CreatePoiRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if data, contentType, ok := readImagePart(c); ok {
		req.Image = data
		req.ImageContentType = contentType
	}

	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user ID")
		return
	}

	poi, err := p.poiService.CreatePoi(c.Request.Context(), req, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, poi, "POI created successfully")
}

func (p *POIController) ListPois(c *gin.Context) {
	userID := c.GetString("user_id")
	categoryFilter := c.DefaultQuery("category", services.AllCategories)

	pois, err := p.poiService.ListPois(c.Request.Context(), userID, categoryFilter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pois, "POIs fetched successfully")
}

func (p *POIController) GetPoiById(c *gin.Context) {
	poiID := c.Param("id")
	if poiID == "" {
		utils.RespondError(c, http.StatusBadRequest, "POI ID is required")
		return
	}

	poi, err := p.poiService.GetPoiById(c.Request.Context(), poiID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, poi, "POI fetched successfully")
}

func (p *POIController) UpdatePoi(c *gin.Context) {
	poiID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid POI ID")
		return
	}

	var req request_models.UpdatePoiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := p.poiService.UpdatePoi(c.Request.Context(), poiID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "POI updated successfully")
}

func (p *POIController) DeletePoi(c *gin.Context) {
	poiID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid POI ID")
		return
	}

	report, err := p.poiService.DeletePoi(c.Request.Context(), poiID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	message := "POI deleted successfully"
	if !report.Complete() {
		message = "POI deleted with failures"
	}
	utils.RespondSuccess(c, report, message)
}

// readImagePart pulls the optional "image" multipart file. Returns
// ok=false when the part is absent or unreadable.
func readImagePart(c *gin.Context) ([]byte, string, bool) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return nil, "", false
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, "", false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", false
	}

	return data, fileHeader.Header.Get("Content-Type"), true
}
