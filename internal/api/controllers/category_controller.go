package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"placemark/internal/models/request_models"
	"placemark/internal/services"
	"placemark/pkg/utils"
)

type CategoryController struct {
	categoryService services.CategoryServiceInterface
}

func NewCategoryController(categoryService services.CategoryServiceInterface) *CategoryController {
	return &CategoryController{
		categoryService: categoryService,
	}
}

func (ct *CategoryController) CreateCategory(c *gin.Context) {
	var req request_models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	category, err := ct.categoryService.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, category, "Category created successfully")
}

func (ct *CategoryController) ListCategories(c *gin.Context) {
	categories, err := ct.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, categories, "Categories fetched successfully")
}

// DeleteCategory honors the "all" sentinel: DELETE /categories/all
// cascades through every category.
func (ct *CategoryController) DeleteCategory(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		utils.RespondError(c, http.StatusBadRequest, "Category name is required")
		return
	}

	report, err := ct.categoryService.DeleteCategory(c.Request.Context(), name)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	message := "Category deleted successfully"
	if !report.Complete() {
		message = "Category deleted with failures"
	}
	utils.RespondSuccess(c, report, message)
}
