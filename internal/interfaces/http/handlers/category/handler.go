package category

import (
	"net/http"

	"github.com/gin-gonic/gin"

	usecases "github.com/IYair/disclosure-page-uac-sub000/internal/application/content/usecases"
	appErrors "github.com/IYair/disclosure-page-uac-sub000/internal/shared/errors"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/constants"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/logger"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/utils"
)

type CategoryHandler struct {
	createUC usecases.CreateCategoryExecutor
	updateUC usecases.UpdateCategoryExecutor
	deleteUC usecases.DeleteCategoryExecutor
	listUC   usecases.ListCategoriesExecutor
	logger   logger.Interface
}

func NewCategoryHandler(
	createUC usecases.CreateCategoryExecutor,
	updateUC usecases.UpdateCategoryExecutor,
	deleteUC usecases.DeleteCategoryExecutor,
	listUC usecases.ListCategoriesExecutor,
) *CategoryHandler {
	return &CategoryHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		listUC:   listUC,
		logger:   logger.NewLogger(),
	}
}

// Create handles POST /categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create category", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateCategoryCommand{
		Name:    req.Name,
		ActorID: c.GetUint(constants.ContextKeyUserID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Category created successfully")
}

// Update handles PUT /categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	categoryID, err := utils.ParseUintParam(c, "id", "category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateCategoryCommand{
		CategoryID: categoryID,
		Name:       req.Name,
		ActorID:    c.GetUint(constants.ContextKeyUserID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Category updated successfully", result)
}

// Delete handles DELETE /categories/:id?replacement=<id>
func (h *CategoryHandler) Delete(c *gin.Context) {
	categoryID, err := utils.ParseUintParam(c, "id", "category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	replacementID, err := utils.ParseUintQuery(c, "replacement")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if replacementID == 0 {
		utils.ErrorResponseWithError(c, appErrors.NewValidationError("replacement category is required"))
		return
	}

	result, err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteCategoryCommand{
		CategoryID:    categoryID,
		ReplacementID: replacementID,
		ActorID:       c.GetUint(constants.ContextKeyUserID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Category deleted successfully", result)
}

// List handles GET /categories
func (h *CategoryHandler) List(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
