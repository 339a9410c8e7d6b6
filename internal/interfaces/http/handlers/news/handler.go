package news

import (
	"net/http"

	"github.com/gin-gonic/gin"

	usecases "github.com/IYair/disclosure-page-uac-sub000/internal/application/content/usecases"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/authorization"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/constants"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/logger"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/utils"
)

type NewsHandler struct {
	createUC usecases.CreateNewsExecutor
	updateUC usecases.UpdateNewsExecutor
	deleteUC usecases.DeleteNewsExecutor
	getUC    usecases.GetNewsExecutor
	listUC   usecases.ListNewsExecutor
	logger   logger.Interface
}

func NewNewsHandler(
	createUC usecases.CreateNewsExecutor,
	updateUC usecases.UpdateNewsExecutor,
	deleteUC usecases.DeleteNewsExecutor,
	getUC usecases.GetNewsExecutor,
	listUC usecases.ListNewsExecutor,
) *NewsHandler {
	return &NewsHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		getUC:    getUC,
		listUC:   listUC,
		logger:   logger.NewLogger(),
	}
}

func actorFromContext(c *gin.Context) (uint, bool) {
	actorID := c.GetUint(constants.ContextKeyUserID)
	role := authorization.UserRole(c.GetString(constants.ContextKeyUserRole))
	return actorID, role.IsAdmin()
}

// Create handles POST /news
func (h *NewsHandler) Create(c *gin.Context) {
	var req CreateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create news", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, privileged := actorFromContext(c)

	result, err := h.createUC.Execute(c.Request.Context(), req.ToCommand(actorID, privileged))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "News submitted successfully")
}

// Update handles PUT /news/:id
func (h *NewsHandler) Update(c *gin.Context) {
	newsID, err := utils.ParseUintParam(c, "id", "news")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, privileged := actorFromContext(c)

	result, err := h.updateUC.Execute(c.Request.Context(), req.ToCommand(newsID, actorID, privileged))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "News update submitted", result)
}

// Delete handles DELETE /news/:id
func (h *NewsHandler) Delete(c *gin.Context) {
	newsID, err := utils.ParseUintParam(c, "id", "news")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req DeleteNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, privileged := actorFromContext(c)

	result, err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteNewsCommand{
		NewsID:     newsID,
		Comment:    req.Comment,
		ActorID:    actorID,
		Privileged: privileged,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "News deletion submitted", result)
}

// Get handles GET /news/:id
func (h *NewsHandler) Get(c *gin.Context) {
	newsID, err := utils.ParseUintParam(c, "id", "news")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetNewsQuery{
		NewsID: newsID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// List handles GET /news
func (h *NewsHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListNewsQuery{
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.News, result.Total, pagination.Page, pagination.PageSize)
}
