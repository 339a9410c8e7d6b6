package exercise

import (
	"net/http"

	"github.com/gin-gonic/gin"

	usecases "github.com/IYair/disclosure-page-uac-sub000/internal/application/content/usecases"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/authorization"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/constants"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/logger"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/utils"
)

type ExerciseHandler struct {
	createUC usecases.CreateExerciseExecutor
	updateUC usecases.UpdateExerciseExecutor
	deleteUC usecases.DeleteExerciseExecutor
	getUC    usecases.GetExerciseExecutor
	listUC   usecases.ListExercisesExecutor
	logger   logger.Interface
}

func NewExerciseHandler(
	createUC usecases.CreateExerciseExecutor,
	updateUC usecases.UpdateExerciseExecutor,
	deleteUC usecases.DeleteExerciseExecutor,
	getUC usecases.GetExerciseExecutor,
	listUC usecases.ListExercisesExecutor,
) *ExerciseHandler {
	return &ExerciseHandler{
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

// Create handles POST /exercises
func (h *ExerciseHandler) Create(c *gin.Context) {
	var req CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create exercise", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, privileged := actorFromContext(c)

	result, err := h.createUC.Execute(c.Request.Context(), req.ToCommand(actorID, privileged))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Exercise submitted successfully")
}

// Update handles PUT /exercises/:id
func (h *ExerciseHandler) Update(c *gin.Context) {
	exerciseID, err := utils.ParseUintParam(c, "id", "exercise")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, privileged := actorFromContext(c)

	result, err := h.updateUC.Execute(c.Request.Context(), req.ToCommand(exerciseID, actorID, privileged))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Exercise update submitted", result)
}

// Delete handles DELETE /exercises/:id
func (h *ExerciseHandler) Delete(c *gin.Context) {
	exerciseID, err := utils.ParseUintParam(c, "id", "exercise")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req DeleteExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, privileged := actorFromContext(c)

	result, err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteExerciseCommand{
		ExerciseID: exerciseID,
		Comment:    req.Comment,
		ActorID:    actorID,
		Privileged: privileged,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Exercise deletion submitted", result)
}

// Get handles GET /exercises/:id
func (h *ExerciseHandler) Get(c *gin.Context) {
	exerciseID, err := utils.ParseUintParam(c, "id", "exercise")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetExerciseQuery{
		ExerciseID: exerciseID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// List handles GET /exercises
func (h *ExerciseHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	query := usecases.ListExercisesQuery{
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}

	categoryID, err := utils.ParseUintQuery(c, "category_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if categoryID > 0 {
		query.CategoryID = &categoryID
	}
	if difficulty := c.Query("difficulty"); difficulty != "" {
		query.Difficulty = &difficulty
	}
	if tag := c.Query("tag"); tag != "" {
		query.Tag = &tag
	}

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Exercises, result.Total, pagination.Page, pagination.PageSize)
}
