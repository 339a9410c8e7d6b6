package note

import (
	"net/http"

	"github.com/gin-gonic/gin"

	usecases "github.com/IYair/disclosure-page-uac-sub000/internal/application/content/usecases"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/authorization"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/constants"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/logger"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/utils"
)

type NoteHandler struct {
	createUC usecases.CreateNoteExecutor
	updateUC usecases.UpdateNoteExecutor
	deleteUC usecases.DeleteNoteExecutor
	getUC    usecases.GetNoteExecutor
	listUC   usecases.ListNotesExecutor
	logger   logger.Interface
}

func NewNoteHandler(
	createUC usecases.CreateNoteExecutor,
	updateUC usecases.UpdateNoteExecutor,
	deleteUC usecases.DeleteNoteExecutor,
	getUC usecases.GetNoteExecutor,
	listUC usecases.ListNotesExecutor,
) *NoteHandler {
	return &NoteHandler{
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

// Create handles POST /notes
func (h *NoteHandler) Create(c *gin.Context) {
	var req CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create note", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, privileged := actorFromContext(c)

	result, err := h.createUC.Execute(c.Request.Context(), req.ToCommand(actorID, privileged))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Note submitted successfully")
}

// Update handles PUT /notes/:id
func (h *NoteHandler) Update(c *gin.Context) {
	noteID, err := utils.ParseUintParam(c, "id", "note")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, privileged := actorFromContext(c)

	result, err := h.updateUC.Execute(c.Request.Context(), req.ToCommand(noteID, actorID, privileged))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Note update submitted", result)
}

// Delete handles DELETE /notes/:id
func (h *NoteHandler) Delete(c *gin.Context) {
	noteID, err := utils.ParseUintParam(c, "id", "note")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req DeleteNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, privileged := actorFromContext(c)

	result, err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteNoteCommand{
		NoteID:     noteID,
		Comment:    req.Comment,
		ActorID:    actorID,
		Privileged: privileged,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Note deletion submitted", result)
}

// Get handles GET /notes/:id
func (h *NoteHandler) Get(c *gin.Context) {
	noteID, err := utils.ParseUintParam(c, "id", "note")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetNoteQuery{
		NoteID: noteID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// List handles GET /notes
func (h *NoteHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	query := usecases.ListNotesQuery{
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

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Notes, result.Total, pagination.Page, pagination.PageSize)
}
