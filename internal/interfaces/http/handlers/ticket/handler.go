package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	usecases "github.com/IYair/disclosure-page-uac-sub000/internal/application/moderation/usecases"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/logger"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/utils"
)

type TicketHandler struct {
	approveUC    usecases.ApproveTicketExecutor
	rejectUC     usecases.RejectTicketExecutor
	getUC        usecases.GetTicketExecutor
	listUC       usecases.ListPendingTicketsExecutor
	hasPendingUC usecases.HasPendingTicketExecutor
	logger       logger.Interface
}

func NewTicketHandler(
	approveUC usecases.ApproveTicketExecutor,
	rejectUC usecases.RejectTicketExecutor,
	getUC usecases.GetTicketExecutor,
	listUC usecases.ListPendingTicketsExecutor,
	hasPendingUC usecases.HasPendingTicketExecutor,
) *TicketHandler {
	return &TicketHandler{
		approveUC:    approveUC,
		rejectUC:     rejectUC,
		getUC:        getUC,
		listUC:       listUC,
		hasPendingUC: hasPendingUC,
		logger:       logger.NewLogger(),
	}
}

// Approve handles POST /tickets/:id/approve
func (h *TicketHandler) Approve(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.approveUC.Execute(c.Request.Context(), usecases.ApproveTicketCommand{
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	message := "Ticket approved"
	if !result.Applied {
		message = "Ticket already resolved"
	}
	utils.SuccessResponse(c, http.StatusOK, message, result)
}

// Reject handles POST /tickets/:id/reject
func (h *TicketHandler) Reject(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.rejectUC.Execute(c.Request.Context(), usecases.RejectTicketCommand{
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	message := "Ticket rejected"
	if !result.Applied {
		message = "Ticket already resolved"
	}
	utils.SuccessResponse(c, http.StatusOK, message, result)
}

// Get handles GET /tickets/:id
func (h *TicketHandler) Get(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListPending handles GET /tickets/pending
func (h *TicketHandler) ListPending(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	query := usecases.ListPendingTicketsQuery{
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}

	if itemType := c.Query("item_type"); itemType != "" {
		query.ItemType = &itemType
	}

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, pagination.Page, pagination.PageSize)
}

// HasPending handles GET /tickets/pending/check
func (h *TicketHandler) HasPending(c *gin.Context) {
	itemID, err := utils.ParseUintQuery(c, "item_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.hasPendingUC.Execute(c.Request.Context(), usecases.HasPendingTicketQuery{
		ItemType: c.Query("item_type"),
		ItemID:   itemID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
