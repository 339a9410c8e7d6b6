package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "github.com/IYair/disclosure-page-uac-sub000/internal/interfaces/http/handlers/ticket"
	"github.com/IYair/disclosure-page-uac-sub000/internal/interfaces/http/middleware"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/authorization"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	tickets.Use(authorization.RequireAdmin())
	{
		// Specific paths must be registered before parameterized ones.
		tickets.GET("/pending", config.TicketHandler.ListPending)
		tickets.GET("/pending/check", config.TicketHandler.HasPending)

		tickets.POST("/:id/approve", config.TicketHandler.Approve)
		tickets.POST("/:id/reject", config.TicketHandler.Reject)

		tickets.GET("/:id", config.TicketHandler.Get)
	}
}
