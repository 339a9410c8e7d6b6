package routes

import (
	"github.com/gin-gonic/gin"

	notehandlers "github.com/IYair/disclosure-page-uac-sub000/internal/interfaces/http/handlers/note"
	"github.com/IYair/disclosure-page-uac-sub000/internal/interfaces/http/middleware"
)

type NoteRouteConfig struct {
	NoteHandler    *notehandlers.NoteHandler
	AuthMiddleware *middleware.AuthMiddleware
	SubmitLimit    gin.HandlerFunc
}

func SetupNoteRoutes(engine *gin.Engine, config *NoteRouteConfig) {
	notes := engine.Group("/notes")
	{
		notes.GET("", config.NoteHandler.List)
		notes.GET("/:id", config.NoteHandler.Get)

		notes.POST("",
			config.AuthMiddleware.RequireAuth(),
			config.SubmitLimit,
			config.NoteHandler.Create)
		notes.PUT("/:id",
			config.AuthMiddleware.RequireAuth(),
			config.SubmitLimit,
			config.NoteHandler.Update)
		notes.DELETE("/:id",
			config.AuthMiddleware.RequireAuth(),
			config.SubmitLimit,
			config.NoteHandler.Delete)
	}
}
