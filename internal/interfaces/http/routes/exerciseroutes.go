package routes

import (
	"github.com/gin-gonic/gin"

	exercisehandlers "github.com/IYair/disclosure-page-uac-sub000/internal/interfaces/http/handlers/exercise"
	"github.com/IYair/disclosure-page-uac-sub000/internal/interfaces/http/middleware"
)

type ExerciseRouteConfig struct {
	ExerciseHandler *exercisehandlers.ExerciseHandler
	AuthMiddleware  *middleware.AuthMiddleware
	SubmitLimit     gin.HandlerFunc
}

func SetupExerciseRoutes(engine *gin.Engine, config *ExerciseRouteConfig) {
	exercises := engine.Group("/exercises")
	{
		// Reads are public; only visible content is served to anonymous
		// visitors.
		exercises.GET("", config.ExerciseHandler.List)
		exercises.GET("/:id", config.ExerciseHandler.Get)

		// Mutations require a logged-in trainer or admin and go through
		// the review workflow.
		exercises.POST("",
			config.AuthMiddleware.RequireAuth(),
			config.SubmitLimit,
			config.ExerciseHandler.Create)
		exercises.PUT("/:id",
			config.AuthMiddleware.RequireAuth(),
			config.SubmitLimit,
			config.ExerciseHandler.Update)
		exercises.DELETE("/:id",
			config.AuthMiddleware.RequireAuth(),
			config.SubmitLimit,
			config.ExerciseHandler.Delete)
	}
}
