package routes

import (
	"github.com/gin-gonic/gin"

	categoryhandlers "github.com/IYair/disclosure-page-uac-sub000/internal/interfaces/http/handlers/category"
	"github.com/IYair/disclosure-page-uac-sub000/internal/interfaces/http/middleware"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/authorization"
)

type CategoryRouteConfig struct {
	CategoryHandler *categoryhandlers.CategoryHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupCategoryRoutes(engine *gin.Engine, config *CategoryRouteConfig) {
	categories := engine.Group("/categories")
	{
		categories.GET("", config.CategoryHandler.List)

		// Category maintenance is reference-data work reserved for admins
		// and never goes through review.
		categories.POST("",
			config.AuthMiddleware.RequireAuth(),
			authorization.RequireAdmin(),
			config.CategoryHandler.Create)
		categories.PUT("/:id",
			config.AuthMiddleware.RequireAuth(),
			authorization.RequireAdmin(),
			config.CategoryHandler.Update)
		categories.DELETE("/:id",
			config.AuthMiddleware.RequireAuth(),
			authorization.RequireAdmin(),
			config.CategoryHandler.Delete)
	}
}
