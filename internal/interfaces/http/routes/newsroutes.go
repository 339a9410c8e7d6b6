package routes

import (
	"github.com/gin-gonic/gin"

	newshandlers "github.com/IYair/disclosure-page-uac-sub000/internal/interfaces/http/handlers/news"
	"github.com/IYair/disclosure-page-uac-sub000/internal/interfaces/http/middleware"
)

type NewsRouteConfig struct {
	NewsHandler    *newshandlers.NewsHandler
	AuthMiddleware *middleware.AuthMiddleware
	SubmitLimit    gin.HandlerFunc
}

func SetupNewsRoutes(engine *gin.Engine, config *NewsRouteConfig) {
	news := engine.Group("/news")
	{
		news.GET("", config.NewsHandler.List)
		news.GET("/:id", config.NewsHandler.Get)

		news.POST("",
			config.AuthMiddleware.RequireAuth(),
			config.SubmitLimit,
			config.NewsHandler.Create)
		news.PUT("/:id",
			config.AuthMiddleware.RequireAuth(),
			config.SubmitLimit,
			config.NewsHandler.Update)
		news.DELETE("/:id",
			config.AuthMiddleware.RequireAuth(),
			config.SubmitLimit,
			config.NewsHandler.Delete)
	}
}
