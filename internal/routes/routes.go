package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"inflou_backend/internal/config"
	"inflou_backend/internal/handlers"
	"inflou_backend/internal/logger"
	"inflou_backend/web"
)

const uploadsRoute = "/static/uploads"

// RegisterRoutes регистрирует все HTTP маршруты сайта.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	cfg *config.Config,
) {
	ginRouter.GET("/healthz", handlers.Health)

	// Статика сайта и загруженные пользователями файлы
	ginRouter.StaticFS("/assets", http.FS(web.Static()))
	if cfg.Storage.Type == "" || cfg.Storage.Type == "local" {
		ginRouter.Static(uploadsRoute, cfg.Storage.BasePath)
	}

	// Формы сайта
	appHandlers.AuthHandler.RegisterRoutes(ginRouter)
	appHandlers.ContactHandler.RegisterRoutes(ginRouter)

	// Страницы и 404
	appHandlers.PageHandler.RegisterRoutes(ginRouter)

	if !cfg.IsProduction() {
		ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
		logger.Info("Swagger UI registered", "path", "/swagger/index.html")
	}
}
