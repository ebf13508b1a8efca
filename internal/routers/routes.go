package routers

import (
	"lumora-io/api/internal/container"
	"lumora-io/api/internal/middleware"
	"lumora-io/api/pkg/controllers"

	"github.com/gin-gonic/gin"
)

// InitRoute creates the Gin router with the catalog service layer.
func InitRoute() *gin.Engine {
	serviceContainer := container.NewServiceContainer()
	router := gin.Default()
	router.Use(middleware.CorsMiddleware())

	api := router.Group("/api", middleware.CatalogRateLimiter())
	{
		api.GET("/health", controllers.Health)

		catalogRoutes(api, serviceContainer)
		adminRoutes(api, serviceContainer)
	}

	return router
}

// catalogRoutes configures the public, read-only browsing surface.
func catalogRoutes(api *gin.RouterGroup, sc *container.ServiceContainer) {
	api.GET("/search", sc.ItemController.SearchItems)
	api.GET("/categories", sc.CategoryController.GetCategories)
	api.GET("/category/:id/products", sc.ItemController.GetItemsByCategory)
	api.GET("/subcategory/:id/products", sc.ItemController.GetItemsBySubcategory)
	api.GET("/item/:id", sc.ItemController.GetItem)
	api.GET("/features", sc.FeatureController.GetFeatures)

	api.GET("/products/export-template", sc.ExportController.GetExportTemplate)
	api.GET("/products/export", sc.ExportController.ExportProducts)
}

// adminRoutes configures the token-gated mutation surface.
func adminRoutes(api *gin.RouterGroup, sc *container.ServiceContainer) {
	secured := api.Group("").Use(middleware.AdminOnly())

	secured.POST("/categories", sc.CategoryController.CreateCategory)
	secured.PUT("/categories/:id", sc.CategoryController.UpdateCategory)
	secured.DELETE("/categories/:id", sc.CategoryController.DeleteCategory)

	secured.POST("/items", sc.ItemController.CreateItem)
	secured.PUT("/items/:id", sc.ItemController.UpdateItem)
	secured.DELETE("/items/:id", sc.ItemController.DeleteItem)

	secured.POST("/upload-images", controllers.UploadImages())
	secured.POST("/products/import", sc.ExportController.ImportProducts)

	secured.PUT("/features", sc.FeatureController.UpdateFeatures)
}
