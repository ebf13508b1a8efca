package container

import (
	"context"
	"log"

	"lumora-io/api/internal/features"
	"lumora-io/api/pkg/controllers"
	"lumora-io/api/pkg/services"
	"lumora-io/api/pkg/util"
)

type ServiceContainer struct {
	CategoryService *services.CategoryService
	ItemService     *services.ItemService
	ExportService   *services.ExportService
	FeatureStore    *features.Store

	CategoryController *controllers.CategoryController
	ItemController     *controllers.ItemController
	ExportController   *controllers.ExportController
	FeatureController  *controllers.FeatureController
}

func NewServiceContainer() *ServiceContainer {
	categoryService := services.NewCategoryService()
	itemService := services.NewItemService(categoryService)
	exportService := services.NewExportService(itemService)

	featureStore := features.NewStore(util.Redis())
	if err := featureStore.Load(context.Background()); err != nil {
		log.Printf("could not load feature list: %v", err)
	}

	return &ServiceContainer{
		CategoryService: categoryService,
		ItemService:     itemService,
		ExportService:   exportService,
		FeatureStore:    featureStore,

		CategoryController: controllers.InitCategoryController(categoryService),
		ItemController:     controllers.InitItemController(itemService),
		ExportController:   controllers.InitExportController(exportService),
		FeatureController:  controllers.InitFeatureController(featureStore),
	}
}
