package controllers

import (
	"log"
	"net/http"
	"strings"

	"lumora-io/api/internal/common"
	"lumora-io/api/pkg/models"
	"lumora-io/api/pkg/services"
	"lumora-io/api/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
)

type CategoryController struct {
	categoryService *services.CategoryService
}

func InitCategoryController(categoryService *services.CategoryService) *CategoryController {
	return &CategoryController{
		categoryService: categoryService,
	}
}

// GetCategories returns the category forest. With view=picker the response
// is the flattened picker rows instead: exclude disables the category being
// edited, expanded is a comma-separated id list of open nodes.
func (cc *CategoryController) GetCategories(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	categories, err := cc.categoryService.GetAllCategories(ctx)
	if err != nil {
		log.Println(err)
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	root := services.BuildCategoryTree(categories)

	if c.Query("view") == "picker" {
		expanded := services.NewExpandedSet()
		if raw := c.Query("expanded"); raw != "" {
			expanded = services.NewExpandedSet(strings.Split(raw, ",")...)
		}
		rows := services.RenderCategoryTree(root, c.Query("exclude"), expanded)
		util.HandleSuccess(c, http.StatusOK, "Category picker rendered", rows)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Categories retrieved successfully", root)
}

func (cc *CategoryController) CreateCategory(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}
	if validationErr := common.Validate.Struct(&req); validationErr != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, validationErr)
		return
	}

	categoryID := services.SlugifyCategoryID(req.Name)
	if err := cc.categoryService.ValidateParent(ctx, categoryID, req.ParentID); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}

	category := models.Category{
		ID:          categoryID,
		Name:        req.Name,
		Description: req.Description,
		ParentID:    req.ParentID,
		ImageURL:    req.ImageURL,
		SortOrder:   req.SortOrder,
	}

	res, err := cc.categoryService.CreateCategory(ctx, category)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			util.HandleError(c, http.StatusConflict, errors.New("a category with this name already exists"))
			return
		}
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Category created", res.InsertedID)
}

func (cc *CategoryController) UpdateCategory(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	categoryID := c.Param("id")
	if categoryID == "" {
		util.HandleError(c, http.StatusBadRequest, errors.New("category id is required"))
		return
	}

	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}
	if validationErr := common.Validate.Struct(&req); validationErr != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, validationErr)
		return
	}

	if err := cc.categoryService.ValidateParent(ctx, categoryID, req.ParentID); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}

	if err := cc.categoryService.UpdateCategory(ctx, categoryID, req); err != nil {
		if err == mongo.ErrNoDocuments {
			util.HandleError(c, http.StatusNotFound, errors.New("category not found"))
			return
		}
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Category updated", categoryID)
}

// DeleteCategory removes the category only; items keep their category name.
func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	categoryID := c.Param("id")
	if categoryID == "" {
		util.HandleError(c, http.StatusBadRequest, errors.New("category id is required"))
		return
	}

	res, err := cc.categoryService.DeleteCategory(ctx, categoryID)
	if err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}
	if res.DeletedCount == 0 {
		util.HandleError(c, http.StatusNotFound, errors.New("category not found"))
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Category deleted", categoryID)
}
