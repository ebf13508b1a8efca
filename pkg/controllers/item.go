package controllers

import (
	"context"
	"log"
	"net/http"

	"lumora-io/api/internal/common"
	"lumora-io/api/pkg/models"
	"lumora-io/api/pkg/services"
	"lumora-io/api/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ItemController struct {
	itemService *services.ItemService
}

func InitItemController(itemService *services.ItemService) *ItemController {
	return &ItemController{
		itemService: itemService,
	}
}

func (ic *ItemController) GetItem(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	itemID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}

	item, err := ic.itemService.GetItemByID(ctx, itemID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			util.HandleError(c, http.StatusNotFound, errors.New("no item found"))
			return
		}
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Success", item)
}

func (ic *ItemController) GetItemsByCategory(c *gin.Context) {
	ic.itemsScopedTo(c, ic.itemService.ItemsByCategory)
}

func (ic *ItemController) GetItemsBySubcategory(c *gin.Context) {
	ic.itemsScopedTo(c, ic.itemService.ItemsBySubcategory)
}

func (ic *ItemController) itemsScopedTo(c *gin.Context, query func(ctx context.Context, id string, includeSub bool) ([]models.Item, error)) {
	ctx, cancel := WithTimeout()
	defer cancel()

	includeSub := c.DefaultQuery("includeSubcategories", "false") == "true"

	items, err := query(ctx, c.Param("id"), includeSub)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			util.HandleError(c, http.StatusNotFound, errors.New("category not found"))
			return
		}
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	util.HandleSuccessMeta(c, http.StatusOK, "success", items, gin.H{"count": len(items), "includeSubcategories": includeSub})
}

// SearchItems answers free-text catalog search. A missing q is a client
// error; a too-short q clears results without touching the store.
func (ic *ItemController) SearchItems(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	query, ok := c.GetQuery("q")
	if !ok {
		util.HandleError(c, http.StatusBadRequest, errors.New("missing search query"))
		return
	}

	items, err := ic.itemService.SearchItems(ctx, query)
	if err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	util.HandleSuccessMeta(c, http.StatusOK, "success", items, gin.H{"count": len(items), "limit": common.MAX_SEARCH_RESULTS})
}

func (ic *ItemController) CreateItem(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	var req models.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}
	if validationErr := common.Validate.Struct(&req); validationErr != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, validationErr)
		return
	}

	res, err := ic.itemService.CreateItem(ctx, req)
	if err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Item created", res.InsertedID)
}

func (ic *ItemController) UpdateItem(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	itemID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}

	var req models.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}
	if validationErr := common.Validate.Struct(&req); validationErr != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, validationErr)
		return
	}

	old, err := ic.itemService.GetItemByID(ctx, itemID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			util.HandleError(c, http.StatusNotFound, errors.New("item not found"))
			return
		}
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	if err := ic.itemService.UpdateItem(ctx, itemID, req); err != nil {
		if err == mongo.ErrNoDocuments {
			util.HandleError(c, http.StatusNotFound, errors.New("item not found"))
			return
		}
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	go destroyImages(services.RemovedImages(old.Images, req.Images))

	util.HandleSuccess(c, http.StatusOK, "Item updated", itemID.Hex())
}

func (ic *ItemController) DeleteItem(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	itemID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}

	item, err := ic.itemService.GetItemByID(ctx, itemID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			util.HandleError(c, http.StatusNotFound, errors.New("item not found"))
			return
		}
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	res, err := ic.itemService.DeleteItem(ctx, itemID)
	if err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}
	if res.DeletedCount == 0 {
		util.HandleError(c, http.StatusNotFound, errors.New("item not found"))
		return
	}

	go destroyImages(item.Images)

	util.HandleSuccess(c, http.StatusOK, "Item deleted", itemID.Hex())
}

// destroyImages removes Cloudinary assets for urls no longer referenced.
// Cleanup runs off the request; failures only log.
func destroyImages(urls []string) {
	for _, u := range urls {
		id := util.CloudinaryPublicID(u)
		if id == "" {
			continue
		}
		if _, err := util.DestroyMedia(id); err != nil {
			log.Printf("could not destroy image %s: %v", id, err)
		}
	}
}
