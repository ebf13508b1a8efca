package controllers

import (
	"net/http"

	"lumora-io/api/internal/features"
	"lumora-io/api/pkg/util"

	"github.com/gin-gonic/gin"
)

type FeatureController struct {
	store *features.Store
}

func InitFeatureController(store *features.Store) *FeatureController {
	return &FeatureController{
		store: store,
	}
}

func (fc *FeatureController) GetFeatures(c *gin.Context) {
	util.HandleSuccess(c, http.StatusOK, "success", gin.H{"features": fc.store.List()})
}

type featureListRequest struct {
	Features []string `json:"features"`
}

// UpdateFeatures replaces the whole list; the store persists on every
// change.
func (fc *FeatureController) UpdateFeatures(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	var req featureListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.HandleError(c, http.StatusUnprocessableEntity, err)
		return
	}

	if err := fc.store.Replace(ctx, req.Features); err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	util.HandleSuccess(c, http.StatusOK, "Features updated", gin.H{"features": fc.store.List()})
}
