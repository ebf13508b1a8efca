package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func Health(context *gin.Context) {
	time := time.Now().Local()
	context.JSON(http.StatusOK, gin.H{"status": "ok", "local_time": time})
}
