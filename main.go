package main

import (
	"lumora-io/api/internal/routers"
	"lumora-io/api/pkg/util"
)

func main() {
	router := routers.InitRoute()

	port := util.LoadEnvFor("PORT")
	if port == "" {
		port = "8080"
	}

	err := router.Run(":" + port)
	if err != nil {
		println(err.Error())
		return
	}
}
