package handlers

import (
	"CityGuide/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterCatalogRoutes(router *gin.RouterGroup, catalogController *controllers.CatalogController) {
	router.GET("/categories", catalogController.GetCategories)
	router.GET("/tags", catalogController.GetTags)
}
