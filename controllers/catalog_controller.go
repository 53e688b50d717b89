package controllers

import (
	"CityGuide/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	CatalogService *services.CatalogService
}

func NewCatalogController(catalogService *services.CatalogService) *CatalogController {
	return &CatalogController{CatalogService: catalogService}
}

func (cc *CatalogController) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, cc.CatalogService.GetCategories())
}

func (cc *CatalogController) GetTags(c *gin.Context) {
	c.JSON(http.StatusOK, cc.CatalogService.GetTags())
}
