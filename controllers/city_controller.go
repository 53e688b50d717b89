package controllers

import (
	"CityGuide/models"
	"CityGuide/services"
	"CityGuide/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CityController struct {
	CityService *services.CityService
}

func NewCityController(cityService *services.CityService) *CityController {
	return &CityController{CityService: cityService}
}

func (cc *CityController) GetAllCities(c *gin.Context) {
	cities, err := cc.CityService.GetCities(c)
	if err != nil {
		fail(c, err, "Failed to fetch cities")
		return
	}
	c.JSON(http.StatusOK, cities)
}

func (cc *CityController) GetFeaturedCities(c *gin.Context) {
	cities, err := cc.CityService.GetFeaturedCities(c)
	if err != nil {
		fail(c, err, "Failed to fetch cities")
		return
	}
	c.JSON(http.StatusOK, cities)
}

func (cc *CityController) GetCityByID(c *gin.Context) {
	id, ok := paramID(c, "Invalid city ID")
	if !ok {
		return
	}

	city, err := cc.CityService.GetCityByID(c, id)
	if err != nil {
		fail(c, err, "Failed to fetch city")
		return
	}
	c.JSON(http.StatusOK, city)
}

func (cc *CityController) CreateCity(c *gin.Context) {
	var req models.CreateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "Invalid city data", err)
		return
	}

	city, err := cc.CityService.CreateCity(c, req)
	if err != nil {
		fail(c, err, "Failed to create city")
		return
	}
	c.JSON(http.StatusCreated, city)
}
