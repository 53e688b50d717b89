package controllers

import (
	"CityGuide/models"
	"CityGuide/services"
	"CityGuide/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type PlaceController struct {
	PlaceService *services.PlaceService
}

func NewPlaceController(placeService *services.PlaceService) *PlaceController {
	return &PlaceController{PlaceService: placeService}
}

// GetAllPlaces accepts the optional listing parameters category, rating, tag and sort.
func (pc *PlaceController) GetAllPlaces(c *gin.Context) {
	filter, err := listingFilter(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	places, err := pc.PlaceService.GetPlaces(c, filter)
	if err != nil {
		fail(c, err, "Failed to fetch places")
		return
	}
	c.JSON(http.StatusOK, places)
}

func (pc *PlaceController) GetFeaturedPlaces(c *gin.Context) {
	places, err := pc.PlaceService.GetFeaturedPlaces(c)
	if err != nil {
		fail(c, err, "Failed to fetch places")
		return
	}
	c.JSON(http.StatusOK, places)
}

func (pc *PlaceController) GetPlacesByCity(c *gin.Context) {
	cityID, ok := paramID(c, "Invalid city ID")
	if !ok {
		return
	}
	filter, err := listingFilter(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	places, err := pc.PlaceService.GetPlacesByCity(c, cityID, filter)
	if err != nil {
		fail(c, err, "Failed to fetch places")
		return
	}
	c.JSON(http.StatusOK, places)
}

func (pc *PlaceController) GetPlaceByID(c *gin.Context) {
	id, ok := paramID(c, "Invalid place ID")
	if !ok {
		return
	}

	place, err := pc.PlaceService.GetPlaceByID(c, id)
	if err != nil {
		fail(c, err, "Failed to fetch place")
		return
	}
	c.JSON(http.StatusOK, place)
}

func (pc *PlaceController) CreatePlace(c *gin.Context) {
	var req models.CreatePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "Invalid place data", err)
		return
	}

	place, err := pc.PlaceService.CreatePlace(c, req)
	if err != nil {
		fail(c, err, "Failed to create place")
		return
	}
	c.JSON(http.StatusCreated, place)
}
