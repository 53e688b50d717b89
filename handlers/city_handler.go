package handlers

import (
	"CityGuide/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterCityRoutes(router *gin.RouterGroup, cityController *controllers.CityController, placeController *controllers.PlaceController) {
	cityGroup := router.Group("/cities")
	{
		cityGroup.GET("", cityController.GetAllCities)
		cityGroup.POST("", cityController.CreateCity)
		cityGroup.GET("/featured", cityController.GetFeaturedCities)
		cityGroup.GET("/:id", cityController.GetCityByID)
		cityGroup.GET("/:id/places", placeController.GetPlacesByCity)
	}
}
