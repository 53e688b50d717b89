package handlers

import (
	"CityGuide/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterPlaceRoutes(
	router *gin.RouterGroup,
	placeController *controllers.PlaceController,
	reviewController *controllers.ReviewController,
	chatController *controllers.ChatController,
) {
	placeGroup := router.Group("/places")
	{
		placeGroup.GET("", placeController.GetAllPlaces)
		placeGroup.POST("", placeController.CreatePlace)
		placeGroup.GET("/featured", placeController.GetFeaturedPlaces)
		placeGroup.GET("/:id", placeController.GetPlaceByID)

		placeGroup.GET("/:id/reviews", reviewController.GetReviews)
		placeGroup.POST("/:id/reviews", reviewController.CreateReview)

		placeGroup.POST("/:id/chat", chatController.Chat)
	}
}
