package controllers

import (
	"CityGuide/models"
	"CityGuide/services"
	"CityGuide/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	ReviewService *services.ReviewService
	PlaceService  *services.PlaceService
}

func NewReviewController(reviewService *services.ReviewService, placeService *services.PlaceService) *ReviewController {
	return &ReviewController{ReviewService: reviewService, PlaceService: placeService}
}

func (rc *ReviewController) GetReviews(c *gin.Context) {
	placeID, ok := paramID(c, "Invalid place ID")
	if !ok {
		return
	}

	reviews, err := rc.ReviewService.GetReviews(c, placeID)
	if err != nil {
		fail(c, err, "Failed to fetch reviews")
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// CreateReview checks the place before the body, so an unknown place is a 404
// even when the body is invalid.
func (rc *ReviewController) CreateReview(c *gin.Context) {
	placeID, ok := paramID(c, "Invalid place ID")
	if !ok {
		return
	}
	if _, err := rc.PlaceService.GetPlaceByID(c, placeID); err != nil {
		fail(c, err, "Failed to create review")
		return
	}

	var req models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "Invalid review data", err)
		return
	}

	review, err := rc.ReviewService.CreateReview(c, placeID, req)
	if err != nil {
		fail(c, err, "Failed to create review")
		return
	}
	c.JSON(http.StatusCreated, review)
}
