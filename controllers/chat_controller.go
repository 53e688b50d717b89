package controllers

import (
	"CityGuide/models"
	"CityGuide/services"
	"CityGuide/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	ChatService  *services.ChatService
	PlaceService *services.PlaceService
	CityService  *services.CityService
}

func NewChatController(chatService *services.ChatService, placeService *services.PlaceService, cityService *services.CityService) *ChatController {
	return &ChatController{
		ChatService:  chatService,
		PlaceService: placeService,
		CityService:  cityService,
	}
}

// Chat answers one user message about a place. Provider failures come back
// as a 200 with a fallback reply.
func (cc *ChatController) Chat(c *gin.Context) {
	placeID, ok := paramID(c, "Invalid place ID")
	if !ok {
		return
	}
	place, err := cc.PlaceService.GetPlaceByID(c, placeID)
	if err != nil {
		fail(c, err, "Failed to process chat request")
		return
	}

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "Invalid chat request", err)
		return
	}

	cityName, err := cc.CityService.GetCityName(c, place.CityID)
	if err != nil {
		_ = c.Error(utils.NewCustomError(http.StatusInternalServerError, "Failed to process chat request").WithDetail(err))
		return
	}

	reply := cc.ChatService.Converse(c.Request.Context(), req.Message, place, cityName, req.History)
	c.JSON(http.StatusOK, models.ChatResponse{Response: reply})
}
