package controllers

import (
	"CityGuide/models"
	"CityGuide/utils"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// paramID parses the :id path parameter and answers 400 when it is not numeric.
func paramID(c *gin.Context, message string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(c.Param("id")))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, message)
		return 0, false
	}
	return id, true
}

// fail attaches err for the error middleware. Errors without a status become
// a 500 carrying the given message.
func fail(c *gin.Context, err error, message string) {
	if _, ok := utils.AsCustomError(err); ok {
		_ = c.Error(err)
		return
	}
	_ = c.Error(utils.NewCustomError(http.StatusInternalServerError, message).WithDetail(err))
}

var listingKeys = []string{"category", "rating", "tag", "sort"}

// listingFilter reads the optional listing query parameters. It returns nil
// when none is present so the store order is kept.
func listingFilter(c *gin.Context) (*models.ListingFilter, error) {
	query := c.Request.URL.Query()
	present := false
	for _, key := range listingKeys {
		if query.Has(key) {
			present = true
			break
		}
	}
	if !present {
		return nil, nil
	}

	rating, err := models.ParseRatingThreshold(c.Query("rating"))
	if err != nil {
		return nil, err
	}
	sortMode, err := models.ParseSortMode(c.Query("sort"))
	if err != nil {
		return nil, err
	}
	return &models.ListingFilter{
		Categories: nonEmpty(c.QueryArray("category")),
		MinRating:  rating,
		Tags:       nonEmpty(c.QueryArray("tag")),
		Sort:       sortMode,
	}, nil
}

func nonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
