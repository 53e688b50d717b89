package models

import "fmt"

const DefaultPriceLevel = "$$"

var PriceLevels = []string{"$", "$$", "$$$", "$$$$"}

// Place is a listing inside a city. Rating is stored in tenths (48 means 4.8).
type Place struct {
	ID           int      `json:"id" firestore:"id"`
	Name         string   `json:"name" firestore:"name"`
	Description  string   `json:"description" firestore:"description"`
	Address      string   `json:"address" firestore:"address"`
	CityID       int      `json:"cityId" firestore:"cityId"`
	Category     string   `json:"category" firestore:"category"`
	Rating       int      `json:"rating" firestore:"rating"`
	ReviewCount  int      `json:"reviewCount" firestore:"reviewCount"`
	PriceLevel   string   `json:"priceLevel" firestore:"priceLevel"`
	ContactPhone *string  `json:"contactPhone" firestore:"contactPhone"`
	ContactEmail *string  `json:"contactEmail" firestore:"contactEmail"`
	OpeningHours *string  `json:"openingHours" firestore:"openingHours"`
	Tags         []string `json:"tags" firestore:"tags"`
	Images       []string `json:"images" firestore:"images"`
	IsFeatured   bool     `json:"isFeatured" firestore:"isFeatured"`
	Latitude     *string  `json:"latitude" firestore:"latitude"`
	Longitude    *string  `json:"longitude" firestore:"longitude"`
}

// DisplayRating renders the tenths rating on the 0.0-5.0 scale with one decimal.
func (p Place) DisplayRating() string {
	return fmt.Sprintf("%.1f", float64(p.Rating)/10)
}

// HasAnyTag reports whether the place carries at least one of the given tags.
func (p Place) HasAnyTag(tags []string) bool {
	for _, want := range tags {
		for _, have := range p.Tags {
			if have == want {
				return true
			}
		}
	}
	return false
}

// CreatePlaceRequest is the body of POST /api/places.
type CreatePlaceRequest struct {
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Address      string   `json:"address" binding:"required"`
	CityID       int      `json:"cityId" binding:"required,min=1"`
	Category     string   `json:"category" binding:"required,category"`
	Rating       *int     `json:"rating" binding:"omitempty,min=0,max=50"`
	ReviewCount  *int     `json:"reviewCount" binding:"omitempty,min=0"`
	PriceLevel   *string  `json:"priceLevel" binding:"omitempty,pricelevel"`
	ContactPhone *string  `json:"contactPhone"`
	ContactEmail *string  `json:"contactEmail" binding:"omitempty,email"`
	OpeningHours *string  `json:"openingHours"`
	Tags         []string `json:"tags"`
	Images       []string `json:"images"`
	IsFeatured   *bool    `json:"isFeatured"`
	Latitude     *string  `json:"latitude"`
	Longitude    *string  `json:"longitude"`
}

func (r CreatePlaceRequest) ToPlace() Place {
	place := Place{
		Name:         r.Name,
		Description:  r.Description,
		Address:      r.Address,
		CityID:       r.CityID,
		Category:     r.Category,
		PriceLevel:   DefaultPriceLevel,
		ContactPhone: r.ContactPhone,
		ContactEmail: r.ContactEmail,
		OpeningHours: r.OpeningHours,
		Tags:         []string{},
		Images:       []string{},
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
	}
	if r.Rating != nil {
		place.Rating = *r.Rating
	}
	if r.ReviewCount != nil {
		place.ReviewCount = *r.ReviewCount
	}
	if r.PriceLevel != nil {
		place.PriceLevel = *r.PriceLevel
	}
	if r.Tags != nil {
		place.Tags = append(place.Tags, r.Tags...)
	}
	if r.Images != nil {
		place.Images = append(place.Images, r.Images...)
	}
	if r.IsFeatured != nil {
		place.IsFeatured = *r.IsFeatured
	}
	return place
}
