package models

// City is a destination that groups places.
type City struct {
	ID          int    `json:"id" firestore:"id"`
	Name        string `json:"name" firestore:"name"`
	Country     string `json:"country" firestore:"country"`
	Description string `json:"description" firestore:"description"`
	ImageURL    string `json:"imageUrl" firestore:"imageUrl"`
	IsFeatured  bool   `json:"isFeatured" firestore:"isFeatured"`
}

// CreateCityRequest is the body of POST /api/cities.
type CreateCityRequest struct {
	Name        string `json:"name" binding:"required"`
	Country     string `json:"country" binding:"required"`
	Description string `json:"description" binding:"required"`
	ImageURL    string `json:"imageUrl" binding:"required"`
	IsFeatured  *bool  `json:"isFeatured"`
}

func (r CreateCityRequest) ToCity() City {
	city := City{
		Name:        r.Name,
		Country:     r.Country,
		Description: r.Description,
		ImageURL:    r.ImageURL,
	}
	if r.IsFeatured != nil {
		city.IsFeatured = *r.IsFeatured
	}
	return city
}
