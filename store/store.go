package store

import (
	"CityGuide/models"
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by writes that reference a missing record.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique field is already taken.
	ErrDuplicate = errors.New("record already exists")
)

// Store holds every persisted entity. Ids are sequential per collection,
// start at 1 and are never reused. Lookups report a missing record with
// found=false rather than an error.
type Store interface {
	// users
	InsertUser(ctx context.Context, user models.User) (models.User, error)
	GetUser(ctx context.Context, id int) (models.User, bool, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, bool, error)

	// cities
	InsertCity(ctx context.Context, city models.City) (models.City, error)
	GetCity(ctx context.Context, id int) (models.City, bool, error)
	GetCityByName(ctx context.Context, name string) (models.City, bool, error)
	ListCities(ctx context.Context) ([]models.City, error)
	ListFeaturedCities(ctx context.Context) ([]models.City, error)

	// places
	InsertPlace(ctx context.Context, place models.Place) (models.Place, error)
	GetPlace(ctx context.Context, id int) (models.Place, bool, error)
	ListPlaces(ctx context.Context) ([]models.Place, error)
	ListPlacesByCity(ctx context.Context, cityID int) ([]models.Place, error)
	ListFeaturedPlaces(ctx context.Context) ([]models.Place, error)

	// reviews
	InsertReview(ctx context.Context, review models.Review) (models.Review, error)
	ListReviews(ctx context.Context, placeID int) ([]models.Review, error)
}

// applyReview folds one review (1-5 stars) into the place aggregates.
// The rating stays on the tenths scale, rounded half up.
func applyReview(place *models.Place, stars int) {
	total := place.Rating*place.ReviewCount + stars*10
	place.ReviewCount++
	place.Rating = (2*total + place.ReviewCount) / (2 * place.ReviewCount)
}
