package services

import (
	"CityGuide/models"
	"CityGuide/store"
	"CityGuide/utils"
	"context"
	"net/http"

	"go.uber.org/zap"
)

type PlaceService struct {
	Store  store.Store
	Logger *zap.Logger
}

func NewPlaceService(s store.Store, log *zap.Logger) *PlaceService {
	return &PlaceService{Store: s, Logger: log}
}

// GetPlaces lists every place. A nil filter keeps store order.
func (s *PlaceService) GetPlaces(ctx context.Context, filter *models.ListingFilter) ([]models.Place, error) {
	places, err := s.Store.ListPlaces(ctx)
	if err != nil {
		return nil, err
	}
	return applyFilter(places, filter), nil
}

func (s *PlaceService) GetFeaturedPlaces(ctx context.Context) ([]models.Place, error) {
	return s.Store.ListFeaturedPlaces(ctx)
}

func (s *PlaceService) GetPlaceByID(ctx context.Context, id int) (models.Place, error) {
	place, found, err := s.Store.GetPlace(ctx, id)
	if err != nil {
		return models.Place{}, err
	}
	if !found {
		return models.Place{}, utils.NewCustomError(http.StatusNotFound, "Place not found")
	}
	return place, nil
}

// GetPlacesByCity lists the places of an existing city.
func (s *PlaceService) GetPlacesByCity(ctx context.Context, cityID int, filter *models.ListingFilter) ([]models.Place, error) {
	_, found, err := s.Store.GetCity(ctx, cityID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, utils.NewCustomError(http.StatusNotFound, "City not found")
	}

	places, err := s.Store.ListPlacesByCity(ctx, cityID)
	if err != nil {
		return nil, err
	}
	return applyFilter(places, filter), nil
}

// CreatePlace accepts places whose city does not exist yet; the mismatch is only logged.
func (s *PlaceService) CreatePlace(ctx context.Context, req models.CreatePlaceRequest) (models.Place, error) {
	_, found, err := s.Store.GetCity(ctx, req.CityID)
	if err != nil {
		return models.Place{}, err
	}
	if !found {
		s.Logger.Warn("creating place for unknown city",
			zap.Int("city_id", req.CityID),
			zap.String("name", req.Name))
	}
	return s.Store.InsertPlace(ctx, req.ToPlace())
}

func applyFilter(places []models.Place, filter *models.ListingFilter) []models.Place {
	if filter == nil {
		return places
	}
	return FilterAndSort(places, *filter)
}
