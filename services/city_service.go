package services

import (
	"CityGuide/models"
	"CityGuide/store"
	"CityGuide/utils"
	"context"
	"net/http"
)

type CityService struct {
	Store store.Store
}

func NewCityService(s store.Store) *CityService {
	return &CityService{Store: s}
}

func (s *CityService) GetCities(ctx context.Context) ([]models.City, error) {
	return s.Store.ListCities(ctx)
}

func (s *CityService) GetFeaturedCities(ctx context.Context) ([]models.City, error) {
	return s.Store.ListFeaturedCities(ctx)
}

// GetCityByID returns a 404 CustomError when the city does not exist.
func (s *CityService) GetCityByID(ctx context.Context, id int) (models.City, error) {
	city, found, err := s.Store.GetCity(ctx, id)
	if err != nil {
		return models.City{}, err
	}
	if !found {
		return models.City{}, utils.NewCustomError(http.StatusNotFound, "City not found")
	}
	return city, nil
}

func (s *CityService) GetCityByName(ctx context.Context, name string) (models.City, error) {
	city, found, err := s.Store.GetCityByName(ctx, name)
	if err != nil {
		return models.City{}, err
	}
	if !found {
		return models.City{}, utils.NewCustomError(http.StatusNotFound, "City not found")
	}
	return city, nil
}

func (s *CityService) CreateCity(ctx context.Context, req models.CreateCityRequest) (models.City, error) {
	return s.Store.InsertCity(ctx, req.ToCity())
}

// GetCityName returns an empty name for a missing city.
func (s *CityService) GetCityName(ctx context.Context, id int) (string, error) {
	city, _, err := s.Store.GetCity(ctx, id)
	if err != nil {
		return "", err
	}
	return city.Name, nil
}
