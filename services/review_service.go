package services

import (
	"CityGuide/models"
	"CityGuide/store"
	"CityGuide/utils"
	"context"
	"errors"
	"net/http"
)

type ReviewService struct {
	Store store.Store
}

func NewReviewService(s store.Store) *ReviewService {
	return &ReviewService{Store: s}
}

func (s *ReviewService) GetReviews(ctx context.Context, placeID int) ([]models.Review, error) {
	_, found, err := s.Store.GetPlace(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, utils.NewCustomError(http.StatusNotFound, "Place not found")
	}
	return s.Store.ListReviews(ctx, placeID)
}

// CreateReview stores the review; the place rating and review count are
// updated by the store in the same step.
func (s *ReviewService) CreateReview(ctx context.Context, placeID int, req models.CreateReviewRequest) (models.Review, error) {
	review, err := s.Store.InsertReview(ctx, req.ToReview(placeID))
	if errors.Is(err, store.ErrNotFound) {
		return models.Review{}, utils.NewCustomError(http.StatusNotFound, "Place not found")
	}
	return review, err
}
