package services

import (
	"CityGuide/models"
	"CityGuide/store"
	"CityGuide/utils"
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func seededStore(t *testing.T) *store.MemoryStore {
	t.Helper()
	s := store.NewMemoryStore()
	require.NoError(t, store.Seed(context.Background(), s))
	return s
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	ce, ok := utils.AsCustomError(err)
	require.True(t, ok, "expected CustomError, got %v", err)
	assert.Equal(t, status, ce.StatusCode)
}

func TestCatalogService_ReturnsCopies(t *testing.T) {
	svc := NewCatalogService()
	cats := svc.GetCategories()
	require.Len(t, cats, 7)
	cats[0] = "changed"
	assert.Equal(t, "Ristoranti", svc.GetCategories()[0])
	assert.Contains(t, svc.GetTags(), "Centro storico")
}

func TestCityService(t *testing.T) {
	ctx := context.Background()
	svc := NewCityService(seededStore(t))

	city, err := svc.GetCityByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Venezia", city.Name)

	_, err = svc.GetCityByID(ctx, 99)
	requireStatus(t, err, http.StatusNotFound)

	byName, err := svc.GetCityByName(ctx, "firenze")
	require.NoError(t, err)
	assert.Equal(t, 4, byName.ID)

	featured := false
	created, err := svc.CreateCity(ctx, models.CreateCityRequest{
		Name: "Torino", Country: "Italia", Description: "Prima capitale", ImageURL: "https://img.test/torino.jpg", IsFeatured: &featured,
	})
	require.NoError(t, err)
	assert.Equal(t, 6, created.ID)

	featuredCities, err := svc.GetFeaturedCities(ctx)
	require.NoError(t, err)
	assert.Len(t, featuredCities, 5)
}

func TestPlaceService_GetPlacesByCity(t *testing.T) {
	ctx := context.Background()
	svc := NewPlaceService(seededStore(t), zap.NewNop())

	places, err := svc.GetPlacesByCity(ctx, 1, nil)
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "Ristorante La Pergola", places[0].Name)

	empty, err := svc.GetPlacesByCity(ctx, 2, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = svc.GetPlacesByCity(ctx, 42, nil)
	requireStatus(t, err, http.StatusNotFound)
}

func TestPlaceService_GetPlacesWithFilter(t *testing.T) {
	ctx := context.Background()
	svc := NewPlaceService(seededStore(t), zap.NewNop())

	places, err := svc.GetPlaces(ctx, &models.ListingFilter{Sort: models.SortRating})
	require.NoError(t, err)
	require.Len(t, places, 3)
	assert.Equal(t, "Belmond Hotel Cipriani", places[0].Name)
}

func TestPlaceService_CreatePlaceForUnknownCityIsLogged(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zap.WarnLevel)
	svc := NewPlaceService(seededStore(t), zap.New(core))

	place, err := svc.CreatePlace(ctx, models.CreatePlaceRequest{
		Name: "Bar Fantasma", Description: "Nessuna città", Address: "Via Nulla", CityID: 77, Category: "Bar",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, place.ID)
	assert.Equal(t, models.DefaultPriceLevel, place.PriceLevel)
	assert.Equal(t, []string{}, place.Tags)
	assert.Equal(t, 1, logs.FilterMessage("creating place for unknown city").Len())
}

func TestReviewService(t *testing.T) {
	ctx := context.Background()
	s := seededStore(t)
	svc := NewReviewService(s)

	reviews, err := svc.GetReviews(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)

	_, err = svc.GetReviews(ctx, 999)
	requireStatus(t, err, http.StatusNotFound)

	created, err := svc.CreateReview(ctx, 2, models.CreateReviewRequest{UserName: "Giulia", Rating: 5, Comment: "Capolavori ovunque"})
	require.NoError(t, err)
	assert.Equal(t, 3, created.ID)
	assert.Equal(t, 2, created.PlaceID)
	assert.False(t, created.CreatedAt.IsZero())

	place, _, _ := s.GetPlace(ctx, 2)
	assert.Equal(t, 326, place.ReviewCount)

	_, err = svc.CreateReview(ctx, 999, models.CreateReviewRequest{UserName: "Giulia", Rating: 5, Comment: "Capolavori ovunque"})
	requireStatus(t, err, http.StatusNotFound)
}

func TestUserService(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(store.NewMemoryStore())

	user, err := svc.Register(ctx, "mario", "segreto123")
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.NotEqual(t, "segreto123", user.Password)

	_, err = svc.Register(ctx, "mario", "altro")
	requireStatus(t, err, http.StatusConflict)

	_, err = svc.Register(ctx, "", "x")
	requireStatus(t, err, http.StatusBadRequest)

	got, err := svc.Authenticate(ctx, "mario", "segreto123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = svc.Authenticate(ctx, "mario", "sbagliata")
	requireStatus(t, err, http.StatusUnauthorized)

	_, err = svc.Authenticate(ctx, "luigi", "segreto123")
	requireStatus(t, err, http.StatusUnauthorized)

	_, err = svc.GetUser(ctx, 1)
	require.NoError(t, err)
	_, err = svc.GetUser(ctx, 2)
	requireStatus(t, err, http.StatusNotFound)
}
