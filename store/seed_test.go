package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed_LoadsSampleDirectory(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, Seed(ctx, s))

	cities, err := s.ListCities(ctx)
	require.NoError(t, err)
	require.Len(t, cities, 5)
	assert.Equal(t, "Roma", cities[0].Name)
	assert.Equal(t, "Napoli", cities[4].Name)

	places, err := s.ListPlaces(ctx)
	require.NoError(t, err)
	require.Len(t, places, 3)
	assert.Equal(t, 48, places[0].Rating)
	assert.Equal(t, 460, places[0].ReviewCount)

	uffizi, err := s.ListPlacesByCity(ctx, 4)
	require.NoError(t, err)
	require.Len(t, uffizi, 1)
	assert.Equal(t, "Galleria degli Uffizi", uffizi[0].Name)

	reviews, err := s.ListReviews(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)
}

func TestSeed_SkipsNonEmptyStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, Seed(ctx, s))
	require.NoError(t, Seed(ctx, s))

	cities, err := s.ListCities(ctx)
	require.NoError(t, err)
	assert.Len(t, cities, 5)
}
