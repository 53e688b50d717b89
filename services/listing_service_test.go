package services

import (
	"CityGuide/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ids(places []models.Place) []int {
	out := make([]int, 0, len(places))
	for _, p := range places {
		out = append(out, p.ID)
	}
	return out
}

func samplePlaces() []models.Place {
	return []models.Place{
		{ID: 1, Category: "Ristoranti", Rating: 48, ReviewCount: 458, Tags: []string{"Fine Dining", "Vista Panoramica"}},
		{ID: 2, Category: "Musei", Rating: 47, ReviewCount: 325, Tags: []string{"Arte", "Rinascimento"}},
		{ID: 3, Category: "Hotel", Rating: 49, ReviewCount: 187, Tags: []string{"Lusso", "Vista Laguna"}},
		{ID: 4, Category: "Bar", Rating: 40, ReviewCount: 10, Tags: []string{"Economico"}},
		{ID: 5, Category: "Bar", Rating: 29, ReviewCount: 3},
	}
}

func TestFilterAndSort_NoFilterDefaultsToPopular(t *testing.T) {
	got := FilterAndSort(samplePlaces(), models.ListingFilter{})
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(got))
}

func TestFilterAndSort_Categories(t *testing.T) {
	got := FilterAndSort(samplePlaces(), models.ListingFilter{
		Categories: []string{"Bar", "Hotel"},
		Sort:       models.SortNewest,
	})
	assert.Equal(t, []int{5, 4, 3}, ids(got))
}

func TestFilterAndSort_RatingThresholds(t *testing.T) {
	tests := []struct {
		threshold models.RatingThreshold
		want      []int
	}{
		{models.RatingAny, []int{1, 2, 3, 4, 5}},
		{models.RatingThreePlus, []int{1, 2, 3, 4}},
		{models.RatingFourPlus, []int{1, 2, 3, 4}},
		{models.RatingFourHalf, []int{1, 2, 3}},
	}
	for _, tt := range tests {
		got := FilterAndSort(samplePlaces(), models.ListingFilter{MinRating: tt.threshold, Sort: models.SortNewest})
		assert.ElementsMatch(t, tt.want, ids(got), "threshold %d", tt.threshold)
	}
}

func TestFilterAndSort_RatingBoundaryIncluded(t *testing.T) {
	for r := 0; r <= 50; r++ {
		got := FilterAndSort([]models.Place{{ID: 1, Rating: r}}, models.ListingFilter{MinRating: models.RatingFourPlus})
		assert.Equal(t, r >= 40, len(got) == 1, "rating %d", r)
	}
}

func TestFilterAndSort_TagsUseOrSemantics(t *testing.T) {
	place := []models.Place{{ID: 3, Tags: []string{"Lusso"}}}

	got := FilterAndSort(place, models.ListingFilter{Tags: []string{"Lusso", "Vista Laguna"}})
	assert.Len(t, got, 1)

	got = FilterAndSort(place, models.ListingFilter{Tags: []string{"Romantico"}})
	assert.Empty(t, got)
}

func TestFilterAndSort_FiltersCombineWithAnd(t *testing.T) {
	got := FilterAndSort(samplePlaces(), models.ListingFilter{
		Categories: []string{"Bar"},
		MinRating:  models.RatingThreePlus,
		Tags:       []string{"Economico", "Arte"},
	})
	assert.Equal(t, []int{4}, ids(got))
}

func TestFilterAndSort_RatingSortIsStable(t *testing.T) {
	places := []models.Place{
		{ID: 7, Rating: 45},
		{ID: 2, Rating: 50},
		{ID: 9, Rating: 45},
		{ID: 1, Rating: 45},
	}
	got := FilterAndSort(places, models.ListingFilter{Sort: models.SortRating})
	assert.Equal(t, []int{2, 7, 9, 1}, ids(got))
}

func TestFilterAndSort_PopularTieBreaksOnID(t *testing.T) {
	places := []models.Place{
		{ID: 8, Rating: 40, ReviewCount: 10},
		{ID: 3, Rating: 20, ReviewCount: 20},
		{ID: 5, Rating: 50, ReviewCount: 100},
	}
	got := FilterAndSort(places, models.ListingFilter{Sort: models.SortPopular})
	assert.Equal(t, []int{5, 3, 8}, ids(got))
}

func TestFilterAndSort_PopularTiePreservesStoreOrder(t *testing.T) {
	places := []models.Place{
		{ID: 1, Rating: 40, ReviewCount: 10},
		{ID: 2, Rating: 20, ReviewCount: 20},
	}
	got := FilterAndSort(places, models.ListingFilter{Sort: models.SortPopular})
	assert.Equal(t, []int{1, 2}, ids(got))
}

func TestFilterAndSort_IsPureAndIdempotent(t *testing.T) {
	input := samplePlaces()
	filter := models.ListingFilter{MinRating: models.RatingFourPlus, Sort: models.SortRating}

	first := FilterAndSort(input, filter)
	second := FilterAndSort(input, filter)
	assert.Equal(t, first, second)
	assert.Equal(t, first, FilterAndSort(first, filter))
	assert.Equal(t, samplePlaces(), input, "input must not be reordered")
}

func TestParseListingParams(t *testing.T) {
	r, err := models.ParseRatingThreshold("4.5plus")
	assert.NoError(t, err)
	assert.Equal(t, models.RatingFourHalf, r)

	_, err = models.ParseRatingThreshold("5plus")
	assert.Error(t, err)

	s, err := models.ParseSortMode("")
	assert.NoError(t, err)
	assert.Equal(t, models.SortPopular, s)

	_, err = models.ParseSortMode("cheapest")
	assert.Error(t, err)
}
