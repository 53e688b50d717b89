package services

import (
	"CityGuide/models"
	"sort"
)

// FilterAndSort applies the listing filter and ordering to places. It never
// modifies its input and returns the same result for the same arguments.
func FilterAndSort(places []models.Place, filter models.ListingFilter) []models.Place {
	out := make([]models.Place, 0, len(places))
	for _, p := range places {
		if matches(p, filter) {
			out = append(out, p)
		}
	}

	switch filter.Sort {
	case models.SortRating:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating > out[j].Rating
		})
	case models.SortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].ID > out[j].ID
		})
	default:
		// popular; equal scores fall back to id ascending
		sort.SliceStable(out, func(i, j int) bool {
			si, sj := popularity(out[i]), popularity(out[j])
			if si != sj {
				return si > sj
			}
			return out[i].ID < out[j].ID
		})
	}
	return out
}

func popularity(p models.Place) int {
	return p.Rating * p.ReviewCount
}

func matches(p models.Place, filter models.ListingFilter) bool {
	if len(filter.Categories) > 0 && !contains(filter.Categories, p.Category) {
		return false
	}
	if p.Rating < int(filter.MinRating) {
		return false
	}
	if len(filter.Tags) > 0 && !p.HasAnyTag(filter.Tags) {
		return false
	}
	return true
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
