package models

import "fmt"

// RatingThreshold is a minimum rating on the tenths scale.
type RatingThreshold int

const (
	RatingAny       RatingThreshold = 0
	RatingThreePlus RatingThreshold = 30
	RatingFourPlus  RatingThreshold = 40
	RatingFourHalf  RatingThreshold = 45
)

func ParseRatingThreshold(value string) (RatingThreshold, error) {
	switch value {
	case "", "any":
		return RatingAny, nil
	case "3plus":
		return RatingThreePlus, nil
	case "4plus":
		return RatingFourPlus, nil
	case "4.5plus":
		return RatingFourHalf, nil
	}
	return RatingAny, fmt.Errorf("unknown rating filter %q", value)
}

type SortMode string

const (
	SortPopular SortMode = "popular"
	SortRating  SortMode = "rating"
	SortNewest  SortMode = "newest"
)

func ParseSortMode(value string) (SortMode, error) {
	switch SortMode(value) {
	case "", SortPopular:
		return SortPopular, nil
	case SortRating, SortNewest:
		return SortMode(value), nil
	}
	return SortPopular, fmt.Errorf("unknown sort mode %q", value)
}

// ListingFilter selects and orders the places of a listing view.
// Filters combine with AND; tags inside the tag filter combine with OR.
type ListingFilter struct {
	Categories []string
	MinRating  RatingThreshold
	Tags       []string
	Sort       SortMode
}
