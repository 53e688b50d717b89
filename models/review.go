package models

import "time"

type Review struct {
	ID        int       `json:"id" firestore:"id"`
	PlaceID   int       `json:"placeId" firestore:"placeId"`
	UserName  string    `json:"userName" firestore:"userName"`
	Rating    int       `json:"rating" firestore:"rating"`
	Comment   string    `json:"comment" firestore:"comment"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}

// CreateReviewRequest is the body of POST /api/places/:id/reviews.
// The place comes from the path and createdAt is stamped by the store.
type CreateReviewRequest struct {
	UserName string `json:"userName" binding:"required,min=3"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Comment  string `json:"comment" binding:"required,min=10"`
}

func (r CreateReviewRequest) ToReview(placeID int) Review {
	return Review{
		PlaceID:  placeID,
		UserName: r.UserName,
		Rating:   r.Rating,
		Comment:  r.Comment,
	}
}
