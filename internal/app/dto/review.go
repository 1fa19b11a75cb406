package dto

import (
	"time"

	"premiere/internal/domain/reviews"
)

type Review struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"propertyId"`
	GuestName  string    `json:"guestName"`
	Rating     int       `json:"rating"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"createdAt"`
}

type ReviewCollection struct {
	Reviews []Review `json:"reviews"`
	Limit   int      `json:"limit"`
	Offset  int      `json:"offset"`
}

func MapReview(r *reviews.Review) Review {
	if r == nil {
		return Review{}
	}
	return Review{
		ID:         string(r.ID),
		PropertyID: string(r.PropertyID),
		GuestName:  r.GuestName,
		Rating:     r.Rating,
		Text:       r.Text,
		CreatedAt:  r.CreatedAt,
	}
}
