package reviews

import (
	"context"
	"errors"
	"strings"
	"time"

	"premiere/internal/domain/properties"
	"premiere/internal/domain/shared/events"
)

var (
	ErrInvalidRating = errors.New("reviews: rating must be between 1 and 5")
	ErrEmptyText     = errors.New("reviews: text is required")
	ErrNotFound      = errors.New("reviews: not found")
)

type ReviewID string

type Review struct {
	ID         ReviewID
	PropertyID properties.PropertyID
	GuestName  string
	Rating     int
	Text       string
	CreatedAt  time.Time
	events.Recorder
}

type Repository interface {
	ListByProperty(ctx context.Context, propertyID properties.PropertyID, limit, offset int) ([]*Review, error)
	Save(ctx context.Context, review *Review) error
}

type SubmitParams struct {
	ID         ReviewID
	PropertyID properties.PropertyID
	GuestName  string
	Rating     int
	Text       string
	Now        time.Time
}

func Submit(params SubmitParams) (*Review, error) {
	if params.Rating < 1 || params.Rating > 5 {
		return nil, ErrInvalidRating
	}
	if strings.TrimSpace(params.Text) == "" {
		return nil, ErrEmptyText
	}
	review := &Review{
		ID:         params.ID,
		PropertyID: params.PropertyID,
		GuestName:  strings.TrimSpace(params.GuestName),
		Rating:     params.Rating,
		Text:       strings.TrimSpace(params.Text),
		CreatedAt:  params.Now.UTC(),
	}
	review.Record(ReviewSubmitted{
		ReviewID:   review.ID,
		PropertyID: review.PropertyID,
		Rating:     review.Rating,
		At:         review.CreatedAt,
	})
	return review, nil
}
