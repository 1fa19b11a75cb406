package reviews

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"premiere/internal/app/dto"
	"premiere/internal/app/outbox"
	"premiere/internal/domain/properties"
	domainreviews "premiere/internal/domain/reviews"
)

type SubmitReviewHandler struct {
	Reviews    domainreviews.Repository
	Properties properties.Repository
	Outbox     outbox.Outbox
	Encoder    outbox.EventEncoder
	Logger     *slog.Logger
}

type SubmitReviewInput struct {
	PropertyID string
	GuestName  string
	Rating     int
	Text       string
}

func (h *SubmitReviewHandler) Handle(ctx context.Context, input SubmitReviewInput) (dto.Review, error) {
	var zero dto.Review

	// Reviews only attach to catalog properties that actually exist.
	if _, err := h.Properties.ByID(ctx, properties.PropertyID(input.PropertyID)); err != nil {
		return zero, err
	}

	review, err := domainreviews.Submit(domainreviews.SubmitParams{
		ID:         domainreviews.ReviewID(uuid.NewString()),
		PropertyID: properties.PropertyID(input.PropertyID),
		GuestName:  input.GuestName,
		Rating:     input.Rating,
		Text:       input.Text,
		Now:        time.Now().UTC(),
	})
	if err != nil {
		return zero, err
	}
	if err := h.Reviews.Save(ctx, review); err != nil {
		return zero, err
	}
	if err := outbox.RecordDomainEvents(ctx, h.Outbox, h.Encoder, review.PendingEvents()); err != nil {
		return zero, err
	}
	review.ClearEvents()
	if h.Logger != nil {
		h.Logger.Info("review submitted", "review_id", review.ID, "property_id", review.PropertyID, "rating", review.Rating)
	}
	return dto.MapReview(review), nil
}

type ListReviewsHandler struct {
	Reviews domainreviews.Repository
}

func (h *ListReviewsHandler) Handle(ctx context.Context, propertyID string, limit, offset int) (dto.ReviewCollection, error) {
	if limit <= 0 {
		limit = 20
	}
	list, err := h.Reviews.ListByProperty(ctx, properties.PropertyID(propertyID), limit, offset)
	if err != nil {
		return dto.ReviewCollection{}, err
	}
	out := dto.ReviewCollection{
		Reviews: make([]dto.Review, 0, len(list)),
		Limit:   limit,
		Offset:  offset,
	}
	for _, r := range list {
		out.Reviews = append(out.Reviews, dto.MapReview(r))
	}
	return out, nil
}
