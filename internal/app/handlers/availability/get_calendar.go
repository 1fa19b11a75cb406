package availability

import (
	"context"
	"log/slog"

	"premiere/internal/app/dto"
	domainavailability "premiere/internal/domain/availability"
	domainpricing "premiere/internal/domain/pricing"
	"premiere/internal/domain/properties"
	"premiere/internal/domain/shared/stayrange"
)

// RateFetcher mirrors the pricing fetch contract; the calendar view is derived
// from the same nightly-rate feed.
type RateFetcher interface {
	NightlyRates(ctx context.Context, listingRef string, r stayrange.StayRange) ([]domainpricing.NightlyRate, error)
}

type GetCalendarHandler struct {
	Fetcher    RateFetcher
	Properties properties.Repository
	Logger     *slog.Logger
}

func (h *GetCalendarHandler) Handle(ctx context.Context, propertyID, start, end string) (dto.Calendar, error) {
	var zero dto.Calendar

	stay, err := stayrange.Parse(start, end)
	if err != nil {
		return zero, err
	}

	listingRef := propertyID
	if h.Properties != nil {
		property, err := h.Properties.ByID(ctx, properties.PropertyID(propertyID))
		if err != nil {
			return zero, err
		}
		if property.ListingRef != "" {
			listingRef = property.ListingRef
		}
	}

	rates, err := h.Fetcher.NightlyRates(ctx, listingRef, stay)
	if err != nil {
		return zero, err
	}

	cal := domainavailability.Calendar{
		PropertyID: propertyID,
		Blocks:     domainavailability.BlocksFromRates(rates),
	}
	return dto.MapCalendar(cal), nil
}
