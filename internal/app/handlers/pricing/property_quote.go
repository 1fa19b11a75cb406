package pricing

import (
	"context"
	"log/slog"

	"premiere/internal/app/dto"
	domainpricing "premiere/internal/domain/pricing"
	"premiere/internal/domain/properties"
	"premiere/internal/domain/shared/stayrange"
)

// PropertyQuoteHandler prices a single stay for one catalog property,
// resolving its upstream listing reference first.
type PropertyQuoteHandler struct {
	Fetcher    RateFetcher
	Properties properties.Repository
	Logger     *slog.Logger
}

func (h *PropertyQuoteHandler) Handle(ctx context.Context, propertyID, start, end string) (dto.PropertyQuote, error) {
	var zero dto.PropertyQuote

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

	summary := domainpricing.Summarize(rates, stay)
	if h.Logger != nil {
		h.Logger.Info("property quote generated", "property_id", propertyID, "nights", summary.TotalNights)
	}
	return dto.PropertyQuote{PropertyID: propertyID, Summary: summary, Pricing: rates}, nil
}
