package pricing

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/time/rate"

	"premiere/internal/app/dto"
	domainpricing "premiere/internal/domain/pricing"
	"premiere/internal/domain/shared/stayrange"
)

// RateFetcher loads the nightly rate table for one listing over one stay range.
type RateFetcher interface {
	NightlyRates(ctx context.Context, listingRef string, r stayrange.StayRange) ([]domainpricing.NightlyRate, error)
}

// PropertyQuoteRequest is one property's slice of a batch. Ranges may differ
// per property.
type PropertyQuoteRequest struct {
	PropertyID string
	Start      string
	End        string
}

// BatchQuoteHandler runs one validate-fetch-summarize pipeline per requested
// property. Pipelines are concurrent and fully isolated: a failure in any of
// them becomes that property's failed result and never touches its siblings.
type BatchQuoteHandler struct {
	Fetcher     RateFetcher
	Logger      *slog.Logger
	MaxInFlight int
	Limiter     *rate.Limiter
}

const defaultMaxInFlight = 10

func (h *BatchQuoteHandler) Handle(ctx context.Context, requests []PropertyQuoteRequest) dto.BatchPricingResponse {
	results := make([]dto.PropertyPricingResult, len(requests))

	maxInFlight := h.MaxInFlight
	if maxInFlight <= 0 {
		maxInFlight = defaultMaxInFlight
	}
	sem := make(chan struct{}, maxInFlight)

	var wg sync.WaitGroup
	for i, req := range requests {
		wg.Add(1)
		go func(i int, req PropertyQuoteRequest) {
			defer wg.Done()
			results[i] = h.quoteOne(ctx, req, sem)
		}(i, req)
	}
	wg.Wait()

	summary := rollup(results)
	if h.Logger != nil {
		h.Logger.Info("batch pricing completed",
			"properties", summary.TotalProperties,
			"succeeded", summary.SuccessfulProperties,
			"failed", summary.FailedProperties,
		)
	}
	return dto.BatchPricingResponse{
		Success: true,
		Message: fmt.Sprintf("processed %d properties: %d succeeded, %d failed",
			summary.TotalProperties, summary.SuccessfulProperties, summary.FailedProperties),
		Results: results,
		Summary: summary,
	}
}

// quoteOne is the per-property pipeline. Every exit path, including a panic in
// a collaborator, resolves to a terminal result for this property.
func (h *BatchQuoteHandler) quoteOne(ctx context.Context, req PropertyQuoteRequest, sem chan struct{}) (result dto.PropertyPricingResult) {
	result = dto.PropertyPricingResult{PropertyID: req.PropertyID}
	defer func() {
		if r := recover(); r != nil {
			result.Success = false
			result.Summary = nil
			result.Pricing = nil
			result.Error = fmt.Sprintf("pricing pipeline panic: %v", r)
			if h.Logger != nil {
				h.Logger.Error("pricing pipeline panicked", "property_id", req.PropertyID, "panic", r)
			}
		}
	}()

	stay, err := stayrange.Parse(req.Start, req.End)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	sem <- struct{}{}
	defer func() { <-sem }()
	if h.Limiter != nil {
		if err := h.Limiter.Wait(ctx); err != nil {
			result.Error = err.Error()
			return result
		}
	}

	rates, err := h.Fetcher.NightlyRates(ctx, req.PropertyID, stay)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	summary := domainpricing.Summarize(rates, stay)
	result.Success = true
	result.Summary = &summary
	result.Pricing = rates
	return result
}

// rollup folds the cross-property summary over successful results only. The
// grand total re-rounds the already-rounded per-property totals; that matches
// how dashboard figures have always been produced.
func rollup(results []dto.PropertyPricingResult) dto.BatchSummary {
	summary := dto.BatchSummary{TotalProperties: len(results)}

	var grandTotal float64
	for _, res := range results {
		if !res.Success || res.Summary == nil {
			summary.FailedProperties++
			continue
		}
		summary.SuccessfulProperties++
		grandTotal += res.Summary.TotalAmount
		summary.TotalAvailableNights += res.Summary.AvailableNights
		summary.TotalBlockedNights += res.Summary.BlockedNights
		if summary.DateRange.EarliestStart == "" || res.Summary.StartDate < summary.DateRange.EarliestStart {
			summary.DateRange.EarliestStart = res.Summary.StartDate
		}
		if res.Summary.EndDate > summary.DateRange.LatestEnd {
			summary.DateRange.LatestEnd = res.Summary.EndDate
		}
	}

	summary.GrandTotalAmount = domainpricing.RoundCents(grandTotal)
	if summary.TotalAvailableNights > 0 {
		summary.AveragePricePerNight = domainpricing.RoundCents(summary.GrandTotalAmount / float64(summary.TotalAvailableNights))
	}
	return summary
}
