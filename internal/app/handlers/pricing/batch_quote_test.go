package pricing

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	domainpricing "premiere/internal/domain/pricing"
	"premiere/internal/domain/shared/stayrange"
)

// fakeFetcher scripts per-listing behavior so pipelines can be exercised
// without the upstream API.
type fakeFetcher struct {
	rates  map[string][]domainpricing.NightlyRate
	errs   map[string]error
	delays map[string]time.Duration
	panics map[string]bool
}

func (f *fakeFetcher) NightlyRates(ctx context.Context, listingRef string, r stayrange.StayRange) ([]domainpricing.NightlyRate, error) {
	if d, ok := f.delays[listingRef]; ok {
		time.Sleep(d)
	}
	if f.panics[listingRef] {
		panic("scripted fetch panic")
	}
	if err, ok := f.errs[listingRef]; ok {
		return nil, err
	}
	return f.rates[listingRef], nil
}

func nights(amounts ...float64) []domainpricing.NightlyRate {
	out := make([]domainpricing.NightlyRate, 0, len(amounts))
	for i, a := range amounts {
		out = append(out, domainpricing.NightlyRate{
			Date:   fmt.Sprintf("2025-06-%02d", 10+i),
			Amount: a,
		})
	}
	return out
}

func request(id string) PropertyQuoteRequest {
	return PropertyQuoteRequest{PropertyID: id, Start: "2025-06-10", End: "2025-06-13"}
}

func TestBatchPreservesInputOrderUnderConcurrency(t *testing.T) {
	fetcher := &fakeFetcher{
		rates: map[string][]domainpricing.NightlyRate{
			"a": nights(100, 100, 100),
			"b": nights(200, 200, 200),
			"c": nights(300, 300, 300),
		},
		// The first pipeline finishes last; ordering must not depend on
		// completion time.
		delays: map[string]time.Duration{"a": 50 * time.Millisecond},
	}
	h := &BatchQuoteHandler{Fetcher: fetcher}

	resp := h.Handle(context.Background(), []PropertyQuoteRequest{request("a"), request("b"), request("c")})

	require.Len(t, resp.Results, 3)
	assert.Equal(t, "a", resp.Results[0].PropertyID)
	assert.Equal(t, "b", resp.Results[1].PropertyID)
	assert.Equal(t, "c", resp.Results[2].PropertyID)
	for _, res := range resp.Results {
		assert.True(t, res.Success)
	}
}

func TestBatchRejectedDateOrderOnlyAffectsThatProperty(t *testing.T) {
	fetcher := &fakeFetcher{rates: map[string][]domainpricing.NightlyRate{
		"good": nights(100, 120),
	}}
	h := &BatchQuoteHandler{Fetcher: fetcher}

	resp := h.Handle(context.Background(), []PropertyQuoteRequest{
		{PropertyID: "bad", Start: "2025-06-10", End: "2025-06-05"},
		request("good"),
	})

	require.Len(t, resp.Results, 2)
	assert.False(t, resp.Results[0].Success)
	assert.Contains(t, resp.Results[0].Error, "after start date")
	assert.True(t, resp.Results[1].Success)
	assert.True(t, resp.Success)
}

func TestBatchFetchFailureIsolated(t *testing.T) {
	fetcher := &fakeFetcher{
		rates: map[string][]domainpricing.NightlyRate{
			"a": nights(100, 100),
			"c": nights(50, 50),
		},
		errs: map[string]error{"b": errors.New("ownerrez: status 502: upstream down")},
	}
	h := &BatchQuoteHandler{Fetcher: fetcher}

	resp := h.Handle(context.Background(), []PropertyQuoteRequest{request("a"), request("b"), request("c")})

	require.Len(t, resp.Results, 3)
	assert.True(t, resp.Results[0].Success)
	assert.False(t, resp.Results[1].Success)
	assert.Contains(t, resp.Results[1].Error, "status 502")
	assert.True(t, resp.Results[2].Success)

	assert.True(t, resp.Success)
	assert.Equal(t, 3, resp.Summary.TotalProperties)
	assert.Equal(t, 2, resp.Summary.SuccessfulProperties)
	assert.Equal(t, 1, resp.Summary.FailedProperties)
}

func TestBatchPanicInPipelineContained(t *testing.T) {
	fetcher := &fakeFetcher{
		rates:  map[string][]domainpricing.NightlyRate{"a": nights(100)},
		panics: map[string]bool{"boom": true},
	}
	h := &BatchQuoteHandler{Fetcher: fetcher}

	resp := h.Handle(context.Background(), []PropertyQuoteRequest{request("boom"), request("a")})

	require.Len(t, resp.Results, 2)
	assert.False(t, resp.Results[0].Success)
	assert.Contains(t, resp.Results[0].Error, "panic")
	assert.True(t, resp.Results[1].Success)
}

func TestBatchRollupFoldsOnlySuccesses(t *testing.T) {
	fetcher := &fakeFetcher{
		rates: map[string][]domainpricing.NightlyRate{
			"a": {
				{Date: "2025-06-10", Amount: 100},
				{Date: "2025-06-11", Amount: 120},
				{Date: "2025-06-12", IsStayDisallowed: true},
			},
			"b": {
				{Date: "2025-06-10", Amount: 80},
				{Date: "2025-06-11", Amount: 80},
				{Date: "2025-06-12", Amount: 80},
			},
		},
		errs: map[string]error{"x": errors.New("nope")},
	}
	h := &BatchQuoteHandler{Fetcher: fetcher}

	resp := h.Handle(context.Background(), []PropertyQuoteRequest{
		request("a"),
		{PropertyID: "b", Start: "2025-06-09", End: "2025-06-14"},
		request("x"),
	})

	sum := resp.Summary
	assert.Equal(t, 460.00, sum.GrandTotalAmount)
	assert.Equal(t, 5, sum.TotalAvailableNights)
	assert.Equal(t, 1, sum.TotalBlockedNights)
	assert.Equal(t, 92.00, sum.AveragePricePerNight)
	assert.Equal(t, "2025-06-09", sum.DateRange.EarliestStart)
	assert.Equal(t, "2025-06-14", sum.DateRange.LatestEnd)
	assert.Equal(t, sum.TotalProperties, sum.SuccessfulProperties+sum.FailedProperties)
}

func TestBatchAllFailedStillSucceedsAtBatchLevel(t *testing.T) {
	fetcher := &fakeFetcher{errs: map[string]error{
		"a": errors.New("down"),
		"b": errors.New("down"),
	}}
	h := &BatchQuoteHandler{Fetcher: fetcher}

	resp := h.Handle(context.Background(), []PropertyQuoteRequest{request("a"), request("b")})

	assert.True(t, resp.Success)
	assert.Equal(t, 0, resp.Summary.SuccessfulProperties)
	assert.Equal(t, 2, resp.Summary.FailedProperties)
	assert.Equal(t, 0.0, resp.Summary.GrandTotalAmount)
	assert.Equal(t, 0.0, resp.Summary.AveragePricePerNight)
	assert.Equal(t, "", resp.Summary.DateRange.EarliestStart)
	assert.Equal(t, "", resp.Summary.DateRange.LatestEnd)
}

func TestBatchRespectsLimiterAndBound(t *testing.T) {
	fetcher := &fakeFetcher{rates: map[string][]domainpricing.NightlyRate{
		"a": nights(10), "b": nights(20), "c": nights(30),
	}}
	h := &BatchQuoteHandler{
		Fetcher:     fetcher,
		MaxInFlight: 1,
		Limiter:     rate.NewLimiter(rate.Inf, 1),
	}

	resp := h.Handle(context.Background(), []PropertyQuoteRequest{request("a"), request("b"), request("c")})
	require.Len(t, resp.Results, 3)
	for _, res := range resp.Results {
		assert.True(t, res.Success)
	}
}
