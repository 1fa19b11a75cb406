package ginserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"premiere/internal/app/dto"
	pricingapp "premiere/internal/app/handlers/pricing"
	domainpricing "premiere/internal/domain/pricing"
	"premiere/internal/domain/shared/stayrange"
	"premiere/internal/infra/config"
	"premiere/internal/infra/obs"
)

type stubFetcher struct {
	rates map[string][]domainpricing.NightlyRate
	errs  map[string]error
}

func (f *stubFetcher) NightlyRates(ctx context.Context, listingRef string, r stayrange.StayRange) ([]domainpricing.NightlyRate, error) {
	if err, ok := f.errs[listingRef]; ok {
		return nil, err
	}
	if rates, ok := f.rates[listingRef]; ok {
		return rates, nil
	}
	return nil, errors.New("ownerrez: status 404: listing not found")
}

func newTestServer(fetcher pricingapp.RateFetcher) http.Handler {
	cfg := config.Config{Env: "test", HTTPAddr: ":0"}
	handlers := Handlers{
		Pricing: PricingHandler{
			Batch: &pricingapp.BatchQuoteHandler{Fetcher: fetcher},
		},
	}
	return NewServer(cfg, obs.Middleware{}, obs.HealthHandlers{}, handlers).Handler
}

func postBulk(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/pricing/bulk", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestBulkQuoteHappyPath(t *testing.T) {
	fetcher := &stubFetcher{rates: map[string][]domainpricing.NightlyRate{
		"101": {
			{Date: "2025-06-10", Amount: 100},
			{Date: "2025-06-11", Amount: 120},
			{Date: "2025-06-12", IsStayDisallowed: true},
		},
	}}
	handler := newTestServer(fetcher)

	rec := postBulk(t, handler, `{"properties":[{"id":"101","start":"2025-06-10","end":"2025-06-13"}]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.BatchPricingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Results, 1)
	require.NotNil(t, resp.Results[0].Summary)
	assert.Equal(t, 220.00, resp.Results[0].Summary.TotalAmount)
	assert.Equal(t, 110.00, resp.Results[0].Summary.AveragePricePerNight)
	assert.Equal(t, 1, resp.Summary.SuccessfulProperties)
}

func TestBulkQuoteAcceptsNumericIDs(t *testing.T) {
	fetcher := &stubFetcher{rates: map[string][]domainpricing.NightlyRate{
		"42": {{Date: "2025-06-10", Amount: 100}},
	}}
	handler := newTestServer(fetcher)

	rec := postBulk(t, handler, `{"properties":[{"id":42,"start":"2025-06-10","end":"2025-06-12"}]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.BatchPricingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "42", resp.Results[0].PropertyID)
	assert.True(t, resp.Results[0].Success)
}

func TestBulkQuoteMixedOutcomesStillOK(t *testing.T) {
	fetcher := &stubFetcher{
		rates: map[string][]domainpricing.NightlyRate{
			"good": {{Date: "2025-06-10", Amount: 100}},
		},
		errs: map[string]error{"down": errors.New("ownerrez: status 500: boom")},
	}
	handler := newTestServer(fetcher)

	rec := postBulk(t, handler, `{"properties":[
		{"id":"good","start":"2025-06-10","end":"2025-06-12"},
		{"id":"down","start":"2025-06-10","end":"2025-06-12"},
		{"id":"bad-dates","start":"2025-06-12","end":"2025-06-10"}
	]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.BatchPricingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 3)
	assert.True(t, resp.Results[0].Success)
	assert.False(t, resp.Results[1].Success)
	assert.False(t, resp.Results[2].Success)
	assert.True(t, resp.Success)
	assert.Equal(t, 3, resp.Summary.TotalProperties)
}

func TestBulkQuoteEmptyListRejected(t *testing.T) {
	handler := newTestServer(&stubFetcher{})

	rec := postBulk(t, handler, `{"properties":[]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "non-empty")
}

func TestBulkQuoteMissingListRejected(t *testing.T) {
	handler := newTestServer(&stubFetcher{})

	rec := postBulk(t, handler, `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBulkQuoteOversizedListRejected(t *testing.T) {
	handler := newTestServer(&stubFetcher{})

	entries := make([]string, 51)
	for i := range entries {
		entries[i] = fmt.Sprintf(`{"id":"p%d","start":"2025-06-10","end":"2025-06-12"}`, i)
	}
	body := `{"properties":[` + strings.Join(entries, ",") + `]}`

	rec := postBulk(t, handler, body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "50")
}

func TestBulkQuoteMalformedBodyRejected(t *testing.T) {
	handler := newTestServer(&stubFetcher{})

	rec := postBulk(t, handler, `{"properties": "nope"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid request body")
}

func TestBulkQuoteWrongMethodRejected(t *testing.T) {
	handler := newTestServer(&stubFetcher{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/pricing/bulk", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), "not supported")
}
