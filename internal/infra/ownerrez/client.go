package ownerrez

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"premiere/internal/domain/pricing"
	"premiere/internal/domain/shared/stayrange"
)

var ErrCredentialsMissing = errors.New("ownerrez: API credentials not configured")

// Client talks to the OwnerRez rate API. One request per NightlyRates call,
// no retries: a failed fetch is the caller's per-property failure.
type Client struct {
	BaseURL    string
	Username   string
	Token      string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// rateRecord is the upstream wire shape. Amount and the stay-disallowed flag
// are pointers so that an absent field is distinguishable from a zero value
// and can be rejected instead of silently trusted.
type rateRecord struct {
	Date             string   `json:"date"`
	Amount           *float64 `json:"amount"`
	IsStayDisallowed *bool    `json:"isStayDisallowed"`
	MinNights        int      `json:"minNights"`
}

type errorBody struct {
	Message string `json:"message"`
}

// NightlyRates fetches the nightly rate table for one listing over one range,
// with pricing-rule evaluation included. The returned sequence preserves the
// upstream order and is not filtered or transformed beyond shape validation.
func (c *Client) NightlyRates(ctx context.Context, listingRef string, r stayrange.StayRange) ([]pricing.NightlyRate, error) {
	if c == nil || c.HTTPClient == nil {
		return nil, errors.New("ownerrez: http client not configured")
	}
	if c.Username == "" || c.Token == "" {
		return nil, ErrCredentialsMissing
	}
	if strings.TrimSpace(listingRef) == "" {
		return nil, errors.New("ownerrez: listing reference is required")
	}

	endpoint := fmt.Sprintf("%s/listings/%s/pricing", strings.TrimRight(c.BaseURL, "/"), url.PathEscape(listingRef))
	query := url.Values{}
	query.Set("includePricingRules", "true")
	query.Set("start", r.StartDate())
	query.Set("end", r.EndDate())

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	request.SetBasicAuth(c.Username, c.Token)
	request.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(request)
	if err != nil {
		err = fmt.Errorf("ownerrez: request failed: %w", err)
		c.logError("rate fetch failed", listingRef, err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		err := fmt.Errorf("ownerrez: status %d: %s", resp.StatusCode, extractMessage(resp.Body))
		c.logError("rate fetch returned error", listingRef, err)
		return nil, err
	}

	var records []rateRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		err = fmt.Errorf("ownerrez: malformed rate response: %w", err)
		c.logError("rate decode failed", listingRef, err)
		return nil, err
	}

	rates := make([]pricing.NightlyRate, 0, len(records))
	for i, rec := range records {
		if rec.Amount == nil || rec.IsStayDisallowed == nil {
			return nil, fmt.Errorf("%w: record %d (%s)", pricing.ErrRecordShape, i, rec.Date)
		}
		night := pricing.NightlyRate{
			Date:             rec.Date,
			Amount:           *rec.Amount,
			IsStayDisallowed: *rec.IsStayDisallowed,
			MinNights:        rec.MinNights,
		}
		if err := night.Validate(); err != nil {
			return nil, err
		}
		rates = append(rates, night)
	}
	return rates, nil
}

// extractMessage pulls a human-readable message out of an upstream error body,
// falling back to the raw text when the body is not the expected JSON object.
func extractMessage(body io.Reader) string {
	snippet, _ := io.ReadAll(io.LimitReader(body, 1024))
	var parsed errorBody
	if err := json.Unmarshal(snippet, &parsed); err == nil && parsed.Message != "" {
		return parsed.Message
	}
	text := strings.TrimSpace(string(snippet))
	if text == "" {
		return "no response body"
	}
	return text
}

func (c *Client) logError(msg, listingRef string, err error) {
	if c.Logger != nil {
		c.Logger.Error(msg, "listing_ref", listingRef, "error", err)
	}
}
