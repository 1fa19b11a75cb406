package dto

import "premiere/internal/domain/pricing"

// PropertyPricingResult is one property's outcome within a batch. A failed
// property carries only its error; siblings are unaffected.
type PropertyPricingResult struct {
	PropertyID string                `json:"propertyId"`
	Success    bool                  `json:"success"`
	Summary    *pricing.Summary      `json:"summary,omitempty"`
	Pricing    []pricing.NightlyRate `json:"pricing,omitempty"`
	Error      string                `json:"error,omitempty"`
}

type BatchDateRange struct {
	EarliestStart string `json:"earliestStart"`
	LatestEnd     string `json:"latestEnd"`
}

// BatchSummary is the cross-property rollup folded over successful results only.
type BatchSummary struct {
	TotalProperties      int            `json:"totalProperties"`
	SuccessfulProperties int            `json:"successfulProperties"`
	FailedProperties     int            `json:"failedProperties"`
	GrandTotalAmount     float64        `json:"grandTotalAmount"`
	TotalAvailableNights int            `json:"totalAvailableNights"`
	TotalBlockedNights   int            `json:"totalBlockedNights"`
	AveragePricePerNight float64        `json:"averagePricePerNight"`
	DateRange            BatchDateRange `json:"dateRange"`
}

type BatchPricingResponse struct {
	Success bool                    `json:"success"`
	Message string                  `json:"message"`
	Results []PropertyPricingResult `json:"results"`
	Summary BatchSummary            `json:"summary"`
}

// PropertyQuote is the single-property pricing view used by the detail page.
type PropertyQuote struct {
	PropertyID string                `json:"propertyId"`
	Summary    pricing.Summary       `json:"summary"`
	Pricing    []pricing.NightlyRate `json:"pricing"`
}
