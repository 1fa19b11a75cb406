package pricing

import (
	"math"

	"premiere/internal/domain/shared/stayrange"
)

// Summary holds the per-property figures for one quoted stay. Amounts are
// rounded to cents when the summary is built, not while accumulating.
type Summary struct {
	TotalAmount          float64 `json:"totalAmount"`
	TotalNights          int     `json:"totalNights"`
	AvailableNights      int     `json:"availableNights"`
	BlockedNights        int     `json:"blockedNights"`
	AveragePricePerNight float64 `json:"averagePricePerNight"`
	StartDate            string  `json:"startDate"`
	EndDate              string  `json:"endDate"`
}

// Summarize folds a nightly-rate sequence into a Summary. Blocked nights count
// toward TotalNights but contribute nothing to TotalAmount. An empty sequence
// yields the zero summary with the range echoed back.
func Summarize(rates []NightlyRate, r stayrange.StayRange) Summary {
	var total float64
	var available, blocked int
	for _, night := range rates {
		if night.IsStayDisallowed {
			blocked++
			continue
		}
		available++
		total += night.Amount
	}

	average := 0.0
	if available > 0 {
		average = total / float64(available)
	}

	return Summary{
		TotalAmount:          RoundCents(total),
		TotalNights:          len(rates),
		AvailableNights:      available,
		BlockedNights:        blocked,
		AveragePricePerNight: RoundCents(average),
		StartDate:            r.StartDate(),
		EndDate:              r.EndDate(),
	}
}

// RoundCents rounds half away from zero to two decimal places.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
