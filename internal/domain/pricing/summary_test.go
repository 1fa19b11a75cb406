package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"premiere/internal/domain/shared/stayrange"
)

func threeNights(t *testing.T) stayrange.StayRange {
	t.Helper()
	r, err := stayrange.Parse("2025-06-10", "2025-06-13")
	require.NoError(t, err)
	return r
}

func TestSummarizeThreeNightWindow(t *testing.T) {
	rates := []NightlyRate{
		{Date: "2025-06-10", Amount: 100, IsStayDisallowed: false},
		{Date: "2025-06-11", Amount: 120, IsStayDisallowed: false},
		{Date: "2025-06-12", Amount: 0, IsStayDisallowed: true},
	}
	s := Summarize(rates, threeNights(t))

	assert.Equal(t, 220.00, s.TotalAmount)
	assert.Equal(t, 3, s.TotalNights)
	assert.Equal(t, 2, s.AvailableNights)
	assert.Equal(t, 1, s.BlockedNights)
	assert.Equal(t, 110.00, s.AveragePricePerNight)
	assert.Equal(t, "2025-06-10", s.StartDate)
	assert.Equal(t, "2025-06-13", s.EndDate)
}

func TestSummarizeConservesNights(t *testing.T) {
	rates := []NightlyRate{
		{Date: "2025-06-10", Amount: 90},
		{Date: "2025-06-11", Amount: 0, IsStayDisallowed: true},
		{Date: "2025-06-12", Amount: 0, IsStayDisallowed: true},
	}
	s := Summarize(rates, threeNights(t))
	assert.Equal(t, s.TotalNights, s.AvailableNights+s.BlockedNights)
}

func TestSummarizeBlockedNightsContributeNothing(t *testing.T) {
	rates := []NightlyRate{
		{Date: "2025-06-10", Amount: 90},
		{Date: "2025-06-11", Amount: 500, IsStayDisallowed: true},
	}
	s := Summarize(rates, threeNights(t))
	assert.Equal(t, 90.00, s.TotalAmount)
}

func TestSummarizeAllBlockedGuardsAverage(t *testing.T) {
	rates := []NightlyRate{
		{Date: "2025-06-10", IsStayDisallowed: true},
		{Date: "2025-06-11", IsStayDisallowed: true},
	}
	s := Summarize(rates, threeNights(t))
	assert.Equal(t, 0, s.AvailableNights)
	assert.Equal(t, 0.0, s.AveragePricePerNight)
	assert.Equal(t, 0.0, s.TotalAmount)
}

func TestSummarizeEmptyInput(t *testing.T) {
	s := Summarize(nil, threeNights(t))
	assert.Equal(t, 0, s.TotalNights)
	assert.Equal(t, 0.0, s.TotalAmount)
	assert.Equal(t, 0.0, s.AveragePricePerNight)
	assert.Equal(t, "2025-06-10", s.StartDate)
	assert.Equal(t, "2025-06-13", s.EndDate)
}

func TestSummarizeRoundsToCents(t *testing.T) {
	rates := []NightlyRate{
		{Date: "2025-06-10", Amount: 100.554},
		{Date: "2025-06-11", Amount: 100.558},
	}
	s := Summarize(rates, threeNights(t))
	assert.Equal(t, 201.11, s.TotalAmount)
	assert.Equal(t, 100.56, s.AveragePricePerNight)
}

func TestRoundCents(t *testing.T) {
	assert.Equal(t, 1.23, RoundCents(1.234))
	assert.Equal(t, 1.24, RoundCents(1.236))
	assert.Equal(t, 0.0, RoundCents(0))
}

func TestNightlyRateValidate(t *testing.T) {
	assert.NoError(t, NightlyRate{Date: "2025-06-10", Amount: 10}.Validate())
	assert.ErrorIs(t, NightlyRate{Date: "2025-06-10", Amount: -1}.Validate(), ErrNegativeAmount)
}
