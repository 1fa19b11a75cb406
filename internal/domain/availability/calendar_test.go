package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"premiere/internal/domain/pricing"
)

func TestBlocksFromRatesMergesConsecutiveNights(t *testing.T) {
	rates := []pricing.NightlyRate{
		{Date: "2025-07-01", Amount: 100},
		{Date: "2025-07-02", IsStayDisallowed: true},
		{Date: "2025-07-03", IsStayDisallowed: true},
		{Date: "2025-07-04", Amount: 110},
		{Date: "2025-07-05", IsStayDisallowed: true},
	}
	blocks := BlocksFromRates(rates)
	require.Len(t, blocks, 2)

	assert.Equal(t, time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC), blocks[0].Start)
	assert.Equal(t, time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC), blocks[0].End)
	assert.Equal(t, BlockReasonStayDisallowed, blocks[0].Reason)

	assert.Equal(t, time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC), blocks[1].Start)
	assert.Equal(t, time.Date(2025, 7, 6, 0, 0, 0, 0, time.UTC), blocks[1].End)
}

func TestBlocksFromRatesAllAvailable(t *testing.T) {
	rates := []pricing.NightlyRate{
		{Date: "2025-07-01", Amount: 100},
		{Date: "2025-07-02", Amount: 100},
	}
	assert.Empty(t, BlocksFromRates(rates))
}

func TestBlocksFromRatesSkipsUnparseableDates(t *testing.T) {
	rates := []pricing.NightlyRate{
		{Date: "bogus", IsStayDisallowed: true},
		{Date: "2025-07-02", IsStayDisallowed: true},
	}
	blocks := BlocksFromRates(rates)
	require.Len(t, blocks, 1)
	assert.Equal(t, time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC), blocks[0].Start)
}
