package availability

import (
	"time"

	"premiere/internal/domain/pricing"
)

const BlockReasonStayDisallowed = "stay_disallowed"

// Block is a contiguous run of nights on which no stay may occur.
// The interval is half-open: the night of End is not part of the block.
type Block struct {
	Start  time.Time
	End    time.Time
	Reason string
}

// Calendar is the availability view of one property over a queried window.
type Calendar struct {
	PropertyID string
	Blocks     []Block
}

// BlocksFromRates folds the nightly-rate feed into merged blocked ranges.
// Consecutive stay-disallowed nights collapse into a single block.
func BlocksFromRates(rates []pricing.NightlyRate) []Block {
	var blocks []Block
	var open *Block
	for _, night := range rates {
		day, err := time.Parse("2006-01-02", night.Date)
		if err != nil {
			continue
		}
		if !night.IsStayDisallowed {
			open = nil
			continue
		}
		next := day.AddDate(0, 0, 1)
		if open != nil && open.End.Equal(day) {
			open.End = next
			continue
		}
		blocks = append(blocks, Block{Start: day, End: next, Reason: BlockReasonStayDisallowed})
		open = &blocks[len(blocks)-1]
	}
	return blocks
}
