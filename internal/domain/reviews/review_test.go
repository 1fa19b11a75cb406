package reviews

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitRecordsEvent(t *testing.T) {
	review, err := Submit(SubmitParams{
		ID:         "rev-1",
		PropertyID: "prop-1",
		GuestName:  "  Dana  ",
		Rating:     5,
		Text:       " lovely stay ",
		Now:        time.Date(2025, 5, 2, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, "Dana", review.GuestName)
	assert.Equal(t, "lovely stay", review.Text)
	events := review.PendingEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "review.submitted", events[0].EventName())
	assert.Equal(t, "rev-1", events[0].AggregateID())
}

func TestSubmitRejectsBadInput(t *testing.T) {
	_, err := Submit(SubmitParams{ID: "rev-2", PropertyID: "prop-1", Rating: 0, Text: "fine"})
	assert.ErrorIs(t, err, ErrInvalidRating)

	_, err = Submit(SubmitParams{ID: "rev-3", PropertyID: "prop-1", Rating: 6, Text: "fine"})
	assert.ErrorIs(t, err, ErrInvalidRating)

	_, err = Submit(SubmitParams{ID: "rev-4", PropertyID: "prop-1", Rating: 3, Text: "   "})
	assert.ErrorIs(t, err, ErrEmptyText)
}
