package properties

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParams() CreateParams {
	return CreateParams{
		ID:         "prop-1",
		Name:       "Seaside Cottage",
		MaxGuests:  4,
		Bedrooms:   2,
		Bathrooms:  1,
		BaseRate:   180,
		ListingRef: "456789",
		Now:        time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestNewPropertyRecordsCreatedEvent(t *testing.T) {
	p, err := New(validParams())
	require.NoError(t, err)

	assert.True(t, p.Active)
	assert.Equal(t, "Seaside Cottage", p.Name)
	events := p.PendingEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "property.created", events[0].EventName())
}

func TestNewPropertyValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateParams)
		want   error
	}{
		{"blank name", func(p *CreateParams) { p.Name = "  " }, ErrNameRequired},
		{"zero guests", func(p *CreateParams) { p.MaxGuests = 0 }, ErrGuestsLimit},
		{"negative bedrooms", func(p *CreateParams) { p.Bedrooms = -1 }, ErrBedrooms},
		{"negative rate", func(p *CreateParams) { p.BaseRate = -0.01 }, ErrBaseRate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			params := validParams()
			tc.mutate(&params)
			_, err := New(params)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDeactivateIsIdempotent(t *testing.T) {
	p, err := New(validParams())
	require.NoError(t, err)
	p.ClearEvents()

	now := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	p.Deactivate(now)
	p.Deactivate(now.Add(time.Hour))

	assert.False(t, p.Active)
	assert.Equal(t, now, p.UpdatedAt)
	require.Len(t, p.PendingEvents(), 1)
	assert.Equal(t, "property.deactivated", p.PendingEvents()[0].EventName())
}
