package dto

import (
	"time"

	"premiere/internal/domain/properties"
)

type PropertyAddress struct {
	Line1   string `json:"line1"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	Zip     string `json:"zip"`
}

type Property struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Address     PropertyAddress `json:"address"`
	Bedrooms    int             `json:"bedrooms"`
	Bathrooms   int             `json:"bathrooms"`
	MaxGuests   int             `json:"maxGuests"`
	Amenities   []string        `json:"amenities"`
	BaseRate    float64         `json:"baseRate"`
	ListingRef  string          `json:"listingRef,omitempty"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type PropertyCollection struct {
	Properties []Property `json:"properties"`
	Limit      int        `json:"limit"`
	Offset     int        `json:"offset"`
}

func MapProperty(p *properties.Property) Property {
	if p == nil {
		return Property{}
	}
	return Property{
		ID:          string(p.ID),
		Name:        p.Name,
		Description: p.Description,
		Address: PropertyAddress{
			Line1:   p.Address.Line1,
			City:    p.Address.City,
			State:   p.Address.State,
			Country: p.Address.Country,
			Zip:     p.Address.Zip,
		},
		Bedrooms:   p.Bedrooms,
		Bathrooms:  p.Bathrooms,
		MaxGuests:  p.MaxGuests,
		Amenities:  p.Amenities,
		BaseRate:   p.BaseRate,
		ListingRef: p.ListingRef,
		Active:     p.Active,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
