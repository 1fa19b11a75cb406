package properties

import (
	"context"
	"errors"
	"strings"
	"time"

	"premiere/internal/domain/shared/events"
)

var (
	ErrNotFound      = errors.New("properties: not found")
	ErrNameRequired  = errors.New("properties: name is required")
	ErrGuestsLimit   = errors.New("properties: max guests must be at least 1")
	ErrBedrooms      = errors.New("properties: bedrooms cannot be negative")
	ErrBathrooms     = errors.New("properties: bathrooms cannot be negative")
	ErrBaseRate      = errors.New("properties: base nightly rate cannot be negative")
	ErrAlreadyActive = errors.New("properties: already active")
)

type PropertyID string

type Address struct {
	Line1   string
	City    string
	State   string
	Country string
	Zip     string
}

// Property is one rental unit managed through the dashboard. ListingRef ties it
// to the upstream rate feed's listing so pricing lookups can be proxied.
type Property struct {
	ID          PropertyID
	Name        string
	Description string
	Address     Address
	Bedrooms    int
	Bathrooms   int
	MaxGuests   int
	Amenities   []string
	BaseRate    float64
	ListingRef  string
	Active      bool
	Version     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	events.Recorder
}

type Repository interface {
	ByID(ctx context.Context, id PropertyID) (*Property, error)
	List(ctx context.Context, limit, offset int) ([]*Property, error)
	Save(ctx context.Context, p *Property) error
	Delete(ctx context.Context, id PropertyID) error
}

type CreateParams struct {
	ID          PropertyID
	Name        string
	Description string
	Address     Address
	Bedrooms    int
	Bathrooms   int
	MaxGuests   int
	Amenities   []string
	BaseRate    float64
	ListingRef  string
	Now         time.Time
}

func New(params CreateParams) (*Property, error) {
	if strings.TrimSpace(string(params.ID)) == "" {
		return nil, errors.New("properties: id is required")
	}
	if strings.TrimSpace(params.Name) == "" {
		return nil, ErrNameRequired
	}
	if params.MaxGuests < 1 {
		return nil, ErrGuestsLimit
	}
	if params.Bedrooms < 0 {
		return nil, ErrBedrooms
	}
	if params.Bathrooms < 0 {
		return nil, ErrBathrooms
	}
	if params.BaseRate < 0 {
		return nil, ErrBaseRate
	}

	p := &Property{
		ID:          params.ID,
		Name:        strings.TrimSpace(params.Name),
		Description: strings.TrimSpace(params.Description),
		Address:     params.Address,
		Bedrooms:    params.Bedrooms,
		Bathrooms:   params.Bathrooms,
		MaxGuests:   params.MaxGuests,
		Amenities:   append([]string(nil), params.Amenities...),
		BaseRate:    params.BaseRate,
		ListingRef:  strings.TrimSpace(params.ListingRef),
		Active:      true,
		CreatedAt:   params.Now.UTC(),
		UpdatedAt:   params.Now.UTC(),
	}
	p.Record(PropertyCreated{PropertyID: p.ID, Name: p.Name, At: p.CreatedAt})
	return p, nil
}

type UpdateParams struct {
	Name        string
	Description string
	Address     Address
	Bedrooms    int
	Bathrooms   int
	MaxGuests   int
	Amenities   []string
	BaseRate    float64
	ListingRef  string
	Now         time.Time
}

func (p *Property) Update(params UpdateParams) error {
	if strings.TrimSpace(params.Name) == "" {
		return ErrNameRequired
	}
	if params.MaxGuests < 1 {
		return ErrGuestsLimit
	}
	if params.BaseRate < 0 {
		return ErrBaseRate
	}
	p.Name = strings.TrimSpace(params.Name)
	p.Description = strings.TrimSpace(params.Description)
	p.Address = params.Address
	p.Bedrooms = params.Bedrooms
	p.Bathrooms = params.Bathrooms
	p.MaxGuests = params.MaxGuests
	p.Amenities = append([]string(nil), params.Amenities...)
	p.BaseRate = params.BaseRate
	p.ListingRef = strings.TrimSpace(params.ListingRef)
	p.UpdatedAt = params.Now.UTC()
	p.Record(PropertyUpdated{PropertyID: p.ID, At: p.UpdatedAt})
	return nil
}

func (p *Property) Deactivate(now time.Time) {
	if !p.Active {
		return
	}
	p.Active = false
	p.UpdatedAt = now.UTC()
	p.Record(PropertyDeactivated{PropertyID: p.ID, At: p.UpdatedAt})
}
