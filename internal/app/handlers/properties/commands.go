package properties

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"premiere/internal/app/dto"
	"premiere/internal/app/outbox"
	domainproperties "premiere/internal/domain/properties"
)

type PropertyInput struct {
	Name        string
	Description string
	Address     domainproperties.Address
	Bedrooms    int
	Bathrooms   int
	MaxGuests   int
	Amenities   []string
	BaseRate    float64
	ListingRef  string
}

type CreatePropertyHandler struct {
	Repo    domainproperties.Repository
	Outbox  outbox.Outbox
	Encoder outbox.EventEncoder
	Logger  *slog.Logger
}

func (h *CreatePropertyHandler) Handle(ctx context.Context, input PropertyInput) (dto.Property, error) {
	var zero dto.Property
	now := time.Now().UTC()
	property, err := domainproperties.New(domainproperties.CreateParams{
		ID:          domainproperties.PropertyID(uuid.NewString()),
		Name:        input.Name,
		Description: input.Description,
		Address:     input.Address,
		Bedrooms:    input.Bedrooms,
		Bathrooms:   input.Bathrooms,
		MaxGuests:   input.MaxGuests,
		Amenities:   input.Amenities,
		BaseRate:    input.BaseRate,
		ListingRef:  input.ListingRef,
		Now:         now,
	})
	if err != nil {
		return zero, err
	}
	if err := h.Repo.Save(ctx, property); err != nil {
		return zero, err
	}
	if err := outbox.RecordDomainEvents(ctx, h.Outbox, h.Encoder, property.PendingEvents()); err != nil {
		return zero, err
	}
	property.ClearEvents()
	if h.Logger != nil {
		h.Logger.Info("property created", "property_id", property.ID)
	}
	return dto.MapProperty(property), nil
}

type UpdatePropertyHandler struct {
	Repo    domainproperties.Repository
	Outbox  outbox.Outbox
	Encoder outbox.EventEncoder
	Logger  *slog.Logger
}

func (h *UpdatePropertyHandler) Handle(ctx context.Context, id string, input PropertyInput) (dto.Property, error) {
	var zero dto.Property
	property, err := h.Repo.ByID(ctx, domainproperties.PropertyID(id))
	if err != nil {
		return zero, err
	}
	err = property.Update(domainproperties.UpdateParams{
		Name:        input.Name,
		Description: input.Description,
		Address:     input.Address,
		Bedrooms:    input.Bedrooms,
		Bathrooms:   input.Bathrooms,
		MaxGuests:   input.MaxGuests,
		Amenities:   input.Amenities,
		BaseRate:    input.BaseRate,
		ListingRef:  input.ListingRef,
		Now:         time.Now().UTC(),
	})
	if err != nil {
		return zero, err
	}
	if err := h.Repo.Save(ctx, property); err != nil {
		return zero, err
	}
	if err := outbox.RecordDomainEvents(ctx, h.Outbox, h.Encoder, property.PendingEvents()); err != nil {
		return zero, err
	}
	property.ClearEvents()
	return dto.MapProperty(property), nil
}

type DeletePropertyHandler struct {
	Repo    domainproperties.Repository
	Outbox  outbox.Outbox
	Encoder outbox.EventEncoder
	Logger  *slog.Logger
}

func (h *DeletePropertyHandler) Handle(ctx context.Context, id string) error {
	property, err := h.Repo.ByID(ctx, domainproperties.PropertyID(id))
	if err != nil {
		return err
	}
	property.Deactivate(time.Now().UTC())
	if err := h.Repo.Delete(ctx, property.ID); err != nil {
		return err
	}
	if err := outbox.RecordDomainEvents(ctx, h.Outbox, h.Encoder, property.PendingEvents()); err != nil {
		return err
	}
	property.ClearEvents()
	if h.Logger != nil {
		h.Logger.Info("property deleted", "property_id", property.ID)
	}
	return nil
}
