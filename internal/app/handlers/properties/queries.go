package properties

import (
	"context"

	"premiere/internal/app/dto"
	domainproperties "premiere/internal/domain/properties"
)

type GetPropertyHandler struct {
	Repo domainproperties.Repository
}

func (h *GetPropertyHandler) Handle(ctx context.Context, id string) (dto.Property, error) {
	property, err := h.Repo.ByID(ctx, domainproperties.PropertyID(id))
	if err != nil {
		return dto.Property{}, err
	}
	return dto.MapProperty(property), nil
}

type ListPropertiesHandler struct {
	Repo domainproperties.Repository
}

func (h *ListPropertiesHandler) Handle(ctx context.Context, limit, offset int) (dto.PropertyCollection, error) {
	if limit <= 0 {
		limit = 24
	}
	list, err := h.Repo.List(ctx, limit, offset)
	if err != nil {
		return dto.PropertyCollection{}, err
	}
	out := dto.PropertyCollection{
		Properties: make([]dto.Property, 0, len(list)),
		Limit:      limit,
		Offset:     offset,
	}
	for _, p := range list {
		out.Properties = append(out.Properties, dto.MapProperty(p))
	}
	return out, nil
}
