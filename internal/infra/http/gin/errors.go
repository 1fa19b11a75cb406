package ginserver

import (
	"errors"
	"net/http"

	"premiere/internal/domain/properties"
	"premiere/internal/domain/reviews"
	"premiere/internal/domain/shared/stayrange"
	"premiere/internal/infra/ownerrez"
)

func statusForPricingError(err error) int {
	switch {
	case errors.Is(err, stayrange.ErrInvalidDate),
		errors.Is(err, stayrange.ErrInvalidOrder),
		errors.Is(err, stayrange.ErrTooFarOut):
		return http.StatusBadRequest
	case errors.Is(err, properties.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ownerrez.ErrCredentialsMissing):
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}

func statusForPropertyError(err error) int {
	switch {
	case errors.Is(err, properties.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, properties.ErrNameRequired),
		errors.Is(err, properties.ErrGuestsLimit),
		errors.Is(err, properties.ErrBedrooms),
		errors.Is(err, properties.ErrBathrooms),
		errors.Is(err, properties.ErrBaseRate):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func statusForReviewError(err error) int {
	switch {
	case errors.Is(err, reviews.ErrInvalidRating), errors.Is(err, reviews.ErrEmptyText):
		return http.StatusBadRequest
	case errors.Is(err, properties.ErrNotFound), errors.Is(err, reviews.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
