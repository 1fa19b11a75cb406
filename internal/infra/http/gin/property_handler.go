package ginserver

import (
	"net/http"
	"strconv"
	"strings"

	gin "github.com/gin-gonic/gin"

	propertiesapp "premiere/internal/app/handlers/properties"
	domainproperties "premiere/internal/domain/properties"
)

type PropertyHandler struct {
	Creator *propertiesapp.CreatePropertyHandler
	Updater *propertiesapp.UpdatePropertyHandler
	Deleter *propertiesapp.DeletePropertyHandler
	Getter    *propertiesapp.GetPropertyHandler
	Lister   *propertiesapp.ListPropertiesHandler
}

type propertyRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Line1       string   `json:"line1"`
	City        string   `json:"city"`
	State       string   `json:"state"`
	Country     string   `json:"country"`
	Zip         string   `json:"zip"`
	Bedrooms    int      `json:"bedrooms"`
	Bathrooms   int      `json:"bathrooms"`
	MaxGuests   int      `json:"maxGuests"`
	Amenities   []string `json:"amenities"`
	BaseRate    float64  `json:"baseRate"`
	ListingRef  string   `json:"listingRef"`
}

func (r propertyRequest) toInput() propertiesapp.PropertyInput {
	return propertiesapp.PropertyInput{
		Name:        r.Name,
		Description: r.Description,
		Address: domainproperties.Address{
			Line1:   r.Line1,
			City:    r.City,
			State:   r.State,
			Country: r.Country,
			Zip:     r.Zip,
		},
		Bedrooms:   r.Bedrooms,
		Bathrooms:  r.Bathrooms,
		MaxGuests:  r.MaxGuests,
		Amenities:  r.Amenities,
		BaseRate:   r.BaseRate,
		ListingRef: r.ListingRef,
	}
}

func (h PropertyHandler) Create(c *gin.Context) {
	if h.Creator == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "property handler unavailable"})
		return
	}
	var req propertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := h.Creator.Handle(c.Request.Context(), req.toInput())
	if err != nil {
		c.JSON(statusForPropertyError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h PropertyHandler) Update(c *gin.Context) {
	if h.Updater == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "property handler unavailable"})
		return
	}
	id := c.Param("id")
	var req propertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := h.Updater.Handle(c.Request.Context(), id, req.toInput())
	if err != nil {
		c.JSON(statusForPropertyError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h PropertyHandler) Delete(c *gin.Context) {
	if h.Deleter == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "property handler unavailable"})
		return
	}
	if err := h.Deleter.Handle(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(statusForPropertyError(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h PropertyHandler) Get(c *gin.Context) {
	if h.Getter == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "property handler unavailable"})
		return
	}
	result, err := h.Getter.Handle(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusForPropertyError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h PropertyHandler) List(c *gin.Context) {
	if h.Lister == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "property handler unavailable"})
		return
	}
	limit := parsePositiveInt(c.Query("limit"), 24)
	offset := parsePositiveInt(c.Query("offset"), 0)
	result, err := h.Lister.Handle(c.Request.Context(), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func parsePositiveInt(raw string, fallback int) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value < 0 {
		return fallback
	}
	if value == 0 && fallback != 0 {
		return fallback
	}
	return value
}

var _ PropertyHTTP = PropertyHandler{}
