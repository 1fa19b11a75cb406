package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	availabilityapp "premiere/internal/app/handlers/availability"
)

type AvailabilityHandler struct {
	Calendars *availabilityapp.GetCalendarHandler
}

func (h AvailabilityHandler) Calendar(c *gin.Context) {
	if h.Calendars == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": "availability handler unavailable"})
		return
	}
	propertyID := c.Param("id")
	result, err := h.Calendars.Handle(c.Request.Context(), propertyID, c.Query("start"), c.Query("end"))
	if err != nil {
		c.JSON(statusForPricingError(err), gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

var _ AvailabilityHTTP = AvailabilityHandler{}
