package ginserver

import (
	"log/slog"
	"net/http"

	gin "github.com/gin-gonic/gin"

	reviewsapp "premiere/internal/app/handlers/reviews"
)

type ReviewHandler struct {
	Submitter *reviewsapp.SubmitReviewHandler
	Lister    *reviewsapp.ListReviewsHandler
	Logger    *slog.Logger
}

type submitReviewRequest struct {
	GuestName string `json:"guestName"`
	Rating    int    `json:"rating"`
	Text      string `json:"text"`
}

func (h ReviewHandler) Submit(c *gin.Context) {
	if h.Submitter == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "review handler unavailable"})
		return
	}
	propertyID := c.Param("id")
	if propertyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "property id is required"})
		return
	}
	var req submitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	review, err := h.Submitter.Handle(c.Request.Context(), reviewsapp.SubmitReviewInput{
		PropertyID: propertyID,
		GuestName:  req.GuestName,
		Rating:     req.Rating,
		Text:       req.Text,
	})
	if err != nil {
		status := statusForReviewError(err)
		if h.Logger != nil {
			h.Logger.Warn("review submit failed", "status", status, "error", err)
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h ReviewHandler) ListByProperty(c *gin.Context) {
	if h.Lister == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "review handler unavailable"})
		return
	}
	propertyID := c.Param("id")
	if propertyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "property id is required"})
		return
	}
	limit := parsePositiveInt(c.Query("limit"), 20)
	offset := parsePositiveInt(c.Query("offset"), 0)
	result, err := h.Lister.Handle(c.Request.Context(), propertyID, limit, offset)
	if err != nil {
		c.JSON(statusForReviewError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

var _ ReviewHTTP = ReviewHandler{}
