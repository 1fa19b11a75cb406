package ginserver

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"premiere/internal/app/dto"
	pricingapp "premiere/internal/app/handlers/pricing"
)

// maxBulkProperties bounds fan-out toward the upstream rate API per request.
const maxBulkProperties = 50

type PricingHandler struct {
	Batch  *pricingapp.BatchQuoteHandler
	Quote  *pricingapp.PropertyQuoteHandler
	Logger *slog.Logger
}

type bulkPricingRequest struct {
	Properties []bulkPricingEntry `json:"properties"`
}

type bulkPricingEntry struct {
	ID    flexibleID `json:"id"`
	Start string     `json:"start"`
	End   string     `json:"end"`
}

// flexibleID tolerates clients sending property ids as either JSON strings or
// numbers; both appear in the wild.
type flexibleID string

func (f *flexibleID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexibleID(n.String())
		return nil
	}
	return fmt.Errorf("property id must be a string or a number")
}

// BulkQuote handles POST /api/v1/pricing/bulk. The response is 200 whenever
// the request shape is valid; callers inspect each result's success flag for
// per-property outcomes.
func (h PricingHandler) BulkQuote(c *gin.Context) {
	if h.Batch == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": "pricing handler unavailable"})
		return
	}

	var req bulkPricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body: " + err.Error()})
		return
	}
	if len(req.Properties) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "properties must be a non-empty array"})
		return
	}
	if len(req.Properties) > maxBulkProperties {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   fmt.Sprintf("properties list exceeds the %d-item limit", maxBulkProperties),
		})
		return
	}

	requests := make([]pricingapp.PropertyQuoteRequest, 0, len(req.Properties))
	for _, entry := range req.Properties {
		requests = append(requests, pricingapp.PropertyQuoteRequest{
			PropertyID: string(entry.ID),
			Start:      entry.Start,
			End:        entry.End,
		})
	}

	response, err := h.runBatch(c, requests)
	if err != nil {
		if h.Logger != nil {
			h.Logger.Error("bulk pricing orchestration failed", "error", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "failed to process bulk pricing request",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, response)
}

// runBatch isolates orchestration failures from per-property ones: anything
// escaping the aggregator itself becomes the endpoint's 500, never a partial
// response.
func (h PricingHandler) runBatch(c *gin.Context, requests []pricingapp.PropertyQuoteRequest) (response dto.BatchPricingResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("orchestration panic: %v", r)
		}
	}()
	return h.Batch.Handle(c.Request.Context(), requests), nil
}

// PropertyQuote handles GET /api/v1/properties/:id/pricing.
func (h PricingHandler) PropertyQuote(c *gin.Context) {
	if h.Quote == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": "pricing handler unavailable"})
		return
	}
	propertyID := c.Param("id")
	if propertyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "property id is required"})
		return
	}
	quote, err := h.Quote.Handle(c.Request.Context(), propertyID, c.Query("start"), c.Query("end"))
	if err != nil {
		status := statusForPricingError(err)
		c.JSON(status, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "quote": quote})
}

var _ PricingHTTP = PricingHandler{}
