// README: Trip planning endpoint handler.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dreamtrip/internal/modules/trip"
)

// planTimeout bounds one model round-trip for itinerary generation; full
// multi-day itineraries take noticeably longer than chat replies.
const planTimeout = 90 * time.Second

type TripHandler struct {
	trips *trip.Service
}

func NewTripHandler(svc *trip.Service) *TripHandler {
	return &TripHandler{trips: svc}
}

// planResponse is the success envelope of POST /api/plan-trip.
type planResponse struct {
	Success   bool            `json:"success"`
	Trip      *trip.Trip      `json:"trip"`
	Itinerary *trip.Itinerary `json:"itinerary"`
	Message   string          `json:"message"`
}

// Plan handles POST /api/plan-trip.
func (h *TripHandler) Plan(c *gin.Context) {
	var req trip.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), planTimeout)
	defer cancel()

	t, it, err := h.trips.Plan(ctx, req)
	if err != nil {
		writeFailure(c, err)
		return
	}

	c.JSON(http.StatusOK, planResponse{
		Success:   true,
		Trip:      t,
		Itinerary: it,
		Message:   "Itinerary created successfully!",
	})
}

// Get handles GET /api/trips/:id (requires a configured store).
func (h *TripHandler) Get(c *gin.Context) {
	t, err := h.trips.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "trip": t})
}
