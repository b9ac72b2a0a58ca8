// README: Base handler utilities (envelope helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"dreamtrip/internal/modules/chat"
	"dreamtrip/internal/modules/trip"
)

// errorEnvelope is the uniform failure shape of every endpoint.
type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func writeError(c *gin.Context, status int, msg string) {
	c.JSON(status, errorEnvelope{Success: false, Error: msg})
}

// writeFailure maps domain sentinels to HTTP statuses. Unrecognised errors are
// surfaced as 500 with their message, per the original API behavior.
func writeFailure(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage),
		errors.Is(err, trip.ErrMissingFields),
		errors.Is(err, trip.ErrDateOrder):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, trip.ErrNotFound):
		writeError(c, http.StatusNotFound, "Trip not found")
	default:
		writeError(c, http.StatusInternalServerError, err.Error())
	}
}
