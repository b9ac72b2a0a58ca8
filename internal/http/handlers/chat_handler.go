// README: Chat endpoint handler (travel-assistant conversation).
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dreamtrip/internal/modules/chat"
	"dreamtrip/internal/modules/trip"
)

// chatTimeout bounds one model round-trip for a chat message.
const chatTimeout = 30 * time.Second

type ChatHandler struct {
	chat    *chat.Service
	history *chat.Store
}

// NewChatHandler wires the chat endpoints. history may be nil when no
// conversation store is configured.
func NewChatHandler(svc *chat.Service, history *chat.Store) *ChatHandler {
	return &ChatHandler{chat: svc, history: history}
}

// chatResponse is the success envelope of POST /api/chat. Suggestions and
// UpdatedItinerary are declared extension points that are never populated yet.
type chatResponse struct {
	Success          bool            `json:"success"`
	Message          string          `json:"message"`
	Suggestions      []string        `json:"suggestions"`
	UpdatedItinerary *trip.Itinerary `json:"updatedItinerary"`
}

// Send handles POST /api/chat.
func (h *ChatHandler) Send(c *gin.Context) {
	var req chat.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), chatTimeout)
	defer cancel()

	reply, err := h.chat.Respond(ctx, req)
	if err != nil {
		writeFailure(c, err)
		return
	}

	c.JSON(http.StatusOK, chatResponse{
		Success:          true,
		Message:          reply,
		Suggestions:      []string{},
		UpdatedItinerary: nil,
	})
}

// History handles GET /api/trips/:id/chat, returning the recorded conversation.
func (h *ChatHandler) History(c *gin.Context) {
	if h.history == nil {
		writeError(c, http.StatusNotFound, "Chat history is not available")
		return
	}

	turns, err := h.history.Load(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeFailure(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "history": turns})
}
