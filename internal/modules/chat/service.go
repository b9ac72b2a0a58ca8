// README: Chat service: transcript assembly and model invocation.
package chat

import (
	"context"
	"log"
	"strings"

	"dreamtrip/internal/ai"
)

// fallbackReply substitutes for an empty model completion.
const fallbackReply = "I apologize, but I encountered an error. Please try again."

// History is the append-only conversation log the service depends on.
// Optional: when nil, turns are not recorded anywhere.
type History interface {
	Append(ctx context.Context, tripID string, turns ...Turn) error
}

// Service answers chat messages through the generative model.
type Service struct {
	model   ai.TextGenerator
	history History
}

// NewService wires a chat service. history may be nil.
func NewService(model ai.TextGenerator, history History) *Service {
	return &Service{model: model, history: history}
}

// Respond validates req, assembles the transcript and invokes the model once.
// An empty completion is replaced by a fixed apology; provider errors surface
// to the caller. The model is never retried.
func (s *Service) Respond(ctx context.Context, req Request) (string, error) {
	if strings.TrimSpace(req.Message) == "" {
		return "", ErrEmptyMessage
	}

	transcript := buildTranscript(req.History, req.Message)

	reply, err := s.model.GenerateText(ctx, transcript)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(reply) == "" {
		reply = fallbackReply
	}

	// Recording the exchange is best-effort; the reply ships regardless.
	if s.history != nil {
		turns := []Turn{
			{Role: RoleUser, Content: req.Message},
			{Role: RoleAssistant, Content: reply},
		}
		if err := s.history.Append(ctx, req.TripID, turns...); err != nil {
			log.Printf("chat: append history for trip %q: %v", req.TripID, err)
		}
	}

	return reply, nil
}
