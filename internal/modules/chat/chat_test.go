// README: Chat service tests (transcript assembly, fallback reply).
package chat

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type stubGenerator struct {
	reply string
	err   error
	calls int
	last  string
}

func (s *stubGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	s.calls++
	s.last = prompt
	return s.reply, s.err
}

func TestTranscriptEmptyHistory(t *testing.T) {
	got := buildTranscript(nil, "Plan me a weekend in Goa")
	want := systemPrompt + "\n\nUser: Plan me a weekend in Goa\nAssistant:"
	if got != want {
		t.Errorf("transcript mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestTranscriptWithHistory(t *testing.T) {
	history := []Turn{
		{Role: RoleUser, Content: "I want to visit Kerala"},
		{Role: RoleAssistant, Content: "Great choice! When are you travelling?"},
		{Role: RoleUser, Content: "In December"},
	}
	got := buildTranscript(history, "What about the budget?")

	if !strings.HasPrefix(got, systemPrompt+"\n\n") {
		t.Fatal("transcript does not open with the system prompt")
	}
	if !strings.HasSuffix(got, "User: What about the budget?\nAssistant:") {
		t.Fatal("transcript does not end with the new message and assistant cue")
	}

	// All turns, in original order, with role prefixes.
	idx := func(s string) int { return strings.Index(got, s) }
	turns := []string{
		"User: I want to visit Kerala",
		"Assistant: Great choice! When are you travelling?",
		"User: In December",
		"User: What about the budget?",
	}
	prev := -1
	for _, turn := range turns {
		i := idx(turn)
		if i < 0 {
			t.Fatalf("transcript missing %q", turn)
		}
		if i < prev {
			t.Fatalf("turn %q out of order", turn)
		}
		prev = i
	}
}

func TestRespondEmptyMessageMakesNoModelCall(t *testing.T) {
	for _, msg := range []string{"", "   ", "\n"} {
		gen := &stubGenerator{reply: "hi"}
		svc := NewService(gen, nil)
		_, err := svc.Respond(context.Background(), Request{Message: msg})
		if !errors.Is(err, ErrEmptyMessage) {
			t.Errorf("message %q: err = %v, want ErrEmptyMessage", msg, err)
		}
		if gen.calls != 0 {
			t.Errorf("message %q: model called on invalid input", msg)
		}
	}
}

func TestRespondReturnsModelReply(t *testing.T) {
	gen := &stubGenerator{reply: "Udaipur is lovely in winter."}
	svc := NewService(gen, nil)

	reply, err := svc.Respond(context.Background(), Request{Message: "Where should I go in January?"})
	if err != nil {
		t.Fatalf("respond: %v", err)
	}
	if reply != "Udaipur is lovely in winter." {
		t.Errorf("reply = %q", reply)
	}
	if gen.calls != 1 {
		t.Errorf("model called %d times, want 1", gen.calls)
	}
}

func TestRespondEmptyReplyFallsBackToApology(t *testing.T) {
	gen := &stubGenerator{reply: "  "}
	svc := NewService(gen, nil)

	reply, err := svc.Respond(context.Background(), Request{Message: "hello"})
	if err != nil {
		t.Fatalf("respond: %v", err)
	}
	if reply != fallbackReply {
		t.Errorf("reply = %q, want fallback apology", reply)
	}
}

func TestRespondModelErrorSurfaces(t *testing.T) {
	boom := errors.New("upstream down")
	svc := NewService(&stubGenerator{err: boom}, nil)
	_, err := svc.Respond(context.Background(), Request{Message: "hello"})
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want upstream error", err)
	}
}

// recordingHistory captures appended turns.
type recordingHistory struct {
	tripID string
	turns  []Turn
	err    error
}

func (r *recordingHistory) Append(_ context.Context, tripID string, turns ...Turn) error {
	if r.err != nil {
		return r.err
	}
	r.tripID = tripID
	r.turns = append(r.turns, turns...)
	return nil
}

func TestRespondRecordsBothTurns(t *testing.T) {
	hist := &recordingHistory{}
	svc := NewService(&stubGenerator{reply: "Sure!"}, hist)

	if _, err := svc.Respond(context.Background(), Request{Message: "hi", TripID: "trip_1"}); err != nil {
		t.Fatalf("respond: %v", err)
	}
	if hist.tripID != "trip_1" {
		t.Errorf("tripID = %q", hist.tripID)
	}
	if len(hist.turns) != 2 || hist.turns[0].Role != RoleUser || hist.turns[1].Role != RoleAssistant {
		t.Fatalf("recorded turns: %+v", hist.turns)
	}
	if hist.turns[1].Content != "Sure!" {
		t.Errorf("assistant turn content = %q", hist.turns[1].Content)
	}
}

func TestRespondHistoryFailureIsNotFatal(t *testing.T) {
	hist := &recordingHistory{err: errors.New("redis down")}
	svc := NewService(&stubGenerator{reply: "Sure!"}, hist)

	reply, err := svc.Respond(context.Background(), Request{Message: "hi"})
	if err != nil {
		t.Fatalf("history failure surfaced: %v", err)
	}
	if reply != "Sure!" {
		t.Errorf("reply = %q", reply)
	}
}
