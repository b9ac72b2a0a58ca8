package chat

import "strings"

// systemPrompt is the fixed instruction that opens every transcript.
const systemPrompt = `You are an expert AI travel assistant for AI DreamTrip. Your role is to help users plan amazing trips by:
1. Understanding their preferences, budget, and travel style
2. Suggesting destinations, activities, and experiences
3. Creating detailed itineraries with timing and logistics
4. Adapting plans based on weather, delays, or user feedback
5. Providing local insights and hidden gems

Be conversational, enthusiastic, and helpful. Ask clarifying questions when needed. Provide specific recommendations with details like timing, costs, and locations.`

// buildTranscript renders the full linear conversation sent to the model: the
// system prompt, every prior turn in original order, the new user message, and
// a trailing assistant cue. This is the entire conversational memory; there is
// no summarization or token-budget management.
func buildTranscript(history []Turn, message string) string {
	var b strings.Builder
	b.WriteString(systemPrompt)
	b.WriteString("\n\n")
	for _, turn := range history {
		if turn.Role == RoleUser {
			b.WriteString("User: ")
		} else {
			b.WriteString("Assistant: ")
		}
		b.WriteString(turn.Content)
		b.WriteString("\n")
	}
	b.WriteString("User: ")
	b.WriteString(message)
	b.WriteString("\nAssistant:")
	return b.String()
}
