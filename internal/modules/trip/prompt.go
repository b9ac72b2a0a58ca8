package trip

import (
	"fmt"
	"strings"
)

// rolePrefix frames the model before the itinerary instruction proper.
const rolePrefix = "You are an expert travel planner. Create detailed, realistic itineraries in valid JSON format.\n\n"

// itineraryExampleJSON is the literal target structure embedded in every prompt.
// The model is expected to mirror this shape exactly.
const itineraryExampleJSON = `{
  "days": [
    {
      "day": 1,
      "date": "YYYY-MM-DD",
      "activities": [
        {
          "name": "Activity name",
          "description": "Brief description",
          "location": {
            "name": "Location name",
            "address": "Full address",
            "coordinates": { "lat": 0, "lng": 0 }
          },
          "startTime": "HH:MM",
          "endTime": "HH:MM",
          "duration": 120,
          "cost": 2000,
          "category": "attraction",
          "bookingRequired": false
        }
      ],
      "meals": [
        {
          "name": "Restaurant name",
          "type": "lunch",
          "location": { "name": "Location", "address": "Address", "coordinates": { "lat": 0, "lng": 0 } },
          "time": "HH:MM",
          "estimatedCost": 1500,
          "cuisine": "Local"
        }
      ],
      "notes": "Any important notes for the day"
    }
  ],
  "accommodation": [
    {
      "name": "Hotel name",
      "type": "hotel",
      "location": { "name": "Location", "address": "Address", "coordinates": { "lat": 0, "lng": 0 } },
      "checkIn": "YYYY-MM-DD",
      "checkOut": "YYYY-MM-DD",
      "costPerNight": 8000,
      "totalCost": 24000,
      "amenities": ["WiFi", "Breakfast"],
      "rating": 4.5
    }
  ],
  "transportation": [
    {
      "type": "flight",
      "from": { "name": "Origin", "address": "", "coordinates": { "lat": 0, "lng": 0 } },
      "to": { "name": "Destination", "address": "", "coordinates": { "lat": 0, "lng": 0 } },
      "departureTime": "YYYY-MM-DDTHH:MM:SS",
      "arrivalTime": "YYYY-MM-DDTHH:MM:SS",
      "cost": 25000
    }
  ],
  "totalCost": 100000
}`

// buildItineraryPrompt renders the full planning instruction for one trip request.
// days must already be validated (>= 1).
func buildItineraryPrompt(req PlanRequest, days int) string {
	interests := "General sightseeing"
	pace := "moderate"
	if req.Preferences != nil {
		if len(req.Preferences.Interests) > 0 {
			interests = strings.Join(req.Preferences.Interests, ", ")
		}
		if req.Preferences.Pace != "" {
			pace = req.Preferences.Pace
		}
	}

	return fmt.Sprintf(`Create a detailed %d-day travel itinerary for %s.

Trip Details:
- Dates: %s to %s
- Budget: ₹%.0f INR (Indian Rupees)
- Travelers: %d
- Mood: %s
- Interests: %s
- Pace: %s

Please provide a comprehensive itinerary in JSON format with the following structure:
%s

IMPORTANT: All costs must be in Indian Rupees (INR). Use realistic INR pricing for Indian destinations.

Ensure the itinerary:
1. Stays within the budget (in INR)
2. Matches the selected mood and interests
3. Includes realistic timing and logistics
4. Suggests local hidden gems
5. Provides variety in activities
6. Includes breakfast, lunch, and dinner recommendations`,
		days, req.Destination,
		req.StartDate, req.EndDate,
		req.Budget,
		req.Travelers,
		req.Mood,
		interests,
		pace,
		itineraryExampleJSON,
	)
}
