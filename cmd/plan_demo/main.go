package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"dreamtrip/internal/ai"
	"dreamtrip/internal/modules/trip"
)

func main() {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}

	ctx := context.Background()
	provider, err := ai.NewGeminiProvider(ctx, apiKey)
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	defer provider.Close()

	svc := trip.NewService(provider, nil, nil, trip.CostCheck{})

	req := trip.PlanRequest{
		Destination: "Jaipur",
		StartDate:   "2025-11-10",
		EndDate:     "2025-11-13",
		Budget:      60000,
		Travelers:   2,
		Mood:        "adventure",
		Preferences: &trip.Preferences{
			Pace:      "moderate",
			Interests: []string{"history", "food"},
		},
	}
	fmt.Printf("Planning %s, %s to %s...\n", req.Destination, req.StartDate, req.EndDate)

	t, it, err := svc.Plan(ctx, req)
	if err != nil {
		log.Fatalf("Error planning trip: %v", err)
	}

	fmt.Printf("Trip %s (%s), itinerary %s, %d day(s), total ₹%.0f\n",
		t.ID, t.Status, it.ID, len(it.Days), it.TotalCost)

	out, err := json.MarshalIndent(it, "", "  ")
	if err != nil {
		log.Fatalf("Error rendering itinerary: %v", err)
	}
	fmt.Println(string(out))
}
