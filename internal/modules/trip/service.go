// README: Planner service: prompt, model call, JSON extraction, ID assignment.
package trip

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"dreamtrip/internal/ai"
)

// Storage is the persistence capability the planner depends on. The default
// deployment runs without one; a Postgres-backed Store can be plugged in
// without touching the planning logic.
type Storage interface {
	SaveTrip(ctx context.Context, t *Trip) error
	SaveItinerary(ctx context.Context, it *Itinerary) error
	GetTrip(ctx context.Context, id string) (*Trip, error)
}

// Geocoder resolves a free-text place query to coordinates. Optional: when nil
// the model's coordinates are passed through untouched.
type Geocoder interface {
	Locate(ctx context.Context, query string) (lat, lng float64, err error)
}

// CostCheck configures the opt-in validation of the model-reported totalCost
// against the itinerary's own cost breakdown.
type CostCheck struct {
	Enabled   bool
	Tolerance float64 // relative, e.g. 0.25 allows 25% drift
}

// Service generates itineraries through the generative model.
type Service struct {
	model     ai.TextGenerator
	store     Storage
	geocoder  Geocoder
	costCheck CostCheck
}

// NewService wires a planner. store and geocoder may be nil.
func NewService(model ai.TextGenerator, store Storage, geocoder Geocoder, costCheck CostCheck) *Service {
	return &Service{model: model, store: store, geocoder: geocoder, costCheck: costCheck}
}

// generatedItinerary is the model's payload before identifiers are assigned.
type generatedItinerary struct {
	Days           []DayPlan        `json:"days"`
	Accommodation  []Accommodation  `json:"accommodation"`
	Transportation []Transportation `json:"transportation"`
	TotalCost      float64          `json:"totalCost"`
}

// Plan validates req, renders the itinerary prompt, invokes the model once and
// assembles the Trip envelope around the parsed itinerary. Validation failures
// return before any model call; extraction or parse failures return
// ErrGeneration. The model is never retried.
func (s *Service) Plan(ctx context.Context, req PlanRequest) (*Trip, *Itinerary, error) {
	start, end, days, err := req.Validate()
	if err != nil {
		return nil, nil, err
	}

	prompt := rolePrefix + buildItineraryPrompt(req, days)

	raw, err := s.model.GenerateText(ctx, prompt)
	if err != nil {
		return nil, nil, err
	}

	span, err := ai.ExtractJSONObject(raw)
	if err != nil {
		log.Printf("plan: no JSON in model response: %v", err)
		return nil, nil, ErrGeneration
	}

	var gen generatedItinerary
	if err := json.Unmarshal([]byte(span), &gen); err != nil {
		log.Printf("plan: failed to parse model response: %v", err)
		return nil, nil, ErrGeneration
	}

	tripID := newTripID()
	it := &Itinerary{
		ID:             newItineraryID(),
		TripID:         tripID,
		Days:           gen.Days,
		Accommodation:  gen.Accommodation,
		Transportation: gen.Transportation,
		TotalCost:      gen.TotalCost,
	}
	assignIDs(it)

	if s.costCheck.Enabled {
		if err := it.CheckTotalCost(s.costCheck.Tolerance); err != nil {
			log.Printf("plan: totalCost %.0f drifts from breakdown %.0f", it.TotalCost, it.CostBreakdown())
			return nil, nil, err
		}
	}

	if s.geocoder != nil {
		s.enrichCoordinates(ctx, it, req.Destination)
	}

	now := time.Now()
	t := &Trip{
		ID:          tripID,
		UserID:      PlaceholderUserID,
		Destination: req.Destination,
		StartDate:   start,
		EndDate:     end,
		Budget:      req.Budget,
		Mood:        req.Mood,
		Status:      StatusPlanning,
		Itinerary:   it,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Persistence is best-effort: a storage failure must not discard a
	// successfully generated itinerary.
	if s.store != nil {
		if err := s.store.SaveTrip(ctx, t); err != nil {
			log.Printf("plan: save trip %s: %v", t.ID, err)
		} else if err := s.store.SaveItinerary(ctx, it); err != nil {
			log.Printf("plan: save itinerary %s: %v", it.ID, err)
		}
	}

	return t, it, nil
}

// Get loads a previously saved trip. Requires a configured store.
func (s *Service) Get(ctx context.Context, id string) (*Trip, error) {
	if s.store == nil {
		return nil, ErrNotFound
	}
	return s.store.GetTrip(ctx, id)
}

// enrichCoordinates geocodes any location whose coordinates the model left at
// the zero value. Failures are logged and skipped; the itinerary ships either way.
func (s *Service) enrichCoordinates(ctx context.Context, it *Itinerary, destination string) {
	locate := func(loc *Location) {
		if loc.Name == "" || loc.Coordinates.Lat != 0 || loc.Coordinates.Lng != 0 {
			return
		}
		lat, lng, err := s.geocoder.Locate(ctx, loc.Name+", "+destination)
		if err != nil {
			log.Printf("plan: geocode %q: %v", loc.Name, err)
			return
		}
		loc.Coordinates = Coordinates{Lat: lat, Lng: lng}
	}

	for dayIdx := range it.Days {
		day := &it.Days[dayIdx]
		for i := range day.Activities {
			locate(&day.Activities[i].Location)
		}
		for i := range day.Meals {
			locate(&day.Meals[i].Location)
		}
	}
	for i := range it.Accommodation {
		locate(&it.Accommodation[i].Location)
	}
}
