// README: Trip and itinerary records plus plan-request validation.
package trip

import (
	"errors"
	"math"
	"strings"
	"time"
)

type Status string

const (
	StatusPlanning  Status = "planning"
	StatusConfirmed Status = "confirmed"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
)

// PlaceholderUserID stands in for the authenticated user until real auth exists.
const PlaceholderUserID = "demo_user"

var (
	ErrMissingFields = errors.New("Missing required fields")
	ErrDateOrder     = errors.New("End date must be after start date")
	ErrGeneration    = errors.New("Failed to generate itinerary. Please try again.")
	ErrCostMismatch  = errors.New("itinerary total cost does not match its cost breakdown")
	ErrNotFound      = errors.New("trip not found")
)

// Coordinates is a lat/lng pair. Zero values mean the model did not know the
// real position; the optional geocoder fills those in.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Location struct {
	Name        string      `json:"name"`
	Address     string      `json:"address"`
	Coordinates Coordinates `json:"coordinates"`
	PlaceID     string      `json:"placeId,omitempty"`
}

type Activity struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Location        Location `json:"location"`
	StartTime       string   `json:"startTime"`
	EndTime         string   `json:"endTime"`
	Duration        int      `json:"duration"` // minutes
	Cost            float64  `json:"cost"`
	Category        string   `json:"category"` // attraction/experience/leisure/shopping/other
	BookingRequired bool     `json:"bookingRequired"`
	BookingURL      string   `json:"bookingUrl,omitempty"`
}

type Meal struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Type          string   `json:"type"` // breakfast/lunch/dinner/snack
	Location      Location `json:"location"`
	Time          string   `json:"time"`
	EstimatedCost float64  `json:"estimatedCost"`
	Cuisine       string   `json:"cuisine,omitempty"`
	DietaryInfo   []string `json:"dietaryInfo,omitempty"`
}

type Accommodation struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Type               string   `json:"type"` // hotel/hostel/airbnb/resort/other
	Location           Location `json:"location"`
	CheckIn            string   `json:"checkIn"`
	CheckOut           string   `json:"checkOut"`
	CostPerNight       float64  `json:"costPerNight"`
	TotalCost          float64  `json:"totalCost"`
	Amenities          []string `json:"amenities"`
	Rating             float64  `json:"rating,omitempty"`
	BookingURL         string   `json:"bookingUrl,omitempty"`
	ConfirmationNumber string   `json:"confirmationNumber,omitempty"`
}

type Transportation struct {
	ID                 string   `json:"id"`
	Type               string   `json:"type"` // flight/train/bus/car/taxi/walk
	From               Location `json:"from"`
	To                 Location `json:"to"`
	DepartureTime      string   `json:"departureTime"`
	ArrivalTime        string   `json:"arrivalTime"`
	Cost               float64  `json:"cost"`
	BookingURL         string   `json:"bookingUrl,omitempty"`
	ConfirmationNumber string   `json:"confirmationNumber,omitempty"`
}

type DayPlan struct {
	Day        int        `json:"day"` // 1-based, sequential
	Date       string     `json:"date"`
	Activities []Activity `json:"activities"`
	Meals      []Meal     `json:"meals"`
	Notes      string     `json:"notes,omitempty"`
}

type Itinerary struct {
	ID             string           `json:"id"`
	TripID         string           `json:"tripId"`
	Days           []DayPlan        `json:"days"`
	Accommodation  []Accommodation  `json:"accommodation"`
	Transportation []Transportation `json:"transportation"`
	TotalCost      float64          `json:"totalCost"`
}

type Trip struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Destination string     `json:"destination"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     time.Time  `json:"endDate"`
	Budget      float64    `json:"budget"`
	Mood        string     `json:"mood"`
	Status      Status     `json:"status"`
	Itinerary   *Itinerary `json:"itinerary,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type Preferences struct {
	Pace                string   `json:"pace,omitempty"` // relaxed/moderate/packed
	Interests           []string `json:"interests,omitempty"`
	DietaryRestrictions []string `json:"dietaryRestrictions,omitempty"`
	MobilityNeeds       []string `json:"mobilityNeeds,omitempty"`
}

// PlanRequest is the inbound body of POST /api/plan-trip.
type PlanRequest struct {
	Destination string       `json:"destination"`
	StartDate   string       `json:"startDate"`
	EndDate     string       `json:"endDate"`
	Budget      float64      `json:"budget"`
	Travelers   int          `json:"travelers"`
	Mood        string       `json:"mood"`
	Preferences *Preferences `json:"preferences,omitempty"`
}

// Validate checks required fields and date ordering, returning the parsed dates
// and the trip duration in whole days (rounded up).
func (r PlanRequest) Validate() (start, end time.Time, days int, err error) {
	if strings.TrimSpace(r.Destination) == "" || r.StartDate == "" || r.EndDate == "" || r.Budget == 0 {
		return time.Time{}, time.Time{}, 0, ErrMissingFields
	}
	start, err = parseDate(r.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, 0, ErrMissingFields
	}
	end, err = parseDate(r.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, 0, ErrMissingFields
	}
	days = durationDays(start, end)
	if days < 1 {
		return time.Time{}, time.Time{}, 0, ErrDateOrder
	}
	return start, end, days, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// durationDays is ceil((end - start) / 24h).
func durationDays(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}

// CostBreakdown sums every per-activity, per-meal, per-accommodation and
// per-transport cost in the itinerary.
func (it *Itinerary) CostBreakdown() float64 {
	var total float64
	for _, day := range it.Days {
		for _, act := range day.Activities {
			total += act.Cost
		}
		for _, meal := range day.Meals {
			total += meal.EstimatedCost
		}
	}
	for _, acc := range it.Accommodation {
		total += acc.TotalCost
	}
	for _, tr := range it.Transportation {
		total += tr.Cost
	}
	return total
}

// CheckTotalCost compares the model-reported TotalCost against CostBreakdown.
// tolerance is relative (0.1 allows 10% drift). The check is opt-in: callers
// that trust the model verbatim simply never invoke it.
func (it *Itinerary) CheckTotalCost(tolerance float64) error {
	expected := it.CostBreakdown()
	if expected == 0 {
		return nil
	}
	drift := math.Abs(it.TotalCost-expected) / expected
	if drift > tolerance {
		return ErrCostMismatch
	}
	return nil
}
