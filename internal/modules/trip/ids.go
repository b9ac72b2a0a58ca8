package trip

import (
	"fmt"

	"github.com/google/uuid"
)

// Top-level identifiers keep the historical trip_/itin_ prefixes but are backed
// by UUIDs so concurrent requests can never collide.
func newTripID() string {
	return "trip_" + uuid.NewString()
}

func newItineraryID() string {
	return "itin_" + uuid.NewString()
}

// assignIDs stamps positional identifiers onto every nested record and
// normalises omitted lists to empty slices. Positions are 0-based slice
// indexes, so IDs are unique within one itinerary by construction.
func assignIDs(it *Itinerary) {
	if it.Days == nil {
		it.Days = []DayPlan{}
	}
	for dayIdx := range it.Days {
		day := &it.Days[dayIdx]
		if day.Activities == nil {
			day.Activities = []Activity{}
		}
		if day.Meals == nil {
			day.Meals = []Meal{}
		}
		for i := range day.Activities {
			day.Activities[i].ID = fmt.Sprintf("act_%d_%d", dayIdx, i)
		}
		for i := range day.Meals {
			day.Meals[i].ID = fmt.Sprintf("meal_%d_%d", dayIdx, i)
		}
	}
	if it.Accommodation == nil {
		it.Accommodation = []Accommodation{}
	}
	for i := range it.Accommodation {
		it.Accommodation[i].ID = fmt.Sprintf("acc_%d", i)
	}
	if it.Transportation == nil {
		it.Transportation = []Transportation{}
	}
	for i := range it.Transportation {
		it.Transportation[i].ID = fmt.Sprintf("trans_%d", i)
	}
}
