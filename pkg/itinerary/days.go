package itinerary

import (
	"fmt"
	"time"

	"github.com/tripplanner/tripplanner/pkg/slots"
	"github.com/tripplanner/tripplanner/pkg/trip"
)

func DayTitle(city string, from time.Time, to time.Time) string {
	return fmt.Sprintf("%s — %s→%s", city, from.Format("02 Jan"), to.Format("02 Jan"))
}

// DayActivities turns composed slot assignments into one event per activity
func DayActivities(city string, from time.Time, to time.Time, assignments []slots.Assignment) (trip.Itinerary, error) {
	if err := trip.CheckDays(from, to); err != nil {
		return trip.Itinerary{}, err
	}

	itinerary := trip.Itinerary{
		Title:  DayTitle(city, from, to),
		Events: make([]trip.Event, 0, len(assignments)),
	}

	for _, assignment := range assignments {
		itinerary.Events = append(itinerary.Events, trip.Event{
			Title:    fmt.Sprintf("%s — %s", assignment.Activity, city),
			Start:    assignment.Start(),
			End:      assignment.End(),
			Location: city,
			Notes:    fmt.Sprintf("Slot %s", assignment.Slot.Name),
		})
	}

	return itinerary, nil
}
