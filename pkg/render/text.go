package render

import (
	"fmt"
	"io"

	"github.com/tripplanner/tripplanner/pkg/planner"
	"github.com/tripplanner/tripplanner/pkg/trip"
)

func TripSummary(w io.Writer, plan *planner.TripPlan) error {
	lines := []string{
		fmt.Sprintf("%s → %s", plan.Origin, plan.Destination),
		"Outbound: " + TransportLine(plan.Outbound),
		"Return:   " + TransportLine(plan.Inbound),
		"Lodging:  " + LodgingLine(plan.Lodging, plan.Nights),
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return Links(w, plan.Itinerary, plan.Links)
}

func DaySummary(w io.Writer, plan *planner.DayPlan) error {
	if _, err := fmt.Fprintln(w, plan.Itinerary.Title); err != nil {
		return err
	}

	for _, event := range plan.Itinerary.Events {
		if _, err := fmt.Fprintln(w, "  "+EventLine(event)); err != nil {
			return err
		}
	}

	return Links(w, plan.Itinerary, plan.Links)
}

// Links prints one quick-add link per event, links[i] belonging to Events[i]
func Links(w io.Writer, itinerary trip.Itinerary, links []string) error {
	if len(links) == 0 {
		return nil
	}

	if _, err := fmt.Fprintln(w, "Add to calendar:"); err != nil {
		return err
	}

	for i, link := range links {
		title := ""
		if i < len(itinerary.Events) {
			title = itinerary.Events[i].Title
		}

		if _, err := fmt.Fprintf(w, " - %s\n   %s\n", title, link); err != nil {
			return err
		}
	}

	return nil
}
