package calendar

import (
	"fmt"
	"net/url"

	"github.com/tripplanner/tripplanner/pkg/trip"
)

const QuickAddBase = "https://calendar.google.com/calendar/render?action=TEMPLATE"

// QuickAddLink pre-fills the Google Calendar event form. Values are encoded in
// key order so the same event always gives the same URL.
func QuickAddLink(event trip.Event) string {
	query := url.Values{}
	query.Set("text", event.Title)
	query.Set("dates", fmt.Sprintf("%s/%s", FormatLocal(event.Start), FormatLocal(event.End)))
	query.Set("details", event.Notes)
	query.Set("location", event.Location)

	return QuickAddBase + "&" + query.Encode()
}

func QuickAddLinks(itinerary trip.Itinerary) []string {
	links := make([]string, 0, len(itinerary.Events))

	for _, event := range itinerary.Events {
		links = append(links, QuickAddLink(event))
	}

	return links
}
