package render

import (
	"io"

	"github.com/gocarina/gocsv"
	"github.com/tripplanner/tripplanner/pkg/calendar"
	"github.com/tripplanner/tripplanner/pkg/trip"
)

type EventRow struct {
	Title    string `csv:"title"`
	Date     string `csv:"date"`
	Start    string `csv:"start"`
	End      string `csv:"end"`
	Location string `csv:"location"`
	URL      string `csv:"url"`
	Notes    string `csv:"notes"`
	Link     string `csv:"calendar_link"`
}

func EventRows(itinerary trip.Itinerary) []*EventRow {
	rows := make([]*EventRow, 0, len(itinerary.Events))

	for _, event := range itinerary.Events {
		rows = append(rows, &EventRow{
			Title:    event.Title,
			Date:     Day(event.Start),
			Start:    Clock(event.Start),
			End:      Clock(event.End),
			Location: event.Location,
			URL:      event.URL,
			Notes:    event.Notes,
			Link:     calendar.QuickAddLink(event),
		})
	}

	return rows
}

func CSV(w io.Writer, itinerary trip.Itinerary) error {
	return gocsv.Marshal(EventRows(itinerary), w)
}
