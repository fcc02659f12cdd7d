package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/tripplanner/tripplanner/pkg/itinerary"
	"github.com/tripplanner/tripplanner/pkg/trip"
)

func Euro(amount float64) string {
	return fmt.Sprintf("€%.0f", amount)
}

func Clock(t time.Time) string {
	return t.Format("15:04")
}

func Day(t time.Time) string {
	return t.Format(time.DateOnly)
}

// TransportLine is the one line description of a selected option, e.g.
// "train Frecciarossa 07:30→10:35 €59 (direct)"
func TransportLine(option trip.TransportOption) string {
	return fmt.Sprintf("%s %s %s→%s %s (%s)",
		option.Mode,
		option.Provider,
		Clock(option.DepartureTime),
		Clock(option.ArrivalTime),
		Euro(option.Price),
		itinerary.TransfersLabel(option.Transfers),
	)
}

func LodgingLine(option trip.LodgingOption, nights int) string {
	return fmt.Sprintf("%s %s/night × %d %s = %s (rating %.1f, %d reviews)",
		option.Name,
		Euro(option.PricePerNight),
		nights,
		plural(nights, "night", "nights"),
		Euro(itinerary.StayPrice(option, nights)),
		option.Rating,
		option.Reviews,
	)
}

func EventLine(event trip.Event) string {
	var line strings.Builder

	fmt.Fprintf(&line, "%s %s–%s %s", Day(event.Start), Clock(event.Start), Clock(event.End), event.Title)
	if event.Location != "" {
		fmt.Fprintf(&line, " @ %s", event.Location)
	}

	return line.String()
}

func plural(n int, one string, many string) string {
	if n == 1 {
		return one
	}

	return many
}
