package itinerary

import (
	"fmt"
	"strings"
	"time"

	"github.com/tripplanner/tripplanner/pkg/trip"
	"github.com/tripplanner/tripplanner/pkg/util"
)

// Stay is the selected transport in both directions plus the lodging in between
type Stay struct {
	Origin      string
	Destination string

	From time.Time
	To   time.Time

	Outbound trip.TransportOption
	Inbound  trip.TransportOption
	Lodging  trip.LodgingOption
}

func StayTitle(destination string) string {
	return fmt.Sprintf("%s — trip", destination)
}

// TransportAndLodging always produces Departure, Check-in, Check-out and Return in that order
func TransportAndLodging(stay Stay) (trip.Itinerary, error) {
	if err := trip.CheckStay(stay.From, stay.To); err != nil {
		return trip.Itinerary{}, err
	}

	itinerary := trip.Itinerary{
		Title: StayTitle(stay.Destination),
		Events: []trip.Event{
			{
				Title:    fmt.Sprintf("Departure %s → %s (%s)", stay.Origin, stay.Destination, stay.Outbound.Provider),
				Start:    stay.Outbound.DepartureTime,
				End:      stay.Outbound.ArrivalTime,
				Location: stay.Origin,
				Notes:    TransportNotes(stay.Outbound),
			},
			{
				Title:    fmt.Sprintf("Check-in %s", stay.Lodging.Name),
				Start:    util.AtClock(stay.From, 15, 0),
				End:      util.AtClock(stay.From, 16, 0),
				Location: stay.Lodging.Location,
				URL:      stay.Lodging.URL,
				Notes:    LodgingNotes(stay.Lodging),
			},
			{
				Title:    fmt.Sprintf("Check-out %s", stay.Lodging.Name),
				Start:    util.AtClock(stay.To, 11, 0),
				End:      util.AtClock(stay.To, 11, 30),
				Location: stay.Lodging.Location,
				URL:      stay.Lodging.URL,
			},
			{
				Title:    fmt.Sprintf("Return %s → %s (%s)", stay.Destination, stay.Origin, stay.Inbound.Provider),
				Start:    stay.Inbound.DepartureTime,
				End:      stay.Inbound.ArrivalTime,
				Location: stay.Destination,
				Notes:    TransportNotes(stay.Inbound),
			},
		},
	}

	if err := itinerary.Validate(); err != nil {
		return trip.Itinerary{}, err
	}

	return itinerary, nil
}

func TransportNotes(option trip.TransportOption) string {
	parts := []string{
		option.Mode.String(),
		option.Provider,
		fmt.Sprintf("€%.0f", option.Price),
		TransfersLabel(option.Transfers),
	}

	if option.Notes != "" {
		parts = append(parts, option.Notes)
	}

	return strings.Join(parts, " | ")
}

func TransfersLabel(transfers int) string {
	switch transfers {
	case 0:
		return "direct"
	case 1:
		return "1 transfer"
	default:
		return fmt.Sprintf("%d transfers", transfers)
	}
}

func LodgingNotes(option trip.LodgingOption) string {
	return fmt.Sprintf("€%.0f/night | Rating %.1f/5", option.PricePerNight, option.Rating)
}

// Nights is the calendar day difference. minimumOne counts a same day stay as one night.
func Nights(from time.Time, to time.Time, minimumOne bool) int {
	nights := util.DaysBetween(from, to)
	if minimumOne && nights == 0 {
		return 1
	}

	return nights
}

func StayPrice(option trip.LodgingOption, nights int) float64 {
	return option.PricePerNight * float64(nights)
}
