package interactive

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tripplanner/tripplanner/pkg/planner"
	"github.com/tripplanner/tripplanner/pkg/render"
)

// AskTrip fills a trip form starting from the defaults
func AskTrip(p *Prompter) (planner.TripForm, error) {
	form := planner.DefaultTripForm()
	modes := strings.Join(form.Modes, ", ")

	err := p.askAll([]question{
		{"Origin", &form.Origin},
		{"Destination", &form.Destination},
		{"Departure date (YYYY-MM-DD)", &form.From},
		{"Return date (YYYY-MM-DD)", &form.To},
		{"Transport modes (flight, train, drive)", &modes},
		{"Max price per night, empty for no limit", &form.MaxPerNight},
		{"Alarm minutes before each event, 0 for none", &form.AlarmMinutes},
		{"Lodging filter expression, e.g. Rating >= 4.5", &form.LodgingFilter},
	})
	form.Modes = []string{modes}

	return form, err
}

// RunTrip asks for a trip, plans it and writes the calendar to output
func RunTrip(tripPlanner *planner.Planner, in io.Reader, out io.Writer, output string) error {
	form, err := AskTrip(NewPrompter(in, out))
	if err != nil {
		return err
	}

	request, err := form.Request()
	if err != nil {
		return err
	}
	request.MinimumOneNight = true

	plan, err := tripPlanner.PlanTrip(request)
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, []byte(plan.Calendar), 0o644); err != nil {
		return err
	}

	log.Debug().Str("path", output).Int("events", len(plan.Itinerary.Events)).Msg("Wrote trip calendar")

	fmt.Fprintln(out)
	if err := render.TripSummary(out, plan); err != nil {
		return err
	}
	fmt.Fprintf(out, "Calendar saved: %s\n", output)

	return nil
}
