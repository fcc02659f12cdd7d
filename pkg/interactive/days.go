package interactive

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/tripplanner/tripplanner/pkg/planner"
	"github.com/tripplanner/tripplanner/pkg/render"
)

func AskDays(p *Prompter) (planner.DayForm, error) {
	form := planner.DefaultDayForm()

	err := p.askAll([]question{
		{"City", &form.City},
		{"Start date (YYYY-MM-DD)", &form.From},
		{"End date (YYYY-MM-DD)", &form.To},
		{"Pace (relax or intense)", &form.Pace},
		{"Interests (art, food, outdoor, kids)", &form.Interests},
		{"Alarm minutes before each event, 0 for none", &form.AlarmMinutes},
	})

	return form, err
}

func RunDays(tripPlanner *planner.Planner, in io.Reader, out io.Writer, output string) error {
	form, err := AskDays(NewPrompter(in, out))
	if err != nil {
		return err
	}

	request, err := form.Request()
	if err != nil {
		return err
	}

	plan, err := tripPlanner.PlanDays(request)
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, []byte(plan.Calendar), 0o644); err != nil {
		return err
	}

	log.Debug().Str("path", output).Int("events", len(plan.Itinerary.Events)).Msg("Wrote day itinerary calendar")

	fmt.Fprintln(out)
	if err := render.DaySummary(out, plan); err != nil {
		return err
	}
	fmt.Fprintf(out, "Calendar saved: %s\n", output)

	return nil
}
