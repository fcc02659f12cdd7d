package batch

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/tripplanner/tripplanner/pkg/planner"
	"github.com/tripplanner/tripplanner/pkg/render"
	"github.com/tripplanner/tripplanner/pkg/trip"
)

// Outputs are the files an export writes. CSV and PDF are skipped when empty.
type Outputs struct {
	Calendar string
	CSV      string
	PDF      string
}

func ExportTrip(tripPlanner *planner.Planner, request planner.TripRequest, outputs Outputs, out io.Writer) error {
	plan, err := tripPlanner.PlanTrip(request)
	if err != nil {
		return err
	}

	summary := []string{
		"Outbound: " + render.TransportLine(plan.Outbound),
		"Return: " + render.TransportLine(plan.Inbound),
		"Lodging: " + render.LodgingLine(plan.Lodging, plan.Nights),
	}

	if err := writeOutputs(outputs, plan.Calendar, plan.Itinerary, summary); err != nil {
		return err
	}

	if err := render.TripSummary(out, plan); err != nil {
		return err
	}

	return printWritten(out, outputs)
}

func ExportDays(tripPlanner *planner.Planner, request planner.DayRequest, outputs Outputs, out io.Writer) error {
	plan, err := tripPlanner.PlanDays(request)
	if err != nil {
		return err
	}

	if err := writeOutputs(outputs, plan.Calendar, plan.Itinerary, nil); err != nil {
		return err
	}

	if err := render.DaySummary(out, plan); err != nil {
		return err
	}

	return printWritten(out, outputs)
}

func writeOutputs(outputs Outputs, document string, itinerary trip.Itinerary, summary []string) error {
	if err := os.WriteFile(outputs.Calendar, []byte(document), 0o644); err != nil {
		return err
	}

	if outputs.CSV != "" {
		if err := writeFile(outputs.CSV, func(w io.Writer) error {
			return render.CSV(w, itinerary)
		}); err != nil {
			return fmt.Errorf("csv export: %w", err)
		}
	}

	if outputs.PDF != "" {
		if err := writeFile(outputs.PDF, func(w io.Writer) error {
			return render.PDF(w, itinerary, summary)
		}); err != nil {
			return fmt.Errorf("pdf export: %w", err)
		}
	}

	log.Debug().
		Str("calendar", outputs.Calendar).
		Str("csv", outputs.CSV).
		Str("pdf", outputs.PDF).
		Int("events", len(itinerary.Events)).
		Msg("Exported itinerary")

	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := write(file); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}

func printWritten(out io.Writer, outputs Outputs) error {
	for _, path := range []string{outputs.Calendar, outputs.CSV, outputs.PDF} {
		if path == "" {
			continue
		}

		if _, err := fmt.Fprintf(out, "Written: %s\n", path); err != nil {
			return err
		}
	}

	return nil
}
