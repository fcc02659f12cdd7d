package batch

import (
	"strings"

	"github.com/tripplanner/tripplanner/pkg/dataaggregator"
	"github.com/tripplanner/tripplanner/pkg/dataaggregator/global"
	"github.com/tripplanner/tripplanner/pkg/planner"
	"github.com/tripplanner/tripplanner/pkg/scoring"
	"github.com/urfave/cli/v2"
)

func outputFlags(calendarPath string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "output",
			Value: calendarPath,
			Usage: "path the calendar is written to",
		},
		&cli.StringFlag{
			Name:  "csv",
			Usage: "also export the events as CSV to this path",
		},
		&cli.StringFlag{
			Name:  "pdf",
			Usage: "also export a PDF summary to this path",
		},
	}
}

func outputsFrom(c *cli.Context) Outputs {
	return Outputs{
		Calendar: c.String("output"),
		CSV:      c.String("csv"),
		PDF:      c.String("pdf"),
	}
}

func RegisterCLI() *cli.Command {
	tripDefaults := planner.DefaultTripForm()
	dayDefaults := planner.DefaultDayForm()

	return &cli.Command{
		Name:  "export",
		Usage: "Plan in one shot from flags and export the calendar",
		Subcommands: []*cli.Command{
			{
				Name:  "trip",
				Usage: "transport and lodging for a trip",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "origin", Value: tripDefaults.Origin},
					&cli.StringFlag{Name: "dest", Value: tripDefaults.Destination},
					&cli.StringFlag{Name: "from", Value: tripDefaults.From, Usage: "departure date YYYY-MM-DD"},
					&cli.StringFlag{Name: "to", Value: tripDefaults.To, Usage: "return date YYYY-MM-DD"},
					&cli.StringSliceFlag{Name: "mode", Value: cli.NewStringSlice(tripDefaults.Modes...), Usage: "transport modes to consider"},
					&cli.StringFlag{Name: "max-night", Value: tripDefaults.MaxPerNight, Usage: "max lodging price per night, empty for no limit"},
					&cli.StringFlag{Name: "alarm", Value: tripDefaults.AlarmMinutes, Usage: "alarm minutes before each event, 0 for none"},
					&cli.StringFlag{Name: "lodging-filter", Usage: "boolean expression over Name, Rating, PricePerNight, Reviews"},
					&cli.Float64Flag{Name: "weight-price", Value: scoring.DefaultTransportWeights.Price},
					&cli.Float64Flag{Name: "weight-time", Value: scoring.DefaultTransportWeights.Time},
					&cli.Float64Flag{Name: "weight-transfers", Value: scoring.DefaultTransportWeights.Transfers},
				}, outputFlags("trip.ics")...),
				Action: func(c *cli.Context) error {
					request, err := planner.TripForm{
						Origin:        c.String("origin"),
						Destination:   c.String("dest"),
						From:          c.String("from"),
						To:            c.String("to"),
						Modes:         c.StringSlice("mode"),
						MaxPerNight:   c.String("max-night"),
						AlarmMinutes:  c.String("alarm"),
						LodgingFilter: c.String("lodging-filter"),
					}.Request()
					if err != nil {
						return err
					}

					request.MinimumOneNight = true
					request.Weights.Transport = scoring.TransportWeights{
						Price:     c.Float64("weight-price"),
						Time:      c.Float64("weight-time"),
						Transfers: c.Float64("weight-transfers"),
					}

					if err := global.Setup(); err != nil {
						return err
					}

					return ExportTrip(planner.New(&dataaggregator.GlobalAggregator), request, outputsFrom(c), c.App.Writer)
				},
			},
			{
				Name:  "itinerary",
				Usage: "day by day activities in a city",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "city", Value: dayDefaults.City},
					&cli.StringFlag{Name: "from", Value: dayDefaults.From, Usage: "first day YYYY-MM-DD"},
					&cli.StringFlag{Name: "to", Value: dayDefaults.To, Usage: "last day YYYY-MM-DD"},
					&cli.StringFlag{Name: "pace", Value: dayDefaults.Pace, Usage: "relax or intense"},
					&cli.StringSliceFlag{Name: "interest", Value: cli.NewStringSlice(strings.Split(dayDefaults.Interests, ", ")...)},
					&cli.StringFlag{Name: "alarm", Value: dayDefaults.AlarmMinutes, Usage: "alarm minutes before each event, 0 for none"},
				}, outputFlags("itinerary.ics")...),
				Action: func(c *cli.Context) error {
					request, err := planner.DayForm{
						City:         c.String("city"),
						From:         c.String("from"),
						To:           c.String("to"),
						Pace:         c.String("pace"),
						Interests:    strings.Join(c.StringSlice("interest"), ","),
						AlarmMinutes: c.String("alarm"),
					}.Request()
					if err != nil {
						return err
					}

					return ExportDays(planner.New(nil), request, outputsFrom(c), c.App.Writer)
				},
			},
		},
	}
}
