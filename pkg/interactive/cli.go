package interactive

import (
	"os"

	"github.com/tripplanner/tripplanner/pkg/dataaggregator"
	"github.com/tripplanner/tripplanner/pkg/dataaggregator/global"
	"github.com/tripplanner/tripplanner/pkg/planner"
	"github.com/urfave/cli/v2"
)

func RegisterPlanCLI() *cli.Command {
	return &cli.Command{
		Name:  "plan",
		Usage: "Interactively plan transport and lodging for a trip",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "output",
				Value: "trip.ics",
				Usage: "path the calendar is written to",
			},
		},
		Action: func(c *cli.Context) error {
			if err := global.Setup(); err != nil {
				return err
			}

			return RunTrip(planner.New(&dataaggregator.GlobalAggregator), os.Stdin, os.Stdout, c.String("output"))
		},
	}
}

func RegisterItineraryCLI() *cli.Command {
	return &cli.Command{
		Name:  "itinerary",
		Usage: "Interactively compose a day by day activity itinerary",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "output",
				Value: "itinerary.ics",
				Usage: "path the calendar is written to",
			},
		},
		Action: func(c *cli.Context) error {
			return RunDays(planner.New(nil), os.Stdin, os.Stdout, c.String("output"))
		},
	}
}
