package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/tripplanner/tripplanner/pkg/api"
	"github.com/tripplanner/tripplanner/pkg/batch"
	"github.com/tripplanner/tripplanner/pkg/interactive"
	"github.com/tripplanner/tripplanner/pkg/util"
	"github.com/urfave/cli/v2"
)

func main() {
	util.LoadDotEnv()

	if os.Getenv("TRIPPLANNER_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	if os.Getenv("TRIPPLANNER_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "tripplanner",
		Description: "Picks transport and lodging for a trip, or composes day itineraries, and exports them as calendars",

		Commands: []*cli.Command{
			api.RegisterCLI(),
			interactive.RegisterPlanCLI(),
			interactive.RegisterItineraryCLI(),
			batch.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
