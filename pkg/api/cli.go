package api

import (
	"github.com/rs/zerolog/log"
	"github.com/tripplanner/tripplanner/pkg/api/routes"
	"github.com/tripplanner/tripplanner/pkg/calendarstore"
	"github.com/tripplanner/tripplanner/pkg/dataaggregator"
	"github.com/tripplanner/tripplanner/pkg/dataaggregator/global"
	"github.com/tripplanner/tripplanner/pkg/planner"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the trip planner web form and JSON API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					if err := global.Setup(); err != nil {
						return err
					}

					store, err := calendarstore.FromEnvironment()
					if err != nil {
						return err
					}

					planning := &routes.Planning{
						Planner: planner.New(&dataaggregator.GlobalAggregator),
						Store:   store,
						TTL:     calendarstore.TTLFromEnvironment(),
					}

					log.Info().Str("listen", c.String("listen")).Dur("ttl", planning.TTL).Msg("Starting web api")

					return SetupServer(c.String("listen"), planning)
				},
			},
		},
	}
}
