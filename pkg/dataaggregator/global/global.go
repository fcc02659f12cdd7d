package global

import (
	"github.com/rs/zerolog/log"
	"github.com/tripplanner/tripplanner/pkg/dataaggregator"
	"github.com/tripplanner/tripplanner/pkg/dataaggregator/source/fixtures"
	"github.com/tripplanner/tripplanner/pkg/dataaggregator/source/yamlfile"
	"github.com/tripplanner/tripplanner/pkg/util"
)

// Setup registers provider data from TRIPPLANNER_PROVIDER_DATA ahead of the fixtures
func Setup() error {
	dataaggregator.GlobalAggregator = dataaggregator.Aggregator{}

	env := util.GetEnvironmentVariables()

	if env["TRIPPLANNER_PROVIDER_DATA"] != "" {
		yamlSource := &yamlfile.Source{Directory: env["TRIPPLANNER_PROVIDER_DATA"]}
		if err := yamlSource.Setup(); err != nil {
			return err
		}

		dataaggregator.GlobalAggregator.RegisterSource(yamlSource)
	} else {
		log.Debug().Msg("No provider data directory set, using fixtures only")
	}

	RegisterFixtures(&dataaggregator.GlobalAggregator)

	return nil
}

func RegisterFixtures(aggregator *dataaggregator.Aggregator) {
	aggregator.RegisterSource(fixtures.FlightSource())
	aggregator.RegisterSource(fixtures.TrainSource())
	aggregator.RegisterSource(fixtures.DriveSource())
	aggregator.RegisterSource(fixtures.LodgingSource{})
}
