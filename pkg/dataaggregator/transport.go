package dataaggregator

import (
	"fmt"

	"github.com/sourcegraph/conc/pool"
	"github.com/tripplanner/tripplanner/pkg/dataaggregator/query"
	"github.com/tripplanner/tripplanner/pkg/trip"
	"golang.org/x/exp/slices"
)

// TransportOptions looks every requested mode up concurrently. Candidates come
// back in the canonical mode order whatever order the modes were requested in.
func (a *Aggregator) TransportOptions(q query.Transports) ([]trip.TransportOption, error) {
	var modes []trip.TransportMode
	for _, mode := range trip.TransportModes {
		if slices.Contains(q.Modes, mode) {
			modes = append(modes, mode)
		}
	}

	results := make([][]trip.TransportOption, len(modes))

	p := pool.New().WithErrors()
	for i, mode := range modes {
		p.Go(func() error {
			options, err := Lookup[[]trip.TransportOption](a, query.Transport{
				Mode:        mode,
				Origin:      q.Origin,
				Destination: q.Destination,
				Date:        q.Date,
			})
			if err != nil {
				return fmt.Errorf("%s lookup: %w", mode, err)
			}

			results[i] = options
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return nil, err
	}

	var options []trip.TransportOption
	for _, modeOptions := range results {
		options = append(options, modeOptions...)
	}

	return options, nil
}

func (a *Aggregator) LodgingOptions(q query.Lodging) ([]trip.LodgingOption, error) {
	return Lookup[[]trip.LodgingOption](a, q)
}
